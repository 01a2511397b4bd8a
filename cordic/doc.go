// Package cordic evaluates sine and cosine with the CORDIC rotation
// algorithm: shifts, additions and a table of arctangents, no calls to a
// transcendental-function library at evaluation time.
//
// Algorithm Outline:
//  1. Reduce θ modulo π into [0, π); reflect values above π/2 via π − θ'.
//  2. Quadrant index q = ⌊θ / (π/2)⌋ (signed).
//  3. Start at (x, y, φ) = (K, 0, θ') and rotate by ±atan(2⁻ⁱ) toward φ = 0:
//     x' = x − d·y·2⁻ⁱ,  y' = y + d·x·2⁻ⁱ,  φ' = φ − d·atan(2⁻ⁱ),  d = sign(φ).
//  4. Stop once |x'−x| + |y'−y| < Threshold or after MaxIter rotations.
//  5. Restore the signs of (x, y) from q mod 4.
//
// K ≈ 0.6072529350088812 pre-scales the start vector so that the product of
// the rotation gains cancels out.
//
// Usage:
//
//	import "github.com/katalvlaran/numkit/cordic"
//
//	c, s := cordic.Trig(1.0) // ≈ (0.5403, 0.8415)
//
// Very large |θ| loses precision in the modulo reduction; nothing guards it.
package cordic
