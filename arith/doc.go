// Package arith holds the small arithmetic helpers shared by the numkit
// algorithms and their tests.
//
// What is inside?
//
//	Round   — decimal rounding used to present and compare results
//	Arrange — evenly spaced sample points over [start, end)
//	GCD     — iterative Euclid with an explicit failure for (0, 0)
//
// None of these helpers carry numerical policy of their own: quadrature,
// differentiation, root finding and CORDIC live in their own packages and
// only consume Arrange (parallel trapezoid) or Round (callers and tests).
//
// Usage:
//
//	import "github.com/katalvlaran/numkit/arith"
//
//	arith.Round(0.123456789101112, 5)  // 0.12346
//	arith.Arrange(0, 1, 0.25)          // [0 0.25 0.5 0.75]
//	g, err := arith.GCD(15, 50)        // 5, nil
package arith
