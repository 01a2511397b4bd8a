// Package diff approximates first derivatives of scalar functions by finite
// differences.
//
// What is inside?
//
//	Symmetric — central difference, O(h²) error, 2 evaluations of f
//	Stencil   — five-point stencil, O(h⁴) error, 4 evaluations of f
//
// Step size:
//
//	The default step h = 2·√ε (ε = 2⁻⁵² for float64), i.e. exactly 2⁻²⁵ ≈ 2.98e-8.
//	It balances truncation error against cancellation in f(x+h) − f(x−h).
//	Override it per call with WithStep.
//
// Usage:
//
//	import "github.com/katalvlaran/numkit/diff"
//
//	square := func(x float64) float64 { return x * x }
//	d := diff.Symmetric(1.5, square)                  // ≈ 3
//	d4 := diff.Stencil(1.5, square, diff.WithStep(1e-3))
//
// Errors:
//
//	None. Non-finite values produced by f propagate into the result.
package diff
