// Package root locates zeros of scalar functions with Newton's method.
//
// The iteration is
//
//	x ← x − f(x) / f'(x)
//
// where f'(x) is approximated by diff.Symmetric with its default step. The
// method runs a FIXED number of updates (DefaultMaxIter unless overridden
// with WithMaxIter). There is no tolerance test, no divergence detection and
// no "too many iterations" error: the last iterate is returned as is, and it
// is up to the caller to judge it, e.g. by checking |f(x*)|.
//
// Stationary points:
//
//	When the approximated derivative is exactly 0 the update uses the fixed
//	slope FallbackSlope (0.1) instead of dividing by zero. This is a crude
//	stabilization, not a singularity handler: it keeps the iterate finite but
//	gives no convergence guarantee near stationary points.
//
// Two control shapes are provided. Newton is a bounded loop; NewtonRecursive
// recurses once per update and stops when its counter reaches zero. Both
// perform the same floating-point operations in the same order and return
// bit-identical results for identical inputs.
//
// Usage:
//
//	import "github.com/katalvlaran/numkit/root"
//
//	f := func(x float64) float64 { return x*x + x - 6 }
//	r := root.Newton(f, 1.0)                          // ≈ 2
//	r = root.NewtonRecursive(f, -2.0, root.WithMaxIter(10)) // ≈ -3
package root
