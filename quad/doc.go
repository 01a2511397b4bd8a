// Package quad approximates definite integrals ∫ₐᵇ f(x) dx of scalar
// functions with fixed-step composite rules.
//
// 🚀 What is inside?
//
//	Simpson           — composite Simpson's rule (4/2 alternating weights)
//	Trapezoid         — composite trapezoid rule, serial
//	ParallelTrapezoid — trapezoid rule evaluated concurrently over chunks
//
// ✨ Key properties:
//   - one shared default step (DefaultStep = 1e-6), overridable with WithStep
//   - no adaptive refinement: the step never changes during a call
//   - no bounds validation: reversed bounds (a > b) use magnitude-based step
//     counts and the result is not negated
//   - ParallelTrapezoid agrees with Trapezoid within ordinary accumulation
//     error, never bit for bit
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/quad"
//
//	cube := func(x float64) float64 { return x * x * x }
//	v := quad.Simpson(0, 1, cube)                               // ≈ 0.25
//	p := quad.ParallelTrapezoid(0, 1, cube, quad.WithWorkers(4)) // ≈ 0.25
//
// Concurrency:
//
//	ParallelTrapezoid calls f from several goroutines at once; f must be safe
//	for concurrent use (pure functions are). A panic raised by f in any worker
//	is re-raised on the calling goroutine after all workers stop.
//
// Performance:
//
//   - Time:   O(|b−a|/h) evaluations of f (ParallelTrapezoid: twice as many,
//     spread across workers)
//   - Memory: O(1) serial; O(|b−a|/h) for the parallel sample slice
package quad
