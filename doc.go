// Package numkit is a small toolkit of classic numerical methods for
// scalar functions f: ℝ → ℝ.
//
// 🚀 What is numkit?
//
//	A pure-Go library plus a CLI that brings together:
//		• Quadrature: Simpson, trapezoid and a fork-join parallel trapezoid
//		• Finite differences: symmetric (2-point) and 5-point stencil
//		• Root finding: fixed-iteration Newton, loop and recursive forms
//		• CORDIC: sine and cosine by shift-and-add rotations
//		• Arithmetic glue: decimal rounding, interval enumeration, GCD
//
// ✨ Why choose numkit?
//
//   - Small surface: plain func(float64) float64 handles, functional options
//   - Predictable: fixed step sizes and iteration counts, no hidden adaptivity
//   - Deterministic: the recursive and iterative Newton forms agree bit for bit
//
// Packages:
//
//	arith/  — Round, Arrange, GCD
//	diff/   — Symmetric, Stencil
//	quad/   — Simpson, Trapezoid, ParallelTrapezoid
//	root/   — Newton, NewtonRecursive
//	cordic/ — Trig, Sin, Cos
//	fnlib/  — named test functions and reference integrals
//
// Quick example:
//
//	area := quad.Simpson(0, 1, func(x float64) float64 { return x * x })
//	fmt.Printf("%.6f\n", area) // 0.333333
//
// The numkit command (cmd/numkit) exposes every operation from the shell:
//
//	numkit integrate --fn x^2 --from 0 --to 1 --rule parallel
//	numkit root --fn quadratic --guess 1
//
//	go get github.com/katalvlaran/numkit
package numkit
