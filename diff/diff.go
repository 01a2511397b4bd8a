// SPDX-License-Identifier: MIT
// Package: numkit/diff
//
// diff.go — central and five-point finite differences.

package diff

// Symmetric approximates f'(x) by the central difference
//
//	f'(x) ≈ (f(x+h) − f(x−h)) / 2h
//
// Error is O(h²). f is evaluated twice.
func Symmetric(x float64, f Func, opts ...Option) float64 {
	h := gatherOptions(opts...).step

	return (f(x+h) - f(x-h)) / (2 * h)
}

// Stencil approximates f'(x) by the five-point stencil
//
//	f'(x) ≈ (−f(x+2h) + 8f(x+h) − 8f(x−h) + f(x−2h)) / 12h
//
// Error is O(h⁴). f is evaluated four times.
func Stencil(x float64, f Func, opts ...Option) float64 {
	h := gatherOptions(opts...).step

	return (-f(x+2*h) + 8*f(x+h) - 8*f(x-h) + f(x-2*h)) / (12 * h)
}
