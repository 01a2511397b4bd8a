// SPDX-License-Identifier: MIT
// Package: numkit/quad
//
// simpson.go — composite Simpson's rule.

package quad

import "math"

// Simpson approximates ∫ₐᵇ f(x) dx with composite Simpson's rule.
//
// Algorithm:
//  1. n = ceil(|b−a|/h) − 1 interior points; the endpoints are handled
//     separately.
//  2. acc = f(a) + f(b).
//  3. For i = 1..n at xᵢ = a + i·h (walking toward b):
//     acc += cᵢ·f(xᵢ), cᵢ = 4 for odd i, 2 for even i.
//  4. Return acc · h/3.
//
// The rule is exact for cubics when |b−a|/h is an even integer.
//
// Complexity: O(|b−a|/h) evaluations of f, O(1) memory.
func Simpson(a, b float64, f Func, opts ...Option) float64 {
	if a == b {
		return 0
	}

	h := gatherOptions(opts...).step
	stride := strideToward(a, b, h)

	n := stepCount(math.Ceil(math.Abs(b-a)/h)) - 1

	acc := f(a) + f(b)
	x := a
	for i := int64(1); i <= n; i++ {
		x += stride
		// odd → 4, even → 2
		acc += float64(2*(1+i%2)) * f(x)
	}

	return h / 3 * acc
}
