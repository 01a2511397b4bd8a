// SPDX-License-Identifier: MIT
// Package: numkit/root
//
// newton.go — fixed-iteration Newton's method, loop and recursive forms.

package root

import "github.com/katalvlaran/numkit/diff"

// Newton runs exactly maxIter Newton updates from x0 and returns the last
// iterate. See the package documentation for the zero-slope policy.
//
// Complexity: maxIter · 3 evaluations of f.
func Newton(f Func, x0 float64, opts ...Option) float64 {
	n := gatherOptions(opts...).maxIter

	x := x0
	for i := 0; i < n; i++ {
		x = step(f, x)
	}

	return x
}

// NewtonRecursive is the recursive form of Newton: it returns x0 when the
// remaining count is zero and otherwise recurses on one update with the
// count decremented. It returns the same value as Newton for the same
// inputs. Recursion depth equals maxIter.
func NewtonRecursive(f Func, x0 float64, opts ...Option) float64 {
	return newtonRec(f, x0, gatherOptions(opts...).maxIter)
}

// newtonRec performs count remaining updates starting at x.
func newtonRec(f Func, x float64, count int) float64 {
	if count == 0 {
		return x
	}

	return newtonRec(f, step(f, x), count-1)
}

// step performs one Newton update x − f(x)/d.
func step(f Func, x float64) float64 {
	d := diff.Symmetric(x, diff.Func(f))
	if d == 0 {
		d = FallbackSlope
	}

	return x - f(x)/d
}
