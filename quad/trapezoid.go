// SPDX-License-Identifier: MIT
// Package: numkit/quad
//
// trapezoid.go — composite trapezoid rule, serial and concurrent.

package quad

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numkit/arith"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Trapezoid approximates ∫ₐᵇ f(x) dx with the composite trapezoid rule
//
//	h · (½f(a) + f(x₁) + … + f(xₙ₋₁) + ½f(b)),  n = floor(|b−a|/h)
//
// Complexity: O(|b−a|/h) evaluations of f, O(1) memory.
func Trapezoid(a, b float64, f Func, opts ...Option) float64 {
	if a == b {
		return 0
	}

	h := gatherOptions(opts...).step
	stride := strideToward(a, b, h)

	n := stepCount(math.Floor(math.Abs(b-a) / h))

	acc := 0.5 * (f(a) + f(b))
	x := a
	for i := int64(1); i < n; i++ {
		x += stride
		acc += f(x)
	}

	return h * acc
}

// ParallelTrapezoid approximates ∫ₐᵇ f(x) dx with the trapezoid rule,
// evaluating f concurrently.
//
// Algorithm:
//  1. samples = arith.Arrange(lo, hi, h) over the ordered bounds.
//  2. Split samples into contiguous chunks, one goroutine per chunk.
//  3. Each worker sums f(v) + f(v+h) over its chunk.
//  4. Partial sums are reduced with floats.Sum and scaled by ½h.
//
// The reduction order differs from Trapezoid, so results agree only within
// floating-point accumulation error. There is no cancellation; the call runs
// to completion. A panic in f is re-raised here after all workers return.
func ParallelTrapezoid(a, b float64, f Func, opts ...Option) float64 {
	o := gatherOptions(opts...)
	h := o.step

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	samples := arith.Arrange(lo, hi, h)
	if len(samples) == 0 {
		return 0
	}

	workers := o.workers
	if workers > len(samples) {
		workers = len(samples)
	}
	chunk := (len(samples) + workers - 1) / workers
	partials := make([]float64, workers)
	panics := make([]any, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := min(start+chunk, len(samples))
		if start >= end {
			continue
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					panics[w] = r
					err = fmt.Errorf("quad: worker %d: %v", w, r)
				}
			}()

			var s float64
			for _, v := range samples[start:end] {
				s += f(v) + f(v+h)
			}
			partials[w] = s

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, p := range panics {
			if p != nil {
				panic(p)
			}
		}
	}

	return 0.5 * h * floats.Sum(partials)
}

// strideToward returns h signed to walk from a toward b.
func strideToward(a, b, h float64) float64 {
	if b < a {
		return -h
	}

	return h
}

// stepCount converts a non-negative float count to int64, mapping NaN,
// ±Inf and negatives to 0 so that degenerate ranges integrate to the
// endpoint terms only.
func stepCount(v float64) int64 {
	if math.IsNaN(v) || v <= 0 || v >= math.MaxInt64 {
		return 0
	}

	return int64(v)
}
