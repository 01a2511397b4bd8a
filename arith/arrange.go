// SPDX-License-Identifier: MIT
// Package: numkit/arith
//
// arrange.go — evenly spaced sample points over a half-open interval.

package arith

import "math"

// maxReserve bounds the up-front allocation; longer walks grow by append.
const maxReserve = 1 << 24

// Arrange returns the points start, start+step, start+2·step, ... that are
// strictly below end. The start point is included, end is excluded.
//
// Points are produced by repeated addition, so the last point may drift
// from start+k·step by ordinary accumulation error. An empty slice is
// returned when start >= end or step is not positive. The walk stops early
// if step is too small to advance past the current point.
//
// Complexity: O(n) time and memory, n = floor(|end−start|/step).
func Arrange(start, end, step float64) []float64 {
	if !(step > 0) || math.IsInf(step, 0) || !(start < end) {
		return []float64{}
	}

	// Reserve the expected count; the walk may add one more point.
	n := math.Floor((end - start) / step)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return []float64{}
	}
	points := make([]float64, 0, int(min(n, maxReserve))+1)

	for cur := start; cur < end; cur += step {
		points = append(points, cur)
		if cur+step == cur {
			break
		}
	}

	return points
}
