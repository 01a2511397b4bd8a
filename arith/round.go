// SPDX-License-Identifier: MIT
// Package: numkit/arith
//
// round.go — decimal rounding for presenting and comparing float results.

package arith

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Round returns x rounded to precision decimal places, halves away from zero.
// A precision larger than the number of significant decimals in x leaves x
// unchanged (Round(0.5, 5) == 0.5). Negative precision rounds to tens,
// hundreds, and so on. NaN and ±Inf are returned as is.
//
// Complexity: O(1).
func Round(x float64, precision int) float64 {
	return scalar.Round(x, precision)
}

// EqualAt reports whether a and b agree once both are rounded to precision
// decimal places. It is the comparison the numkit tests and CLI use to
// decide whether an approximation "matches" a reference value.
func EqualAt(a, b float64, precision int) bool {
	return Round(a, precision) == Round(b, precision)
}
