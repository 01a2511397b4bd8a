// SPDX-License-Identifier: MIT
// Package: numkit/arith
//
// gcd.go — greatest common divisor.

package arith

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. The argument order does not matter: GCD(15, 50) == GCD(50, 15).
//
// Errors:
//   - ErrUndefinedInput when both a and b are zero.
//
// Complexity: O(log(min(a, b))).
func GCD(a, b uint64) (uint64, error) {
	if a == 0 && b == 0 {
		return 0, arithErrorf("GCD(0, 0)", ErrUndefinedInput)
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a, nil
}
