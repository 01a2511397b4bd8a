// SPDX-License-Identifier: MIT
// Package: numkit/arith
//
// errors.go — sentinel errors for the arith package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site, never at definition.

package arith

import (
	"errors"
	"fmt"
)

// ErrUndefinedInput indicates an input for which the operation has no
// mathematical definition, e.g. the greatest common divisor of 0 and 0.
// Usage: if errors.Is(err, ErrUndefinedInput) { /* reject input */ }.
var ErrUndefinedInput = errors.New("arith: ill-defined input")

// arithErrorf prefixes err with the method name, keeping the sentinel
// reachable through errors.Is.
func arithErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
