// SPDX-License-Identifier: MIT
// Package: numkit/fnlib
//
// errors.go — sentinel errors for function lookup.

package fnlib

import (
	"errors"
	"fmt"
)

// ErrUnknownFunction indicates a name that is not in the registry.
var ErrUnknownFunction = errors.New("fnlib: unknown function")

// ErrBadCoefficients indicates a malformed "poly:" coefficient list.
var ErrBadCoefficients = errors.New("fnlib: invalid polynomial coefficients")

// fnErrorf attaches the offending input to a sentinel.
func fnErrorf(input string, err error) error {
	return fmt.Errorf("%q: %w", input, err)
}
