// SPDX-License-Identifier: MIT
// Package: numkit/fnlib
//
// registry.go — name → function resolution.

package fnlib

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Func is a pure scalar function.
type Func func(float64) float64

// polyPrefix introduces an inline polynomial: "poly:c0,c1,...,cn".
const polyPrefix = "poly:"

// registry holds the fixed, named functions.
var registry = map[string]Func{
	"x":         func(x float64) float64 { return x },
	"x^2":       func(x float64) float64 { return x * x },
	"x^3":       func(x float64) float64 { return x * x * x },
	"sqrt":      math.Sqrt,
	"exp":       math.Exp,
	"sin":       math.Sin,
	"cos":       math.Cos,
	"quadratic": func(x float64) float64 { return x*x + x - 6 },
}

// Lookup resolves name to a function. Besides the fixed names (see Names),
// "poly:c0,c1,...,cn" builds c0 + c1·x + … + cn·xⁿ.
//
// Errors:
//   - ErrUnknownFunction for names outside the registry.
//   - ErrBadCoefficients for an empty or non-numeric coefficient list.
func Lookup(name string) (Func, error) {
	name = strings.TrimSpace(name)
	if rest, ok := strings.CutPrefix(name, polyPrefix); ok {
		coeffs, err := parseCoefficients(rest)
		if err != nil {
			return nil, fnErrorf(name, err)
		}
		return Polynomial(coeffs...), nil
	}

	f, ok := registry[name]
	if !ok {
		return nil, fnErrorf(name, ErrUnknownFunction)
	}

	return f, nil
}

// Names returns the fixed registry names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Polynomial returns c0 + c1·x + … + cn·xⁿ evaluated by Horner's scheme.
// No coefficients yields the zero function.
func Polynomial(coeffs ...float64) Func {
	c := append([]float64(nil), coeffs...)

	return func(x float64) float64 {
		var acc float64
		for i := len(c) - 1; i >= 0; i-- {
			acc = acc*x + c[i]
		}
		return acc
	}
}

// parseCoefficients splits a comma-separated list of floats.
func parseCoefficients(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrBadCoefficients
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, ErrBadCoefficients
		}
		out[i] = v
	}

	return out, nil
}
