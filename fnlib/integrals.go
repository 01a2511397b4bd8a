// SPDX-License-Identifier: MIT
// Package: numkit/fnlib
//
// integrals.go — definite integrals with closed-form values.

package fnlib

import (
	"fmt"
	"math"
)

// Integral is a definite integral ∫_A^B F(x) dx with a known Value.
type Integral struct {
	Name  string
	A, B  float64
	F     Func
	Value float64
}

// Poly returns ∫_0^1 xⁿ dx = 1/(n+1). Panics if n < 0.
func Poly(n int) Integral {
	if n < 0 {
		panic("fnlib: Poly: negative degree")
	}
	d := float64(n)

	return Integral{
		Name: fmt.Sprintf("∫_0^1 x^%d dx", n),
		A:    0,
		B:    1,
		F: func(x float64) float64 {
			return math.Pow(x, d)
		},
		Value: 1 / (d + 1),
	}
}

// Sqrt returns ∫_0^1 √x dx = 2/3.
func Sqrt() Integral {
	return Integral{
		Name:  "∫_0^1 √x dx",
		A:     0,
		B:     1,
		F:     math.Sqrt,
		Value: 2.0 / 3.0,
	}
}

// Exp returns ∫_0^b eˣ dx = eᵇ − 1.
func Exp(b float64) Integral {
	return Integral{
		Name:  fmt.Sprintf("∫_0^%v e^x dx", b),
		A:     0,
		B:     b,
		F:     math.Exp,
		Value: math.Expm1(b),
	}
}

// Sin returns ∫_0^π sin(x) dx = 2.
func Sin() Integral {
	return Integral{
		Name:  "∫_0^π sin(x) dx",
		A:     0,
		B:     math.Pi,
		F:     math.Sin,
		Value: 2,
	}
}

// Standard returns the fixtures the numkit integration rules are checked
// against: xⁿ for n = 1..3, √x and eˣ on [0, 3].
func Standard() []Integral {
	return []Integral{Poly(1), Poly(2), Poly(3), Sqrt(), Exp(3)}
}
