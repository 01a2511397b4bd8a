// SPDX-License-Identifier: MIT
// Package: numkit/diff
//
// options.go — functional options and documented defaults.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Differentiators themselves never panic.

package diff

import "math"

// DefaultStep is 2·√ε for float64 (ε = 2⁻⁵²), exactly 2⁻²⁵.
const DefaultStep = 0x1p-25

const panicStepInvalid = "diff: WithStep: h must be finite and > 0"

// Func is a scalar function handle. It must be deterministic for the
// duration of a call.
type Func func(float64) float64

// Option mutates the resolved Options.
type Option func(*Options)

// Options is the effective configuration of one differentiation call.
type Options struct {
	step float64
}

// WithStep overrides the finite-difference step h.
// Panics if h is not a finite positive number.
func WithStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 1) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := Options{step: DefaultStep}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
