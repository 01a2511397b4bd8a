// SPDX-License-Identifier: MIT
// Package: numkit/quad
//
// options.go — functional options and documented defaults.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Integration rules themselves never panic (f may).

package quad

import (
	"math"
	"runtime"
)

// DefaultStep is the integration step used when WithStep is not supplied.
const DefaultStep = 1e-6

const (
	panicStepInvalid    = "quad: WithStep: h must be finite and > 0"
	panicWorkersInvalid = "quad: WithWorkers: n must be > 0"
)

// Func is a scalar integrand. ParallelTrapezoid requires it to be safe for
// concurrent calls.
type Func func(float64) float64

// Option mutates the resolved Options.
type Option func(*Options)

// Options is the effective configuration of one integration call.
type Options struct {
	step    float64 // > 0; DefaultStep
	workers int     // > 0; runtime.GOMAXPROCS(0)
}

// WithStep overrides the integration step h.
// Panics if h is not a finite positive number.
func WithStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 1) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

// WithWorkers bounds the number of goroutines ParallelTrapezoid uses.
// Serial rules ignore it. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		step:    DefaultStep,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
