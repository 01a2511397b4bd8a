// SPDX-License-Identifier: MIT
// Package: numkit/root
//
// options.go — functional options and documented defaults.

package root

const (
	// DefaultMaxIter is the number of Newton updates performed when
	// WithMaxIter is not supplied.
	DefaultMaxIter = 100

	// FallbackSlope replaces an approximated derivative of exactly zero.
	// The value is fixed; changing it changes results at stationary points.
	FallbackSlope = 0.1
)

const panicMaxIterInvalid = "root: WithMaxIter: n must be >= 0"

// Func is a scalar function whose zero is sought.
type Func func(float64) float64

// Option mutates the resolved Options.
type Option func(*Options)

// Options is the effective configuration of one root-finding call.
type Options struct {
	maxIter int // >= 0; DefaultMaxIter
}

// WithMaxIter sets the exact number of Newton updates. Zero returns the
// initial guess unchanged. Panics if n < 0.
func WithMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := Options{maxIter: DefaultMaxIter}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
