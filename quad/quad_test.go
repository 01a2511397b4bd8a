package quad_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numkit/arith"
	"github.com/katalvlaran/numkit/fnlib"
	"github.com/katalvlaran/numkit/quad"
	"github.com/stretchr/testify/assert"
	gquad "gonum.org/v1/gonum/integrate/quad"
)

// precision is the decimal precision expected of integral estimates.
const precision = 4

// rule names one integration function under test.
type rule struct {
	name string
	fn   func(a, b float64, f quad.Func, opts ...quad.Option) float64
}

var rules = []rule{
	{"Simpson", quad.Simpson},
	{"Trapezoid", quad.Trapezoid},
	{"ParallelTrapezoid", quad.ParallelTrapezoid},
}

// TestQuad_KnownIntegrals checks every rule against closed forms with the
// default step.
func TestQuad_KnownIntegrals(t *testing.T) {
	for _, in := range fnlib.Standard() {
		for _, r := range rules {
			t.Run(in.Name+"/"+r.name, func(t *testing.T) {
				got := r.fn(in.A, in.B, quad.Func(in.F))
				assert.Equal(t, arith.Round(in.Value, precision), arith.Round(got, precision))
			})
		}
	}
}

// TestParallelTrapezoid_AgreesWithSerial verifies the concurrent variant stays
// within accumulation error of the serial rule, for several worker counts.
func TestParallelTrapezoid_AgreesWithSerial(t *testing.T) {
	fns := map[string]quad.Func{
		"exp":  math.Exp,
		"sqrt": math.Sqrt,
		"cos":  math.Cos,
	}
	for name, f := range fns {
		serial := quad.Trapezoid(0, 1, f)
		for _, w := range []int{1, 2, 3, 8} {
			par := quad.ParallelTrapezoid(0, 1, f, quad.WithWorkers(w))
			assert.InDelta(t, serial, par, 1e-6, "%s workers=%d", name, w)
			assert.Equal(t, arith.Round(serial, precision), arith.Round(par, precision), "%s workers=%d", name, w)
		}
	}
}

// TestQuad_AgreesWithGaussLegendre cross-checks against gonum's fixed rule.
func TestQuad_AgreesWithGaussLegendre(t *testing.T) {
	want := gquad.Fixed(math.Sin, 0, 1, 20, nil, 0)
	assert.InDelta(t, 1-math.Cos(1), want, 1e-14)

	step := quad.WithStep(1e-4)
	assert.InDelta(t, want, quad.Simpson(0, 1, math.Sin, step), 1e-10)
	assert.InDelta(t, want, quad.Trapezoid(0, 1, math.Sin, step), 1e-8)
}

// TestSimpson_ExactOnCubicWithCoarseStep pins the 4/2 weight alternation:
// an off-by-one in the interior indexing breaks exactness.
func TestSimpson_ExactOnCubicWithCoarseStep(t *testing.T) {
	cubic := func(x float64) float64 { return x * x * x }
	square := func(x float64) float64 { return x * x }

	assert.InDelta(t, 4.0, quad.Simpson(0, 2, cubic, quad.WithStep(0.5)), 1e-12)
	assert.InDelta(t, 0.25, quad.Simpson(0, 1, cubic, quad.WithStep(0.5)), 1e-12)
	assert.InDelta(t, 1.0/3.0, quad.Simpson(0, 1, square, quad.WithStep(0.25)), 1e-12)
}

// TestTrapezoid_CoarseStep checks the trapezoid weights on a 4-panel grid.
func TestTrapezoid_CoarseStep(t *testing.T) {
	square := func(x float64) float64 { return x * x }
	step := quad.WithStep(0.25)

	// 0.25 · (0/2 + 1/16 + 4/16 + 9/16 + 16/32) = 0.34375
	assert.InDelta(t, 0.34375, quad.Trapezoid(0, 1, square, step), 1e-12)
	assert.InDelta(t, 0.34375, quad.ParallelTrapezoid(0, 1, square, step), 1e-12)
}

// TestQuad_ReversedBounds verifies magnitude-based step counts: the result
// is the integral over the covered interval and is not negated.
func TestQuad_ReversedBounds(t *testing.T) {
	square := func(x float64) float64 { return x * x }
	// A power-of-two step keeps the sample grid exact.
	step := quad.WithStep(0x1p-10)

	for _, r := range rules {
		forward := r.fn(-1, 2, square, step)
		backward := r.fn(2, -1, square, step)
		assert.InDelta(t, 3.0, forward, 1e-5, r.name)
		assert.InDelta(t, forward, backward, 1e-5, r.name)
	}
}

// TestQuad_EmptyInterval verifies a == b integrates to zero.
func TestQuad_EmptyInterval(t *testing.T) {
	for _, r := range rules {
		assert.Equal(t, 0.0, r.fn(1.5, 1.5, math.Exp), r.name)
	}
}

// TestQuad_NonFinitePropagates verifies NaN from f is returned, not trapped.
func TestQuad_NonFinitePropagates(t *testing.T) {
	nan := func(float64) float64 { return math.NaN() }
	step := quad.WithStep(0.1)
	for _, r := range rules {
		assert.True(t, math.IsNaN(r.fn(0, 1, nan, step)), r.name)
	}
}

// TestParallelTrapezoid_PanicPropagates verifies a panic inside f aborts the
// whole call on the caller's goroutine.
func TestParallelTrapezoid_PanicPropagates(t *testing.T) {
	boom := func(x float64) float64 {
		if x > 0.5 {
			panic("boom")
		}
		return x
	}

	assert.PanicsWithValue(t, "boom", func() {
		quad.ParallelTrapezoid(0, 1, boom, quad.WithStep(1e-3), quad.WithWorkers(4))
	})
}

// TestOptions_Panics verifies option validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { quad.WithStep(0) })
	assert.Panics(t, func() { quad.WithStep(-1) })
	assert.Panics(t, func() { quad.WithStep(math.NaN()) })
	assert.Panics(t, func() { quad.WithStep(math.Inf(1)) })
	assert.Panics(t, func() { quad.WithWorkers(0) })
	assert.NotPanics(t, func() { quad.WithWorkers(1) })
}
