package arith_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numkit/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNum = 0.123456789101112

// TestRound_FivePlaces verifies half-up rounding at five decimals.
func TestRound_FivePlaces(t *testing.T) {
	assert.Equal(t, 0.12346, arith.Round(testNum, 5))
}

// TestRound_PrecisionBeyondDigits verifies that an oversized precision is a no-op.
func TestRound_PrecisionBeyondDigits(t *testing.T) {
	assert.Equal(t, 0.5, arith.Round(0.5, 5))
	assert.Equal(t, 2.0, arith.Round(2.0, 10))
}

// TestRound_Table covers signs, halves and non-finite values.
func TestRound_Table(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		prec int
		want float64
	}{
		{"down", 1.23449, 3, 1.234},
		{"up", 1.2346, 3, 1.235},
		{"negative", -2.71828, 2, -2.72},
		{"zero precision", 2.5, 0, 3},
		{"zero", 0, 4, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, arith.Round(tc.in, tc.prec))
		})
	}

	assert.True(t, math.IsNaN(arith.Round(math.NaN(), 3)), "NaN propagates")
	assert.True(t, math.IsInf(arith.Round(math.Inf(-1), 3), -1), "-Inf propagates")
}

// TestEqualAt checks comparison at a chosen precision.
func TestEqualAt(t *testing.T) {
	assert.True(t, arith.EqualAt(1.0/3.0, 0.33333, 4))
	assert.False(t, arith.EqualAt(0.3334, 0.3333, 4))
}

// TestArrange_HalfOpen verifies start is included and end excluded.
func TestArrange_HalfOpen(t *testing.T) {
	got := arith.Arrange(0, 1, 0.25)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, got)

	got = arith.Arrange(-1, 1, 0.5)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5}, got)
}

// TestArrange_Degenerate verifies empty results for empty or reversed ranges
// and for steps that would never terminate.
func TestArrange_Degenerate(t *testing.T) {
	assert.Empty(t, arith.Arrange(1, 1, 0.1), "empty range")
	assert.Empty(t, arith.Arrange(1, 0, 0.1), "reversed range")
	assert.Empty(t, arith.Arrange(0, 1, 0), "zero step")
	assert.Empty(t, arith.Arrange(0, 1, -0.1), "negative step")
	assert.Empty(t, arith.Arrange(0, 1, math.NaN()), "NaN step")
	assert.Empty(t, arith.Arrange(0, math.Inf(1), 1), "unbounded range")

	// 1 is below the spacing of floats near 1e20; the walk stalls at start.
	assert.Equal(t, []float64{1e20}, arith.Arrange(1e20, 1e20+1e6, 1), "stalled walk")
}

// TestArrange_FineStep checks the count for a fine resolution.
func TestArrange_FineStep(t *testing.T) {
	got := arith.Arrange(0, 1, 1e-3)
	// Accumulation may leave the last point a hair below 1.
	assert.InDelta(t, 1000, len(got), 1)
	assert.Equal(t, 0.0, got[0])
	assert.Less(t, got[len(got)-1], 1.0)
}

// TestGCD covers symmetry, trivial inputs and the ill-defined (0, 0) case.
func TestGCD(t *testing.T) {
	g1, err := arith.GCD(15, 50)
	require.NoError(t, err)
	g2, err := arith.GCD(50, 15)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), g1)
	assert.Equal(t, g1, g2, "GCD must be symmetric")

	g, err := arith.GCD(0, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), g)

	g, err = arith.GCD(7, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), g)

	g, err = arith.GCD(17, 31)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), g)

	_, err = arith.GCD(0, 0)
	assert.ErrorIs(t, err, arith.ErrUndefinedInput)
}
