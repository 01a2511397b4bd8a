// SPDX-License-Identifier: MIT
// Package: numkit/cordic
//
// cordic.go — rotation-mode CORDIC for (cos θ, sin θ).

package cordic

import "math"

const (
	// K is the CORDIC gain correction ∏ 1/√(1+2⁻²ⁱ).
	K = 0.6072529350088812

	// MaxIter caps the number of rotations.
	MaxIter = 100

	// Threshold is the L1 change of (x, y) below which rotation stops.
	Threshold = 1e-12
)

const halfPi = math.Pi / 2

// atanTable[i] = atan(2⁻ⁱ), filled once at init.
var atanTable [MaxIter]float64

// powTable[i] = 2⁻ⁱ.
var powTable [MaxIter]float64

func init() {
	p := 1.0
	for i := range atanTable {
		powTable[i] = p
		atanTable[i] = math.Atan(p)
		p /= 2
	}
}

// Trig returns (cos θ, sin θ) for any finite θ in radians.
// NaN or ±Inf input yields NaN results.
func Trig(theta float64) (cos, sin float64) {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return math.NaN(), math.NaN()
	}

	x, y := rotate(reduce(theta))

	return correct(quadrant(theta), x, y)
}

// Cos returns the CORDIC cosine of theta.
func Cos(theta float64) float64 {
	c, _ := Trig(theta)
	return c
}

// Sin returns the CORDIC sine of theta.
func Sin(theta float64) float64 {
	_, s := Trig(theta)
	return s
}

// reduce maps theta into [0, π/2] by a Euclidean modulo π followed by a
// reflection of the upper half.
func reduce(theta float64) float64 {
	r := math.Mod(theta, math.Pi)
	if r < 0 {
		r += math.Pi
	}
	if r > halfPi {
		r = math.Pi - r
	}

	return r
}

// quadrant returns ⌊theta / (π/2)⌋; negative for negative angles.
func quadrant(theta float64) int64 {
	return int64(math.Floor(theta / halfPi))
}

// rotate drives phi to zero starting from (K, 0) and returns the final
// (x, y) ≈ (cos phi, sin phi).
func rotate(phi float64) (x, y float64) {
	x, y = K, 0
	change := math.Inf(1)

	for i := 0; i < MaxIter && change > Threshold; i++ {
		d := 1.0
		if phi < 0 {
			d = -1.0
		}

		xNext := x - d*y*powTable[i]
		yNext := y + d*x*powTable[i]
		phi -= d * atanTable[i]

		change = math.Abs(xNext-x) + math.Abs(yNext-y)
		x, y = xNext, yNext
	}

	return x, y
}

// correct restores the signs of (x, y) for quadrant index q.
// Residues follow q mod 4 with negative indices folded onto the same
// angle classes (−1 ≡ 3, −2 ≡ 2, −3 ≡ 1).
func correct(q int64, x, y float64) (float64, float64) {
	switch q % 4 {
	case 0:
		return x, y
	case 1, -3:
		return -x, y
	case 2, -2:
		return -x, -y
	case 3, -1:
		return x, -y
	default:
		return 0, 0
	}
}
