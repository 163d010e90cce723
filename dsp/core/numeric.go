package core

import "math"

// Clamp limits value to the inclusive range [lo, hi]. NaN maps to lo.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo || math.IsNaN(value) {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// ClampUnit limits value to [0, 1].
func ClampUnit(value float64) float64 {
	return Clamp(value, 0, 1)
}

// ClampInt limits value to the inclusive range [lo, hi].
func ClampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = 1e-12
	}

	return math.Abs(a-b) <= eps
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DBToLinear converts dB to linear amplitude.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
