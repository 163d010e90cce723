package dynamics

import "math"

const (
	kneeWidth  = 0.2
	kneePoints = 101
)

// kneeCurve is an S-curve rising from 0 to 1 over kneePoints steps.
var kneeCurve = func() [kneePoints]float64 {
	var table [kneePoints]float64
	for i := range table {
		table[i] = 0.5 - 0.5*math.Cos(math.Pi*float64(i)/(kneePoints-1))
	}

	return table
}()

// kneeBlend returns the curve value for a position in [0, 1].
func kneeBlend(position float64) float64 {
	if position <= 0 || math.IsNaN(position) {
		return 0
	}

	if position >= 1 {
		return 1
	}

	return kneeCurve[int(position*(kneePoints-1))]
}

// softKnee maps a normalized input level to an output level. Below the knee
// the level passes unchanged, above it the ratio applies in full and inside
// it the effective ratio blends from 1 to ratio.
func softKnee(input, threshold, ratio float64) float64 {
	lower := max(threshold-kneeWidth/2, 0)
	upper := threshold + kneeWidth/2

	switch {
	case input <= lower:
		return input
	case input >= upper:
		return upper + (input-upper)/ratio
	default:
		position := (input - lower) / kneeWidth
		effective := 1 + (ratio-1)*kneeBlend(position)

		return lower + (input-lower)/effective
	}
}

// hardKnee applies ratio to the part of input above threshold.
func hardKnee(input, threshold, ratio float64) float64 {
	if input <= threshold {
		return input
	}

	return threshold + (input-threshold)/ratio
}
