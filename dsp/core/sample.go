package core

import "math"

// Sample is one quantized signed 16-bit amplitude.
type Sample int16

const (
	// MinSample is the most negative representable sample.
	MinSample Sample = math.MinInt16
	// MaxSample is the most positive representable sample.
	MaxSample Sample = math.MaxInt16

	fullScale = 32768.0
)

// Clip saturates v to [-MaxSample, MaxSample].
//
// The range is symmetric, so an intermediate of -32768 comes back as -32767.
func Clip(v int32) Sample {
	return ClipLimit(v, MaxSample, MaxSample)
}

// ClipLimit clamps v to ±clipLimit. Values beyond the limit are replaced by
// ±resultLimit, which lets callers set a soft ceiling and a separate hard
// output cap.
func ClipLimit(v int32, clipLimit, resultLimit Sample) Sample {
	if v > int32(clipLimit) {
		return resultLimit
	}

	if v < -int32(clipLimit) {
		return -resultLimit
	}

	return Sample(v)
}

// Truncate converts v to int32 rounding toward zero. Values outside the
// int32 range saturate and NaN maps to 0.
func Truncate(v float64) int32 {
	if math.IsNaN(v) {
		return 0
	}

	if v >= math.MaxInt32 {
		return math.MaxInt32
	}

	if v <= math.MinInt32 {
		return math.MinInt32
	}

	return int32(v)
}

// Truncate64 is the int64 form of Truncate.
func Truncate64(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}

	if v >= math.MaxInt64 {
		return math.MaxInt64
	}

	if v <= math.MinInt64 {
		return math.MinInt64
	}

	return int64(v)
}

// ClipFloat truncates v and saturates it to the sample range.
func ClipFloat(v float64) Sample {
	return Clip(Truncate(v))
}

// Clip64 saturates a wide integer intermediate to the sample range.
func Clip64(v int64) Sample {
	if v > math.MaxInt32 {
		v = math.MaxInt32
	} else if v < math.MinInt32 {
		v = math.MinInt32
	}

	return Clip(int32(v))
}

// Map linearly re-maps x from [inMin, inMax] to [outMin, outMax] using
// truncating integer division.
func Map(x, inMin, inMax, outMin, outMax int64) int64 {
	if inMax == inMin {
		return outMin
	}

	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// ToFloat converts s to a float in [-1, 1).
func ToFloat(s Sample) float64 {
	return float64(s) / fullScale
}

// FromFloat converts a float in [-1, 1] to a saturated sample.
func FromFloat(v float64) Sample {
	return ClipFloat(v * fullScale)
}
