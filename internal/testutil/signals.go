package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fx/dsp/core"
)

// Sine generates a deterministic sine wave with peak amplitude in sample
// units, starting at phase 0.
func Sine(freqHz, sampleRate float64, amplitude core.Sample, length int) []core.Sample {
	out := make([]core.Sample, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = core.ClipFloat(math.Round(float64(amplitude) * math.Sin(step*float64(i))))
	}
	return out
}

// Noise generates white noise in [-amplitude, amplitude] with a fixed seed.
func Noise(seed int64, amplitude core.Sample, length int) []core.Sample {
	out := make([]core.Sample, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = core.ClipFloat((rng.Float64()*2 - 1) * float64(amplitude))
	}
	return out
}

// Impulse generates a single value at pos and zeros elsewhere.
func Impulse(length, pos int, value core.Sample) []core.Sample {
	out := make([]core.Sample, length)
	if pos >= 0 && pos < length {
		out[pos] = value
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value core.Sample, length int) []core.Sample {
	out := make([]core.Sample, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Interleave merges equally long channels into frames.
func Interleave(channels ...[]core.Sample) []core.Sample {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels[0])
	out := make([]core.Sample, 0, n*len(channels))
	for i := 0; i < n; i++ {
		for _, ch := range channels {
			out = append(out, ch[i])
		}
	}
	return out
}
