package analysis

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-fx/dsp/core"
	vecmath "github.com/cwbudde/algo-vecmath"
)

var (
	// ErrShortBlock is returned when a block is too short to analyze.
	ErrShortBlock = errors.New("analysis: block too short")
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("analysis: invalid sample rate")
	// ErrSilent is returned when a block carries no energy.
	ErrSilent = errors.New("analysis: silent block")
)

const minBlock = 4

// DominantFrequency returns the frequency in Hz of the strongest
// non-DC spectral peak of samples. The block is Hann windowed and zero
// padded to the next power of two.
func DominantFrequency(samples []core.Sample, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	if len(samples) < minBlock {
		return 0, fmt.Errorf("%w: %d samples", ErrShortBlock, len(samples))
	}

	power, fftSize, err := powerSpectrum(samples)
	if err != nil {
		return 0, err
	}

	peak := 1
	for k := 2; k < len(power); k++ {
		if power[k] > power[peak] {
			peak = k
		}
	}

	if power[peak] == 0 {
		return 0, ErrSilent
	}

	bin := float64(peak) + parabolicOffset(power, peak)

	return bin * sampleRate / float64(fftSize), nil
}

// powerSpectrum returns |X[k]|^2 for bins [0..Nyquist].
func powerSpectrum(samples []core.Sample) ([]float64, int, error) {
	buf := core.ToFloats(nil, samples)
	vecmath.MulBlockInPlace(buf, hann(len(buf)))

	fftSize := nextPowerOf2(len(buf))
	in := make([]complex128, fftSize)

	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("analysis: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)

	err = plan.Forward(out, in)
	if err != nil {
		return nil, 0, fmt.Errorf("analysis: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, fftSize, nil
}

// parabolicOffset fits a parabola through the peak bin and its neighbours
// and returns the vertex offset in bins, within [-0.5, 0.5].
func parabolicOffset(power []float64, k int) float64 {
	if k <= 0 || k >= len(power)-1 {
		return 0
	}

	a, b, c := power[k-1], power[k], power[k+1]

	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	return core.Clamp(0.5*(a-c)/den, -0.5, 0.5)
}

// hann returns symmetric Hann coefficients of length n.
func hann(n int) []float64 {
	coeffs := make([]float64, n)
	if n == 1 {
		coeffs[0] = 1
		return coeffs
	}

	den := float64(n - 1)
	for i := range coeffs {
		coeffs[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/den)
	}

	return coeffs
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
