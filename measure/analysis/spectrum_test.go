package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effects"
	"github.com/cwbudde/algo-fx/internal/testutil"
)

func TestDominantFrequency(t *testing.T) {
	tests := []struct {
		name       string
		freq       float64
		sampleRate float64
		length     int
	}{
		{name: "1kHz", freq: 1000, sampleRate: 44100, length: 8192},
		{name: "440Hz", freq: 440, sampleRate: 48000, length: 16384},
		{name: "non power of two", freq: 3000, sampleRate: 44100, length: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testutil.Sine(tt.freq, tt.sampleRate, 20000, tt.length)

			got, err := DominantFrequency(in, tt.sampleRate)
			if err != nil {
				t.Fatalf("DominantFrequency: %v", err)
			}

			binHz := tt.sampleRate / float64(nextPowerOf2(tt.length))
			if math.Abs(got-tt.freq) > binHz/2 {
				t.Fatalf("DominantFrequency = %.2f Hz, want %.2f ± %.2f", got, tt.freq, binHz/2)
			}
		})
	}
}

func TestDominantFrequencyErrors(t *testing.T) {
	if _, err := DominantFrequency(testutil.Sine(100, 1000, 100, 64), 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("zero rate: err = %v, want ErrInvalidSampleRate", err)
	}

	if _, err := DominantFrequency(testutil.Sine(100, 1000, 100, 64), math.NaN()); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("NaN rate: err = %v, want ErrInvalidSampleRate", err)
	}

	if _, err := DominantFrequency([]core.Sample{1, 2}, 1000); !errors.Is(err, ErrShortBlock) {
		t.Fatalf("short block: err = %v, want ErrShortBlock", err)
	}

	if _, err := DominantFrequency(make([]core.Sample, 256), 1000); !errors.Is(err, ErrSilent) {
		t.Fatalf("silence: err = %v, want ErrSilent", err)
	}
}

func TestPitchShiftDoublesFrequency(t *testing.T) {
	const (
		sampleRate = 44100.0
		freq       = 1000.0
		// Holds a whole number of input periods, so the read cursor
		// overtaking the writer does not break the phase.
		bufferSize = 4410
		analyzed   = 8192
	)

	p := effects.NewPitchShift(effects.WithShiftRatio(2), effects.WithBufferSize(bufferSize))

	in := testutil.Sine(freq, sampleRate, 16000, 2*bufferSize+analyzed)
	out := append([]core.Sample(nil), in...)
	effects.ProcessInPlace(p, out)

	tail := out[2*bufferSize:]

	inHz, err := DominantFrequency(in[2*bufferSize:], sampleRate)
	if err != nil {
		t.Fatalf("input: %v", err)
	}

	outHz, err := DominantFrequency(tail, sampleRate)
	if err != nil {
		t.Fatalf("output: %v", err)
	}

	ratio := outHz / inHz
	if math.Abs(ratio-2) > 0.01 {
		t.Fatalf("frequency ratio = %.4f (%.1f Hz -> %.1f Hz), want 2", ratio, inHz, outHz)
	}
}

func TestHannEndpoints(t *testing.T) {
	w := hann(9)
	if w[0] != 0 || w[8] > 1e-15 {
		t.Fatalf("hann endpoints = %v, %v, want 0", w[0], w[8])
	}

	if w[4] != 1 {
		t.Fatalf("hann centre = %v, want 1", w[4])
	}
}
