package main

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
)

// swellTone is a sine that alternates between a loud and a quiet level
// every swellFrames frames, enough to push a compressor in and out of
// gain reduction.
type swellTone struct {
	phase       float64
	step        float64
	loud        float64
	quiet       float64
	swellFrames int
	frame       int
}

func newSwellTone(freqHz, sampleRate float64, loud, quiet core.Sample, swellFrames int) *swellTone {
	return &swellTone{
		step:        2 * math.Pi * freqHz / sampleRate,
		loud:        float64(loud),
		quiet:       float64(quiet),
		swellFrames: max(swellFrames, 1),
	}
}

func (s *swellTone) next() core.Sample {
	amp := s.loud
	if (s.frame/s.swellFrames)%2 == 1 {
		amp = s.quiet
	}

	out := core.ClipFloat(math.Round(amp * math.Sin(s.phase)))

	s.frame++
	s.phase += s.step

	if s.phase >= 2*math.Pi {
		s.phase -= 2 * math.Pi
	}

	return out
}
