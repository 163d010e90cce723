package dynamics

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
)

const (
	defaultAttackMs  = 5.0
	defaultReleaseMs = 200.0
	fullScale        = 32767.0
)

// timeCoefficient converts a time constant to the per-sample smoothing step
// 1/(sampleRate*ms/1000), clamped to [0, 1].
func timeCoefficient(sampleRate, ms float64) float64 {
	samples := sampleRate * ms / 1000
	if samples <= 0 {
		if samples == 0 {
			return 1
		}

		return 0
	}

	return core.ClampUnit(1 / samples)
}

// gainSmoother eases a current gain toward a target with separate attack and
// release steps. It is shared by every compressor in this package.
type gainSmoother struct {
	sampleRate   float64
	attackMs     float64
	releaseMs    float64
	attackCoeff  float64
	releaseCoeff float64

	current float64
	target  float64

	link *StereoLink
}

func newGainSmoother(sampleRate, attackMs, releaseMs float64, link *StereoLink) gainSmoother {
	s := gainSmoother{
		sampleRate: sampleRate,
		attackMs:   attackMs,
		releaseMs:  releaseMs,
		current:    1,
		target:     1,
		link:       link,
	}
	s.recalculate()

	return s
}

func (s *gainSmoother) recalculate() {
	s.attackCoeff = timeCoefficient(s.sampleRate, s.attackMs)
	s.releaseCoeff = timeCoefficient(s.sampleRate, s.releaseMs)
}

func (s *gainSmoother) setSampleRate(sampleRate float64) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return
	}

	s.sampleRate = sampleRate
	s.recalculate()
}

func (s *gainSmoother) setAttack(ms float64) {
	if math.IsNaN(ms) {
		return
	}

	s.attackMs = ms
	s.recalculate()
}

func (s *gainSmoother) setRelease(ms float64) {
	if math.IsNaN(ms) {
		return
	}

	s.releaseMs = ms
	s.recalculate()
}

func (s *gainSmoother) reset() {
	s.current = 1
	s.target = 1
}

// apply moves the current gain one step toward target, scales the sample and
// the linked pair by it and returns the scaled sample.
func (s *gainSmoother) apply(sample core.Sample, target float64) core.Sample {
	s.target = core.ClampUnit(target)

	if s.target < s.current {
		s.current += (s.target - s.current) * s.attackCoeff
		if s.link != nil && s.current < engageGain {
			s.link.engaged.Store(true)
		}
	} else {
		s.current += (s.target - s.current) * s.releaseCoeff
		if s.link != nil && s.current > disengageGain {
			s.link.engaged.Store(false)
		}
	}

	s.current = core.ClampUnit(s.current)

	if s.link != nil {
		s.link.apply(s.current)
	}

	return core.ClipFloat(s.current * float64(sample))
}

// gainFor returns output/input for a normalized detector level, or 1 for
// silence.
func gainFor(input, output float64) float64 {
	if input <= 0 {
		return 1
	}

	return core.ClampUnit(output / input)
}

// normalize maps a sample to its magnitude in [0, ~1].
func normalize(sample core.Sample) float64 {
	return math.Abs(float64(sample) / fullScale)
}

// gainReductionDB reports a linear gain as a non-negative reduction in dB.
func gainReductionDB(gain float64) float64 {
	if gain >= 1 {
		return 0
	}

	if gain <= 0 {
		return math.Inf(1)
	}

	return -20 * mathLog10(gain)
}
