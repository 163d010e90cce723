package effects

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
)

const (
	defaultTremoloDurationMs   = 2000.0
	defaultTremoloDepthPercent = 50.0
)

// TremoloOption mutates tremolo construction parameters.
type TremoloOption func(*tremoloConfig)

type tremoloConfig struct {
	durationMs   float64
	depthPercent float64
	sampleRate   float64
}

// WithTremoloDuration sets the length of one full modulation cycle in ms.
func WithTremoloDuration(ms float64) TremoloOption {
	return func(cfg *tremoloConfig) {
		cfg.durationMs = ms
	}
}

// WithTremoloDepth sets the modulation depth in percent.
func WithTremoloDepth(percent float64) TremoloOption {
	return func(cfg *tremoloConfig) {
		cfg.depthPercent = percent
	}
}

// WithTremoloSampleRate sets the sample rate in Hz.
func WithTremoloSampleRate(sampleRate float64) TremoloOption {
	return func(cfg *tremoloConfig) {
		cfg.sampleRate = sampleRate
	}
}

// Tremolo modulates amplitude with a triangle LFO. A counter ramps between
// 0 and half a cycle in samples and back, one step per sample.
type Tremolo struct {
	Base

	durationMs   float64
	depthPercent float64
	sampleRate   float64

	rateCountHalf int
	count         int
	step          int
}

// NewTremolo creates a tremolo with a 2000 ms cycle at 50 % depth and
// 44100 Hz unless overridden.
func NewTremolo(opts ...TremoloOption) *Tremolo {
	cfg := tremoloConfig{
		durationMs:   defaultTremoloDurationMs,
		depthPercent: defaultTremoloDepthPercent,
		sampleRate:   core.DefaultSampleRate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	t := &Tremolo{
		Base:       NewBase(),
		durationMs: defaultTremoloDurationMs,
		sampleRate: core.DefaultSampleRate,
		step:       1,
	}
	t.SetDepth(cfg.depthPercent)
	t.SetDuration(cfg.durationMs)
	t.SetSampleRate(cfg.sampleRate)

	return t
}

// Duration returns the modulation cycle length in ms.
func (t *Tremolo) Duration() float64 { return t.durationMs }

// Depth returns the modulation depth in percent.
func (t *Tremolo) Depth() float64 { return t.depthPercent }

// SampleRate returns the sample rate in Hz.
func (t *Tremolo) SampleRate() float64 { return t.sampleRate }

// RateCountHalf returns the counter's upper bound.
func (t *Tremolo) RateCountHalf() int { return t.rateCountHalf }

// Counter returns the LFO counter in [0, RateCountHalf()].
func (t *Tremolo) Counter() int { return t.count }

// SetDepth sets the modulation depth, clamped to [0, 100] percent.
func (t *Tremolo) SetDepth(percent float64) {
	t.depthPercent = core.Clamp(percent, 0, 100)
}

// SetDuration sets the cycle length in ms. Negative values and NaN are
// ignored. The LFO keeps its phase.
func (t *Tremolo) SetDuration(ms float64) {
	if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return
	}

	t.durationMs = ms
	t.updateRateCount()
}

// SetSampleRate sets the sample rate in Hz. Non-positive values and NaN are
// ignored. The LFO keeps its phase.
func (t *Tremolo) SetSampleRate(sampleRate float64) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return
	}

	t.sampleRate = sampleRate
	t.updateRateCount()
}

func (t *Tremolo) updateRateCount() {
	rateCount := int(t.sampleRate * t.durationMs / 1000)

	t.rateCountHalf = max(rateCount/2, 1)
	if t.count >= t.rateCountHalf {
		t.count = t.rateCountHalf
		t.step = -1
	}
}

// Reset rewinds the LFO to the start of its rising ramp.
func (t *Tremolo) Reset() {
	t.count = 0
	t.step = 1
}

// Process processes one sample.
func (t *Tremolo) Process(sample core.Sample) core.Sample {
	if !t.active {
		return sample
	}

	tremoloDepth := t.depthPercent / 100
	signalDepth := (100 - t.depthPercent) / 100
	factor := tremoloDepth / float64(t.rateCountHalf)

	x := float64(sample)
	out := core.Truncate(signalDepth*x + factor*float64(t.count)*x)

	t.count += t.step
	if t.count >= t.rateCountHalf {
		t.step = -1
	} else if t.count <= 0 {
		t.step = 1
	}

	return core.Clip(out)
}

// Clone returns a copy including the LFO phase.
func (t *Tremolo) Clone() Effect {
	c := *t
	return &c
}
