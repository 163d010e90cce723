package effects

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
)

const (
	defaultFuzzEffectValue = 6.5
	defaultFuzzMaxOut      = 300
)

// FuzzOption mutates fuzz construction parameters.
type FuzzOption func(*fuzzConfig)

type fuzzConfig struct {
	effectValue float64
	maxOut      int
}

// WithFuzzEffectValue sets the gain applied twice before remapping.
func WithFuzzEffectValue(value float64) FuzzOption {
	return func(cfg *fuzzConfig) {
		cfg.effectValue = value
	}
}

// WithFuzzMaxOut sets the output ceiling.
func WithFuzzMaxOut(maxOut int) FuzzOption {
	return func(cfg *fuzzConfig) {
		cfg.maxOut = maxOut
	}
}

// Fuzz amplifies a sample, saturates it, amplifies it again and squeezes the
// result from the full sample range into ±maxOut.
type Fuzz struct {
	Base

	effectValue float64
	maxOut      int64
}

// NewFuzz creates a fuzz with gain 6.5 and ceiling 300 unless overridden.
func NewFuzz(opts ...FuzzOption) *Fuzz {
	cfg := fuzzConfig{
		effectValue: defaultFuzzEffectValue,
		maxOut:      defaultFuzzMaxOut,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f := &Fuzz{Base: NewBase(), effectValue: defaultFuzzEffectValue}
	f.SetEffectValue(cfg.effectValue)
	f.SetMaxOut(cfg.maxOut)

	return f
}

// EffectValue returns the gain.
func (f *Fuzz) EffectValue() float64 { return f.effectValue }

// MaxOut returns the output ceiling.
func (f *Fuzz) MaxOut() int { return int(f.maxOut) }

// SetEffectValue sets the gain. NaN and infinities are ignored.
func (f *Fuzz) SetEffectValue(value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}

	f.effectValue = value
}

// SetMaxOut sets the output ceiling, clamped to [0, 32767].
func (f *Fuzz) SetMaxOut(maxOut int) {
	f.maxOut = int64(core.ClampInt(maxOut, 0, int(core.MaxSample)))
}

// Process processes one sample.
func (f *Fuzz) Process(sample core.Sample) core.Sample {
	if !f.active {
		return sample
	}

	y := core.Clip(core.Truncate(f.effectValue * float64(sample)))
	v := core.Truncate64(float64(y) * f.effectValue)

	return core.Clip64(core.Map(v, int64(core.MinSample), int64(core.MaxSample), -f.maxOut, f.maxOut))
}

// Clone returns a copy.
func (f *Fuzz) Clone() Effect {
	c := *f
	return &c
}
