package effects

import "github.com/cwbudde/algo-fx/dsp/core"

const (
	defaultDistortionClipThreshold core.Sample = 4990
	defaultDistortionMaxInput      core.Sample = 6500
)

// DistortionOption mutates distortion construction parameters.
type DistortionOption func(*distortionConfig)

type distortionConfig struct {
	clipThreshold int
	maxInput      int
}

// WithClipThreshold sets the level above which samples are replaced.
func WithClipThreshold(threshold int) DistortionOption {
	return func(cfg *distortionConfig) {
		cfg.clipThreshold = threshold
	}
}

// WithMaxInput sets the magnitude substituted for clipped samples.
func WithMaxInput(maxInput int) DistortionOption {
	return func(cfg *distortionConfig) {
		cfg.maxInput = maxInput
	}
}

// Distortion passes samples within ±clipThreshold unchanged and replaces
// anything louder by ±maxInput.
type Distortion struct {
	Base

	clipThreshold core.Sample
	maxInput      core.Sample
}

// NewDistortion creates a distortion with thresholds 4990/6500 unless
// overridden.
func NewDistortion(opts ...DistortionOption) *Distortion {
	cfg := distortionConfig{
		clipThreshold: int(defaultDistortionClipThreshold),
		maxInput:      int(defaultDistortionMaxInput),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d := &Distortion{Base: NewBase()}
	d.SetClipThreshold(cfg.clipThreshold)
	d.SetMaxInput(cfg.maxInput)

	return d
}

// ClipThreshold returns the passthrough limit.
func (d *Distortion) ClipThreshold() int { return int(d.clipThreshold) }

// MaxInput returns the clipped output magnitude.
func (d *Distortion) MaxInput() int { return int(d.maxInput) }

// SetClipThreshold sets the passthrough limit, clamped to [0, 32767].
func (d *Distortion) SetClipThreshold(threshold int) {
	d.clipThreshold = core.Sample(core.ClampInt(threshold, 0, int(core.MaxSample)))
}

// SetMaxInput sets the clipped output magnitude, clamped to [0, 32767].
func (d *Distortion) SetMaxInput(maxInput int) {
	d.maxInput = core.Sample(core.ClampInt(maxInput, 0, int(core.MaxSample)))
}

// Process processes one sample.
func (d *Distortion) Process(sample core.Sample) core.Sample {
	if !d.active {
		return sample
	}

	return core.ClipLimit(int32(sample), d.clipThreshold, d.maxInput)
}

// Clone returns a copy.
func (d *Distortion) Clone() Effect {
	c := *d
	return &c
}
