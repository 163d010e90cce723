package effects

import "github.com/cwbudde/algo-fx/dsp/core"

const defaultBoostVolume = 1.0

// BoostOption mutates boost construction parameters.
type BoostOption func(*boostConfig)

type boostConfig struct {
	volume  float64
	control VolumeControl
}

// WithBoostVolume sets the initial gain of an owned volume.
func WithBoostVolume(volume float64) BoostOption {
	return func(cfg *boostConfig) {
		cfg.volume = volume
	}
}

// WithVolumeControl makes the boost read its gain from a shared control.
// Clones keep reading the same control.
func WithVolumeControl(control VolumeControl) BoostOption {
	return func(cfg *boostConfig) {
		cfg.control = control
	}
}

// Boost multiplies samples by a volume and saturates the result.
type Boost struct {
	Base

	volume VolumeControl
	owned  bool
}

// NewBoost creates a boost at unity gain unless overridden.
func NewBoost(opts ...BoostOption) *Boost {
	cfg := boostConfig{volume: defaultBoostVolume}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	b := &Boost{Base: NewBase()}
	if cfg.control != nil {
		b.volume = cfg.control
	} else {
		b.volume = NewVolume(cfg.volume)
		b.owned = true
	}

	return b
}

// Volume returns the current gain.
func (b *Boost) Volume() float64 { return b.volume.Volume() }

// SetVolume updates the gain. With a shared control this is visible to every
// reader of that control.
func (b *Boost) SetVolume(volume float64) { b.volume.SetVolume(volume) }

// VolumeControl returns the gain source.
func (b *Boost) VolumeControl() VolumeControl { return b.volume }

// Process processes one sample.
func (b *Boost) Process(sample core.Sample) core.Sample {
	if !b.active {
		return sample
	}

	return core.Clip(core.Truncate(b.volume.Volume() * float64(sample)))
}

// Clone returns a copy. An owned volume is copied, a shared one is kept.
func (b *Boost) Clone() Effect {
	c := *b
	if b.owned {
		c.volume = NewVolume(b.volume.Volume())
	}

	return &c
}
