package effectchain

import (
	"github.com/cwbudde/algo-fx/dsp/effects"
	"github.com/cwbudde/algo-fx/dsp/effects/dynamics"
)

// Built-in effect type names.
const (
	TypeBoost         = "boost"
	TypeDistortion    = "distortion"
	TypeFuzz          = "fuzz"
	TypeTremolo       = "tremolo"
	TypeDelay         = "delay"
	TypeADSRGain      = "adsr-gain"
	TypePitchShift    = "pitch-shift"
	TypeCompressor    = "compressor"
	TypeLogCompressor = "compressor-log"

	externalNodeType = "external"
	bypassedKey      = "bypassed"
)

type registryConfig struct {
	link   *dynamics.StereoLink
	volume effects.VolumeControl
}

// RegistryOption configures the default registry.
type RegistryOption func(*registryConfig)

// WithStereoLink attaches link to every compressor the registry creates.
func WithStereoLink(link *dynamics.StereoLink) RegistryOption {
	return func(c *registryConfig) { c.link = link }
}

// WithSharedVolume makes every boost read its gain from volume. The
// "volume" node parameter then writes to the shared control.
func WithSharedVolume(volume effects.VolumeControl) RegistryOption {
	return func(c *registryConfig) { c.volume = volume }
}

// DefaultRegistry returns a Registry pre-populated with all built-in effect runtimes.
func DefaultRegistry(opts ...RegistryOption) *Registry {
	cfg := &registryConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	r := NewRegistry()

	r.MustRegister(TypeBoost, func(_ Context) (Runtime, error) {
		if cfg.volume != nil {
			return &boostRuntime{fx: effects.NewBoost(effects.WithVolumeControl(cfg.volume))}, nil
		}

		return &boostRuntime{fx: effects.NewBoost()}, nil
	})
	r.MustRegister(TypeDistortion, func(_ Context) (Runtime, error) {
		return &distortionRuntime{fx: effects.NewDistortion()}, nil
	})
	r.MustRegister(TypeFuzz, func(_ Context) (Runtime, error) {
		return &fuzzRuntime{fx: effects.NewFuzz()}, nil
	})
	r.MustRegister(TypeTremolo, func(ctx Context) (Runtime, error) {
		return &tremoloRuntime{fx: effects.NewTremolo(effects.WithTremoloSampleRate(ctx.sampleRate()))}, nil
	})
	r.MustRegister(TypeDelay, func(ctx Context) (Runtime, error) {
		return &delayRuntime{fx: effects.NewDelay(effects.WithDelaySampleRate(ctx.sampleRate()))}, nil
	})
	r.MustRegister(TypeADSRGain, func(_ Context) (Runtime, error) {
		return &adsrGainRuntime{fx: effects.NewADSRGain()}, nil
	})
	r.MustRegister(TypePitchShift, func(_ Context) (Runtime, error) {
		return &pitchShiftRuntime{fx: effects.NewPitchShift()}, nil
	})
	r.MustRegister(TypeCompressor, func(ctx Context) (Runtime, error) {
		fx := dynamics.NewSoftKneeCompressor(
			dynamics.WithSampleRate(ctx.sampleRate()),
			dynamics.WithStereoLink(cfg.link),
		)

		return &compressorRuntime{fx: fx}, nil
	})
	r.MustRegister(TypeLogCompressor, func(ctx Context) (Runtime, error) {
		fx := dynamics.NewLogCompressor(
			dynamics.WithSampleRate(ctx.sampleRate()),
			dynamics.WithStereoLink(cfg.link),
		)

		return &logCompressorRuntime{fx: fx}, nil
	})

	return r
}
