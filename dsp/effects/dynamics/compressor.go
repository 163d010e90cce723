package dynamics

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effects"
)

const (
	defaultThresholdPercent = 50.0
	defaultCompressionRatio = 0.5

	minCompressionRatio = 0.1
	maxCompressionRatio = 1.0
)

// Option mutates compressor construction parameters. Options apply to both
// compressor variants; each clamps values to its own ranges.
type Option func(*config)

type config struct {
	sampleRate       float64
	attackMs         float64
	releaseMs        float64
	thresholdPercent float64
	ratio            float64
	link             *StereoLink
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) {
		cfg.sampleRate = sampleRate
	}
}

// WithAttack sets the attack time in ms.
func WithAttack(ms float64) Option {
	return func(cfg *config) {
		cfg.attackMs = ms
	}
}

// WithRelease sets the release time in ms.
func WithRelease(ms float64) Option {
	return func(cfg *config) {
		cfg.releaseMs = ms
	}
}

// WithThresholdPercent sets the threshold as a percentage of full scale.
func WithThresholdPercent(percent float64) Option {
	return func(cfg *config) {
		cfg.thresholdPercent = percent
	}
}

// WithRatio sets the compression ratio, e.g. 4 for 4:1.
func WithRatio(ratio float64) Option {
	return func(cfg *config) {
		cfg.ratio = ratio
	}
}

// WithCompressionRatio sets the ratio as its inverse, e.g. 0.25 for 4:1.
func WithCompressionRatio(compressionRatio float64) Option {
	return func(cfg *config) {
		if compressionRatio != 0 {
			cfg.ratio = 1 / compressionRatio
		}
	}
}

// WithStereoLink attaches a shared stereo link.
func WithStereoLink(link *StereoLink) Option {
	return func(cfg *config) {
		cfg.link = link
	}
}

func applyOptions(cfg config, opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.sampleRate <= 0 || math.IsNaN(cfg.sampleRate) || math.IsInf(cfg.sampleRate, 0) {
		cfg.sampleRate = core.DefaultSampleRate
	}

	return cfg
}

// SoftKneeCompressor reduces the gain of samples above a threshold. Its
// ratio fades in over a knee 0.2 wide centred on the threshold, following a
// cosine S-curve.
//
// Levels are linear fractions of full scale. The detector runs on the
// instantaneous sample magnitude, so the attack and release times shape
// how quickly the gain follows the waveform.
type SoftKneeCompressor struct {
	effects.Base
	gainSmoother

	thresholdPercent float64
	threshold        float64
	ratio            float64
}

// NewSoftKneeCompressor creates a compressor with attack 5 ms, release
// 200 ms, threshold 50 % and ratio 2:1 at 44100 Hz unless overridden.
func NewSoftKneeCompressor(opts ...Option) *SoftKneeCompressor {
	cfg := applyOptions(config{
		sampleRate:       core.DefaultSampleRate,
		attackMs:         defaultAttackMs,
		releaseMs:        defaultReleaseMs,
		thresholdPercent: defaultThresholdPercent,
		ratio:            1 / defaultCompressionRatio,
	}, opts)

	c := &SoftKneeCompressor{
		Base:         effects.NewBase(),
		gainSmoother: newGainSmoother(cfg.sampleRate, cfg.attackMs, cfg.releaseMs, cfg.link),
	}
	c.SetThresholdPercent(cfg.thresholdPercent)
	c.SetRatio(cfg.ratio)

	return c
}

// SetSampleRate sets the sample rate in Hz and recomputes the coefficients.
// Non-positive values are ignored.
func (c *SoftKneeCompressor) SetSampleRate(sampleRate float64) { c.setSampleRate(sampleRate) }

// SetAttack sets the attack time in ms.
func (c *SoftKneeCompressor) SetAttack(ms float64) { c.setAttack(ms) }

// SetRelease sets the release time in ms.
func (c *SoftKneeCompressor) SetRelease(ms float64) { c.setRelease(ms) }

// SetThresholdPercent sets the knee centre, clamped to [0, 100] percent of
// full scale.
func (c *SoftKneeCompressor) SetThresholdPercent(percent float64) {
	c.thresholdPercent = core.Clamp(percent, 0, 100)
	c.threshold = c.thresholdPercent / 100
}

// SetCompressionRatio sets the inverse ratio, clamped to [0.1, 1].
func (c *SoftKneeCompressor) SetCompressionRatio(compressionRatio float64) {
	c.ratio = 1 / core.Clamp(compressionRatio, minCompressionRatio, maxCompressionRatio)
}

// SetRatio sets the ratio, clamped to [1, 10].
func (c *SoftKneeCompressor) SetRatio(ratio float64) {
	c.ratio = core.Clamp(ratio, 1/maxCompressionRatio, 1/minCompressionRatio)
}

// SetStereoLink attaches a link, or detaches it when link is nil.
func (c *SoftKneeCompressor) SetStereoLink(link *StereoLink) { c.link = link }

// StereoLink returns the attached link, if any.
func (c *SoftKneeCompressor) StereoLink() *StereoLink { return c.link }

// SampleRate returns the rate the time constants were derived for.
func (c *SoftKneeCompressor) SampleRate() float64 { return c.sampleRate }

// Attack returns the attack time in milliseconds.
func (c *SoftKneeCompressor) Attack() float64 { return c.attackMs }

// Release returns the release time in milliseconds.
func (c *SoftKneeCompressor) Release() float64 { return c.releaseMs }

// AttackCoeff returns the per-sample smoothing coefficient used while the gain falls.
func (c *SoftKneeCompressor) AttackCoeff() float64 { return c.attackCoeff }

// ReleaseCoeff returns the per-sample smoothing coefficient used while the gain recovers.
func (c *SoftKneeCompressor) ReleaseCoeff() float64 { return c.releaseCoeff }

// ThresholdPercent returns the threshold as a percentage of full scale.
func (c *SoftKneeCompressor) ThresholdPercent() float64 { return c.thresholdPercent }

// Threshold returns the normalized threshold in [0, 1].
func (c *SoftKneeCompressor) Threshold() float64 { return c.threshold }

// Ratio returns the slope above the threshold, the inverse of CompressionRatio.
func (c *SoftKneeCompressor) Ratio() float64 { return c.ratio }

// CompressionRatio returns the ratio in N:1 form.
func (c *SoftKneeCompressor) CompressionRatio() float64 { return 1 / c.ratio }

// KneeBounds returns the normalized levels where the knee starts and ends.
func (c *SoftKneeCompressor) KneeBounds() (lower, upper float64) {
	return max(c.threshold-kneeWidth/2, 0), c.threshold + kneeWidth/2
}

// CurrentGain returns the smoothed gain applied to the last sample.
func (c *SoftKneeCompressor) CurrentGain() float64 { return c.current }

// TargetGain returns the static gain computed for the last sample.
func (c *SoftKneeCompressor) TargetGain() float64 { return c.target }

// GainReductionDB returns the current gain reduction as a positive dB value.
func (c *SoftKneeCompressor) GainReductionDB() float64 { return gainReductionDB(c.current) }

// Reset restores unity gain. An attached link is left untouched.
func (c *SoftKneeCompressor) Reset() { c.reset() }

// Process processes one sample.
func (c *SoftKneeCompressor) Process(sample core.Sample) core.Sample {
	if !c.Active() {
		return sample
	}

	in := normalize(sample)

	return c.apply(sample, gainFor(in, softKnee(in, c.threshold, c.ratio)))
}

// Clone returns a copy with the same gain state. The stereo link is shared.
func (c *SoftKneeCompressor) Clone() effects.Effect {
	cp := *c
	return &cp
}
