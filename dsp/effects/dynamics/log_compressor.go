package dynamics

import (
	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effects"
)

const (
	minLogThresholdPercent = 1.0
	maxLogThresholdPercent = 99.0
	minLogRatio            = 1.0
	maxLogRatio            = 100.0
)

// LogCompressor is a hard-knee compressor. Its threshold percentage is
// mapped through -0.5*log10(1-p/100), which spreads the lower settings over
// quiet levels and pushes the upper settings toward full scale.
type LogCompressor struct {
	effects.Base
	gainSmoother

	thresholdPercent float64
	threshold        float64
	ratio            float64
}

// NewLogCompressor creates a compressor with attack 5 ms, release 200 ms,
// threshold 50 % and ratio 2:1 at 44100 Hz unless overridden.
func NewLogCompressor(opts ...Option) *LogCompressor {
	cfg := applyOptions(config{
		sampleRate:       core.DefaultSampleRate,
		attackMs:         defaultAttackMs,
		releaseMs:        defaultReleaseMs,
		thresholdPercent: defaultThresholdPercent,
		ratio:            1 / defaultCompressionRatio,
	}, opts)

	c := &LogCompressor{
		Base:         effects.NewBase(),
		gainSmoother: newGainSmoother(cfg.sampleRate, cfg.attackMs, cfg.releaseMs, cfg.link),
	}
	c.SetThresholdPercent(cfg.thresholdPercent)
	c.SetRatio(cfg.ratio)

	return c
}

// SetSampleRate sets the sample rate in Hz and recomputes the coefficients.
func (c *LogCompressor) SetSampleRate(sampleRate float64) { c.setSampleRate(sampleRate) }

// SetAttack sets the attack time in ms.
func (c *LogCompressor) SetAttack(ms float64) { c.setAttack(ms) }

// SetRelease sets the release time in ms.
func (c *LogCompressor) SetRelease(ms float64) { c.setRelease(ms) }

// SetThresholdPercent sets the threshold, clamped to [1, 99] percent.
func (c *LogCompressor) SetThresholdPercent(percent float64) {
	c.thresholdPercent = core.Clamp(percent, minLogThresholdPercent, maxLogThresholdPercent)
	c.threshold = core.ClampUnit(-0.5 * mathLog10(1-c.thresholdPercent/100))
}

// SetRatio sets the ratio, clamped to [1, 100].
func (c *LogCompressor) SetRatio(ratio float64) {
	c.ratio = core.Clamp(ratio, minLogRatio, maxLogRatio)
}

// SetCompressionRatio sets the inverse ratio; the resulting ratio is clamped
// to [1, 100].
func (c *LogCompressor) SetCompressionRatio(compressionRatio float64) {
	if compressionRatio <= 0 {
		c.ratio = maxLogRatio
		return
	}

	c.SetRatio(1 / compressionRatio)
}

// SetStereoLink attaches a link, or detaches it when link is nil.
func (c *LogCompressor) SetStereoLink(link *StereoLink) { c.link = link }

// StereoLink returns the attached link, if any.
func (c *LogCompressor) StereoLink() *StereoLink { return c.link }

// SampleRate returns the rate the time constants were derived for.
func (c *LogCompressor) SampleRate() float64 { return c.sampleRate }

// Attack returns the attack time in milliseconds.
func (c *LogCompressor) Attack() float64 { return c.attackMs }

// Release returns the release time in milliseconds.
func (c *LogCompressor) Release() float64 { return c.releaseMs }

// ThresholdPercent returns the threshold as a percentage of full scale.
func (c *LogCompressor) ThresholdPercent() float64 { return c.thresholdPercent }

// Threshold returns the threshold mapped onto the logarithmic level scale.
func (c *LogCompressor) Threshold() float64 { return c.threshold }

// Ratio returns the slope applied above the threshold.
func (c *LogCompressor) Ratio() float64 { return c.ratio }

// CurrentGain returns the smoothed gain applied to the last sample.
func (c *LogCompressor) CurrentGain() float64 { return c.current }

// TargetGain returns the static gain computed for the last sample.
func (c *LogCompressor) TargetGain() float64 { return c.target }

// GainReductionDB returns the current gain reduction as a positive dB value.
func (c *LogCompressor) GainReductionDB() float64 { return gainReductionDB(c.current) }

// Reset restores unity gain.
func (c *LogCompressor) Reset() { c.reset() }

// Process processes one sample.
func (c *LogCompressor) Process(sample core.Sample) core.Sample {
	if !c.Active() {
		return sample
	}

	in := normalize(sample)

	return c.apply(sample, gainFor(in, hardKnee(in, c.threshold, c.ratio)))
}

// Clone returns a copy with the same gain state. The stereo link is shared.
func (c *LogCompressor) Clone() effects.Effect {
	cp := *c
	return &cp
}
