package effects

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/delay"
	"github.com/sirupsen/logrus"
)

const (
	defaultDelayDurationMs = 1000.0
	defaultDelayDepth      = 0.5
	defaultDelayFeedback   = 1.0
)

var log = logrus.WithField("component", "effects")

// DelayOption mutates delay construction parameters.
type DelayOption func(*delayConfig)

type delayConfig struct {
	durationMs float64
	depth      float64
	feedback   float64
	sampleRate float64
}

// WithDelayDuration sets the echo time in ms.
func WithDelayDuration(ms float64) DelayOption {
	return func(cfg *delayConfig) {
		cfg.durationMs = ms
	}
}

// WithDelayDepth sets the wet mix in [0, 1].
func WithDelayDepth(depth float64) DelayOption {
	return func(cfg *delayConfig) {
		cfg.depth = depth
	}
}

// WithDelayFeedback sets how much of each echo is fed back, in [0, 1].
func WithDelayFeedback(feedback float64) DelayOption {
	return func(cfg *delayConfig) {
		cfg.feedback = feedback
	}
}

// WithDelaySampleRate sets the sample rate in Hz.
func WithDelaySampleRate(sampleRate float64) DelayOption {
	return func(cfg *delayConfig) {
		cfg.sampleRate = sampleRate
	}
}

// Delay is a single-tap feedback echo. Each sample reads the oldest slot of
// a circular buffer, mixes it with the input and writes the fed-back sum to
// the same slot.
type Delay struct {
	Base

	durationMs float64
	depth      float64
	feedback   float64
	sampleRate float64

	line *delay.Line
}

// NewDelay creates a 1000 ms echo at depth 0.5, feedback 1.0 and 44100 Hz
// unless overridden.
func NewDelay(opts ...DelayOption) *Delay {
	cfg := delayConfig{
		durationMs: defaultDelayDurationMs,
		depth:      defaultDelayDepth,
		feedback:   defaultDelayFeedback,
		sampleRate: core.DefaultSampleRate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d := &Delay{
		Base:       NewBase(),
		durationMs: defaultDelayDurationMs,
		sampleRate: core.DefaultSampleRate,
		line:       &delay.Line{},
	}
	d.SetDepth(cfg.depth)
	d.SetFeedback(cfg.feedback)

	if cfg.durationMs >= 0 && isFinite(cfg.durationMs) {
		d.durationMs = cfg.durationMs
	}

	if cfg.sampleRate > 0 && isFinite(cfg.sampleRate) {
		d.sampleRate = cfg.sampleRate
	}

	d.updateBuffer()

	return d
}

// Duration returns the echo time in ms.
func (d *Delay) Duration() float64 { return d.durationMs }

// Depth returns the wet mix.
func (d *Delay) Depth() float64 { return d.depth }

// Feedback returns the feedback amount.
func (d *Delay) Feedback() float64 { return d.feedback }

// SampleRate returns the sample rate in Hz.
func (d *Delay) SampleRate() float64 { return d.sampleRate }

// Len returns the buffer length in samples.
func (d *Delay) Len() int { return d.line.Len() }

// Cursor returns the buffer position the next sample reads and writes.
func (d *Delay) Cursor() int { return d.line.Cursor() }

// SetDepth sets the wet mix, clamped to [0, 1].
func (d *Delay) SetDepth(depth float64) { d.depth = core.ClampUnit(depth) }

// SetFeedback sets the feedback amount, clamped to [0, 1].
func (d *Delay) SetFeedback(feedback float64) { d.feedback = core.ClampUnit(feedback) }

// SetDuration sets the echo time in ms. Negative values and NaN are ignored.
// The buffer is reallocated only when its length changes.
func (d *Delay) SetDuration(ms float64) {
	if ms < 0 || !isFinite(ms) {
		return
	}

	d.durationMs = ms
	d.updateBuffer()
}

// SetSampleRate sets the sample rate in Hz. Non-positive values and NaN are
// ignored. The buffer is reallocated only when its length changes.
func (d *Delay) SetSampleRate(sampleRate float64) {
	if sampleRate <= 0 || !isFinite(sampleRate) {
		return
	}

	d.sampleRate = sampleRate
	d.updateBuffer()
}

func (d *Delay) updateBuffer() {
	size := int(d.sampleRate * d.durationMs / 1000)
	if d.line.Resize(size) {
		log.WithFields(logrus.Fields{
			"effect":  "delay",
			"samples": size,
		}).Debug("delay buffer resized")
	}
}

// Reset zero-fills the buffer and rewinds the cursor.
func (d *Delay) Reset() {
	d.line.Reset()
}

// Process processes one sample.
func (d *Delay) Process(sample core.Sample) core.Sample {
	if !d.active {
		return sample
	}

	delayed := d.line.Read(d.line.Len())
	out := core.ClipFloat((1-d.depth)*float64(sample) + d.depth*float64(delayed))
	d.line.Write(core.ClipFloat(d.feedback * float64(int32(delayed)+int32(sample))))

	return out
}

// Clone returns a copy with its own buffer.
func (d *Delay) Clone() Effect {
	c := *d
	c.line = d.line.Clone()

	return &c
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
