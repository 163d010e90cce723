package effects

import (
	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/delay"
	"github.com/cwbudde/algo-fx/dsp/interp"
)

const (
	defaultPitchShiftRatio      = 1.0
	defaultPitchShiftBufferSize = 1000
)

// PitchShiftOption mutates pitch shifter construction parameters.
type PitchShiftOption func(*pitchShiftConfig)

type pitchShiftConfig struct {
	ratio      float64
	bufferSize int
	mode       interp.Mode
}

// WithShiftRatio sets the playback speed ratio. Values above 1 raise pitch.
func WithShiftRatio(ratio float64) PitchShiftOption {
	return func(cfg *pitchShiftConfig) {
		cfg.ratio = ratio
	}
}

// WithBufferSize sets the ring buffer capacity in samples. Non-positive
// values are ignored.
func WithBufferSize(size int) PitchShiftOption {
	return func(cfg *pitchShiftConfig) {
		if size > 0 {
			cfg.bufferSize = size
		}
	}
}

// WithShiftInterpolation selects how fractional reads are resolved.
func WithShiftInterpolation(mode interp.Mode) PitchShiftOption {
	return func(cfg *pitchShiftConfig) {
		cfg.mode = mode
	}
}

// PitchShift writes each sample into a ring buffer and reads one sample back
// at a speed given by the shift ratio.
type PitchShift struct {
	Base

	ratio  float64
	buffer *delay.VariableRateLine
}

// NewPitchShift creates a shifter with ratio 1 and a 1000-sample buffer
// unless overridden.
func NewPitchShift(opts ...PitchShiftOption) *PitchShift {
	cfg := pitchShiftConfig{
		ratio:      defaultPitchShiftRatio,
		bufferSize: defaultPitchShiftBufferSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// bufferSize is always positive here.
	buffer, _ := delay.NewVariableRate(cfg.bufferSize, delay.WithInterpolation(cfg.mode))

	p := &PitchShift{
		Base:   NewBase(),
		ratio:  defaultPitchShiftRatio,
		buffer: buffer,
	}
	p.SetValue(cfg.ratio)

	return p
}

// Value returns the shift ratio.
func (p *PitchShift) Value() float64 { return p.ratio }

// BufferSize returns the ring buffer capacity.
func (p *PitchShift) BufferSize() int { return p.buffer.Len() }

// Interpolation returns how fractional read positions are resolved.
func (p *PitchShift) Interpolation() interp.Mode { return p.buffer.Interpolation() }

// SetValue sets the shift ratio and the buffer's read increment. NaN is
// ignored; the increment is clamped by the buffer.
func (p *PitchShift) SetValue(ratio float64) {
	if !isFinite(ratio) {
		return
	}

	p.ratio = ratio
	p.buffer.SetIncrement(ratio)
}

// Reset clears the ring buffer.
func (p *PitchShift) Reset() { p.buffer.Reset() }

// Process processes one sample.
func (p *PitchShift) Process(sample core.Sample) core.Sample {
	if !p.active {
		return sample
	}

	p.buffer.Write(sample)

	return p.buffer.Read()
}

// Clone returns a copy with its own ring buffer.
func (p *PitchShift) Clone() Effect {
	c := *p
	c.buffer = p.buffer.Clone()

	return &c
}
