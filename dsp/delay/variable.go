package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/interp"
)

const minReadIncrement = 1e-3

// VariableRateOption configures a VariableRateLine.
type VariableRateOption func(*VariableRateLine)

// WithIncrement sets the initial read increment.
func WithIncrement(increment float64) VariableRateOption {
	return func(v *VariableRateLine) {
		v.SetIncrement(increment)
	}
}

// WithInterpolation selects how fractional read positions are resolved.
func WithInterpolation(mode interp.Mode) VariableRateOption {
	return func(v *VariableRateLine) {
		v.mode = mode
	}
}

// VariableRateLine is a ring buffer written one sample per call at an
// integer cursor and read back at a fractional cursor that advances by a
// configurable increment. An increment of 2 reads the stored signal twice as
// fast as it is written, raising its pitch by an octave.
type VariableRateLine struct {
	buffer    []core.Sample
	writePos  int
	readPos   float64
	increment float64
	mode      interp.Mode
}

// NewVariableRate returns a zero-filled line with size slots and increment 1.
func NewVariableRate(size int, opts ...VariableRateOption) (*VariableRateLine, error) {
	if size <= 0 {
		return nil, fmt.Errorf("variable rate line size must be > 0: %d", size)
	}

	v := &VariableRateLine{
		buffer:    make([]core.Sample, size),
		increment: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}

	return v, nil
}

// Len returns the capacity in samples.
func (v *VariableRateLine) Len() int { return len(v.buffer) }

// Increment returns the read increment.
func (v *VariableRateLine) Increment() float64 { return v.increment }

// Interpolation returns the interpolation mode.
func (v *VariableRateLine) Interpolation() interp.Mode { return v.mode }

// ReadPosition returns the fractional read cursor in [0, Len()).
func (v *VariableRateLine) ReadPosition() float64 { return v.readPos }

// SetIncrement sets how far the read cursor advances per Read. The value is
// clamped to [0.001, Len()); NaN leaves the increment unchanged.
func (v *VariableRateLine) SetIncrement(increment float64) {
	if math.IsNaN(increment) {
		return
	}

	hi := math.Nextafter(float64(len(v.buffer)), 0)
	v.increment = core.Clamp(increment, minReadIncrement, hi)
}

// Write stores one sample and advances the write cursor.
func (v *VariableRateLine) Write(sample core.Sample) {
	v.buffer[v.writePos] = sample

	v.writePos++
	if v.writePos >= len(v.buffer) {
		v.writePos = 0
	}
}

// Read returns the sample at the read cursor and advances it by the increment.
func (v *VariableRateLine) Read() core.Sample {
	out := v.Peek()

	v.readPos += v.increment
	if v.readPos >= float64(len(v.buffer)) {
		v.readPos = math.Mod(v.readPos, float64(len(v.buffer)))
	}

	return out
}

// Peek returns the sample at the read cursor without advancing.
func (v *VariableRateLine) Peek() core.Sample {
	size := len(v.buffer)
	i0 := int(v.readPos)
	frac := v.readPos - float64(i0)

	if frac == 0 {
		return core.Clip(int32(v.buffer[i0]))
	}

	x0 := float64(v.buffer[i0])
	x1 := float64(v.buffer[(i0+1)%size])

	if v.mode == interp.ModeHermite {
		xm1 := float64(v.buffer[(i0-1+size)%size])
		x2 := float64(v.buffer[(i0+2)%size])

		return core.ClipFloat(interp.Hermite4(frac, xm1, x0, x1, x2))
	}

	return core.ClipFloat(interp.Linear(frac, x0, x1))
}

// Reset zero-fills the buffer and rewinds both cursors.
func (v *VariableRateLine) Reset() {
	core.Zero(v.buffer)
	v.writePos = 0
	v.readPos = 0
}

// Clone returns an independent copy including cursors and contents.
func (v *VariableRateLine) Clone() *VariableRateLine {
	c := *v
	c.buffer = make([]core.Sample, len(v.buffer))
	copy(c.buffer, v.buffer)

	return &c
}
