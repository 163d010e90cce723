package effects

import (
	"math"
	"sync/atomic"
)

// VolumeControl is a gain source read on every processed sample.
type VolumeControl interface {
	Volume() float64
	SetVolume(volume float64)
}

// Volume is a VolumeControl that may be written from a control goroutine
// while an audio goroutine reads it.
type Volume struct {
	bits atomic.Uint64
}

// NewVolume returns a Volume holding v.
func NewVolume(v float64) *Volume {
	vol := &Volume{}
	vol.SetVolume(v)

	return vol
}

// Volume returns the current gain.
func (v *Volume) Volume() float64 {
	return math.Float64frombits(v.bits.Load())
}

// SetVolume stores a new gain. NaN is ignored.
func (v *Volume) SetVolume(volume float64) {
	if math.IsNaN(volume) {
		return
	}

	v.bits.Store(math.Float64bits(volume))
}
