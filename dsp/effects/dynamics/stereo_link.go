package dynamics

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-fx/dsp/core"
)

const (
	engageGain    = 0.9
	disengageGain = 0.95
)

// StereoLink carries the detector gain of one compressor over to a paired
// channel. The audio goroutine loads the pair with SetPair before processing
// the detector channel and reads it back with Pair afterwards; the gain and
// engaged flag may be read from any goroutine.
//
// One StereoLink is owned by the call site that drives a channel pair and is
// shared by every compressor attached to it, including clones.
type StereoLink struct {
	pair    [2]core.Sample
	gain    atomic.Uint64
	engaged atomic.Bool
}

// NewStereoLink returns a disengaged link at unity gain.
func NewStereoLink() *StereoLink {
	l := &StereoLink{}
	l.gain.Store(math.Float64bits(1))

	return l
}

// SetPair loads the channel pair that the next compressed sample scales.
func (l *StereoLink) SetPair(left, right core.Sample) {
	l.pair = [2]core.Sample{left, right}
}

// Pair returns the channel pair as scaled by the last compressed sample.
func (l *StereoLink) Pair() (left, right core.Sample) {
	return l.pair[0], l.pair[1]
}

// Gain returns the most recent smoothed detector gain.
func (l *StereoLink) Gain() float64 {
	return math.Float64frombits(l.gain.Load())
}

// Engaged reports whether the detector gain has dropped below 0.9 and not yet
// recovered above 0.95.
func (l *StereoLink) Engaged() bool {
	return l.engaged.Load()
}

// Reset clears the pair, restores unity gain and disengages the link.
func (l *StereoLink) Reset() {
	l.pair = [2]core.Sample{}
	l.gain.Store(math.Float64bits(1))
	l.engaged.Store(false)
}

func (l *StereoLink) apply(gain float64) {
	l.pair[0] = core.ClipFloat(gain * float64(l.pair[0]))
	l.pair[1] = core.ClipFloat(gain * float64(l.pair[1]))
	l.gain.Store(math.Float64bits(gain))
}
