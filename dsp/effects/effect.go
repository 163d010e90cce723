package effects

import "github.com/cwbudde/algo-fx/dsp/core"

// UnsetID is the identifier of an effect that has not been tagged.
const UnsetID = -1

// Effect is a stateful single-sample transform.
type Effect interface {
	// Process consumes one sample and returns one sample.
	Process(sample core.Sample) core.Sample
	// SetActive switches the effect in or out. Inactive effects pass
	// samples through unchanged.
	SetActive(active bool)
	Active() bool
	// ID returns the caller-assigned tag. It has no effect on processing.
	ID() int
	SetID(id int)
	// Clone returns an independent copy with identical parameters and
	// running state.
	Clone() Effect
}

// Resetter is implemented by effects with running state that can be cleared.
type Resetter interface {
	Reset()
}

// Base carries the identifier and bypass switch shared by all effects.
// The zero value is inactive; use NewBase.
type Base struct {
	id     int
	active bool
}

// NewBase returns an active Base with UnsetID.
func NewBase() Base {
	return Base{id: UnsetID, active: true}
}

// SetActive switches the effect in or out.
func (b *Base) SetActive(active bool) { b.active = active }

// Active reports whether the effect is processing.
func (b *Base) Active() bool { return b.active }

// ID returns the caller-assigned tag.
func (b *Base) ID() int { return b.id }

// SetID assigns a tag.
func (b *Base) SetID(id int) { b.id = id }

// ProcessInPlace runs e over buf sample by sample.
func ProcessInPlace(e Effect, buf []core.Sample) {
	for i, s := range buf {
		buf[i] = e.Process(s)
	}
}

// Reset clears e's running state when it implements Resetter.
func Reset(e Effect) {
	if r, ok := e.(Resetter); ok {
		r.Reset()
	}
}
