package envelope

import (
	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/sirupsen/logrus"
)

const (
	DefaultAttack  = 0.001
	DefaultDecay   = 0.001
	DefaultSustain = 0.5
	DefaultRelease = 0.005
)

var log = logrus.WithField("component", "envelope")

// State is the current stage of an ADSR envelope.
type State int

const (
	// StateIdle outputs zero until the next key-on.
	StateIdle State = iota
	StateAttack
	StateDecay
	StateSustain
	StateRelease
)

// String returns the lower-case stage name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttack:
		return "attack"
	case StateDecay:
		return "decay"
	case StateSustain:
		return "sustain"
	case StateRelease:
		return "release"
	default:
		return "unknown"
	}
}

// ADSR is a linear attack/decay/sustain/release envelope generator.
//
// ADSR is not safe for concurrent use.
type ADSR struct {
	attack  float64
	decay   float64
	sustain float64
	release float64

	state  State
	value  float64
	target float64
}

// New returns an idle envelope. All rates and the sustain level are clamped
// to [0, 1].
func New(attack, decay, sustain, release float64) *ADSR {
	a := &ADSR{}
	a.SetAttackRate(attack)
	a.SetDecayRate(decay)
	a.SetSustainLevel(sustain)
	a.SetReleaseRate(release)

	return a
}

// NewDefault returns an envelope with the package default rates.
func NewDefault() *ADSR {
	return New(DefaultAttack, DefaultDecay, DefaultSustain, DefaultRelease)
}

// KeyOn restarts the envelope from zero. The attack stage rises to target
// when target is in (0, 1], otherwise to full level. A target at or below the
// sustain level skips the decay stage and is held until KeyOff.
func (a *ADSR) KeyOn(target float64) {
	a.state = StateAttack
	a.value = 0

	if target > 0 && target <= 1 {
		a.target = target
	} else {
		a.target = 1
	}

	log.WithFields(logrus.Fields{"target": a.target}).Debug("key on")
}

// KeyOff moves a sounding envelope into its release stage.
func (a *ADSR) KeyOff() {
	if a.state == StateIdle {
		return
	}

	a.state = StateRelease

	log.WithFields(logrus.Fields{"level": a.value}).Debug("key off")
}

// Tick advances the envelope by one sample and returns the new level.
func (a *ADSR) Tick() float64 {
	switch a.state {
	case StateAttack:
		a.value += a.attack
		if a.value >= a.target {
			a.value = a.target
			a.state = StateDecay

			if a.target <= a.sustain {
				a.state = StateSustain
			}
		}
	case StateDecay:
		a.value -= a.decay
		if a.value <= a.sustain {
			a.value = a.sustain
			a.state = StateSustain
		}
	case StateRelease:
		a.value -= a.release
		if a.value <= 0 {
			a.value = 0
			a.state = StateIdle
		}
	case StateIdle, StateSustain:
	}

	a.value = core.ClampUnit(a.value)

	return a.value
}

// IsActive reports whether the envelope is outside the idle stage.
func (a *ADSR) IsActive() bool { return a.state != StateIdle }

// State returns the current stage.
func (a *ADSR) State() State { return a.state }

// Value returns the level produced by the last Tick.
func (a *ADSR) Value() float64 { return a.value }

// Target returns the attack target selected by the last KeyOn.
func (a *ADSR) Target() float64 { return a.target }

// AttackRate returns the per-tick attack increment.
func (a *ADSR) AttackRate() float64 { return a.attack }

// DecayRate returns the per-tick decay decrement.
func (a *ADSR) DecayRate() float64 { return a.decay }

// SustainLevel returns the sustain level.
func (a *ADSR) SustainLevel() float64 { return a.sustain }

// ReleaseRate returns the per-tick release decrement.
func (a *ADSR) ReleaseRate() float64 { return a.release }

// SetAttackRate sets the attack increment, clamped to [0, 1].
func (a *ADSR) SetAttackRate(rate float64) { a.attack = core.ClampUnit(rate) }

// SetDecayRate sets the decay decrement, clamped to [0, 1].
func (a *ADSR) SetDecayRate(rate float64) { a.decay = core.ClampUnit(rate) }

// SetSustainLevel sets the sustain level, clamped to [0, 1].
func (a *ADSR) SetSustainLevel(level float64) { a.sustain = core.ClampUnit(level) }

// SetReleaseRate sets the release decrement, clamped to [0, 1].
func (a *ADSR) SetReleaseRate(rate float64) { a.release = core.ClampUnit(rate) }

// Reset returns the envelope to idle at level zero.
func (a *ADSR) Reset() {
	a.state = StateIdle
	a.value = 0
	a.target = 0
}

// Clone returns an independent copy including the current stage and level.
func (a *ADSR) Clone() *ADSR {
	c := *a
	return &c
}
