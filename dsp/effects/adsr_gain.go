package effects

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/envelope"
)

const defaultADSRBoost = 1.0

// ADSRGainOption mutates ADSR gain construction parameters.
type ADSRGainOption func(*adsrGainConfig)

type adsrGainConfig struct {
	attack, decay, sustain, release float64
	boost                           float64
}

// WithEnvelope sets the envelope rates and sustain level.
func WithEnvelope(attack, decay, sustain, release float64) ADSRGainOption {
	return func(cfg *adsrGainConfig) {
		cfg.attack = attack
		cfg.decay = decay
		cfg.sustain = sustain
		cfg.release = release
	}
}

// WithBoostFactor sets the gain applied on top of the envelope level.
func WithBoostFactor(boost float64) ADSRGainOption {
	return func(cfg *adsrGainConfig) {
		cfg.boost = boost
	}
}

// ADSRGain scales samples by the level of an ADSR envelope. The envelope
// stays idle, and the output silent, until KeyOn is called.
type ADSRGain struct {
	Base

	adsr  *envelope.ADSR
	boost float64
}

// NewADSRGain creates an envelope gain with rates 0.001/0.001, sustain 0.5,
// release 0.005 and boost 1 unless overridden.
func NewADSRGain(opts ...ADSRGainOption) *ADSRGain {
	cfg := adsrGainConfig{
		attack:  envelope.DefaultAttack,
		decay:   envelope.DefaultDecay,
		sustain: envelope.DefaultSustain,
		release: envelope.DefaultRelease,
		boost:   defaultADSRBoost,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	g := &ADSRGain{
		Base:  NewBase(),
		adsr:  envelope.New(cfg.attack, cfg.decay, cfg.sustain, cfg.release),
		boost: defaultADSRBoost,
	}
	g.SetBoostFactor(cfg.boost)

	return g
}

// Envelope exposes the underlying generator.
func (g *ADSRGain) Envelope() *envelope.ADSR { return g.adsr }

// KeyOn starts the envelope; see envelope.ADSR.KeyOn.
func (g *ADSRGain) KeyOn(target float64) { g.adsr.KeyOn(target) }

// KeyOff releases the envelope.
func (g *ADSRGain) KeyOff() { g.adsr.KeyOff() }

// IsActive reports whether the envelope is sounding.
func (g *ADSRGain) IsActive() bool { return g.adsr.IsActive() }

// AttackRate returns the envelope's per-sample attack increment.
func (g *ADSRGain) AttackRate() float64 { return g.adsr.AttackRate() }

// DecayRate returns the envelope's per-sample decay decrement.
func (g *ADSRGain) DecayRate() float64 { return g.adsr.DecayRate() }

// SustainLevel returns the level held while the key is down.
func (g *ADSRGain) SustainLevel() float64 { return g.adsr.SustainLevel() }

// ReleaseRate returns the envelope's per-sample release decrement.
func (g *ADSRGain) ReleaseRate() float64 { return g.adsr.ReleaseRate() }

// SetAttackRate sets the attack increment, clamped to [0, 1].
func (g *ADSRGain) SetAttackRate(rate float64) { g.adsr.SetAttackRate(rate) }

// SetDecayRate sets the decay decrement, clamped to [0, 1].
func (g *ADSRGain) SetDecayRate(rate float64) { g.adsr.SetDecayRate(rate) }

// SetSustainLevel sets the sustain level, clamped to [0, 1].
func (g *ADSRGain) SetSustainLevel(lvl float64) { g.adsr.SetSustainLevel(lvl) }

// SetReleaseRate sets the release decrement, clamped to [0, 1].
func (g *ADSRGain) SetReleaseRate(rate float64) { g.adsr.SetReleaseRate(rate) }

// BoostFactor returns the gain applied on top of the envelope.
func (g *ADSRGain) BoostFactor() float64 { return g.boost }

// SetBoostFactor sets the output gain. NaN and infinities are ignored.
func (g *ADSRGain) SetBoostFactor(boost float64) {
	if math.IsNaN(boost) || math.IsInf(boost, 0) {
		return
	}

	g.boost = boost
}

// Reset returns the envelope to idle.
func (g *ADSRGain) Reset() { g.adsr.Reset() }

// Process processes one sample.
func (g *ADSRGain) Process(sample core.Sample) core.Sample {
	if !g.active {
		return sample
	}

	return core.ClipFloat(g.boost * g.adsr.Tick() * float64(sample))
}

// Clone returns a copy with its own envelope.
func (g *ADSRGain) Clone() Effect {
	c := *g
	c.adsr = g.adsr.Clone()

	return &c
}
