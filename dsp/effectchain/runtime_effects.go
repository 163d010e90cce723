package effectchain

import (
	"github.com/cwbudde/algo-fx/dsp/effects"
	"github.com/cwbudde/algo-fx/dsp/interp"
)

// boostRuntime handles the "boost" node type.
type boostRuntime struct {
	fx *effects.Boost
}

func (r *boostRuntime) Configure(_ Context, p Params) error {
	// A shared volume may be driven elsewhere; only write it when asked.
	if p.Has("volume") {
		r.fx.SetVolume(p.GetNum("volume", 1))
	}

	return nil
}

func (r *boostRuntime) Effect() effects.Effect { return r.fx }

func (r *boostRuntime) Clone() Runtime {
	return &boostRuntime{fx: r.fx.Clone().(*effects.Boost)}
}

// distortionRuntime handles the "distortion" node type.
type distortionRuntime struct {
	fx *effects.Distortion
}

func (r *distortionRuntime) Configure(_ Context, p Params) error {
	r.fx.SetClipThreshold(int(p.GetNum("clipThreshold", 4990)))
	r.fx.SetMaxInput(int(p.GetNum("maxInput", 6500)))

	return nil
}

func (r *distortionRuntime) Effect() effects.Effect { return r.fx }

func (r *distortionRuntime) Clone() Runtime {
	return &distortionRuntime{fx: r.fx.Clone().(*effects.Distortion)}
}

// fuzzRuntime handles the "fuzz" node type.
type fuzzRuntime struct {
	fx *effects.Fuzz
}

func (r *fuzzRuntime) Configure(_ Context, p Params) error {
	r.fx.SetEffectValue(p.GetNum("effectValue", 6.5))
	r.fx.SetMaxOut(int(p.GetNum("maxOut", 300)))

	return nil
}

func (r *fuzzRuntime) Effect() effects.Effect { return r.fx }

func (r *fuzzRuntime) Clone() Runtime {
	return &fuzzRuntime{fx: r.fx.Clone().(*effects.Fuzz)}
}

// tremoloRuntime handles the "tremolo" node type.
type tremoloRuntime struct {
	fx *effects.Tremolo
}

func (r *tremoloRuntime) Configure(ctx Context, p Params) error {
	r.fx.SetSampleRate(ctx.sampleRate())
	r.fx.SetDuration(p.GetNum("durationMs", 2000))
	r.fx.SetDepth(p.GetNum("depth", 50))

	return nil
}

func (r *tremoloRuntime) Effect() effects.Effect { return r.fx }

func (r *tremoloRuntime) Clone() Runtime {
	return &tremoloRuntime{fx: r.fx.Clone().(*effects.Tremolo)}
}

// delayRuntime handles the "delay" node type.
type delayRuntime struct {
	fx *effects.Delay
}

func (r *delayRuntime) Configure(ctx Context, p Params) error {
	r.fx.SetSampleRate(ctx.sampleRate())
	r.fx.SetDuration(p.GetNum("durationMs", 1000))
	r.fx.SetDepth(p.GetNum("depth", 0.5))
	r.fx.SetFeedback(p.GetNum("feedback", 1))

	return nil
}

func (r *delayRuntime) Effect() effects.Effect { return r.fx }

func (r *delayRuntime) Clone() Runtime {
	return &delayRuntime{fx: r.fx.Clone().(*effects.Delay)}
}

// adsrGainRuntime handles the "adsr-gain" node type. The "gate" parameter
// triggers KeyOn when it turns non-zero and KeyOff when it returns to zero;
// "level" is the KeyOn target.
type adsrGainRuntime struct {
	fx   *effects.ADSRGain
	gate bool
}

func (r *adsrGainRuntime) Configure(_ Context, p Params) error {
	r.fx.SetAttackRate(p.GetNum("attack", 0.001))
	r.fx.SetDecayRate(p.GetNum("decay", 0.001))
	r.fx.SetSustainLevel(p.GetNum("sustain", 0.5))
	r.fx.SetReleaseRate(p.GetNum("release", 0.005))
	r.fx.SetBoostFactor(p.GetNum("boost", 1))

	gate := p.GetNum("gate", 0) != 0
	switch {
	case gate && !r.gate:
		r.fx.KeyOn(p.GetNum("level", 0))
	case !gate && r.gate:
		r.fx.KeyOff()
	}

	r.gate = gate

	return nil
}

func (r *adsrGainRuntime) Effect() effects.Effect { return r.fx }

func (r *adsrGainRuntime) Clone() Runtime {
	return &adsrGainRuntime{fx: r.fx.Clone().(*effects.ADSRGain), gate: r.gate}
}

// pitchShiftRuntime handles the "pitch-shift" node type. Changing
// "bufferSize" or "interpolation" rebuilds the shifter.
type pitchShiftRuntime struct {
	fx *effects.PitchShift
}

func (r *pitchShiftRuntime) Configure(_ Context, p Params) error {
	size := int(p.GetNum("bufferSize", 1000))
	mode := interp.ParseMode(p.GetStr("interpolation", interp.ModeLinear.String()))

	if size > 0 && (size != r.fx.BufferSize() || mode != r.fx.Interpolation()) {
		fx := effects.NewPitchShift(effects.WithBufferSize(size), effects.WithShiftInterpolation(mode))
		fx.SetActive(r.fx.Active())
		fx.SetID(r.fx.ID())
		r.fx = fx
	}

	r.fx.SetValue(p.GetNum("ratio", 1))

	return nil
}

func (r *pitchShiftRuntime) Effect() effects.Effect { return r.fx }

func (r *pitchShiftRuntime) Clone() Runtime {
	return &pitchShiftRuntime{fx: r.fx.Clone().(*effects.PitchShift)}
}

// externalRuntime wraps an effect added with Chain.Append. It ignores
// parameters.
type externalRuntime struct {
	fx effects.Effect
}

func (r *externalRuntime) Configure(_ Context, _ Params) error { return nil }

func (r *externalRuntime) Effect() effects.Effect { return r.fx }

func (r *externalRuntime) Clone() Runtime {
	return &externalRuntime{fx: r.fx.Clone()}
}
