package effectchain

import (
	"github.com/cwbudde/algo-fx/dsp/effects"
	"github.com/cwbudde/algo-fx/dsp/effects/dynamics"
)

// ratioAliases lets "ratio" and its inverse "compressionRatio" replace each
// other when one is set through Chain.SetParam.
func ratioAliases(key string) []string {
	switch key {
	case "ratio":
		return []string{"compressionRatio"}
	case "compressionRatio":
		return []string{"ratio"}
	default:
		return nil
	}
}

// compressorRuntime handles the "compressor" node type. "ratio" takes
// precedence over "compressionRatio" when both are given.
type compressorRuntime struct {
	fx *dynamics.SoftKneeCompressor
}

func (r *compressorRuntime) Configure(ctx Context, p Params) error {
	r.fx.SetSampleRate(ctx.sampleRate())
	r.fx.SetAttack(p.GetNum("attackMs", 5))
	r.fx.SetRelease(p.GetNum("releaseMs", 200))
	r.fx.SetThresholdPercent(p.GetNum("thresholdPercent", 50))

	if p.Has("ratio") {
		r.fx.SetRatio(p.GetNum("ratio", 2))
	} else {
		r.fx.SetCompressionRatio(p.GetNum("compressionRatio", 0.5))
	}

	return nil
}

func (r *compressorRuntime) paramAliases(key string) []string { return ratioAliases(key) }

func (r *compressorRuntime) Effect() effects.Effect { return r.fx }

func (r *compressorRuntime) Clone() Runtime {
	return &compressorRuntime{fx: r.fx.Clone().(*dynamics.SoftKneeCompressor)}
}

// logCompressorRuntime handles the "compressor-log" node type.
type logCompressorRuntime struct {
	fx *dynamics.LogCompressor
}

func (r *logCompressorRuntime) Configure(ctx Context, p Params) error {
	r.fx.SetSampleRate(ctx.sampleRate())
	r.fx.SetAttack(p.GetNum("attackMs", 5))
	r.fx.SetRelease(p.GetNum("releaseMs", 200))
	r.fx.SetThresholdPercent(p.GetNum("thresholdPercent", 50))

	if p.Has("compressionRatio") && !p.Has("ratio") {
		r.fx.SetCompressionRatio(p.GetNum("compressionRatio", 0.5))
	} else {
		r.fx.SetRatio(p.GetNum("ratio", 2))
	}

	return nil
}

func (r *logCompressorRuntime) paramAliases(key string) []string { return ratioAliases(key) }

func (r *logCompressorRuntime) Effect() effects.Effect { return r.fx }

func (r *logCompressorRuntime) Clone() Runtime {
	return &logCompressorRuntime{fx: r.fx.Clone().(*dynamics.LogCompressor)}
}
