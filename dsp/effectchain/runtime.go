package effectchain

import "github.com/cwbudde/algo-fx/dsp/effects"

// Runtime is the per-node configuration contract. A runtime owns exactly one
// effect for its whole lifetime.
type Runtime interface {
	// Configure applies a full parameter set. Missing keys take their
	// defaults; values outside an effect's range are clamped by the effect.
	Configure(ctx Context, params Params) error
	Effect() effects.Effect
	// Clone returns a runtime owning a clone of the effect.
	Clone() Runtime
}

// paramAliaser is implemented by runtimes that accept one setting under
// several keys. Setting one key drops the others.
type paramAliaser interface {
	paramAliases(key string) []string
}
