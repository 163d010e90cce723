package effectchain

import (
	"encoding/json"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effects"
)

const testSampleRate = 1000.0

func testCtx() Context {
	return Context{SampleRate: testSampleRate}
}

// buildGraphJSON is a helper to construct chain documents for testing.
func buildGraphJSON(nodes ...graphNode) string {
	data, err := json.Marshal(graphState{Nodes: nodes})
	if err != nil {
		panic(err)
	}

	return string(data)
}

// addEffect adds a constant to every sample and counts its calls.
type addEffect struct {
	effects.Base

	value core.Sample
	calls int
}

func newAddEffect(value core.Sample) *addEffect {
	return &addEffect{Base: effects.NewBase(), value: value}
}

func (a *addEffect) Process(s core.Sample) core.Sample {
	if !a.Active() {
		return s
	}

	a.calls++

	return core.Clip(int32(s) + int32(a.value))
}

func (a *addEffect) Clone() effects.Effect {
	c := *a
	return &c
}

func (a *addEffect) Reset() { a.calls = 0 }

// stubRuntime records Configure calls and wraps an addEffect.
type stubRuntime struct {
	fx             *addEffect
	configureErr   error
	configureCalls int
	lastCtx        Context
	lastParams     Params
}

func (s *stubRuntime) Configure(ctx Context, params Params) error {
	s.configureCalls++
	s.lastCtx = ctx
	s.lastParams = params
	s.fx.value = core.Sample(params.GetNum("value", 0))

	return s.configureErr
}

func (s *stubRuntime) Effect() effects.Effect { return s.fx }

func (s *stubRuntime) Clone() Runtime {
	c := *s
	c.fx = s.fx.Clone().(*addEffect)

	return &c
}

// testRegistry creates a registry with a simple "add" effect.
func testRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("add", func(_ Context) (Runtime, error) {
		return &stubRuntime{fx: newAddEffect(0)}, nil
	})

	return r
}
