package effectchain

import "github.com/cwbudde/algo-fx/dsp/core"

// Context provides environmental information that effect runtimes need.
type Context struct {
	SampleRate float64
}

// DefaultContext returns a Context at the default sample rate.
func DefaultContext() Context {
	return Context{SampleRate: core.DefaultSampleRate}
}

func (c Context) sampleRate() float64 {
	if c.SampleRate <= 0 {
		return core.DefaultSampleRate
	}

	return c.SampleRate
}
