package audiofile

import (
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/core"
)

// Clip is decoded audio with interleaved samples.
type Clip struct {
	SampleRate int
	Channels   int
	Samples    []core.Sample
}

// Frames returns the number of sample frames.
func (c Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}

	return len(c.Samples) / c.Channels
}

// Channel extracts channel i as a new slice.
func (c Clip) Channel(i int) ([]core.Sample, error) {
	if i < 0 || i >= c.Channels {
		return nil, fmt.Errorf("audiofile: channel %d out of range [0, %d)", i, c.Channels)
	}

	out := make([]core.Sample, c.Frames())
	for f := range out {
		out[f] = c.Samples[f*c.Channels+i]
	}

	return out, nil
}

// Split returns every channel as its own slice.
func (c Clip) Split() [][]core.Sample {
	out := make([][]core.Sample, c.Channels)
	for i := range out {
		out[i], _ = c.Channel(i)
	}

	return out
}

// Interleave builds a clip from equally long channels.
func Interleave(sampleRate int, channels [][]core.Sample) (Clip, error) {
	if len(channels) == 0 {
		return Clip{}, fmt.Errorf("audiofile: no channels")
	}

	frames := len(channels[0])
	for i, ch := range channels {
		if len(ch) != frames {
			return Clip{}, fmt.Errorf("audiofile: channel %d has %d frames, want %d", i, len(ch), frames)
		}
	}

	samples := make([]core.Sample, 0, frames*len(channels))
	for f := range frames {
		for _, ch := range channels {
			samples = append(samples, ch[f])
		}
	}

	return Clip{SampleRate: sampleRate, Channels: len(channels), Samples: samples}, nil
}
