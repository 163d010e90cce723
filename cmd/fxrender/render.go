package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effectchain"
	"github.com/cwbudde/algo-fx/dsp/effects/dynamics"
	"github.com/cwbudde/algo-fx/internal/audiofile"
	"github.com/cwbudde/algo-fx/measure/analysis"
	"github.com/sirupsen/logrus"
)

type renderResult struct {
	Input  audiofile.Clip
	Output audiofile.Clip
}

func renderFile(inPath, outPath, graph string) (renderResult, error) {
	clip, err := audiofile.Decode(inPath)
	if err != nil {
		return renderResult{}, err
	}

	rendered, err := render(clip, graph)
	if err != nil {
		return renderResult{}, err
	}

	if err := audiofile.WriteWAVFile(outPath, rendered); err != nil {
		return renderResult{}, err
	}

	return renderResult{Input: clip, Output: rendered}, nil
}

// render runs every channel of clip through its own copy of the chain,
// frame by frame so linked compressors see all channels of a frame together.
func render(clip audiofile.Clip, graph string) (audiofile.Clip, error) {
	if clip.Channels <= 0 {
		return audiofile.Clip{}, fmt.Errorf("render: clip has no channels")
	}

	link := dynamics.NewStereoLink()
	registry := effectchain.DefaultRegistry(effectchain.WithStereoLink(link))

	first := effectchain.New(effectchain.Context{SampleRate: float64(clip.SampleRate)}, registry)
	if err := first.LoadGraph(graph); err != nil {
		return audiofile.Clip{}, fmt.Errorf("render: %w", err)
	}

	chains := make([]*effectchain.Chain, clip.Channels)
	chains[0] = first

	for i := 1; i < len(chains); i++ {
		chains[i] = first.Clone()
	}

	logrus.WithFields(logrus.Fields{
		"nodes":    first.IDs(),
		"channels": len(chains),
	}).Debug("chain loaded")

	out := clip
	out.Samples = make([]core.Sample, len(clip.Samples))

	for i, s := range clip.Samples {
		out.Samples[i] = chains[i%clip.Channels].Process(s)
	}

	return out, nil
}

func printList(w io.Writer) {
	for _, name := range effectchain.DefaultRegistry().Types() {
		fmt.Fprintln(w, name)
	}
}

func printReport(w io.Writer, res renderResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Channel\tStage\tRMS [dBFS]\tPeak [dBFS]\tCrest\tDominant [Hz]\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(tw, "-------\t-----\t----------\t-----------\t-----\t-------------\n"); err != nil {
		return err
	}

	inputs := res.Input.Split()
	outputs := res.Output.Split()

	for ch := range inputs {
		for _, stage := range []struct {
			name    string
			samples []core.Sample
		}{
			{"in", inputs[ch]},
			{"out", outputs[ch]},
		} {
			stats := analysis.Levels(stage.samples)

			dominant := "-"
			if hz, err := analysis.DominantFrequency(stage.samples, float64(res.Input.SampleRate)); err == nil {
				dominant = fmt.Sprintf("%.1f", hz)
			}

			if _, err := fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.3f\t%s\n",
				ch,
				stage.name,
				stats.RMSDB,
				stats.PeakDB,
				stats.CrestFactor,
				dominant,
			); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}
