package dynamics_test

import (
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effects/dynamics"
)

func ExampleSoftKneeCompressor() {
	link := dynamics.NewStereoLink()
	comp := dynamics.NewSoftKneeCompressor(
		dynamics.WithThresholdPercent(40),
		dynamics.WithRatio(4),
		dynamics.WithStereoLink(link),
	)

	var last core.Sample
	for i := 0; i < 4410; i++ {
		link.SetPair(30000, 30000)
		last = comp.Process(30000)
	}

	left, _ := link.Pair()
	fmt.Println(last < 30000, left == last, link.Engaged())
	// Output:
	// true true true
}
