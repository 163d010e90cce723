package effects_test

import (
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effects"
)

func ExampleFuzz() {
	fuzz := effects.NewFuzz()
	fmt.Println(fuzz.Process(100))
	// Output:
	// 38
}

func ExampleDelay() {
	echo := effects.NewDelay(
		effects.WithDelayDuration(2),
		effects.WithDelaySampleRate(1000),
	)

	buf := []core.Sample{10000, 0, 0, 0, 0}
	effects.ProcessInPlace(echo, buf)

	fmt.Println(buf)
	// Output:
	// [5000 0 5000 0 5000]
}

func ExampleBoost() {
	boost := effects.NewBoost(effects.WithBoostVolume(3))
	fmt.Println(boost.Process(1000))

	boost.SetActive(false)
	fmt.Println(boost.Process(1000))
	// Output:
	// 3000
	// 1000
}
