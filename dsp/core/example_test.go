package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(48000),
		core.WithBlockSize(256),
		core.WithBlockSize(-1),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=48000 blockSize=256
}

func ExampleClipLimit() {
	fmt.Println(core.ClipLimit(3000, 4990, 6500))
	fmt.Println(core.ClipLimit(9000, 4990, 6500))
	fmt.Println(core.Clip(-40000))

	// Output:
	// 3000
	// 6500
	// -32767
}
