package analysis_test

import (
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/measure/analysis"
)

func ExampleLevels() {
	block := []core.Sample{16384, -16384, 16384, -16384}

	stats := analysis.Levels(block)
	fmt.Printf("RMS %.2f dBFS, crest %.1f\n", stats.RMSDB, stats.CrestFactor)
	// Output:
	// RMS -6.02 dBFS, crest 1.0
}
