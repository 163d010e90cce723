package analysis

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// FullScale is the amplitude that maps to 0 dBFS.
const FullScale = 32768.0

// Stats holds block level measurements. Linear values are relative to
// [FullScale]; dB values are 20*log10 of the linear ones.
type Stats struct {
	RMS         float64
	Peak        float64
	CrestFactor float64
	RMSDB       float64
	PeakDB      float64
	CrestDB     float64
}

// Levels measures samples. An empty or silent block yields zero linear
// values and -Inf dB levels.
func Levels(samples []core.Sample) Stats {
	if len(samples) == 0 {
		return silentStats()
	}

	buf := core.ToFloats(nil, samples)
	vecmath.ScaleBlock(buf, buf, 1/FullScale)

	var sumSquares, peak float64

	for _, v := range buf {
		sumSquares += v * v

		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	if peak == 0 {
		return silentStats()
	}

	rms := math.Sqrt(sumSquares / float64(len(buf)))
	crest := peak / rms

	return Stats{
		RMS:         rms,
		Peak:        peak,
		CrestFactor: crest,
		RMSDB:       core.LinearToDB(rms),
		PeakDB:      core.LinearToDB(peak),
		CrestDB:     core.LinearToDB(crest),
	}
}

func silentStats() Stats {
	return Stats{
		RMSDB:  math.Inf(-1),
		PeakDB: math.Inf(-1),
	}
}
