package analysis

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/internal/testutil"
)

func TestLevelsDC(t *testing.T) {
	stats := Levels(testutil.DC(16384, 256))

	testutil.RequireNearlyEqual(t, stats.RMS, 0.5, 1e-12, "RMS")
	testutil.RequireNearlyEqual(t, stats.Peak, 0.5, 1e-12, "Peak")
	testutil.RequireNearlyEqual(t, stats.CrestFactor, 1, 1e-12, "CrestFactor")
	testutil.RequireNearlyEqual(t, stats.RMSDB, 20*math.Log10(0.5), 1e-9, "RMSDB")
	testutil.RequireNearlyEqual(t, stats.CrestDB, 0, 1e-9, "CrestDB")
}

func TestLevelsSine(t *testing.T) {
	stats := Levels(testutil.Sine(1000, 48000, 16384, 4800))

	testutil.RequireNearlyEqual(t, stats.Peak, 0.5, 1e-4, "Peak")
	testutil.RequireNearlyEqual(t, stats.RMS, 0.5/math.Sqrt2, 1e-4, "RMS")
	testutil.RequireNearlyEqual(t, stats.CrestFactor, math.Sqrt2, 1e-3, "CrestFactor")
}

func TestLevelsSilence(t *testing.T) {
	for _, in := range [][]core.Sample{nil, make([]core.Sample, 32)} {
		stats := Levels(in)
		if stats.RMS != 0 || stats.Peak != 0 || stats.CrestFactor != 0 {
			t.Fatalf("silent block: got %+v", stats)
		}

		if !math.IsInf(stats.RMSDB, -1) || !math.IsInf(stats.PeakDB, -1) {
			t.Fatalf("silent block dB levels = %v / %v, want -Inf", stats.RMSDB, stats.PeakDB)
		}
	}
}

func TestLevelsNegativeFullScale(t *testing.T) {
	stats := Levels([]core.Sample{core.MinSample, 0})

	if stats.Peak != 1 {
		t.Fatalf("Peak = %v, want 1", stats.Peak)
	}

	if stats.PeakDB != 0 {
		t.Fatalf("PeakDB = %v, want 0", stats.PeakDB)
	}
}
