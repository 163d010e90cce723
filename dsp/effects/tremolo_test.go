package effects

import (
	"testing"

	"github.com/cwbudde/algo-fx/dsp/core"
)

func TestTremoloRateCount(t *testing.T) {
	tests := []struct {
		durationMs, sampleRate float64
		want                   int
	}{
		{2000, 44100, 44100},
		{1, 1000, 1},
		{0, 44100, 1},
		{3, 1000, 1},
		{10, 1000, 5},
	}

	for _, tt := range tests {
		tr := NewTremolo(WithTremoloDuration(tt.durationMs), WithTremoloSampleRate(tt.sampleRate))
		if got := tr.RateCountHalf(); got != tt.want {
			t.Fatalf("duration %v @ %v: RateCountHalf() = %d, want %d", tt.durationMs, tt.sampleRate, got, tt.want)
		}
	}
}

func TestTremoloTriangle(t *testing.T) {
	tr := NewTremolo(WithTremoloDuration(8), WithTremoloSampleRate(1000))

	want := []int{1, 2, 3, 4, 3, 2, 1, 0, 1, 2}
	for i, w := range want {
		tr.Process(1000)

		if tr.Counter() != w {
			t.Fatalf("step %d: counter = %d, want %d", i, tr.Counter(), w)
		}
	}
}

func TestTremoloBounds(t *testing.T) {
	for _, depth := range []float64{0, 25, 50, 100, 150} {
		tr := NewTremolo(WithTremoloDuration(20), WithTremoloSampleRate(1000), WithTremoloDepth(depth))

		for i := 0; i < 200; i++ {
			x := core.Sample(30000 - 300*i)
			out := tr.Process(x)

			if c := tr.Counter(); c < 0 || c > tr.RateCountHalf() {
				t.Fatalf("depth %v: counter %d outside [0, %d]", depth, c, tr.RateCountHalf())
			}

			if abs(int(out)) > abs(int(x)) {
				t.Fatalf("depth %v: |Process(%d)| = %d exceeds input", depth, x, out)
			}
		}
	}
}

func TestTremoloDepth(t *testing.T) {
	tr := NewTremolo(WithTremoloDepth(100), WithTremoloDuration(4), WithTremoloSampleRate(1000))

	// Full depth starts silent and peaks at the top of the ramp.
	if got := tr.Process(1000); got != 0 {
		t.Fatalf("first sample = %d, want 0", got)
	}

	tr.Process(1000)

	if got := tr.Process(1000); got != 1000 {
		t.Fatalf("peak sample = %d, want 1000", got)
	}

	tr.SetDepth(-10)
	if tr.Depth() != 0 {
		t.Fatalf("Depth() = %v, want 0", tr.Depth())
	}
}

func TestTremoloReconfigureKeepsPhase(t *testing.T) {
	tr := NewTremolo(WithTremoloDuration(20), WithTremoloSampleRate(1000))

	for i := 0; i < 7; i++ {
		tr.Process(100)
	}

	tr.SetDuration(100)
	if tr.Counter() != 7 {
		t.Fatalf("counter = %d after growing the cycle, want 7", tr.Counter())
	}

	tr.SetDuration(6)
	if tr.Counter() != tr.RateCountHalf() {
		t.Fatalf("counter = %d after shrinking, want %d", tr.Counter(), tr.RateCountHalf())
	}

	tr.Process(100)
	if tr.Counter() != tr.RateCountHalf()-1 {
		t.Fatalf("counter = %d, want ramp to turn down", tr.Counter())
	}

	tr.SetSampleRate(-1)
	if tr.SampleRate() != 1000 {
		t.Fatalf("SampleRate() = %v, want unchanged", tr.SampleRate())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
