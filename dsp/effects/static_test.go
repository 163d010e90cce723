package effects

import (
	"testing"

	"github.com/cwbudde/algo-fx/dsp/core"
)

func TestBoost(t *testing.T) {
	tests := []struct {
		volume float64
		in     core.Sample
		want   core.Sample
	}{
		{1, 1234, 1234},
		{2, 1000, 2000},
		{0.5, -3, -1},
		{4, 20000, core.MaxSample},
		{4, -20000, -core.MaxSample},
		{1, core.MinSample, -core.MaxSample},
	}

	for _, tt := range tests {
		b := NewBoost(WithBoostVolume(tt.volume))
		if got := b.Process(tt.in); got != tt.want {
			t.Fatalf("volume %v: Process(%d) = %d, want %d", tt.volume, tt.in, got, tt.want)
		}
	}
}

func TestBoostSharedVolume(t *testing.T) {
	shared := NewVolume(1)
	a := NewBoost(WithVolumeControl(shared))
	b := a.Clone().(*Boost)

	shared.SetVolume(3)

	if a.Process(100) != 300 || b.Process(100) != 300 {
		t.Fatal("shared volume not observed by boost and its clone")
	}

	owned := NewBoost(WithBoostVolume(2))
	c := owned.Clone().(*Boost)
	c.SetVolume(5)

	if owned.Volume() != 2 {
		t.Fatalf("owned volume leaked into clone: %v", owned.Volume())
	}
}

func TestDistortion(t *testing.T) {
	d := NewDistortion()

	for x := -4990; x <= 4990; x += 499 {
		if got := d.Process(core.Sample(x)); got != core.Sample(x) {
			t.Fatalf("Process(%d) = %d, want passthrough", x, got)
		}
	}

	if got := d.Process(4991); got != 6500 {
		t.Fatalf("Process(4991) = %d, want 6500", got)
	}

	if got := d.Process(-30000); got != -6500 {
		t.Fatalf("Process(-30000) = %d, want -6500", got)
	}

	d.SetClipThreshold(-5)
	d.SetMaxInput(1 << 20)

	if d.ClipThreshold() != 0 || d.MaxInput() != int(core.MaxSample) {
		t.Fatalf("clamped thresholds = %d/%d", d.ClipThreshold(), d.MaxInput())
	}
}

func TestFuzz(t *testing.T) {
	f := NewFuzz()

	tests := []struct {
		in, want core.Sample
	}{
		{100, 38},
		{0, 0},
		{-100, -39},
		// The second gain stage lets full-scale input overshoot maxOut.
		{core.MaxSample, 1949},
		{-core.MaxSample, -1949},
	}

	for _, tt := range tests {
		if got := f.Process(tt.in); got != tt.want {
			t.Fatalf("Process(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
