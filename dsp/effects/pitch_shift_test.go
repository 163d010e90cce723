package effects

import (
	"testing"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/internal/testutil"
)

func TestPitchShiftUnityRatioIsTransparent(t *testing.T) {
	p := NewPitchShift()
	in := testutil.Noise(4, 20000, 3000)

	got := append([]core.Sample(nil), in...)
	ProcessInPlace(p, got)
	testutil.RequireSamplesEqual(t, got, in)
}

func TestPitchShiftDoubleSpeed(t *testing.T) {
	p := NewPitchShift(WithShiftRatio(2), WithBufferSize(8))

	var got []core.Sample
	for i := 0; i < 4; i++ {
		got = append(got, p.Process(core.Sample(i+1)))
	}

	// Reading two slots per write overtakes the writer, so every read after
	// the first lands on a slot that has not been written yet.
	testutil.RequireSamplesEqual(t, got, []core.Sample{1, 0, 0, 0})
}

func TestPitchShiftSetValue(t *testing.T) {
	p := NewPitchShift(WithBufferSize(16))

	p.SetValue(0.5)
	if p.Value() != 0.5 {
		t.Fatalf("Value() = %v, want 0.5", p.Value())
	}

	p.SetValue(1e9)
	if p.Value() != 1e9 {
		t.Fatalf("Value() = %v, want stored ratio", p.Value())
	}

	for i := 0; i < 100; i++ {
		p.Process(100)
	}

	if p.BufferSize() != 16 {
		t.Fatalf("BufferSize() = %d, want 16", p.BufferSize())
	}
}
