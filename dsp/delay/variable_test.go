package delay

import (
	"testing"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/interp"
)

func TestVariableRateUnityIncrementIsTransparent(t *testing.T) {
	v, err := NewVariableRate(16)
	if err != nil {
		t.Fatalf("NewVariableRate() error = %v", err)
	}

	for i := 0; i < 64; i++ {
		in := core.Sample(i*100 - 3000)
		v.Write(in)

		if got := v.Read(); got != in {
			t.Fatalf("sample %d: got %d, want %d", i, got, in)
		}
	}
}

func TestVariableRateWholeReadsAreClipped(t *testing.T) {
	v, err := NewVariableRate(8)
	if err != nil {
		t.Fatalf("NewVariableRate() error = %v", err)
	}

	for i := 0; i < 16; i++ {
		v.Write(core.MinSample)

		if got := v.Read(); got != -core.MaxSample {
			t.Fatalf("sample %d: got %d, want %d", i, got, -core.MaxSample)
		}
	}
}

func TestVariableRateDoubleIncrementSkips(t *testing.T) {
	v, err := NewVariableRate(8, WithIncrement(2))
	if err != nil {
		t.Fatalf("NewVariableRate() error = %v", err)
	}

	for i := 0; i < 8; i++ {
		v.Write(core.Sample(i))
	}

	want := []core.Sample{0, 2, 4, 6, 0, 2}
	for i, w := range want {
		if got := v.Read(); got != w {
			t.Fatalf("read %d: got %d, want %d", i, got, w)
		}
	}
}

func TestVariableRateInterpolates(t *testing.T) {
	for _, mode := range []interp.Mode{interp.ModeLinear, interp.ModeHermite} {
		v, err := NewVariableRate(8, WithIncrement(0.5), WithInterpolation(mode))
		if err != nil {
			t.Fatalf("NewVariableRate() error = %v", err)
		}

		for i := 0; i < 8; i++ {
			v.Write(core.Sample(100 * i))
		}

		v.Read()
		v.Read()

		// Position 1.0 after two half steps.
		if got := v.Peek(); got != 100 {
			t.Fatalf("%v: Peek at 1.0 = %d, want 100", mode, got)
		}

		v.Read()

		// Position 1.5 on a linear ramp.
		if got := v.Peek(); got != 150 {
			t.Fatalf("%v: Peek at 1.5 = %d, want 150", mode, got)
		}
	}
}

func TestVariableRateIncrementClamp(t *testing.T) {
	v, err := NewVariableRate(4)
	if err != nil {
		t.Fatalf("NewVariableRate() error = %v", err)
	}

	v.SetIncrement(-1)
	if got := v.Increment(); got != minReadIncrement {
		t.Fatalf("increment = %v, want %v", got, minReadIncrement)
	}

	v.SetIncrement(100)
	if got := v.Increment(); got >= 4 {
		t.Fatalf("increment = %v, want < 4", got)
	}

	for i := 0; i < 50; i++ {
		v.Read()

		if p := v.ReadPosition(); p < 0 || p >= 4 {
			t.Fatalf("read position %v out of [0, 4)", p)
		}
	}

	if _, err := NewVariableRate(0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestVariableRateClone(t *testing.T) {
	v, err := NewVariableRate(4)
	if err != nil {
		t.Fatalf("NewVariableRate() error = %v", err)
	}

	v.Write(42)
	c := v.Clone()
	v.Reset()

	if got := c.Read(); got != 42 {
		t.Fatalf("clone Read = %d, want 42", got)
	}
}
