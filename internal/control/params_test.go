package control

import (
	"errors"
	"math"
	"testing"
)

func TestNewSetClampsAndRejects(t *testing.T) {
	s, err := NewSet(Parameter{Name: "a", Min: 0, Max: 10, Value: 20})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	if p, _ := s.Get("a"); p.Value != 10 {
		t.Fatalf("initial value = %v, want clamped 10", p.Value)
	}

	bad := [][]Parameter{
		{{Name: ""}},
		{{Name: "x"}, {Name: "x"}},
		{{Name: "y", Min: 2, Max: 1}},
	}
	for i, params := range bad {
		if _, err := NewSet(params...); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestSetUpdates(t *testing.T) {
	s, err := NewSet(CompressorParameters("comp")...)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	want := []string{RatioControl, Threshold, AttackTime, ReleaseTime}
	got := s.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}

	tests := []struct {
		name  string
		value float64
		want  float64
		err   error
	}{
		{name: RatioControl, value: 30, want: 30},
		{name: RatioControl, value: 5, want: 10},
		{name: ReleaseTime, value: 5000, want: 1000},
		{name: AttackTime, value: math.NaN(), err: ErrInvalidValue},
		{name: Threshold, value: math.Inf(1), err: ErrInvalidValue},
		{name: "Makeup", value: 1, err: ErrUnknownParameter},
	}

	for _, tt := range tests {
		p, err := s.set(tt.name, tt.value)
		if !errors.Is(err, tt.err) {
			t.Fatalf("set(%s, %v) err = %v, want %v", tt.name, tt.value, err, tt.err)
		}

		if err == nil && p.Value != tt.want {
			t.Fatalf("set(%s, %v) = %v, want %v", tt.name, tt.value, p.Value, tt.want)
		}
	}
}

func TestCompressorParameterScaling(t *testing.T) {
	for _, p := range CompressorParameters("comp") {
		if p.Node != "comp" {
			t.Fatalf("%s: node = %q, want comp", p.Name, p.Node)
		}

		switch p.Name {
		case RatioControl:
			if p.Key != "compressionRatio" || p.ChainValue() != 0.5 {
				t.Fatalf("ratio control maps to %s=%v, want compressionRatio=0.5", p.Key, p.ChainValue())
			}
		case Threshold, AttackTime, ReleaseTime:
			if p.ChainValue() != p.Value {
				t.Fatalf("%s: unscaled parameter changed value %v -> %v", p.Name, p.Value, p.ChainValue())
			}
		default:
			t.Fatalf("unexpected parameter %q", p.Name)
		}
	}
}
