package core

import (
	"math"
	"testing"
)

func TestClipLimit(t *testing.T) {
	tests := []struct {
		name   string
		v      int32
		clip   Sample
		result Sample
		want   Sample
	}{
		{name: "inside", v: 1000, clip: 4990, result: 6500, want: 1000},
		{name: "at positive limit", v: 4990, clip: 4990, result: 6500, want: 4990},
		{name: "at negative limit", v: -4990, clip: 4990, result: 6500, want: -4990},
		{name: "above", v: 4991, clip: 4990, result: 6500, want: 6500},
		{name: "below", v: -5000, clip: 4990, result: 6500, want: -6500},
		{name: "wide overflow", v: 1 << 20, clip: MaxSample, result: MaxSample, want: MaxSample},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipLimit(tt.v, tt.clip, tt.result)
			if got != tt.want {
				t.Fatalf("ClipLimit(%d, %d, %d) = %d, want %d", tt.v, tt.clip, tt.result, got, tt.want)
			}
		})
	}
}

func TestClipStaysInRange(t *testing.T) {
	for v := int32(-70000); v <= 70000; v += 7 {
		got := Clip(v)
		if got < -MaxSample || got > MaxSample {
			t.Fatalf("Clip(%d) = %d out of range", v, got)
		}

		if v >= -int32(MaxSample) && v <= int32(MaxSample) && int32(got) != v {
			t.Fatalf("Clip(%d) = %d, want identity", v, got)
		}
	}

	if got := Clip(int32(MinSample)); got != -MaxSample {
		t.Fatalf("Clip(MinSample) = %d, want %d", got, -MaxSample)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{in: 1.9, want: 1},
		{in: -1.9, want: -1},
		{in: 16383.5, want: 16383},
		{in: math.NaN(), want: 0},
		{in: math.Inf(1), want: math.MaxInt32},
		{in: -1e20, want: math.MinInt32},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in); got != tt.want {
			t.Fatalf("Truncate(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		x    int64
		want int64
	}{
		{x: 4225, want: 38},
		{x: 0, want: 0},
		{x: -4225, want: -39},
		{x: 32767, want: 300},
		{x: -32768, want: -300},
	}

	for _, tt := range tests {
		if got := Map(tt.x, -32768, 32767, -300, 300); got != tt.want {
			t.Fatalf("Map(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}

	if got := Map(5, 1, 1, 7, 9); got != 7 {
		t.Fatalf("degenerate Map = %d, want 7", got)
	}
}

func TestFloatConversions(t *testing.T) {
	if got := FromFloat(0.5); got != 16384 {
		t.Fatalf("FromFloat(0.5) = %d, want 16384", got)
	}

	if got := FromFloat(2); got != MaxSample {
		t.Fatalf("FromFloat(2) = %d, want %d", got, MaxSample)
	}

	if got := ToFloat(-16384); got != -0.5 {
		t.Fatalf("ToFloat(-16384) = %v, want -0.5", got)
	}
}
