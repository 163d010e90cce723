package effectchain

import (
	"math"
	"testing"
)

func TestParamsGetNum(t *testing.T) {
	t.Parallel()

	delay := func(v float64) Params {
		return Params{Type: TypeDelay, Num: map[string]float64{"durationMs": v}}
	}

	tests := []struct {
		name string
		p    Params
		key  string
		want float64
	}{
		{name: "stored value", p: delay(250), key: "durationMs", want: 250},
		{name: "missing key", p: delay(250), key: "feedback", want: 1000},
		{name: "nil map", p: Params{Type: TypeDelay}, key: "durationMs", want: 1000},
		{name: "NaN", p: delay(math.NaN()), key: "durationMs", want: 1000},
		{name: "+Inf", p: delay(math.Inf(1)), key: "durationMs", want: 1000},
		{name: "-Inf", p: delay(math.Inf(-1)), key: "durationMs", want: 1000},
		{name: "zero", p: delay(0), key: "durationMs", want: 0},
		// Range checks belong to the effect setters, not to Params.
		{name: "negative", p: delay(-20), key: "durationMs", want: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.p.GetNum(tt.key, 1000); got != tt.want {
				t.Errorf("GetNum(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestParamsCloneAndWith(t *testing.T) {
	t.Parallel()

	orig := Params{ID: "n", Type: "boost", Num: map[string]float64{"volume": 2}}

	next := orig.With("volume", 3)
	if orig.Num["volume"] != 2 {
		t.Fatal("With modified the receiver")
	}

	if next.GetNum("volume", 0) != 3 || next.ID != "n" {
		t.Fatalf("With result = %+v", next)
	}

	empty := Params{}.Clone()
	if empty.Num == nil || empty.Str == nil {
		t.Fatal("Clone must allocate maps")
	}
}

func TestParamsGetStrAndHas(t *testing.T) {
	t.Parallel()

	p := Params{
		Num: map[string]float64{"ratio": 2},
		Str: map[string]string{"interpolation": "hermite"},
	}

	if p.GetStr("interpolation", "linear") != "hermite" || p.GetStr("missing", "x") != "x" {
		t.Fatal("GetStr returned unexpected values")
	}

	if !p.Has("ratio") || p.Has("interpolation") {
		t.Fatal("Has reports string or missing keys incorrectly")
	}
}
