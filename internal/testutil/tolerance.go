package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-fx/dsp/core"
)

// RequireSamplesEqual fails t if got and want differ in length or content.
func RequireSamplesEqual(t *testing.T, got, want []core.Sample) {
	t.Helper()
	RequireSamplesWithin(t, got, want, 0)
}

// RequireSamplesWithin fails t if got and want differ in length or if any
// element pair differs by more than tol.
func RequireSamplesWithin(t *testing.T, got, want []core.Sample, tol int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := int(got[i]) - int(want[i])
		if diff < -tol || diff > tol {
			t.Fatalf("index %d: got %d, want %d (diff %d > tol %d)", i, got[i], want[i], diff, tol)
		}
	}
}

// RequireNearlyEqual fails t if |got-want| exceeds eps.
func RequireNearlyEqual(t *testing.T, got, want, eps float64, what string) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > eps {
		t.Fatalf("%s = %v, want %v ± %v", what, got, want, eps)
	}
}

// MaxAbs returns the largest magnitude in samples.
func MaxAbs(samples []core.Sample) int {
	peak := 0
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []core.Sample) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
