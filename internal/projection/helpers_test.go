package projection

import (
	"math"
	"testing"
)

// approx reports whether two values agree within a small relative tolerance.
func approx(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= 1e-9*math.Max(scale, 1)
}

func assertSeries(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("year %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func assertLength(t *testing.T, values []float64, years int) {
	t.Helper()
	if len(values) != years+1 {
		t.Fatalf("expected length %d for %d years, got %d", years+1, years, len(values))
	}
}
