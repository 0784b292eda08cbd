package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffNaN(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, math.NaN()}, []float64{1, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if !math.IsNaN(d) {
		t.Fatalf("MaxAbsDiff = %v, want NaN", d)
	}
}

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1, 1e-12, true},
		{1e6, 1e6 + 1e-7, 1e-12, true},
		{1, 1.1, 1e-3, false},
		{0, 1e-13, 1e-12, true},
		{math.NaN(), math.NaN(), 1, false},
	}
	for _, tc := range tests {
		if got := NearlyEqual(tc.a, tc.b, tc.eps); got != tc.want {
			t.Errorf("NearlyEqual(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.eps, got, tc.want)
		}
	}
}

func TestScenarioCFAtZeroAndOne(t *testing.T) {
	s := ReferenceScenario
	cf := s.CF()

	if got := cf(0); got != 1 {
		t.Fatalf("cf(0) = %v, want 1", got)
	}

	// E[S_T/S_0] = exp(r·t) under the risk-neutral measure.
	got := real(cf(1))
	want := math.Exp(s.R * s.T)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("cf(1) = %v, want %v", got, want)
	}
}
