package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 5}, // swapped bounds
		{0, 0, 0, 0},
	}

	for _, tc := range cases {
		if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Error("values within eps reported unequal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Error("distant values reported equal")
	}

	// Relative comparison for large magnitudes.
	if !NearlyEqual(1e12, 1e12+1, 1e-9) {
		t.Error("relatively close large values reported unequal")
	}

	// Non-positive eps falls back to the default.
	if !NearlyEqual(1.0, 1.0, 0) {
		t.Error("identical values unequal with eps = 0")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(0) || !IsFinite(-1e300) {
		t.Error("finite value reported non-finite")
	}

	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("non-finite value reported finite")
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-31); got != 0 {
		t.Errorf("FlushDenormals(1e-31) = %v, want 0", got)
	}

	if got := FlushDenormals(1e-20); got != 1e-20 {
		t.Errorf("FlushDenormals(1e-20) = %v, want unchanged", got)
	}

	if got := FlushDenormals(-1e-31); got != 0 {
		t.Errorf("FlushDenormals(-1e-31) = %v, want 0", got)
	}
}
