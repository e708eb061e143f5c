package echem

import (
	"math"
	"testing"
)

func TestFrequencyLadder_Endpoints(t *testing.T) {
	f := FrequencyLadder(10000, 1000, 10)
	if len(f) != 11 {
		t.Fatalf("one decade at 10 pts/decade: got %d points", len(f))
	}
	if f[0] != 10000 || f[len(f)-1] != 1000 {
		t.Fatalf("endpoints: %g .. %g", f[0], f[len(f)-1])
	}
	// Strictly descending.
	for i := 1; i < len(f); i++ {
		if f[i] >= f[i-1] {
			t.Fatalf("not descending at %d: %g >= %g", i, f[i], f[i-1])
		}
	}
}

func TestFrequencyLadder_SinglePointAndInvalid(t *testing.T) {
	if f := FrequencyLadder(100, 100, 10); len(f) != 1 || f[0] != 100 {
		t.Fatalf("equal endpoints: %v", f)
	}
	if f := FrequencyLadder(0, 100, 10); f != nil {
		t.Fatalf("expected nil for zero frequency, got %v", f)
	}
	if f := FrequencyLadder(100, 10, 0); f != nil {
		t.Fatalf("expected nil for zero density, got %v", f)
	}
}

func TestRandlesImpedance_Limits(t *testing.T) {
	// At very low frequency the capacitor blocks: |Z| -> Rs + Rct.
	lo, _ := Polar(RandlesImpedance(0.001))
	if math.Abs(lo-(RandlesRs+RandlesRct)) > 1 {
		t.Fatalf("low-frequency magnitude %g, want ~%g", lo, RandlesRs+RandlesRct)
	}
	// At very high frequency the capacitor shorts: |Z| -> Rs.
	hi, _ := Polar(RandlesImpedance(1e7))
	if math.Abs(hi-RandlesRs) > 1 {
		t.Fatalf("high-frequency magnitude %g, want ~%g", hi, RandlesRs)
	}
	// Phase is negative (capacitive) in between.
	_, phase := Polar(RandlesImpedance(100))
	if phase >= 0 {
		t.Fatalf("expected capacitive phase, got %g", phase)
	}
}
