package echem

import (
	"math"
	"testing"
)

func TestCyclicPotential_Triangle(t *testing.T) {
	// 0 -> 0.6 -> 0 -> 0 at 0.1 V/s: forward leg takes 6 s, reverse 6 s.
	if got := CyclicPotential(0, 0, 0.6, 0, 0, 0.1); got != 0 {
		t.Fatalf("t=0: got %g want 0", got)
	}
	if got := CyclicPotential(3, 0, 0.6, 0, 0, 0.1); math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("t=3: got %g want 0.3", got)
	}
	if got := CyclicPotential(6, 0, 0.6, 0, 0, 0.1); math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("t=6 (vertex): got %g want 0.6", got)
	}
	if got := CyclicPotential(9, 0, 0.6, 0, 0, 0.1); math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("t=9: got %g want 0.3", got)
	}
	// Past the cycle clamps to end.
	if got := CyclicPotential(100, 0, 0.6, 0, 0, 0.1); got != 0 {
		t.Fatalf("t=100: got %g want 0", got)
	}
}

func TestCyclicDuration(t *testing.T) {
	if got := CyclicDuration(0, 0.6, 0, 0, 0.1); math.Abs(got-12) > 1e-9 {
		t.Fatalf("got %g want 12", got)
	}
}

func TestSweepValue_Clamps(t *testing.T) {
	if got := SweepValue(2, 0.1, 0.6, 0.1); math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("mid sweep: got %g want 0.3", got)
	}
	if got := SweepValue(1000, 0.1, 0.6, 0.1); got != 0.6 {
		t.Fatalf("clamp: got %g want 0.6", got)
	}
	// Downward sweep
	if got := SweepValue(2, 0.6, 0.1, 0.1); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("down sweep: got %g want 0.4", got)
	}
}

func TestStaircasePulsePotential(t *testing.T) {
	// step 0.01 V every 0.2 s, pulse 0.05 V for the first 0.02 s.
	if got := StaircasePulsePotential(0.01, 0.1, 0.01, 0.05, 0.02, 0.2); math.Abs(got-0.15) > 1e-9 {
		t.Fatalf("in pulse: got %g want 0.15", got)
	}
	if got := StaircasePulsePotential(0.1, 0.1, 0.01, 0.05, 0.02, 0.2); math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("off pulse: got %g want 0.1", got)
	}
	if got := StaircasePulsePotential(0.41, 0.1, 0.01, 0.05, 0.02, 0.2); math.Abs(got-0.17) > 1e-9 {
		t.Fatalf("third step in pulse: got %g want 0.17", got)
	}
}

func TestPulseStepCount(t *testing.T) {
	if got := PulseStepCount(0.1, 0.6, 0.01); got != 50 {
		t.Fatalf("got %d want 50", got)
	}
	if got := PulseStepCount(0.6, 0.1, -0.01); got != 50 {
		t.Fatalf("descending: got %d want 50", got)
	}
}
