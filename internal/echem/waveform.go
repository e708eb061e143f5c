package echem

import "math"

// CyclicPotential returns the applied potential at time t seconds into one
// cyclic voltammetry cycle: start -> first limit -> second limit -> end,
// swept at rate V/s. Past the end of the cycle it clamps to the end voltage.
func CyclicPotential(t, start, firstLimit, secondLimit, end, rate float64) float64 {
	legs := [][2]float64{
		{start, firstLimit},
		{firstLimit, secondLimit},
		{secondLimit, end},
	}
	for _, leg := range legs {
		dur := math.Abs(leg[1]-leg[0]) / rate
		if t <= dur {
			return leg[0] + sign(leg[1]-leg[0])*rate*t
		}
		t -= dur
	}
	return end
}

// CyclicDuration returns the duration in seconds of one cyclic voltammetry
// cycle swept at rate V/s.
func CyclicDuration(start, firstLimit, secondLimit, end, rate float64) float64 {
	total := math.Abs(firstLimit-start) + math.Abs(secondLimit-firstLimit) + math.Abs(end-secondLimit)
	return total / rate
}

// SweepValue returns the swept quantity (potential or current) at time t of
// a linear sweep from start to end at rate units/s, clamped at end.
func SweepValue(t, start, end, rate float64) float64 {
	v := start + sign(end-start)*rate*t
	if start < end {
		return math.Min(v, end)
	}
	return math.Max(v, end)
}

// SweepDuration returns the duration in seconds of a linear sweep.
func SweepDuration(start, end, rate float64) float64 {
	return math.Abs(end-start) / rate
}

// StaircasePulsePotential returns the applied potential at time t of a
// pulsed staircase: the base potential steps by step volts every period
// seconds, and during the first width seconds of each period a pulse of
// height volts is superimposed. Normal pulse voltammetry uses height = 0
// with the pulse amplitude carried by the staircase itself.
func StaircasePulsePotential(t, start, step, height, width, period float64) float64 {
	n := math.Floor(t / period)
	base := start + n*step
	if t-n*period < width {
		return base + height
	}
	return base
}

// PulseStepCount returns the number of staircase steps a pulse element takes
// to move from start to end in increments of step.
func PulseStepCount(start, end, step float64) int {
	if step == 0 {
		return 0
	}
	return int(math.Ceil(math.Abs(end-start) / math.Abs(step)))
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
