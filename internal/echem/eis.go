package echem

import (
	"math"
	"math/cmplx"
)

// Randles cell parameters used by the simulated instrument: solution
// resistance in series with a charge-transfer resistance shunted by a
// double-layer capacitance.
const (
	RandlesRs  = 20.0    // solution resistance, Ohm
	RandlesRct = 250.0   // charge transfer resistance, Ohm
	RandlesCdl = 20.0e-6 // double layer capacitance, F
)

// FrequencyLadder returns the measurement frequencies for an EIS sweep from
// start down (or up) to end with the given number of points per decade.
// Both endpoints are included; the ladder is log-spaced.
func FrequencyLadder(start, end float64, pointsPerDecade int) []float64 {
	if start <= 0 || end <= 0 || pointsPerDecade <= 0 {
		return nil
	}
	if start == end {
		return []float64{start}
	}
	decades := math.Abs(math.Log10(start) - math.Log10(end))
	n := int(math.Ceil(decades*float64(pointsPerDecade))) + 1
	if n < 2 {
		n = 2
	}
	step := (math.Log10(end) - math.Log10(start)) / float64(n-1)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Pow(10, math.Log10(start)+float64(i)*step)
	}
	// Pin the endpoints exactly; accumulated float error otherwise shifts them.
	out[0] = start
	out[n-1] = end
	return out
}

// RandlesImpedance returns the complex impedance of the Randles cell at
// frequency f Hz.
func RandlesImpedance(f float64) complex128 {
	omega := 2 * math.Pi * f
	zc := complex(0, -1/(omega*RandlesCdl))
	zrct := complex(RandlesRct, 0)
	parallel := zrct * zc / (zrct + zc)
	return complex(RandlesRs, 0) + parallel
}

// Polar returns magnitude and phase (degrees) of a complex impedance.
func Polar(z complex128) (mag, phaseDeg float64) {
	return cmplx.Abs(z), cmplx.Phase(z) * 180 / math.Pi
}
