package models

import (
	"encoding/json"
	"fmt"
)

// ElementSpec is implemented by every kind-specific parameter struct.
// Validate reports the first invalid field; defaults follow the vendor
// wrapper's documented values.
type ElementSpec interface {
	Kind() ElementKind
	Validate() error
}

// OpenCircuitParams measures open circuit potential for Duration seconds.
type OpenCircuitParams struct {
	Duration         float64 `json:"duration"`
	SamplingInterval float64 `json:"sampling_interval"`
}

func NewOpenCircuitParams() OpenCircuitParams {
	return OpenCircuitParams{Duration: 10, SamplingInterval: 0.01}
}

func (OpenCircuitParams) Kind() ElementKind { return ElementOpenCircuit }

func (p OpenCircuitParams) Validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", p.Duration)
	}
	return validSampling(p.SamplingInterval)
}

// ConstantCurrentParams holds the cell at Current amps for Duration seconds.
type ConstantCurrentParams struct {
	Current          float64 `json:"current"`
	SamplingInterval float64 `json:"sampling_interval"`
	Duration         float64 `json:"duration"`
}

func NewConstantCurrentParams() ConstantCurrentParams {
	return ConstantCurrentParams{Current: 0.01, SamplingInterval: 0.01, Duration: 10}
}

func (ConstantCurrentParams) Kind() ElementKind { return ElementConstantCurrent }

func (p ConstantCurrentParams) Validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", p.Duration)
	}
	return validSampling(p.SamplingInterval)
}

// ConstantPotentialParams holds the cell at Voltage volts for Duration seconds.
type ConstantPotentialParams struct {
	Voltage          float64 `json:"voltage"`
	SamplingInterval float64 `json:"sampling_interval"`
	Duration         float64 `json:"duration"`
}

func NewConstantPotentialParams() ConstantPotentialParams {
	return ConstantPotentialParams{Voltage: 0.01, SamplingInterval: 0.01, Duration: 10}
}

func (ConstantPotentialParams) Kind() ElementKind { return ElementConstantPotential }

func (p ConstantPotentialParams) Validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", p.Duration)
	}
	return validSampling(p.SamplingInterval)
}

// ConstantPowerParams holds the cell at Power watts. IsCharge selects the
// sign convention (charging vs discharging).
type ConstantPowerParams struct {
	IsCharge         bool    `json:"is_charge"`
	Power            float64 `json:"power"`
	Duration         float64 `json:"duration"`
	SamplingInterval float64 `json:"sampling_interval"`
}

func NewConstantPowerParams() ConstantPowerParams {
	return ConstantPowerParams{Power: 0, Duration: 10, SamplingInterval: 0.01}
}

func (ConstantPowerParams) Kind() ElementKind { return ElementConstantPower }

func (p ConstantPowerParams) Validate() error {
	if p.Power < 0 {
		return fmt.Errorf("power must be non-negative, got %g", p.Power)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", p.Duration)
	}
	return validSampling(p.SamplingInterval)
}

// ConstantResistanceParams holds the cell at Resistance ohms.
type ConstantResistanceParams struct {
	Resistance       float64 `json:"resistance"`
	Duration         float64 `json:"duration"`
	SamplingInterval float64 `json:"sampling_interval"`
}

func NewConstantResistanceParams() ConstantResistanceParams {
	return ConstantResistanceParams{Resistance: 100, Duration: 10, SamplingInterval: 0.01}
}

func (ConstantResistanceParams) Kind() ElementKind { return ElementConstantResistance }

func (p ConstantResistanceParams) Validate() error {
	if p.Resistance <= 0 {
		return fmt.Errorf("resistance must be positive, got %g", p.Resistance)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", p.Duration)
	}
	return validSampling(p.SamplingInterval)
}

// CyclicVoltammetryParams sweeps potential from StartVoltage to the first
// limit, to the second limit, and back to EndVoltage at ScanRate V/s.
type CyclicVoltammetryParams struct {
	StartVoltage       float64 `json:"start_voltage"`
	FirstVoltageLimit  float64 `json:"first_voltage_limit"`
	SecondVoltageLimit float64 `json:"second_voltage_limit"`
	EndVoltage         float64 `json:"end_voltage"`
	ScanRate           float64 `json:"scan_rate"`
	SamplingInterval   float64 `json:"sampling_interval"`
}

func NewCyclicVoltammetryParams() CyclicVoltammetryParams {
	return CyclicVoltammetryParams{
		StartVoltage:       0,
		FirstVoltageLimit:  0.6,
		SecondVoltageLimit: 0,
		EndVoltage:         0,
		ScanRate:           0.1,
		SamplingInterval:   0.01,
	}
}

func (CyclicVoltammetryParams) Kind() ElementKind { return ElementCyclicVoltammetry }

func (p CyclicVoltammetryParams) Validate() error {
	if p.ScanRate <= 0 {
		return fmt.Errorf("scan rate must be positive, got %g", p.ScanRate)
	}
	return validSampling(p.SamplingInterval)
}

// DCCurrentSweepParams sweeps current linearly at ScanRate A/s.
type DCCurrentSweepParams struct {
	StartCurrent     float64 `json:"start_current"`
	EndCurrent       float64 `json:"end_current"`
	ScanRate         float64 `json:"scan_rate"`
	SamplingInterval float64 `json:"sampling_interval"`
}

func NewDCCurrentSweepParams() DCCurrentSweepParams {
	return DCCurrentSweepParams{StartCurrent: 0.1, EndCurrent: 0.6, ScanRate: 0.1, SamplingInterval: 0.01}
}

func (DCCurrentSweepParams) Kind() ElementKind { return ElementDCCurrentSweep }

func (p DCCurrentSweepParams) Validate() error {
	if p.ScanRate <= 0 {
		return fmt.Errorf("scan rate must be positive, got %g", p.ScanRate)
	}
	if p.StartCurrent == p.EndCurrent {
		return fmt.Errorf("start and end current must differ")
	}
	return validSampling(p.SamplingInterval)
}

// DCPotentialSweepParams sweeps potential linearly at ScanRate V/s.
type DCPotentialSweepParams struct {
	StartPotential   float64 `json:"start_potential"`
	EndPotential     float64 `json:"end_potential"`
	ScanRate         float64 `json:"scan_rate"`
	SamplingInterval float64 `json:"sampling_interval"`
}

func NewDCPotentialSweepParams() DCPotentialSweepParams {
	return DCPotentialSweepParams{StartPotential: 0.1, EndPotential: 0.6, ScanRate: 0.1, SamplingInterval: 0.01}
}

func (DCPotentialSweepParams) Kind() ElementKind { return ElementDCPotentialSweep }

func (p DCPotentialSweepParams) Validate() error {
	if p.ScanRate <= 0 {
		return fmt.Errorf("scan rate must be positive, got %g", p.ScanRate)
	}
	if p.StartPotential == p.EndPotential {
		return fmt.Errorf("start and end potential must differ")
	}
	return validSampling(p.SamplingInterval)
}

// DiffPulseParams steps potential from start to end, superimposing a pulse
// of PulseHeight volts every PulsePeriod seconds.
type DiffPulseParams struct {
	StartPotential float64 `json:"start_potential"`
	EndPotential   float64 `json:"end_potential"`
	PotentialStep  float64 `json:"potential_step"`
	PulseHeight    float64 `json:"pulse_height"`
	PulseWidth     float64 `json:"pulse_width"`
	PulsePeriod    float64 `json:"pulse_period"`
}

func NewDiffPulseParams() DiffPulseParams {
	return DiffPulseParams{
		StartPotential: 0.1,
		EndPotential:   0.6,
		PotentialStep:  0.01,
		PulseHeight:    0.01,
		PulseWidth:     0.02,
		PulsePeriod:    0.2,
	}
}

func (DiffPulseParams) Kind() ElementKind { return ElementDiffPulse }

func (p DiffPulseParams) Validate() error {
	return validatePulse(p.PotentialStep, p.PulseWidth, p.PulsePeriod)
}

// NormalPulseParams steps potential with pulses of increasing amplitude.
type NormalPulseParams struct {
	StartPotential float64 `json:"start_potential"`
	EndPotential   float64 `json:"end_potential"`
	PotentialStep  float64 `json:"potential_step"`
	PulseWidth     float64 `json:"pulse_width"`
	PulsePeriod    float64 `json:"pulse_period"`
}

func NewNormalPulseParams() NormalPulseParams {
	return NormalPulseParams{
		StartPotential: 0.1,
		EndPotential:   0.6,
		PotentialStep:  0.01,
		PulseWidth:     0.02,
		PulsePeriod:    0.2,
	}
}

func (NormalPulseParams) Kind() ElementKind { return ElementNormalPulse }

func (p NormalPulseParams) Validate() error {
	return validatePulse(p.PotentialStep, p.PulseWidth, p.PulsePeriod)
}

// SquareWaveParams sweeps potential between two limits with a square
// modulation, like CV but sampled at the end of each half-wave.
type SquareWaveParams struct {
	StartPotential     float64 `json:"start_potential"`
	FirstVoltageLimit  float64 `json:"first_voltage_limit"`
	SecondVoltageLimit float64 `json:"second_voltage_limit"`
	EndVoltage         float64 `json:"end_voltage"`
	ScanRate           float64 `json:"scan_rate"`
	SamplingInterval   float64 `json:"sampling_interval"`
}

func NewSquareWaveParams() SquareWaveParams {
	return SquareWaveParams{
		StartPotential:     0.1,
		FirstVoltageLimit:  0.6,
		SecondVoltageLimit: 0.1,
		EndVoltage:         0.01,
		ScanRate:           0.1,
		SamplingInterval:   0.01,
	}
}

func (SquareWaveParams) Kind() ElementKind { return ElementSquareWave }

func (p SquareWaveParams) Validate() error {
	if p.ScanRate <= 0 {
		return fmt.Errorf("scan rate must be positive, got %g", p.ScanRate)
	}
	return validSampling(p.SamplingInterval)
}

// EISPotentiostaticParams runs a potentiostatic impedance sweep from
// StartFrequency down to EndFrequency.
type EISPotentiostaticParams struct {
	StartFrequency   float64 `json:"start_frequency"`
	EndFrequency     float64 `json:"end_frequency"`
	PointsPerDecade  int     `json:"points_per_decade"`
	VoltageBias      float64 `json:"voltage_bias"`
	VoltageAmplitude float64 `json:"voltage_amplitude"`
}

func NewEISPotentiostaticParams() EISPotentiostaticParams {
	return EISPotentiostaticParams{
		StartFrequency:   10000,
		EndFrequency:     1000,
		PointsPerDecade:  10,
		VoltageBias:      0,
		VoltageAmplitude: 0.1,
	}
}

func (EISPotentiostaticParams) Kind() ElementKind { return ElementEISPotentiostatic }

func (p EISPotentiostaticParams) Validate() error {
	if err := validateFrequencies(p.StartFrequency, p.EndFrequency, p.PointsPerDecade); err != nil {
		return err
	}
	if p.VoltageAmplitude <= 0 {
		return fmt.Errorf("voltage amplitude must be positive, got %g", p.VoltageAmplitude)
	}
	return nil
}

// EISGalvanostaticParams runs a galvanostatic impedance sweep.
type EISGalvanostaticParams struct {
	StartFrequency   float64 `json:"start_frequency"`
	EndFrequency     float64 `json:"end_frequency"`
	PointsPerDecade  int     `json:"points_per_decade"`
	CurrentBias      float64 `json:"current_bias"`
	CurrentAmplitude float64 `json:"current_amplitude"`
}

func NewEISGalvanostaticParams() EISGalvanostaticParams {
	return EISGalvanostaticParams{
		StartFrequency:   10000,
		EndFrequency:     1000,
		PointsPerDecade:  10,
		CurrentBias:      0,
		CurrentAmplitude: 0.1,
	}
}

func (EISGalvanostaticParams) Kind() ElementKind { return ElementEISGalvanostatic }

func (p EISGalvanostaticParams) Validate() error {
	if err := validateFrequencies(p.StartFrequency, p.EndFrequency, p.PointsPerDecade); err != nil {
		return err
	}
	if p.CurrentAmplitude <= 0 {
		return fmt.Errorf("current amplitude must be positive, got %g", p.CurrentAmplitude)
	}
	return nil
}

func validSampling(interval float64) error {
	if interval <= 0 {
		return fmt.Errorf("sampling interval must be positive, got %g", interval)
	}
	return nil
}

func validatePulse(step, width, period float64) error {
	if step == 0 {
		return fmt.Errorf("potential step must be non-zero")
	}
	if width <= 0 {
		return fmt.Errorf("pulse width must be positive, got %g", width)
	}
	if period <= width {
		return fmt.Errorf("pulse period %g must exceed pulse width %g", period, width)
	}
	return nil
}

func validateFrequencies(start, end float64, perDecade int) error {
	if start <= 0 || end <= 0 {
		return fmt.Errorf("frequencies must be positive, got start=%g end=%g", start, end)
	}
	if perDecade <= 0 {
		return fmt.Errorf("points per decade must be positive, got %d", perDecade)
	}
	return nil
}

// EncodeParams serializes a spec to the JSON stored in Element.Params.
func EncodeParams(spec ElementSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", fmt.Errorf("invalid %s params: %w", spec.Kind(), err)
	}
	b, err := json.Marshal(spec)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeParams parses the JSON stored in Element.Params into the typed spec
// for the given kind and validates it.
func DecodeParams(kind ElementKind, raw string) (ElementSpec, error) {
	var spec ElementSpec
	switch kind {
	case ElementOpenCircuit:
		spec = decodeInto[OpenCircuitParams](raw)
	case ElementConstantCurrent:
		spec = decodeInto[ConstantCurrentParams](raw)
	case ElementConstantPotential:
		spec = decodeInto[ConstantPotentialParams](raw)
	case ElementConstantPower:
		spec = decodeInto[ConstantPowerParams](raw)
	case ElementConstantResistance:
		spec = decodeInto[ConstantResistanceParams](raw)
	case ElementCyclicVoltammetry:
		spec = decodeInto[CyclicVoltammetryParams](raw)
	case ElementDCCurrentSweep:
		spec = decodeInto[DCCurrentSweepParams](raw)
	case ElementDCPotentialSweep:
		spec = decodeInto[DCPotentialSweepParams](raw)
	case ElementDiffPulse:
		spec = decodeInto[DiffPulseParams](raw)
	case ElementNormalPulse:
		spec = decodeInto[NormalPulseParams](raw)
	case ElementSquareWave:
		spec = decodeInto[SquareWaveParams](raw)
	case ElementEISPotentiostatic:
		spec = decodeInto[EISPotentiostaticParams](raw)
	case ElementEISGalvanostatic:
		spec = decodeInto[EISGalvanostaticParams](raw)
	default:
		return nil, fmt.Errorf("unknown element kind %q", kind)
	}
	if spec == nil {
		return nil, fmt.Errorf("malformed %s params", kind)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s params: %w", kind, err)
	}
	return spec, nil
}

// decodeInto returns nil on malformed JSON so DecodeParams can report it.
func decodeInto[T ElementSpec](raw string) ElementSpec {
	var p T
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return p
}
