package models

// ElementKind identifies the type of an electrochemical experiment element.
type ElementKind string

const (
	ElementOpenCircuit        ElementKind = "open_circuit"
	ElementConstantCurrent    ElementKind = "constant_current"
	ElementConstantPotential  ElementKind = "constant_potential"
	ElementConstantPower      ElementKind = "constant_power"
	ElementConstantResistance ElementKind = "constant_resistance"
	ElementCyclicVoltammetry  ElementKind = "cyclic_voltammetry"
	ElementDCCurrentSweep     ElementKind = "dc_current_sweep"
	ElementDCPotentialSweep   ElementKind = "dc_potential_sweep"
	ElementDiffPulse          ElementKind = "diff_pulse_voltammetry"
	ElementNormalPulse        ElementKind = "normal_pulse_voltammetry"
	ElementSquareWave         ElementKind = "square_wave_voltammetry"
	ElementEISPotentiostatic  ElementKind = "eis_potentiostatic"
	ElementEISGalvanostatic   ElementKind = "eis_galvanostatic"
)

// Element represents one step of an experiment. Params is the JSON-encoded
// kind-specific parameter struct (see params.go). Repeats is the number of
// times the element runs back to back (cycles for CV/SWV, runs for EIS).
type Element struct {
	ID           int64       `db:"id" json:"id"`
	ExperimentID int64       `db:"experiment_id" json:"experiment_id"`
	Position     int         `db:"position" json:"position"`
	Kind         ElementKind `db:"kind" json:"kind"`
	Repeats      int         `db:"repeats" json:"repeats"`
	Params       string      `db:"params" json:"params"`
}

// IsEIS reports whether the element produces AC (impedance) data.
// All other kinds produce DC data.
func (k ElementKind) IsEIS() bool {
	return k == ElementEISPotentiostatic || k == ElementEISGalvanostatic
}

// KnownElementKind reports whether k is one of the supported element kinds.
func KnownElementKind(k ElementKind) bool {
	switch k {
	case ElementOpenCircuit, ElementConstantCurrent, ElementConstantPotential,
		ElementConstantPower, ElementConstantResistance, ElementCyclicVoltammetry,
		ElementDCCurrentSweep, ElementDCPotentialSweep, ElementDiffPulse,
		ElementNormalPulse, ElementSquareWave, ElementEISPotentiostatic,
		ElementEISGalvanostatic:
		return true
	}
	return false
}
