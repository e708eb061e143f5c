package models

// ACDataPoint is one row of impedance data streamed during an EIS element.
// The column set matches the vendor AC data callback payload.
type ACDataPoint struct {
	ID                 int64   `db:"id" json:"id"`
	ExperimentID       int64   `db:"experiment_id" json:"experiment_id"`
	ElementPosition    int     `db:"element_position" json:"element_position"`
	Timestamp          float64 `db:"timestamp" json:"timestamp"`
	Frequency          float64 `db:"frequency" json:"frequency"`
	AbsoluteImpedance  float64 `db:"absolute_impedance" json:"absolute_impedance"`
	PhaseAngle         float64 `db:"phase_angle" json:"phase_angle"`
	RealImpedance      float64 `db:"real_impedance" json:"real_impedance"`
	ImagImpedance      float64 `db:"imag_impedance" json:"imag_impedance"`
	TotalHarmonicDist  float64 `db:"thd" json:"total_harmonic_distortion"`
	NumberOfCycles     int     `db:"number_of_cycles" json:"number_of_cycles"`
	WorkingDCVoltage   float64 `db:"working_dc_voltage" json:"working_electrode_dc_voltage"`
	DCCurrent          float64 `db:"dc_current" json:"dc_current"`
	CurrentAmplitude   float64 `db:"current_amplitude" json:"current_amplitude"`
	VoltageAmplitude   float64 `db:"voltage_amplitude" json:"voltage_amplitude"`
}

// DCDataPoint is one row of time-domain data streamed during non-EIS elements.
type DCDataPoint struct {
	ID              int64   `db:"id" json:"id"`
	ExperimentID    int64   `db:"experiment_id" json:"experiment_id"`
	ElementPosition int     `db:"element_position" json:"element_position"`
	Timestamp       float64 `db:"timestamp" json:"timestamp"`
	WorkingVoltage  float64 `db:"working_voltage" json:"working_electrode_voltage"`
	WorkingCurrent  float64 `db:"working_current" json:"working_electrode_current"`
	Temperature     float64 `db:"temperature" json:"temperature"`
}

// ElementEvent records an element (step) starting during a run.
type ElementEvent struct {
	ID            int64  `db:"id" json:"id"`
	ExperimentID  int64  `db:"experiment_id" json:"experiment_id"`
	StepName      string `db:"step_name" json:"step_name"`
	StepNumber    int    `db:"step_number" json:"step_number"`
	SubstepNumber int    `db:"substep_number" json:"substep_number"`
	OccurredAt    string `db:"occurred_at" json:"occurred_at"`
}
