package models

// ExperimentStatus represents the current progress of an experiment.
type ExperimentStatus string

const (
	ExperimentStatusQueued    ExperimentStatus = "queued"
	ExperimentStatusUploaded  ExperimentStatus = "uploaded"
	ExperimentStatusRunning   ExperimentStatus = "running"
	ExperimentStatusPaused    ExperimentStatus = "paused"
	ExperimentStatusCompleted ExperimentStatus = "completed"
	ExperimentStatusFailed    ExperimentStatus = "failed"
	ExperimentStatusAborted   ExperimentStatus = "aborted"
)

// Experiment represents a sequence of electrochemical elements to be run on
// one channel of an instrument. It has a one-to-one relation to User via
// SubmittedBy and a one-to-many relation to Element.
type Experiment struct {
	ID           int64            `db:"id" json:"id"`
	UUID         string           `db:"uuid" json:"uuid"`
	Name         string           `db:"name" json:"name"`
	InstrumentID int64            `db:"instrument_id" json:"instrument_id"`
	Channel      int              `db:"channel" json:"channel"`
	SubmittedBy  int64            `db:"submitted_by" json:"submitted_by"`
	Status       ExperimentStatus `db:"status" json:"status"`
	CreatedAt    string           `db:"created_at" json:"created_at"`
	// StartedAt/FinishedAt are nullable in DB; pointers distinguish null vs zero.
	StartedAt  *string `db:"started_at" json:"started_at,omitempty"`
	FinishedAt *string `db:"finished_at" json:"finished_at,omitempty"`
	// Error holds the failure reason when Status is failed.
	Error string `db:"error" json:"error,omitempty"`
}

// Terminal reports whether the status can no longer change.
func (s ExperimentStatus) Terminal() bool {
	switch s {
	case ExperimentStatusCompleted, ExperimentStatusFailed, ExperimentStatusAborted:
		return true
	}
	return false
}
