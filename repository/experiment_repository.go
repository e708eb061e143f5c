package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"squidstatControl/models"
)

// ExperimentRepository is the core repository for Experiment entities.
// It handles CRUD, the element sequence, and status transitions.
type ExperimentRepository struct {
	db *sql.DB
}

// NewExperimentRepository creates a new ExperimentRepository.
func NewExperimentRepository(db *sql.DB) *ExperimentRepository {
	return &ExperimentRepository{db: db}
}

const experimentCols = `id, uuid, name, instrument_id, channel, submitted_by, status, created_at, started_at, finished_at, error`

// Create inserts an experiment and its elements in one transaction.
// Status defaults to 'queued' if empty. Elements get positions 0..n-1 in
// slice order; a repeats value below 1 is coerced to 1.
func (r *ExperimentRepository) Create(ctx context.Context, e *models.Experiment, elements []models.Element) (*models.Experiment, error) {
	if e == nil {
		return nil, errors.New("experiment is nil")
	}
	if len(elements) == 0 {
		return nil, errors.New("experiment has no elements")
	}
	if e.Status == "" {
		e.Status = models.ExperimentStatusQueued
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `INSERT INTO experiments (uuid, name, instrument_id, channel, submitted_by, status) VALUES (?,?,?,?,?,?)`,
		e.UUID, e.Name, e.InstrumentID, e.Channel, e.SubmittedBy, string(e.Status))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	for i, el := range elements {
		repeats := el.Repeats
		if repeats < 1 {
			repeats = 1
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO elements (experiment_id, position, kind, repeats, params) VALUES (?,?,?,?,?)`,
			id, i, string(el.Kind), repeats, el.Params); err != nil {
			return nil, fmt.Errorf("insert element %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	e2, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e2 == nil {
		return nil, fmt.Errorf("created experiment not found: id=%d", id)
	}
	return e2, nil
}

// GetByID fetches an experiment by its ID.
func (r *ExperimentRepository) GetByID(ctx context.Context, id int64) (*models.Experiment, error) {
	return r.getWhere(ctx, `id = ?`, id)
}

// GetByUUID fetches an experiment by its run token.
func (r *ExperimentRepository) GetByUUID(ctx context.Context, uuid string) (*models.Experiment, error) {
	return r.getWhere(ctx, `uuid = ?`, uuid)
}

func (r *ExperimentRepository) getWhere(ctx context.Context, where string, arg any) (*models.Experiment, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+experimentCols+` FROM experiments WHERE `+where, arg)
	e, err := scanExperiment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// ElementsByExperiment returns the ordered element sequence of an experiment.
func (r *ExperimentRepository) ElementsByExperiment(ctx context.Context, experimentID int64) ([]models.Element, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT id, experiment_id, position, kind, repeats, params FROM elements WHERE experiment_id = ? ORDER BY position ASC`, experimentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Element
	for rows.Next() {
		var el models.Element
		var kind string
		if err := rows.Scan(&el.ID, &el.ExperimentID, &el.Position, &kind, &el.Repeats, &el.Params); err != nil {
			return nil, err
		}
		el.Kind = models.ElementKind(kind)
		out = append(out, el)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus updates the status of an experiment.
func (r *ExperimentRepository) UpdateStatus(ctx context.Context, id int64, status models.ExperimentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `UPDATE experiments SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// MarkStarted transitions to running and stamps started_at.
func (r *ExperimentRepository) MarkStarted(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `UPDATE experiments SET status = ?, started_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(models.ExperimentStatusRunning), id)
	return err
}

// MarkFinished stamps finished_at with a terminal status and optional error message.
func (r *ExperimentRepository) MarkFinished(ctx context.Context, id int64, status models.ExperimentStatus, errMsg string) error {
	if !status.Terminal() {
		return fmt.Errorf("status %s is not terminal", status)
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `UPDATE experiments SET status = ?, finished_at = CURRENT_TIMESTAMP, error = ? WHERE id = ?`,
		string(status), errMsg, id)
	return err
}

// Withdraw aborts a queued experiment. Returns sql.ErrNoRows if the
// experiment is not in a withdrawable state.
func (r *ExperimentRepository) Withdraw(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE experiments SET status = ?, finished_at = CURRENT_TIMESTAMP WHERE id = ? AND status = ?`,
		string(models.ExperimentStatusAborted), id, string(models.ExperimentStatusQueued))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an experiment (elements and points cascade).
func (r *ExperimentRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `DELETE FROM experiments WHERE id = ?`, id)
	return err
}

// scanExperiment is a helper to scan one experiment row.
func scanExperiment(row rowScanner) (*models.Experiment, error) {
	var e models.Experiment
	var status string
	var started, finished sql.NullString
	if err := row.Scan(&e.ID, &e.UUID, &e.Name, &e.InstrumentID, &e.Channel, &e.SubmittedBy, &status, &e.CreatedAt, &started, &finished, &e.Error); err != nil {
		return nil, err
	}
	e.Status = models.ExperimentStatus(status)
	if started.Valid {
		v := started.String
		e.StartedAt = &v
	}
	if finished.Valid {
		v := finished.String
		e.FinishedAt = &v
	}
	return &e, nil
}
