package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"squidstatControl/models"
)

// ListByUserPage returns a page of experiments for a user ordered by
// created_at desc, id desc. Uses keyset pagination with a numeric cursor
// (created unix seconds, id).
func (r *ExperimentRepository) ListByUserPage(ctx context.Context, userID int64, pageSize int, afterSeconds int64, afterID int64) ([]models.Experiment, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rows *sql.Rows
	var err error
	if afterSeconds > 0 && afterID > 0 {
		// Keyset pagination using numeric time to avoid string-format pitfalls
		rows, err = r.db.QueryContext(ctx, `
SELECT `+experimentCols+`
FROM experiments
WHERE submitted_by = ?
  AND (
        CAST(strftime('%s', created_at) AS INTEGER) < ?
        OR (CAST(strftime('%s', created_at) AS INTEGER) = ? AND id < ?)
      )
ORDER BY created_at DESC, id DESC
LIMIT ?`, userID, afterSeconds, afterSeconds, afterID, pageSize)
	} else {
		rows, err = r.db.QueryContext(ctx, `
SELECT `+experimentCols+`
FROM experiments
WHERE submitted_by = ?
ORDER BY created_at DESC, id DESC
LIMIT ?`, userID, pageSize)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExperimentRows(rows)
}

// ListExperimentsAdminParams represents filters and pagination for ListAdmin (admin).
type ListExperimentsAdminParams struct {
	Statuses     []models.ExperimentStatus
	InstrumentID *int64
	SubmittedBy  *int64
	CreatedFrom  *string // optional inclusive lower bound on created_at
	CreatedTo    *string // optional inclusive upper bound on created_at
	PageSize     int
	AfterSeconds int64 // keyset cursor: created_at unix seconds
	AfterID      int64 // keyset cursor: experiment id
}

// ListAdmin returns experiments matching filters ordered by created_at desc,
// id desc with keyset pagination.
func (r *ExperimentRepository) ListAdmin(ctx context.Context, p ListExperimentsAdminParams) ([]models.Experiment, error) {
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var where []string
	var args []any

	if len(p.Statuses) > 0 {
		placeholders := make([]string, len(p.Statuses))
		for i, s := range p.Statuses {
			placeholders[i] = "?"
			args = append(args, string(s))
		}
		where = append(where, "status IN ("+strings.Join(placeholders, ",")+")")
	}
	if p.InstrumentID != nil {
		where = append(where, "instrument_id = ?")
		args = append(args, *p.InstrumentID)
	}
	if p.SubmittedBy != nil {
		where = append(where, "submitted_by = ?")
		args = append(args, *p.SubmittedBy)
	}
	if p.CreatedFrom != nil {
		where = append(where, "created_at >= ?")
		args = append(args, *p.CreatedFrom)
	}
	if p.CreatedTo != nil {
		where = append(where, "created_at <= ?")
		args = append(args, *p.CreatedTo)
	}
	if p.AfterSeconds > 0 && p.AfterID > 0 {
		where = append(where, "(CAST(strftime('%s', created_at) AS INTEGER) < ? OR (CAST(strftime('%s', created_at) AS INTEGER) = ? AND id < ?))")
		args = append(args, p.AfterSeconds, p.AfterSeconds, p.AfterID)
	}

	query := `SELECT ` + experimentCols + ` FROM experiments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, p.PageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExperimentRows(rows)
}

// ClaimNextQueued atomically claims the oldest queued experiment for the
// given instrument channel by transitioning it to 'uploaded'. FIFO by
// created_at asc, then id asc. Returns nil when the queue is empty.
func (r *ExperimentRepository) ClaimNextQueued(ctx context.Context, instrumentID int64, channel int) (*models.Experiment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
SELECT `+experimentCols+`
FROM experiments
WHERE instrument_id = ? AND channel = ? AND status = ?
ORDER BY created_at ASC, id ASC
LIMIT 1`, instrumentID, channel, string(models.ExperimentStatusQueued))
	e, err := scanExperiment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `UPDATE experiments SET status = ? WHERE id = ? AND status = ?`,
		string(models.ExperimentStatusUploaded), e.ID, string(models.ExperimentStatusQueued))
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Lost the claim race (another runner or a withdraw); caller retries.
		return nil, nil
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	e.Status = models.ExperimentStatusUploaded
	return e, nil
}

// RunningByInstrumentChannel returns the experiment currently running or
// paused on the given channel, if any.
func (r *ExperimentRepository) RunningByInstrumentChannel(ctx context.Context, instrumentID int64, channel int) (*models.Experiment, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `
SELECT `+experimentCols+`
FROM experiments
WHERE instrument_id = ? AND channel = ? AND status IN (?,?,?)
ORDER BY id ASC
LIMIT 1`, instrumentID, channel,
		string(models.ExperimentStatusUploaded), string(models.ExperimentStatusRunning), string(models.ExperimentStatusPaused))
	e, err := scanExperiment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// scanExperimentRows is a helper to scan rows into Experiment objects.
func scanExperimentRows(rows *sql.Rows) ([]models.Experiment, error) {
	var out []models.Experiment
	for rows.Next() {
		e, err := scanExperiment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
