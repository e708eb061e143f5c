package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"squidstatControl/models"
)

// MeasurementRepository stores and pages the AC/DC data points and element
// events streamed during a run.
type MeasurementRepository struct {
	db *sql.DB
}

func NewMeasurementRepository(db *sql.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

const acCols = `id, experiment_id, element_position, timestamp, frequency, absolute_impedance, phase_angle, real_impedance, imag_impedance, thd, number_of_cycles, working_dc_voltage, dc_current, current_amplitude, voltage_amplitude`

const dcCols = `id, experiment_id, element_position, timestamp, working_voltage, working_current, temperature`

func (r *MeasurementRepository) InsertAC(ctx context.Context, p *models.ACDataPoint) error {
	if p == nil {
		return errors.New("point is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `INSERT INTO ac_points (experiment_id, element_position, timestamp, frequency, absolute_impedance, phase_angle, real_impedance, imag_impedance, thd, number_of_cycles, working_dc_voltage, dc_current, current_amplitude, voltage_amplitude) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.ExperimentID, p.ElementPosition, p.Timestamp, p.Frequency, p.AbsoluteImpedance, p.PhaseAngle, p.RealImpedance, p.ImagImpedance, p.TotalHarmonicDist, p.NumberOfCycles, p.WorkingDCVoltage, p.DCCurrent, p.CurrentAmplitude, p.VoltageAmplitude)
	if err != nil {
		return err
	}
	p.ID, _ = res.LastInsertId()
	return nil
}

func (r *MeasurementRepository) InsertDC(ctx context.Context, p *models.DCDataPoint) error {
	if p == nil {
		return errors.New("point is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `INSERT INTO dc_points (experiment_id, element_position, timestamp, working_voltage, working_current, temperature) VALUES (?,?,?,?,?,?)`,
		p.ExperimentID, p.ElementPosition, p.Timestamp, p.WorkingVoltage, p.WorkingCurrent, p.Temperature)
	if err != nil {
		return err
	}
	p.ID, _ = res.LastInsertId()
	return nil
}

// InsertACBatch inserts points in one transaction. Used by the engine to
// flush its per-run buffer without a round trip per point.
func (r *MeasurementRepository) InsertACBatch(ctx context.Context, pts []models.ACDataPoint) error {
	if len(pts) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO ac_points (experiment_id, element_position, timestamp, frequency, absolute_impedance, phase_angle, real_impedance, imag_impedance, thd, number_of_cycles, working_dc_voltage, dc_current, current_amplitude, voltage_amplitude) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := range pts {
		p := &pts[i]
		if _, err := stmt.ExecContext(ctx, p.ExperimentID, p.ElementPosition, p.Timestamp, p.Frequency, p.AbsoluteImpedance, p.PhaseAngle, p.RealImpedance, p.ImagImpedance, p.TotalHarmonicDist, p.NumberOfCycles, p.WorkingDCVoltage, p.DCCurrent, p.CurrentAmplitude, p.VoltageAmplitude); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *MeasurementRepository) InsertDCBatch(ctx context.Context, pts []models.DCDataPoint) error {
	if len(pts) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dc_points (experiment_id, element_position, timestamp, working_voltage, working_current, temperature) VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := range pts {
		p := &pts[i]
		if _, err := stmt.ExecContext(ctx, p.ExperimentID, p.ElementPosition, p.Timestamp, p.WorkingVoltage, p.WorkingCurrent, p.Temperature); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *MeasurementRepository) InsertElementEvent(ctx context.Context, ev *models.ElementEvent) error {
	if ev == nil {
		return errors.New("event is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `INSERT INTO element_events (experiment_id, step_name, step_number, substep_number) VALUES (?,?,?,?)`,
		ev.ExperimentID, ev.StepName, ev.StepNumber, ev.SubstepNumber)
	if err != nil {
		return err
	}
	ev.ID, _ = res.LastInsertId()
	return nil
}

// ListAC returns a page of AC points for an experiment ordered by id asc
// with keyset pagination by id.
func (r *MeasurementRepository) ListAC(ctx context.Context, experimentID int64, pageSize int, afterID int64) ([]models.ACDataPoint, error) {
	pageSize = clampPageSize(pageSize)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+acCols+` FROM ac_points WHERE experiment_id = ? AND id > ? ORDER BY id ASC LIMIT ?`,
		experimentID, afterID, pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.ACDataPoint
	for rows.Next() {
		var p models.ACDataPoint
		if err := rows.Scan(&p.ID, &p.ExperimentID, &p.ElementPosition, &p.Timestamp, &p.Frequency, &p.AbsoluteImpedance, &p.PhaseAngle, &p.RealImpedance, &p.ImagImpedance, &p.TotalHarmonicDist, &p.NumberOfCycles, &p.WorkingDCVoltage, &p.DCCurrent, &p.CurrentAmplitude, &p.VoltageAmplitude); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDC returns a page of DC points for an experiment ordered by id asc
// with keyset pagination by id.
func (r *MeasurementRepository) ListDC(ctx context.Context, experimentID int64, pageSize int, afterID int64) ([]models.DCDataPoint, error) {
	pageSize = clampPageSize(pageSize)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+dcCols+` FROM dc_points WHERE experiment_id = ? AND id > ? ORDER BY id ASC LIMIT ?`,
		experimentID, afterID, pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.DCDataPoint
	for rows.Next() {
		var p models.DCDataPoint
		if err := rows.Scan(&p.ID, &p.ExperimentID, &p.ElementPosition, &p.Timestamp, &p.WorkingVoltage, &p.WorkingCurrent, &p.Temperature); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListElementEvents returns all element events for an experiment in order.
func (r *MeasurementRepository) ListElementEvents(ctx context.Context, experimentID int64) ([]models.ElementEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT id, experiment_id, step_name, step_number, substep_number, occurred_at FROM element_events WHERE experiment_id = ? ORDER BY id ASC`, experimentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.ElementEvent
	for rows.Next() {
		var ev models.ElementEvent
		if err := rows.Scan(&ev.ID, &ev.ExperimentID, &ev.StepName, &ev.StepNumber, &ev.SubstepNumber, &ev.OccurredAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByExperiment returns AC and DC point counts for an experiment.
func (r *MeasurementRepository) CountByExperiment(ctx context.Context, experimentID int64) (int64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var ac, dc int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ac_points WHERE experiment_id = ?`, experimentID).Scan(&ac); err != nil {
		return 0, 0, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dc_points WHERE experiment_id = ?`, experimentID).Scan(&dc); err != nil {
		return 0, 0, err
	}
	return ac, dc, nil
}

// PruneExperiment deletes all measurement data for an experiment while
// keeping the experiment record itself.
func (r *MeasurementRepository) PruneExperiment(ctx context.Context, experimentID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, table := range []string{"ac_points", "dc_points", "element_events"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE experiment_id = ?`, experimentID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func clampPageSize(n int) int {
	if n <= 0 {
		return 100
	}
	if n > 1000 {
		return 1000
	}
	return n
}
