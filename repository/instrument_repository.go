package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"squidstatControl/models"
)

type InstrumentRepository struct {
	db *sql.DB
}

func NewInstrumentRepository(db *sql.DB) *InstrumentRepository {
	return &InstrumentRepository{db: db}
}

const instrumentCols = `id, name, serial_number, port, channels, firmware, status`

// Create inserts a new instrument. Status defaults to 'disconnected' and
// Channels to 1 if unset.
func (r *InstrumentRepository) Create(ctx context.Context, in *models.Instrument) (*models.Instrument, error) {
	if in == nil {
		return nil, errors.New("instrument is nil")
	}
	if in.Status == "" {
		in.Status = models.InstrumentStatusDisconnected
	}
	if in.Channels <= 0 {
		in.Channels = 1
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var port any
	if in.Port != nil {
		port = *in.Port
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO instruments (name, serial_number, port, channels, firmware, status) VALUES (?,?,?,?,?,?)`,
		in.Name, in.SerialNumber, port, in.Channels, in.Firmware, string(in.Status))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	in.ID = id
	return in, nil
}

func (r *InstrumentRepository) GetByID(ctx context.Context, id int64) (*models.Instrument, error) {
	return r.getWhere(ctx, `id = ?`, id)
}

func (r *InstrumentRepository) GetBySerial(ctx context.Context, serial string) (*models.Instrument, error) {
	return r.getWhere(ctx, `serial_number = ?`, serial)
}

// GetByName fetches an instrument by its name (e.g. "Plus1894").
func (r *InstrumentRepository) GetByName(ctx context.Context, name string) (*models.Instrument, error) {
	return r.getWhere(ctx, `name = ?`, name)
}

// GetByPort fetches the instrument last seen on the given serial port.
func (r *InstrumentRepository) GetByPort(ctx context.Context, port string) (*models.Instrument, error) {
	return r.getWhere(ctx, `port = ?`, port)
}

func (r *InstrumentRepository) getWhere(ctx context.Context, where string, arg any) (*models.Instrument, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+instrumentCols+` FROM instruments WHERE `+where, arg)
	in, err := scanInstrument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return in, nil
}

func (r *InstrumentRepository) UpdateStatus(ctx context.Context, id int64, status models.InstrumentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `UPDATE instruments SET status = ? WHERE id = ?`, string(status), id)
	return err
}

func (r *InstrumentRepository) UpdatePort(ctx context.Context, id int64, port string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `UPDATE instruments SET port = ? WHERE id = ?`, port, id)
	return err
}

func (r *InstrumentRepository) UpdateFirmware(ctx context.Context, id int64, firmware string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `UPDATE instruments SET firmware = ? WHERE id = ?`, firmware, id)
	return err
}

func (r *InstrumentRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `DELETE FROM instruments WHERE id = ?`, id)
	return err
}

// ListInstrumentsAdminParams contains filters and pagination for admin listing.
type ListInstrumentsAdminParams struct {
	Status               *models.InstrumentStatus
	NameOrSerialContains *string
	PageSize             int
	AfterID              int64
}

// ListAdmin returns instruments matching filters ordered by id asc with keyset pagination by id.
func (r *InstrumentRepository) ListAdmin(ctx context.Context, p ListInstrumentsAdminParams) ([]models.Instrument, error) {
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	where := make([]string, 0, 3)
	args := make([]any, 0, 5)

	if p.Status != nil {
		where = append(where, "status = ?")
		args = append(args, string(*p.Status))
	}
	if p.NameOrSerialContains != nil && strings.TrimSpace(*p.NameOrSerialContains) != "" {
		like := "%" + strings.TrimSpace(*p.NameOrSerialContains) + "%"
		where = append(where, "(name LIKE ? OR serial_number LIKE ?)")
		args = append(args, like, like)
	}
	if p.AfterID > 0 {
		where = append(where, "id > ?")
		args = append(args, p.AfterID)
	}

	query := `SELECT ` + instrumentCols + ` FROM instruments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id ASC LIMIT ?"
	args = append(args, p.PageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Instrument
	for rows.Next() {
		in, err := scanInstrument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// rowScanner lets scanInstrument work over both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstrument(row rowScanner) (*models.Instrument, error) {
	var in models.Instrument
	var status string
	var port sql.NullString
	if err := row.Scan(&in.ID, &in.Name, &in.SerialNumber, &port, &in.Channels, &in.Firmware, &status); err != nil {
		return nil, err
	}
	if port.Valid {
		v := port.String
		in.Port = &v
	}
	in.Status = models.InstrumentStatus(status)
	return &in, nil
}
