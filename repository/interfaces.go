package repository

import (
	"context"

	"squidstatControl/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

// InstrumentRepositoryI defines operations on Instrument entities.
type InstrumentRepositoryI interface {
	Create(ctx context.Context, in *models.Instrument) (*models.Instrument, error)
	GetByID(ctx context.Context, id int64) (*models.Instrument, error)
	GetBySerial(ctx context.Context, serial string) (*models.Instrument, error)
	GetByName(ctx context.Context, name string) (*models.Instrument, error)
	GetByPort(ctx context.Context, port string) (*models.Instrument, error)
	UpdateStatus(ctx context.Context, id int64, status models.InstrumentStatus) error
	UpdatePort(ctx context.Context, id int64, port string) error
	UpdateFirmware(ctx context.Context, id int64, firmware string) error
	Delete(ctx context.Context, id int64) error
	ListAdmin(ctx context.Context, p ListInstrumentsAdminParams) ([]models.Instrument, error)
}

// ExperimentRepositoryI defines operations on Experiment entities.
type ExperimentRepositoryI interface {
	Create(ctx context.Context, e *models.Experiment, elements []models.Element) (*models.Experiment, error)
	GetByID(ctx context.Context, id int64) (*models.Experiment, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Experiment, error)
	ElementsByExperiment(ctx context.Context, experimentID int64) ([]models.Element, error)
	UpdateStatus(ctx context.Context, id int64, status models.ExperimentStatus) error
	MarkStarted(ctx context.Context, id int64) error
	MarkFinished(ctx context.Context, id int64, status models.ExperimentStatus, errMsg string) error
	Withdraw(ctx context.Context, id int64) error
	ClaimNextQueued(ctx context.Context, instrumentID int64, channel int) (*models.Experiment, error)
	ListByUserPage(ctx context.Context, userID int64, pageSize int, afterSeconds, afterID int64) ([]models.Experiment, error)
	ListAdmin(ctx context.Context, p ListExperimentsAdminParams) ([]models.Experiment, error)
}

// MeasurementRepositoryI defines operations on streamed measurement data.
type MeasurementRepositoryI interface {
	InsertAC(ctx context.Context, p *models.ACDataPoint) error
	InsertDC(ctx context.Context, p *models.DCDataPoint) error
	InsertACBatch(ctx context.Context, pts []models.ACDataPoint) error
	InsertDCBatch(ctx context.Context, pts []models.DCDataPoint) error
	InsertElementEvent(ctx context.Context, ev *models.ElementEvent) error
	ListAC(ctx context.Context, experimentID int64, pageSize int, afterID int64) ([]models.ACDataPoint, error)
	ListDC(ctx context.Context, experimentID int64, pageSize int, afterID int64) ([]models.DCDataPoint, error)
	ListElementEvents(ctx context.Context, experimentID int64) ([]models.ElementEvent, error)
	CountByExperiment(ctx context.Context, experimentID int64) (ac int64, dc int64, err error)
	PruneExperiment(ctx context.Context, experimentID int64) error
}
