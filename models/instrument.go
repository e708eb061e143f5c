package models

// InstrumentStatus represents the connection state of a potentiostat.
type InstrumentStatus string

const (
	InstrumentStatusDisconnected InstrumentStatus = "disconnected"
	InstrumentStatusConnected    InstrumentStatus = "connected"
	InstrumentStatusFaulted      InstrumentStatus = "faulted"
)

// Instrument represents a Squidstat potentiostat/galvanostat unit.
// Port is the serial port the unit was last connected on (nullable while the
// unit has never been plugged in).
type Instrument struct {
	ID           int64            `db:"id" json:"id"`
	Name         string           `db:"name" json:"name"`
	SerialNumber string           `db:"serial_number" json:"serial_number"`
	Port         *string          `db:"port" json:"port,omitempty"`
	Channels     int              `db:"channels" json:"channels"`
	Firmware     string           `db:"firmware" json:"firmware"`
	Status       InstrumentStatus `db:"status" json:"status"`
}
