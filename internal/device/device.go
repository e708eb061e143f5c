// Package device abstracts the Squidstat hardware behind a driver interface.
// Two drivers exist: a serial driver speaking the framed wire protocol and a
// simulator used in development and tests.
package device

import (
	"context"
	"errors"

	"squidstatControl/models"
)

// ErrChannelBusy is returned by Upload when the channel already has an
// uploaded or running experiment.
var ErrChannelBusy = errors.New("channel busy")

// ErrNotConnected is returned when a handler is requested for an instrument
// that has not been connected.
var ErrNotConnected = errors.New("instrument not connected")

// Identity describes a connected instrument as reported by the hardware.
type Identity struct {
	Name         string
	SerialNumber string
	Firmware     string
	Channels     int
}

// Event is one item delivered on a channel's event stream.
// Exactly one of the pointer fields is set.
type Event struct {
	Channel    int
	AC         *ACPoint
	DC         *DCPoint
	NewElement *ElementStart
	Stopped    *StopInfo
}

// ACPoint is an impedance measurement emitted during EIS elements.
type ACPoint struct {
	Timestamp         float64
	Frequency         float64
	AbsoluteImpedance float64
	PhaseAngle        float64
	RealImpedance     float64
	ImagImpedance     float64
	THD               float64
	NumberOfCycles    int
	WorkingDCVoltage  float64
	DCCurrent         float64
	CurrentAmplitude  float64
	VoltageAmplitude  float64
	ElementPosition   int
}

// DCPoint is a time-domain measurement emitted during non-EIS elements.
type DCPoint struct {
	Timestamp       float64
	WorkingVoltage  float64
	WorkingCurrent  float64
	Temperature     float64
	ElementPosition int
}

// ElementStart announces an element (step) beginning.
type ElementStart struct {
	StepName      string
	StepNumber    int
	SubstepNumber int
}

// StopInfo terminates a run's event stream. Err is non-nil when the run
// failed or the hardware faulted; nil means completed or stopped on request.
type StopInfo struct {
	Aborted bool
	Err     error
}

// Driver owns the transport to one or more instruments.
type Driver interface {
	// Connect attaches to the instrument on the given port and returns its
	// identity. Connecting an already-connected port is idempotent.
	Connect(ctx context.Context, port string) (Identity, error)
	// Handler returns the control handler for a connected instrument by name.
	Handler(name string) (Handler, error)
	// Close releases all ports and stops event delivery.
	Close() error
}

// Handler drives experiments on one instrument. All methods are safe for
// concurrent use across channels; per-channel calls are serialized by the
// engine.
type Handler interface {
	// Upload stages the element sequence on the given channel.
	Upload(ctx context.Context, channel int, elements []models.Element) error
	// Start begins the uploaded experiment.
	Start(ctx context.Context, channel int) error
	Pause(ctx context.Context, channel int) error
	Resume(ctx context.Context, channel int) error
	// Stop aborts the running experiment; the stream receives a Stopped
	// event with Aborted set.
	Stop(ctx context.Context, channel int) error
	// Events returns the channel's event stream. The stream is closed only
	// when the driver shuts down; each run is delimited by a Stopped event.
	Events(channel int) <-chan Event
}

// StepName returns the human-readable step name reported for an element
// kind, matching the vendor naming.
func StepName(kind models.ElementKind) string {
	switch kind {
	case models.ElementOpenCircuit:
		return "Open Circuit Potential"
	case models.ElementConstantCurrent:
		return "Constant Current"
	case models.ElementConstantPotential:
		return "Constant Potential"
	case models.ElementConstantPower:
		return "Constant Power"
	case models.ElementConstantResistance:
		return "Constant Resistance"
	case models.ElementCyclicVoltammetry:
		return "Cyclic Voltammetry"
	case models.ElementDCCurrentSweep:
		return "DC Current Sweep"
	case models.ElementDCPotentialSweep:
		return "DC Potential Sweep"
	case models.ElementDiffPulse:
		return "Differential Pulse Voltammetry"
	case models.ElementNormalPulse:
		return "Normal Pulse Voltammetry"
	case models.ElementSquareWave:
		return "Square Wave Voltammetry"
	case models.ElementEISPotentiostatic:
		return "EIS Potentiostatic"
	case models.ElementEISGalvanostatic:
		return "EIS Galvanostatic"
	}
	return string(kind)
}
