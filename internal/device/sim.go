package device

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"squidstatControl/internal/echem"
	"squidstatControl/models"
)

// cellResistance is the DC resistance of the simulated cell, consistent
// with the Randles model used for EIS.
const cellResistance = echem.RandlesRs + echem.RandlesRct

// simDefaults mirror the instrument from the vendor examples.
const (
	simName     = "Plus1894"
	simSerial   = "SSP-1894"
	simFirmware = "1.8.0.5"
	simChannels = 4
)

// Sim is an in-process instrument driver producing synthetic measurement
// data. With Speedup <= 0 it runs without wall-clock sleeps, which is what
// the tests use.
type Sim struct {
	// Speedup divides every sampling interval sleep. Zero disables sleeping.
	Speedup float64

	mu        sync.Mutex
	connected bool
	handler   *simHandler
}

// NewSim returns a simulator for a single four-channel instrument named
// after the vendor example unit.
func NewSim() *Sim {
	return &Sim{}
}

func (s *Sim) Connect(_ context.Context, port string) (Identity, error) {
	if port == "" {
		return Identity{}, fmt.Errorf("empty port")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		s.handler = newSimHandler(simChannels, s.Speedup)
		s.connected = true
	}
	return Identity{Name: simName, SerialNumber: simSerial, Firmware: simFirmware, Channels: simChannels}, nil
}

func (s *Sim) Handler(name string) (Handler, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return nil, ErrNotConnected
	}
	if name != simName {
		return nil, fmt.Errorf("unknown instrument %q", name)
	}
	return s.handler, nil
}

func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handler != nil {
		s.handler.close()
		s.handler = nil
	}
	s.connected = false
	return nil
}

type simChannel struct {
	events   chan Event
	uploaded []models.Element
	running  bool
	paused   bool
	stop     chan struct{}
}

type simHandler struct {
	mu       sync.Mutex
	speedup  float64
	channels []*simChannel
	closed   bool
}

func newSimHandler(n int, speedup float64) *simHandler {
	h := &simHandler{speedup: speedup}
	for i := 0; i < n; i++ {
		h.channels = append(h.channels, &simChannel{events: make(chan Event, 256)})
	}
	return h
}

func (h *simHandler) channel(n int) (*simChannel, error) {
	if n < 0 || n >= len(h.channels) {
		return nil, fmt.Errorf("channel %d out of range", n)
	}
	return h.channels[n], nil
}

func (h *simHandler) Upload(_ context.Context, channel int, elements []models.Element) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch, err := h.channel(channel)
	if err != nil {
		return err
	}
	if ch.running || ch.uploaded != nil {
		return ErrChannelBusy
	}
	if len(elements) == 0 {
		return fmt.Errorf("no elements to upload")
	}
	// Reject malformed sequences at upload time, like the hardware does.
	for _, el := range elements {
		if _, err := models.DecodeParams(el.Kind, el.Params); err != nil {
			return fmt.Errorf("element %d: %w", el.Position, err)
		}
	}
	ch.uploaded = elements
	return nil
}

func (h *simHandler) Start(_ context.Context, channel int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch, err := h.channel(channel)
	if err != nil {
		return err
	}
	if ch.running {
		return ErrChannelBusy
	}
	if ch.uploaded == nil {
		return fmt.Errorf("nothing uploaded on channel %d", channel)
	}
	elements := ch.uploaded
	ch.uploaded = nil
	ch.running = true
	ch.paused = false
	ch.stop = make(chan struct{})
	go h.run(channel, ch, elements)
	return nil
}

func (h *simHandler) Pause(_ context.Context, channel int) error {
	return h.setPaused(channel, true)
}

func (h *simHandler) Resume(_ context.Context, channel int) error {
	return h.setPaused(channel, false)
}

func (h *simHandler) setPaused(channel int, v bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch, err := h.channel(channel)
	if err != nil {
		return err
	}
	if !ch.running {
		return fmt.Errorf("channel %d not running", channel)
	}
	ch.paused = v
	return nil
}

func (h *simHandler) Stop(_ context.Context, channel int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch, err := h.channel(channel)
	if err != nil {
		return err
	}
	if !ch.running {
		// Dropping a staged upload is also a stop.
		ch.uploaded = nil
		return nil
	}
	select {
	case <-ch.stop:
	default:
		close(ch.stop)
	}
	return nil
}

func (h *simHandler) Events(channel int) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch, err := h.channel(channel)
	if err != nil {
		c := make(chan Event)
		close(c)
		return c
	}
	return ch.events
}

func (h *simHandler) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, ch := range h.channels {
		if ch.running {
			select {
			case <-ch.stop:
			default:
				close(ch.stop)
			}
		}
	}
}

// emit delivers an event unless the run was stopped. Slow consumers block
// the run rather than losing data; the engine drains promptly.
func (h *simHandler) emit(ch *simChannel, ev Event) bool {
	select {
	case ch.events <- ev:
		return true
	case <-ch.stop:
		return false
	}
}

// tick sleeps one scaled sampling interval and honors pause/stop.
// It returns false when the run should abort.
func (h *simHandler) tick(ch *simChannel, interval float64) bool {
	for {
		h.mu.Lock()
		paused := ch.paused
		h.mu.Unlock()
		if !paused {
			break
		}
		select {
		case <-ch.stop:
			return false
		case <-time.After(time.Millisecond):
		}
	}
	if h.speedup > 0 {
		select {
		case <-ch.stop:
			return false
		case <-time.After(time.Duration(interval / h.speedup * float64(time.Second))):
		}
	} else {
		select {
		case <-ch.stop:
			return false
		default:
		}
	}
	return true
}

func (h *simHandler) run(channel int, ch *simChannel, elements []models.Element) {
	defer func() {
		h.mu.Lock()
		ch.running = false
		h.mu.Unlock()
	}()

	rng := rand.New(rand.NewSource(int64(channel) + 1))
	clock := 0.0
	aborted := false

outer:
	for _, el := range elements {
		spec, err := models.DecodeParams(el.Kind, el.Params)
		if err != nil {
			h.emit(ch, Event{Channel: channel, Stopped: &StopInfo{Err: err}})
			return
		}
		repeats := el.Repeats
		if repeats < 1 {
			repeats = 1
		}
		for rep := 0; rep < repeats; rep++ {
			ok := h.emit(ch, Event{Channel: channel, NewElement: &ElementStart{
				StepName:      StepName(el.Kind),
				StepNumber:    el.Position + 1,
				SubstepNumber: rep + 1,
			}})
			if !ok {
				aborted = true
				break outer
			}
			clock, ok = h.runElement(channel, ch, el.Position, spec, clock, rng)
			if !ok {
				aborted = true
				break outer
			}
		}
	}

	h.emitFinal(ch, Event{Channel: channel, Stopped: &StopInfo{Aborted: aborted}})
}

// emitFinal delivers the terminal event even when the stop channel is closed.
// It gives the consumer a moment to drain before giving up.
func (h *simHandler) emitFinal(ch *simChannel, ev Event) {
	select {
	case ch.events <- ev:
	case <-time.After(time.Second):
	}
}

// runElement produces the data points of one element repetition starting at
// simulated time clock. It returns the advanced clock and false on abort.
func (h *simHandler) runElement(channel int, ch *simChannel, pos int, spec models.ElementSpec, clock float64, rng *rand.Rand) (float64, bool) {
	noise := func(scale float64) float64 { return (rng.Float64() - 0.5) * scale }
	temperature := func() float64 { return 25 + noise(0.2) }

	dcPoint := func(voltage, current float64) bool {
		return h.emit(ch, Event{Channel: channel, DC: &DCPoint{
			Timestamp:       clock,
			WorkingVoltage:  voltage + noise(1e-4),
			WorkingCurrent:  current + noise(1e-7),
			Temperature:     temperature(),
			ElementPosition: pos,
		}})
	}

	switch p := spec.(type) {
	case models.EISPotentiostaticParams:
		return h.runEIS(channel, ch, pos, clock, p.StartFrequency, p.EndFrequency, p.PointsPerDecade, p.VoltageBias, p.VoltageAmplitude, 0, true)
	case models.EISGalvanostaticParams:
		return h.runEIS(channel, ch, pos, clock, p.StartFrequency, p.EndFrequency, p.PointsPerDecade, p.CurrentBias, 0, p.CurrentAmplitude, false)

	case models.OpenCircuitParams:
		for t := 0.0; t < p.Duration; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			// Open circuit: a drifting rest potential, no current.
			if !dcPoint(0.2+0.01*math.Sin(t/5), 0) {
				return clock, false
			}
		}
	case models.ConstantCurrentParams:
		for t := 0.0; t < p.Duration; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			if !dcPoint(p.Current*cellResistance, p.Current) {
				return clock, false
			}
		}
	case models.ConstantPotentialParams:
		for t := 0.0; t < p.Duration; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			if !dcPoint(p.Voltage, p.Voltage/cellResistance) {
				return clock, false
			}
		}
	case models.ConstantPowerParams:
		v := math.Sqrt(p.Power * cellResistance)
		i := v / cellResistance
		if !p.IsCharge {
			i = -i
		}
		for t := 0.0; t < p.Duration; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			if !dcPoint(v, i) {
				return clock, false
			}
		}
	case models.ConstantResistanceParams:
		// The load draws whatever keeps V/I at the requested resistance.
		v := 0.2 * p.Resistance / (p.Resistance + cellResistance)
		for t := 0.0; t < p.Duration; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			if !dcPoint(v, v/p.Resistance) {
				return clock, false
			}
		}
	case models.CyclicVoltammetryParams:
		dur := echem.CyclicDuration(p.StartVoltage, p.FirstVoltageLimit, p.SecondVoltageLimit, p.EndVoltage, p.ScanRate)
		for t := 0.0; t < dur; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			v := echem.CyclicPotential(t, p.StartVoltage, p.FirstVoltageLimit, p.SecondVoltageLimit, p.EndVoltage, p.ScanRate)
			if !dcPoint(v, v/cellResistance) {
				return clock, false
			}
		}
	case models.DCCurrentSweepParams:
		dur := echem.SweepDuration(p.StartCurrent, p.EndCurrent, p.ScanRate)
		for t := 0.0; t < dur; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			i := echem.SweepValue(t, p.StartCurrent, p.EndCurrent, p.ScanRate)
			if !dcPoint(i*cellResistance, i) {
				return clock, false
			}
		}
	case models.DCPotentialSweepParams:
		dur := echem.SweepDuration(p.StartPotential, p.EndPotential, p.ScanRate)
		for t := 0.0; t < dur; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			v := echem.SweepValue(t, p.StartPotential, p.EndPotential, p.ScanRate)
			if !dcPoint(v, v/cellResistance) {
				return clock, false
			}
		}
	case models.DiffPulseParams:
		steps := echem.PulseStepCount(p.StartPotential, p.EndPotential, p.PotentialStep)
		step := math.Copysign(p.PotentialStep, p.EndPotential-p.StartPotential)
		for n := 0; n < steps; n++ {
			if !h.tick(ch, p.PulsePeriod) {
				return clock, false
			}
			clock += p.PulsePeriod
			t := float64(n) * p.PulsePeriod
			// Sample at the top of the pulse, which is where DPV reads.
			v := echem.StaircasePulsePotential(t, p.StartPotential, step, p.PulseHeight, p.PulseWidth, p.PulsePeriod)
			if !dcPoint(v, v/cellResistance) {
				return clock, false
			}
		}
	case models.NormalPulseParams:
		steps := echem.PulseStepCount(p.StartPotential, p.EndPotential, p.PotentialStep)
		step := math.Copysign(p.PotentialStep, p.EndPotential-p.StartPotential)
		for n := 0; n < steps; n++ {
			if !h.tick(ch, p.PulsePeriod) {
				return clock, false
			}
			clock += p.PulsePeriod
			t := float64(n) * p.PulsePeriod
			v := echem.StaircasePulsePotential(t, p.StartPotential, step, 0, p.PulseWidth, p.PulsePeriod)
			if !dcPoint(v, v/cellResistance) {
				return clock, false
			}
		}
	case models.SquareWaveParams:
		dur := echem.CyclicDuration(p.StartPotential, p.FirstVoltageLimit, p.SecondVoltageLimit, p.EndVoltage, p.ScanRate)
		for t := 0.0; t < dur; t += p.SamplingInterval {
			if !h.tick(ch, p.SamplingInterval) {
				return clock, false
			}
			clock += p.SamplingInterval
			v := echem.CyclicPotential(t, p.StartPotential, p.FirstVoltageLimit, p.SecondVoltageLimit, p.EndVoltage, p.ScanRate)
			if !dcPoint(v, v/cellResistance) {
				return clock, false
			}
		}
	default:
		// Unreachable: Upload validated the kind.
		return clock, false
	}
	return clock, true
}

// runEIS walks the frequency ladder emitting one AC point per frequency.
func (h *simHandler) runEIS(channel int, ch *simChannel, pos int, clock float64, startF, endF float64, perDecade int, bias, vAmp, iAmp float64, potentiostatic bool) (float64, bool) {
	for _, f := range echem.FrequencyLadder(startF, endF, perDecade) {
		// Dwell a few cycles at each frequency, at least 10 ms.
		dwell := math.Max(5/f, 0.01)
		if !h.tick(ch, dwell) {
			return clock, false
		}
		clock += dwell
		z := echem.RandlesImpedance(f)
		mag, phase := echem.Polar(z)
		pt := &ACPoint{
			Timestamp:         clock,
			Frequency:         f,
			AbsoluteImpedance: mag,
			PhaseAngle:        phase,
			RealImpedance:     real(z),
			ImagImpedance:     imag(z),
			THD:               0.01,
			NumberOfCycles:    int(math.Max(5, f*dwell)),
			ElementPosition:   pos,
		}
		if potentiostatic {
			pt.WorkingDCVoltage = bias
			pt.VoltageAmplitude = vAmp
			pt.CurrentAmplitude = vAmp / mag
		} else {
			pt.DCCurrent = bias
			pt.CurrentAmplitude = iAmp
			pt.VoltageAmplitude = iAmp * mag
		}
		if !h.emit(ch, Event{Channel: channel, AC: pt}) {
			return clock, false
		}
	}
	return clock, true
}
