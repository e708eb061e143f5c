// Package engine schedules queued experiments onto instrument channels and
// moves measurement data from the device driver into storage and live
// streams.
package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"squidstatControl/internal/device"
	"squidstatControl/models"
	"squidstatControl/repository"
)

// pollInterval is how often an idle runner checks its queue.
const pollInterval = 250 * time.Millisecond

// flushEvery bounds the in-memory point buffer before a batch insert.
const flushEvery = 100

// ErrNotRunning is returned by Pause/Resume/Abort when the experiment is
// not in a controllable state.
var ErrNotRunning = errors.New("experiment not running")

type runnerKey struct {
	instrumentID int64
	channel      int
}

type runner struct {
	key     runnerKey
	handler device.Handler

	mu       sync.Mutex
	current  *models.Experiment // experiment now on the channel, nil when idle
	abortReq bool               // abort asked for before the run reached the hardware
}

func (r *runner) abortPending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.abortReq
}

// Engine owns one runner goroutine per connected instrument channel.
type Engine struct {
	driver      device.Driver
	instruments *repository.InstrumentRepository
	experiments *repository.ExperimentRepository
	points      *repository.MeasurementRepository
	broker      *Broker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	runners map[runnerKey]*runner
	closed  bool
}

// New creates an engine. Call ConnectInstrument to attach hardware and
// Shutdown to stop.
func New(driver device.Driver, instruments *repository.InstrumentRepository, experiments *repository.ExperimentRepository, points *repository.MeasurementRepository, broker *Broker) *Engine {
	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		driver:      driver,
		instruments: instruments,
		experiments: experiments,
		points:      points,
		broker:      broker,
		ctx:         ctx,
		cancel:      cancel,
		runners:     make(map[runnerKey]*runner),
	}
}

// Broker exposes the live stream fan-out for the gRPC layer.
func (e *Engine) Broker() *Broker { return e.broker }

// ConnectInstrument attaches the instrument on the given port, upserts its
// database record, and starts a runner per hardware channel. Returns the
// stored instrument.
func (e *Engine) ConnectInstrument(ctx context.Context, port string) (*models.Instrument, error) {
	id, err := e.driver.Connect(ctx, port)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", port, err)
	}

	in, err := e.instruments.GetBySerial(ctx, id.SerialNumber)
	if err != nil {
		return nil, err
	}
	if in == nil {
		in, err = e.instruments.Create(ctx, &models.Instrument{
			Name:         id.Name,
			SerialNumber: id.SerialNumber,
			Port:         &port,
			Channels:     id.Channels,
			Firmware:     id.Firmware,
			Status:       models.InstrumentStatusConnected,
		})
		if err != nil {
			return nil, err
		}
	} else {
		if err := e.instruments.UpdatePort(ctx, in.ID, port); err != nil {
			return nil, err
		}
		if err := e.instruments.UpdateStatus(ctx, in.ID, models.InstrumentStatusConnected); err != nil {
			return nil, err
		}
		if id.Firmware != in.Firmware {
			if err := e.instruments.UpdateFirmware(ctx, in.ID, id.Firmware); err != nil {
				return nil, err
			}
		}
		in, err = e.instruments.GetByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
	}

	handler, err := e.driver.Handler(id.Name)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, errors.New("engine shut down")
	}
	for ch := 0; ch < id.Channels; ch++ {
		key := runnerKey{instrumentID: in.ID, channel: ch}
		if _, ok := e.runners[key]; ok {
			continue
		}
		r := &runner{key: key, handler: handler}
		e.runners[key] = r
		e.wg.Add(1)
		go e.runLoop(r)
	}
	log.Printf("instrument %s connected on %s (%d channels)", in.Name, port, id.Channels)
	return in, nil
}

// DisconnectInstrument marks the instrument disconnected and retires its
// runners. Running experiments are aborted first.
func (e *Engine) DisconnectInstrument(ctx context.Context, instrumentID int64) error {
	e.mu.Lock()
	var retired []*runner
	for key, r := range e.runners {
		if key.instrumentID == instrumentID {
			retired = append(retired, r)
			delete(e.runners, key)
		}
	}
	e.mu.Unlock()

	for _, r := range retired {
		r.mu.Lock()
		cur := r.current
		r.mu.Unlock()
		if cur != nil {
			_ = r.handler.Stop(ctx, r.key.channel)
		}
	}
	return e.instruments.UpdateStatus(ctx, instrumentID, models.InstrumentStatusDisconnected)
}

// Abort stops an experiment: queued experiments are withdrawn, active ones
// are stopped on the hardware. Terminal experiments return ErrNotRunning.
func (e *Engine) Abort(ctx context.Context, experimentID int64) error {
	exp, err := e.experiments.GetByID(ctx, experimentID)
	if err != nil {
		return err
	}
	if exp == nil {
		return sql.ErrNoRows
	}
	switch exp.Status {
	case models.ExperimentStatusQueued:
		return e.experiments.Withdraw(ctx, experimentID)
	case models.ExperimentStatusUploaded, models.ExperimentStatusRunning, models.ExperimentStatusPaused:
		r := e.runnerFor(exp)
		if r == nil {
			return ErrNotRunning
		}
		// Record the request first: if the stop lands before the runner has
		// started the hardware, the runner still sees the abort.
		r.mu.Lock()
		r.abortReq = true
		r.mu.Unlock()
		return r.handler.Stop(ctx, r.key.channel)
	default:
		return ErrNotRunning
	}
}

// Pause suspends a running experiment on the hardware.
func (e *Engine) Pause(ctx context.Context, experimentID int64) error {
	return e.pauseResume(ctx, experimentID, true)
}

// Resume continues a paused experiment.
func (e *Engine) Resume(ctx context.Context, experimentID int64) error {
	return e.pauseResume(ctx, experimentID, false)
}

func (e *Engine) pauseResume(ctx context.Context, experimentID int64, pause bool) error {
	exp, err := e.experiments.GetByID(ctx, experimentID)
	if err != nil {
		return err
	}
	if exp == nil {
		return sql.ErrNoRows
	}
	if pause && exp.Status != models.ExperimentStatusRunning {
		return ErrNotRunning
	}
	if !pause && exp.Status != models.ExperimentStatusPaused {
		return ErrNotRunning
	}
	r := e.runnerFor(exp)
	if r == nil {
		return ErrNotRunning
	}
	if pause {
		if err := r.handler.Pause(ctx, r.key.channel); err != nil {
			return err
		}
		return e.experiments.UpdateStatus(ctx, experimentID, models.ExperimentStatusPaused)
	}
	if err := r.handler.Resume(ctx, r.key.channel); err != nil {
		return err
	}
	return e.experiments.UpdateStatus(ctx, experimentID, models.ExperimentStatusRunning)
}

func (e *Engine) runnerFor(exp *models.Experiment) *runner {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.runners[runnerKey{instrumentID: exp.InstrumentID, channel: exp.Channel}]
	if r == nil {
		return nil
	}
	r.mu.Lock()
	match := r.current != nil && r.current.ID == exp.ID
	r.mu.Unlock()
	if !match {
		return nil
	}
	return r
}

// Shutdown stops all runners and the driver. In-flight experiments are
// aborted on the hardware; their terminal status is recorded before return
// or the context expires.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.closed = true
	runners := make([]*runner, 0, len(e.runners))
	for _, r := range e.runners {
		runners = append(runners, r)
	}
	e.mu.Unlock()

	for _, r := range runners {
		r.mu.Lock()
		cur := r.current
		r.mu.Unlock()
		if cur != nil {
			_ = r.handler.Stop(ctx, r.key.channel)
		}
	}
	e.cancel()

	done := make(chan struct{})
	go func() { e.wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return e.driver.Close()
}

// runLoop is one channel's scheduler: claim, run, repeat.
func (e *Engine) runLoop(r *runner) {
	defer e.wg.Done()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
		}
		e.mu.Lock()
		_, alive := e.runners[r.key]
		e.mu.Unlock()
		if !alive {
			return
		}

		exp, err := e.experiments.ClaimNextQueued(e.ctx, r.key.instrumentID, r.key.channel)
		if err != nil {
			if e.ctx.Err() == nil {
				log.Printf("claim on instrument %d ch %d: %v", r.key.instrumentID, r.key.channel, err)
			}
			continue
		}
		if exp == nil {
			continue
		}
		r.mu.Lock()
		r.current = exp
		r.abortReq = false
		r.mu.Unlock()
		e.runExperiment(r, exp)
	}
}

// runExperiment drives one claimed experiment to a terminal state.
func (e *Engine) runExperiment(r *runner, exp *models.Experiment) {
	r.mu.Lock()
	r.current = exp
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.current = nil
		r.mu.Unlock()
		e.broker.Finish(exp.ID)
	}()

	ctx := e.ctx
	elements, err := e.experiments.ElementsByExperiment(ctx, exp.ID)
	if err != nil {
		e.finish(exp, models.ExperimentStatusFailed, fmt.Sprintf("load elements: %v", err))
		return
	}
	if r.abortPending() {
		e.finish(exp, models.ExperimentStatusAborted, "")
		return
	}
	if err := r.handler.Upload(ctx, r.key.channel, elements); err != nil {
		e.finish(exp, models.ExperimentStatusFailed, fmt.Sprintf("upload: %v", err))
		return
	}
	if r.abortPending() {
		// The stop may have reached the channel before our upload did;
		// drop whatever is staged so the channel comes back clean.
		_ = r.handler.Stop(ctx, r.key.channel)
		e.finish(exp, models.ExperimentStatusAborted, "")
		return
	}
	if err := r.handler.Start(ctx, r.key.channel); err != nil {
		if r.abortPending() {
			// The stop cleared the staged run between upload and start.
			e.finish(exp, models.ExperimentStatusAborted, "")
			return
		}
		e.finish(exp, models.ExperimentStatusFailed, fmt.Sprintf("start: %v", err))
		return
	}
	if err := e.experiments.MarkStarted(ctx, exp.ID); err != nil {
		log.Printf("experiment %d: mark started: %v", exp.ID, err)
	}
	log.Printf("experiment %d (%s) started on instrument %d ch %d", exp.ID, exp.Name, r.key.instrumentID, r.key.channel)

	var acBuf []models.ACDataPoint
	var dcBuf []models.DCDataPoint
	flush := func() {
		// Detached from the engine context so the final batch survives
		// shutdown; the repository bounds each call itself.
		if err := e.points.InsertACBatch(context.Background(), acBuf); err != nil {
			log.Printf("experiment %d: flush AC: %v", exp.ID, err)
		}
		if err := e.points.InsertDCBatch(context.Background(), dcBuf); err != nil {
			log.Printf("experiment %d: flush DC: %v", exp.ID, err)
		}
		acBuf = acBuf[:0]
		dcBuf = dcBuf[:0]
	}

	events := r.handler.Events(r.key.channel)
	for {
		var ev device.Event
		select {
		case ev = <-events:
		case <-ctx.Done():
			// Shutdown: the stop requested by Shutdown produces the final
			// event; keep draining briefly so the status lands.
			select {
			case ev = <-events:
			case <-time.After(2 * time.Second):
				flush()
				e.finish(exp, models.ExperimentStatusAborted, "engine shutdown")
				return
			}
		}

		switch {
		case ev.AC != nil:
			p := models.ACDataPoint{
				ExperimentID:      exp.ID,
				ElementPosition:   ev.AC.ElementPosition,
				Timestamp:         ev.AC.Timestamp,
				Frequency:         ev.AC.Frequency,
				AbsoluteImpedance: ev.AC.AbsoluteImpedance,
				PhaseAngle:        ev.AC.PhaseAngle,
				RealImpedance:     ev.AC.RealImpedance,
				ImagImpedance:     ev.AC.ImagImpedance,
				TotalHarmonicDist: ev.AC.THD,
				NumberOfCycles:    ev.AC.NumberOfCycles,
				WorkingDCVoltage:  ev.AC.WorkingDCVoltage,
				DCCurrent:         ev.AC.DCCurrent,
				CurrentAmplitude:  ev.AC.CurrentAmplitude,
				VoltageAmplitude:  ev.AC.VoltageAmplitude,
			}
			acBuf = append(acBuf, p)
			e.broker.Publish(StreamPoint{ExperimentID: exp.ID, AC: &p})
			if len(acBuf) >= flushEvery {
				flush()
			}
		case ev.DC != nil:
			p := models.DCDataPoint{
				ExperimentID:    exp.ID,
				ElementPosition: ev.DC.ElementPosition,
				Timestamp:       ev.DC.Timestamp,
				WorkingVoltage:  ev.DC.WorkingVoltage,
				WorkingCurrent:  ev.DC.WorkingCurrent,
				Temperature:     ev.DC.Temperature,
			}
			dcBuf = append(dcBuf, p)
			e.broker.Publish(StreamPoint{ExperimentID: exp.ID, DC: &p})
			if len(dcBuf) >= flushEvery {
				flush()
			}
		case ev.NewElement != nil:
			evt := models.ElementEvent{
				ExperimentID:  exp.ID,
				StepName:      ev.NewElement.StepName,
				StepNumber:    ev.NewElement.StepNumber,
				SubstepNumber: ev.NewElement.SubstepNumber,
			}
			if err := e.points.InsertElementEvent(ctx, &evt); err != nil {
				log.Printf("experiment %d: element event: %v", exp.ID, err)
			}
			e.broker.Publish(StreamPoint{ExperimentID: exp.ID, Element: &evt})
		case ev.Stopped != nil:
			flush()
			switch {
			case ev.Stopped.Err != nil:
				e.finish(exp, models.ExperimentStatusFailed, ev.Stopped.Err.Error())
				if err := e.instruments.UpdateStatus(context.Background(), r.key.instrumentID, models.InstrumentStatusFaulted); err != nil {
					log.Printf("instrument %d: mark faulted: %v", r.key.instrumentID, err)
				}
			case ev.Stopped.Aborted:
				e.finish(exp, models.ExperimentStatusAborted, "")
			default:
				e.finish(exp, models.ExperimentStatusCompleted, "")
			}
			return
		}
	}
}

func (e *Engine) finish(exp *models.Experiment, status models.ExperimentStatus, msg string) {
	// Use a fresh context: the engine context may already be canceled on
	// shutdown and the terminal status must still be recorded.
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := e.experiments.MarkFinished(ctx, exp.ID, status, msg); err != nil {
		log.Printf("experiment %d: mark %s: %v", exp.ID, status, err)
		return
	}
	log.Printf("experiment %d finished: %s", exp.ID, status)
}
