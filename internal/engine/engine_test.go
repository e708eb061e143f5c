package engine

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"squidstatControl/internal/db"
	"squidstatControl/internal/device"
	"squidstatControl/models"
	"squidstatControl/repository"
)

type engineFixture struct {
	db          *sql.DB
	sim         *device.Sim
	engine      *Engine
	instruments *repository.InstrumentRepository
	experiments *repository.ExperimentRepository
	points      *repository.MeasurementRepository
	userID      int64
}

// newEngineFixture wires an engine over an in-memory database and the
// simulator. The sim runs without sleeps until a test sets sim.Speedup
// before connecting.
func newEngineFixture(t *testing.T, dsn string) *engineFixture {
	t.Helper()
	d, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	users := repository.NewUserRepository(d)
	instruments := repository.NewInstrumentRepository(d)
	experiments := repository.NewExperimentRepository(d)
	points := repository.NewMeasurementRepository(d)

	u, err := users.Create(context.Background(), "op-"+uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	sim := device.NewSim()
	eng := New(sim, instruments, experiments, points, NewBroker())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = eng.Shutdown(ctx)
	})
	return &engineFixture{db: d, sim: sim, engine: eng, instruments: instruments, experiments: experiments, points: points, userID: u.ID}
}

// submit queues one experiment with the given elements on channel 0.
func (f *engineFixture) submit(t *testing.T, instrumentID int64, elements []models.Element) *models.Experiment {
	t.Helper()
	e, err := f.experiments.Create(context.Background(), &models.Experiment{
		UUID:         uuid.NewString(),
		Name:         "run",
		InstrumentID: instrumentID,
		Channel:      0,
		SubmittedBy:  f.userID,
	}, elements)
	if err != nil {
		t.Fatalf("create experiment: %v", err)
	}
	return e
}

// waitStatus polls until the experiment reaches want or the deadline passes.
func (f *engineFixture) waitStatus(t *testing.T, id int64, want models.ExperimentStatus) *models.Experiment {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		e, err := f.experiments.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("get experiment: %v", err)
		}
		if e != nil && e.Status == want {
			return e
		}
		time.Sleep(20 * time.Millisecond)
	}
	e, _ := f.experiments.GetByID(context.Background(), id)
	t.Fatalf("experiment %d never reached %s (now %+v)", id, want, e)
	return nil
}

func mustParams(t *testing.T, spec models.ElementSpec) string {
	t.Helper()
	raw, err := models.EncodeParams(spec)
	if err != nil {
		t.Fatalf("encode params: %v", err)
	}
	return raw
}

func TestEngine_RunsQueuedExperimentToCompletion(t *testing.T) {
	f := newEngineFixture(t, "file:engine1?mode=memory&cache=shared")
	ctx := context.Background()

	in, err := f.engine.ConnectInstrument(ctx, "sim0")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if in.Status != models.InstrumentStatusConnected || in.Channels != 4 {
		t.Fatalf("unexpected instrument: %+v", in)
	}

	ocp := mustParams(t, models.OpenCircuitParams{Duration: 1, SamplingInterval: 0.1})
	e := f.submit(t, in.ID, []models.Element{{Kind: models.ElementOpenCircuit, Repeats: 2, Params: ocp}})

	// Subscribe before the runner picks it up; the claim poll gives us a
	// comfortable head start.
	stream, cancel := f.engine.Broker().Subscribe(e.ID, 256)
	defer cancel()

	done := f.waitStatus(t, e.ID, models.ExperimentStatusCompleted)
	if done.StartedAt == nil || done.FinishedAt == nil {
		t.Fatalf("timestamps not recorded: %+v", done)
	}

	acCount, dcCount, err := f.points.CountByExperiment(ctx, e.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if acCount != 0 {
		t.Fatalf("unexpected AC points: %d", acCount)
	}
	// 1 s at 0.1 s sampling, two repeats.
	if dcCount < 18 || dcCount > 22 {
		t.Fatalf("unexpected DC point count: %d", dcCount)
	}

	events, err := f.points.ListElementEvents(ctx, e.ID)
	if err != nil {
		t.Fatalf("list element events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 element events, got %d", len(events))
	}
	if events[0].StepName != "Open Circuit Potential" || events[0].SubstepNumber != 1 || events[1].SubstepNumber != 2 {
		t.Fatalf("unexpected element events: %+v", events)
	}

	// The stream saw data and ended with the Done marker.
	var sawDC, sawDone bool
	for p := range stream {
		if p.DC != nil {
			sawDC = true
		}
		if p.Done {
			sawDone = true
		}
	}
	if !sawDC || !sawDone {
		t.Fatalf("stream incomplete: dc=%v done=%v", sawDC, sawDone)
	}
}

func TestEngine_EISRunPersistsACPoints(t *testing.T) {
	f := newEngineFixture(t, "file:engine2?mode=memory&cache=shared")
	ctx := context.Background()

	in, err := f.engine.ConnectInstrument(ctx, "sim0")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	// One decade at 10 points per decade gives 11 frequencies.
	eis := mustParams(t, models.EISPotentiostaticParams{
		StartFrequency: 1000, EndFrequency: 100, PointsPerDecade: 10,
		VoltageBias: 0.1, VoltageAmplitude: 0.01,
	})
	e := f.submit(t, in.ID, []models.Element{{Kind: models.ElementEISPotentiostatic, Repeats: 1, Params: eis}})
	f.waitStatus(t, e.ID, models.ExperimentStatusCompleted)

	pts, err := f.points.ListAC(ctx, e.ID, 100, 0)
	if err != nil {
		t.Fatalf("list AC: %v", err)
	}
	if len(pts) != 11 {
		t.Fatalf("expected 11 AC points, got %d", len(pts))
	}
	if pts[0].Frequency != 1000 || pts[len(pts)-1].Frequency != 100 {
		t.Fatalf("frequency ladder endpoints wrong: %g .. %g", pts[0].Frequency, pts[len(pts)-1].Frequency)
	}
	if pts[0].AbsoluteImpedance <= 0 || pts[0].VoltageAmplitude != 0.01 {
		t.Fatalf("unexpected AC point: %+v", pts[0])
	}
}

func TestEngine_AbortQueuedAndRunning(t *testing.T) {
	f := newEngineFixture(t, "file:engine3?mode=memory&cache=shared")
	ctx := context.Background()

	// Real-time pacing so the long run is still in flight when we abort it.
	f.sim.Speedup = 1
	in, err := f.engine.ConnectInstrument(ctx, "sim0")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	// Two experiments on the same channel run FIFO; aborting the first while
	// it runs lets the second through, and the second can be withdrawn before
	// the runner reaches it.
	long := mustParams(t, models.OpenCircuitParams{Duration: 3600, SamplingInterval: 0.05})
	first := f.submit(t, in.ID, []models.Element{{Kind: models.ElementOpenCircuit, Repeats: 1, Params: long}})
	second := f.submit(t, in.ID, []models.Element{{Kind: models.ElementOpenCircuit, Repeats: 1, Params: long}})

	f.waitStatus(t, first.ID, models.ExperimentStatusRunning)

	// Withdraw the one still queued.
	if err := f.engine.Abort(ctx, second.ID); err != nil {
		t.Fatalf("abort queued: %v", err)
	}
	got, err := f.experiments.GetByID(ctx, second.ID)
	if err != nil || got == nil || got.Status != models.ExperimentStatusAborted {
		t.Fatalf("queued experiment not aborted: %+v err=%v", got, err)
	}

	// Stop the running one on the hardware.
	if err := f.engine.Abort(ctx, first.ID); err != nil {
		t.Fatalf("abort running: %v", err)
	}
	done := f.waitStatus(t, first.ID, models.ExperimentStatusAborted)
	if done.FinishedAt == nil {
		t.Fatalf("aborted experiment has no finished_at")
	}

	// A terminal experiment is no longer controllable.
	if err := f.engine.Abort(ctx, first.ID); err != ErrNotRunning {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}
}

func TestEngine_PauseResume(t *testing.T) {
	f := newEngineFixture(t, "file:engine4?mode=memory&cache=shared")
	ctx := context.Background()

	f.sim.Speedup = 1
	in, err := f.engine.ConnectInstrument(ctx, "sim0")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	long := mustParams(t, models.OpenCircuitParams{Duration: 3600, SamplingInterval: 0.05})
	e := f.submit(t, in.ID, []models.Element{{Kind: models.ElementOpenCircuit, Repeats: 1, Params: long}})
	f.waitStatus(t, e.ID, models.ExperimentStatusRunning)

	if err := f.engine.Pause(ctx, e.ID); err != nil {
		t.Fatalf("pause: %v", err)
	}
	got, _ := f.experiments.GetByID(ctx, e.ID)
	if got.Status != models.ExperimentStatusPaused {
		t.Fatalf("status after pause: %s", got.Status)
	}
	// Pausing a paused experiment is rejected.
	if err := f.engine.Pause(ctx, e.ID); err != ErrNotRunning {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}

	if err := f.engine.Resume(ctx, e.ID); err != nil {
		t.Fatalf("resume: %v", err)
	}
	got, _ = f.experiments.GetByID(ctx, e.ID)
	if got.Status != models.ExperimentStatusRunning {
		t.Fatalf("status after resume: %s", got.Status)
	}

	if err := f.engine.Abort(ctx, e.ID); err != nil {
		t.Fatalf("abort: %v", err)
	}
	f.waitStatus(t, e.ID, models.ExperimentStatusAborted)
}

func TestEngine_AbortBeforeStartEndsAborted(t *testing.T) {
	f := newEngineFixture(t, "file:engine6?mode=memory&cache=shared")
	ctx := context.Background()

	// Wire the channel by hand so no background runner races the test
	// through the claim-to-start window.
	id, err := f.sim.Connect(ctx, "sim0")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	h, err := f.sim.Handler(id.Name)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	in, err := f.instruments.Create(ctx, &models.Instrument{
		Name:         id.Name,
		SerialNumber: id.SerialNumber,
		Channels:     id.Channels,
		Firmware:     id.Firmware,
		Status:       models.InstrumentStatusConnected,
	})
	if err != nil {
		t.Fatalf("create instrument: %v", err)
	}

	long := mustParams(t, models.OpenCircuitParams{Duration: 3600, SamplingInterval: 0.05})
	e := f.submit(t, in.ID, []models.Element{{Kind: models.ElementOpenCircuit, Repeats: 1, Params: long}})

	claimed, err := f.experiments.ClaimNextQueued(ctx, in.ID, 0)
	if err != nil || claimed == nil || claimed.ID != e.ID {
		t.Fatalf("claim: %+v err=%v", claimed, err)
	}

	r := &runner{key: runnerKey{instrumentID: in.ID, channel: 0}, handler: h}
	f.engine.mu.Lock()
	f.engine.runners[r.key] = r
	f.engine.mu.Unlock()
	r.mu.Lock()
	r.current = claimed
	r.mu.Unlock()

	// The abort lands after the claim but before the run reaches the
	// hardware.
	if err := f.engine.Abort(ctx, claimed.ID); err != nil {
		t.Fatalf("abort: %v", err)
	}

	f.engine.runExperiment(r, claimed)

	got, err := f.experiments.GetByID(ctx, claimed.ID)
	if err != nil || got == nil {
		t.Fatalf("get experiment: %+v err=%v", got, err)
	}
	if got.Status != models.ExperimentStatusAborted {
		t.Fatalf("status %s, want %s", got.Status, models.ExperimentStatusAborted)
	}
	if got.Error != "" {
		t.Fatalf("aborted experiment carries error %q", got.Error)
	}

	// The channel is clean: the next queued experiment can be claimed.
	next := f.submit(t, in.ID, []models.Element{{Kind: models.ElementOpenCircuit, Repeats: 1, Params: long}})
	claimed2, err := f.experiments.ClaimNextQueued(ctx, in.ID, 0)
	if err != nil || claimed2 == nil || claimed2.ID != next.ID {
		t.Fatalf("second claim: %+v err=%v", claimed2, err)
	}
}

func TestEngine_FailedUploadMarksExperimentFailed(t *testing.T) {
	f := newEngineFixture(t, "file:engine5?mode=memory&cache=shared")
	ctx := context.Background()

	in, err := f.engine.ConnectInstrument(ctx, "sim0")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	// Malformed params pass submission but are rejected by the instrument
	// at upload time.
	e := f.submit(t, in.ID, []models.Element{{Kind: models.ElementCyclicVoltammetry, Repeats: 1, Params: "{not json"}})
	done := f.waitStatus(t, e.ID, models.ExperimentStatusFailed)
	if done.Error == "" {
		t.Fatalf("failed experiment has no error message")
	}
}

func TestBroker_FanOutAndSlowSubscriber(t *testing.T) {
	b := NewBroker()

	fast, cancelFast := b.Subscribe(7, 16)
	defer cancelFast()
	slow, cancelSlow := b.Subscribe(7, 1)
	defer cancelSlow()
	other, cancelOther := b.Subscribe(8, 16)
	defer cancelOther()

	for i := 0; i < 5; i++ {
		b.Publish(StreamPoint{ExperimentID: 7, DC: &models.DCDataPoint{Timestamp: float64(i)}})
	}
	b.Finish(7)

	var fastN int
	for p := range fast {
		if p.DC != nil {
			fastN++
		}
	}
	if fastN != 5 {
		t.Fatalf("fast subscriber got %d points", fastN)
	}

	// The slow subscriber dropped points but still terminates.
	var slowN int
	for p := range slow {
		if p.DC != nil {
			slowN++
		}
	}
	if slowN >= 5 {
		t.Fatalf("slow subscriber should have dropped points, got %d", slowN)
	}

	// Unrelated experiment saw nothing.
	select {
	case p, ok := <-other:
		if ok {
			t.Fatalf("unexpected point on other experiment: %+v", p)
		}
	default:
	}
}
