package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"squidstatControl/internal/db"
	"squidstatControl/models"
)

// seedExperiment creates a user, an instrument and one queued experiment
// with a single CV element.
func seedExperiment(t *testing.T, d *sql.DB, channel int) (*models.Experiment, *ExperimentRepository) {
	t.Helper()
	ctx := context.Background()
	users := NewUserRepository(d)
	instruments := NewInstrumentRepository(d)
	experiments := NewExperimentRepository(d)

	u, err := users.Create(ctx, "op-"+uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	in, err := instruments.Create(ctx, &models.Instrument{Name: "inst-" + uuid.NewString()[:8], SerialNumber: uuid.NewString(), Channels: 4})
	if err != nil {
		t.Fatalf("create instrument: %v", err)
	}

	params, err := models.EncodeParams(models.NewCyclicVoltammetryParams())
	if err != nil {
		t.Fatalf("encode params: %v", err)
	}
	e, err := experiments.Create(ctx, &models.Experiment{
		UUID:         uuid.NewString(),
		Name:         "cv run",
		InstrumentID: in.ID,
		Channel:      channel,
		SubmittedBy:  u.ID,
	}, []models.Element{{Kind: models.ElementCyclicVoltammetry, Repeats: 2, Params: params}})
	if err != nil {
		t.Fatalf("create experiment: %v", err)
	}
	return e, experiments
}

func TestExperimentRepository_CreateWithElements(t *testing.T) {
	d, err := db.Open("file:exprepo1?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	e, experiments := seedExperiment(t, d, 0)
	if e.ID == 0 || e.Status != models.ExperimentStatusQueued || e.CreatedAt == "" {
		t.Fatalf("unexpected created experiment: %+v", e)
	}

	ctx := context.Background()
	els, err := experiments.ElementsByExperiment(ctx, e.ID)
	if err != nil || len(els) != 1 {
		t.Fatalf("elements: %v len=%d", err, len(els))
	}
	if els[0].Kind != models.ElementCyclicVoltammetry || els[0].Repeats != 2 || els[0].Position != 0 {
		t.Fatalf("unexpected element: %+v", els[0])
	}

	// Params survive the round trip through storage.
	if _, err := models.DecodeParams(els[0].Kind, els[0].Params); err != nil {
		t.Fatalf("decode stored params: %v", err)
	}

	// Empty element list is rejected.
	if _, err := experiments.Create(ctx, &models.Experiment{UUID: uuid.NewString(), Name: "x", InstrumentID: e.InstrumentID, SubmittedBy: e.SubmittedBy}, nil); err == nil {
		t.Fatalf("expected error for experiment without elements")
	}
}

func TestExperimentRepository_Lifecycle(t *testing.T) {
	d, err := db.Open("file:exprepo2?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	e, experiments := seedExperiment(t, d, 0)
	ctx := context.Background()

	// Claim transitions queued -> uploaded
	claimed, err := experiments.ClaimNextQueued(ctx, e.InstrumentID, 0)
	if err != nil || claimed == nil || claimed.ID != e.ID {
		t.Fatalf("claim: %v %+v", err, claimed)
	}
	if claimed.Status != models.ExperimentStatusUploaded {
		t.Fatalf("expected uploaded after claim, got %s", claimed.Status)
	}

	// Empty queue returns nil, nil
	if again, err := experiments.ClaimNextQueued(ctx, e.InstrumentID, 0); err != nil || again != nil {
		t.Fatalf("expected empty queue, got %+v err=%v", again, err)
	}

	// Start stamps started_at
	if err := experiments.MarkStarted(ctx, e.ID); err != nil {
		t.Fatalf("mark started: %v", err)
	}
	got, _ := experiments.GetByID(ctx, e.ID)
	if got.Status != models.ExperimentStatusRunning || got.StartedAt == nil {
		t.Fatalf("not running after start: %+v", got)
	}

	// RunningByInstrumentChannel sees it
	run, err := experiments.RunningByInstrumentChannel(ctx, e.InstrumentID, 0)
	if err != nil || run == nil || run.ID != e.ID {
		t.Fatalf("running lookup: %v %+v", err, run)
	}

	// Finish requires a terminal status
	if err := experiments.MarkFinished(ctx, e.ID, models.ExperimentStatusRunning, ""); err == nil {
		t.Fatalf("expected error for non-terminal finish status")
	}
	if err := experiments.MarkFinished(ctx, e.ID, models.ExperimentStatusCompleted, ""); err != nil {
		t.Fatalf("mark finished: %v", err)
	}
	got, _ = experiments.GetByID(ctx, e.ID)
	if got.Status != models.ExperimentStatusCompleted || got.FinishedAt == nil {
		t.Fatalf("not completed: %+v", got)
	}
}

func TestExperimentRepository_WithdrawOnlyQueued(t *testing.T) {
	d, err := db.Open("file:exprepo3?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	e, experiments := seedExperiment(t, d, 1)
	ctx := context.Background()

	if err := experiments.Withdraw(ctx, e.ID); err != nil {
		t.Fatalf("withdraw queued: %v", err)
	}
	got, _ := experiments.GetByID(ctx, e.ID)
	if got.Status != models.ExperimentStatusAborted {
		t.Fatalf("expected aborted, got %s", got.Status)
	}

	// A withdrawn experiment cannot be withdrawn again.
	if err := experiments.Withdraw(ctx, e.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows for second withdraw, got %v", err)
	}

	// And cannot be claimed.
	if claimed, err := experiments.ClaimNextQueued(ctx, e.InstrumentID, 1); err != nil || claimed != nil {
		t.Fatalf("expected no claim after withdraw, got %+v err=%v", claimed, err)
	}
}

func TestExperimentRepository_ListPaging(t *testing.T) {
	d, err := db.Open("file:exprepo4?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	e, experiments := seedExperiment(t, d, 0)
	ctx := context.Background()

	// Two more experiments for the same user/instrument.
	params, _ := models.EncodeParams(models.NewOpenCircuitParams())
	for i := 0; i < 2; i++ {
		if _, err := experiments.Create(ctx, &models.Experiment{
			UUID:         uuid.NewString(),
			Name:         "ocp",
			InstrumentID: e.InstrumentID,
			SubmittedBy:  e.SubmittedBy,
		}, []models.Element{{Kind: models.ElementOpenCircuit, Params: params}}); err != nil {
			t.Fatalf("create extra experiment: %v", err)
		}
	}

	page, err := experiments.ListByUserPage(ctx, e.SubmittedBy, 2, 0, 0)
	if err != nil || len(page) != 2 {
		t.Fatalf("first page: %v len=%d", err, len(page))
	}

	st := []models.ExperimentStatus{models.ExperimentStatusQueued}
	all, err := experiments.ListAdmin(ctx, ListExperimentsAdminParams{Statuses: st, InstrumentID: &e.InstrumentID, PageSize: 10})
	if err != nil || len(all) != 3 {
		t.Fatalf("ListAdmin: %v len=%d", err, len(all))
	}
}
