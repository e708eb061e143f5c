package repository

import (
	"context"
	"testing"

	"squidstatControl/internal/db"
	"squidstatControl/models"
)

func TestMeasurementRepository_InsertListPrune(t *testing.T) {
	d, err := db.Open("file:measrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	e, _ := seedExperiment(t, d, 0)
	meas := NewMeasurementRepository(d)
	ctx := context.Background()

	// Insert a small DC series and one AC point.
	var dcBatch []models.DCDataPoint
	for i := 0; i < 5; i++ {
		dcBatch = append(dcBatch, models.DCDataPoint{
			ExperimentID:   e.ID,
			Timestamp:      float64(i) * 0.01,
			WorkingVoltage: 0.1 * float64(i),
			WorkingCurrent: 0.001,
			Temperature:    25,
		})
	}
	if err := meas.InsertDCBatch(ctx, dcBatch); err != nil {
		t.Fatalf("insert dc batch: %v", err)
	}
	ac := &models.ACDataPoint{
		ExperimentID:      e.ID,
		Timestamp:         0.5,
		Frequency:         1000,
		AbsoluteImpedance: 120.5,
		PhaseAngle:        -12.4,
		RealImpedance:     117.7,
		ImagImpedance:     -25.9,
	}
	if err := meas.InsertAC(ctx, ac); err != nil {
		t.Fatalf("insert ac: %v", err)
	}
	if ac.ID == 0 {
		t.Fatalf("expected ac point id assigned")
	}

	// Counts
	acN, dcN, err := meas.CountByExperiment(ctx, e.ID)
	if err != nil || acN != 1 || dcN != 5 {
		t.Fatalf("counts: ac=%d dc=%d err=%v", acN, dcN, err)
	}

	// Keyset paging over DC
	page1, err := meas.ListDC(ctx, e.ID, 3, 0)
	if err != nil || len(page1) != 3 {
		t.Fatalf("dc page1: %v len=%d", err, len(page1))
	}
	page2, err := meas.ListDC(ctx, e.ID, 3, page1[len(page1)-1].ID)
	if err != nil || len(page2) != 2 {
		t.Fatalf("dc page2: %v len=%d", err, len(page2))
	}
	if page2[0].ID <= page1[len(page1)-1].ID {
		t.Fatalf("paging not monotonic: %d after %d", page2[0].ID, page1[len(page1)-1].ID)
	}

	// Element events
	if err := meas.InsertElementEvent(ctx, &models.ElementEvent{ExperimentID: e.ID, StepName: "Cyclic Voltammetry", StepNumber: 1}); err != nil {
		t.Fatalf("insert event: %v", err)
	}
	evs, err := meas.ListElementEvents(ctx, e.ID)
	if err != nil || len(evs) != 1 || evs[0].OccurredAt == "" {
		t.Fatalf("events: %v %+v", err, evs)
	}

	// Prune clears points but keeps the experiment row.
	if err := meas.PruneExperiment(ctx, e.ID); err != nil {
		t.Fatalf("prune: %v", err)
	}
	acN, dcN, _ = meas.CountByExperiment(ctx, e.ID)
	if acN != 0 || dcN != 0 {
		t.Fatalf("expected pruned counts, ac=%d dc=%d", acN, dcN)
	}
	experiments := NewExperimentRepository(d)
	if got, _ := experiments.GetByID(ctx, e.ID); got == nil {
		t.Fatalf("experiment row should survive prune")
	}
}
