package repository

import (
	"context"
	"testing"

	"squidstatControl/internal/db"
	"squidstatControl/models"
)

func TestInstrumentRepository_CRUD_Status_Lookup(t *testing.T) {
	d, err := db.Open("file:instrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewInstrumentRepository(d)
	ctx := context.Background()

	// Create with defaults
	in, err := repo.Create(ctx, &models.Instrument{Name: "Plus1894", SerialNumber: "SQ-1894"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if in.ID == 0 || in.Status != models.InstrumentStatusDisconnected || in.Channels != 1 {
		t.Fatalf("unexpected created instrument: %+v", in)
	}

	// Lookups
	if got, _ := repo.GetBySerial(ctx, "SQ-1894"); got == nil || got.ID != in.ID {
		t.Fatalf("GetBySerial mismatch: %+v", got)
	}
	if got, _ := repo.GetByName(ctx, "Plus1894"); got == nil || got.ID != in.ID {
		t.Fatalf("GetByName mismatch: %+v", got)
	}

	// Port starts null, then is set on connect
	if in.Port != nil {
		t.Fatalf("expected nil port on create: %+v", in)
	}
	if err := repo.UpdatePort(ctx, in.ID, "/dev/ttyUSB0"); err != nil {
		t.Fatalf("update port: %v", err)
	}
	if got, _ := repo.GetByPort(ctx, "/dev/ttyUSB0"); got == nil || got.ID != in.ID {
		t.Fatalf("GetByPort mismatch: %+v", got)
	}

	// Status and firmware
	if err := repo.UpdateStatus(ctx, in.ID, models.InstrumentStatusConnected); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if err := repo.UpdateFirmware(ctx, in.ID, "1.8.0.5"); err != nil {
		t.Fatalf("update firmware: %v", err)
	}
	got, _ := repo.GetByID(ctx, in.ID)
	if got.Status != models.InstrumentStatusConnected || got.Firmware != "1.8.0.5" {
		t.Fatalf("status/firmware not updated: %+v", got)
	}

	// List admin filtered by status
	st := models.InstrumentStatusConnected
	list, err := repo.ListAdmin(ctx, ListInstrumentsAdminParams{Status: &st, PageSize: 10})
	if err != nil || len(list) != 1 {
		t.Fatalf("ListAdmin: %v len=%d", err, len(list))
	}

	// Name filter that matches nothing
	name := "nope"
	list, err = repo.ListAdmin(ctx, ListInstrumentsAdminParams{NameOrSerialContains: &name})
	if err != nil || len(list) != 0 {
		t.Fatalf("ListAdmin empty filter: %v len=%d", err, len(list))
	}

	// Delete
	if err := repo.Delete(ctx, in.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gone, _ := repo.GetByID(ctx, in.ID); gone != nil {
		t.Fatalf("expected instrument deleted, got: %+v", gone)
	}
}
