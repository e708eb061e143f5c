package device

import (
	"context"
	"errors"
	"testing"
	"time"

	"squidstatControl/models"
)

func encodeElement(t *testing.T, pos int, repeats int, spec models.ElementSpec) models.Element {
	t.Helper()
	params, err := models.EncodeParams(spec)
	if err != nil {
		t.Fatalf("encode params: %v", err)
	}
	return models.Element{Position: pos, Kind: spec.Kind(), Repeats: repeats, Params: params}
}

// drainRun collects events until the Stopped marker.
func drainRun(t *testing.T, events <-chan Event) (ac, dc, starts int, stop *StopInfo) {
	t.Helper()
	deadline := time.After(10 * time.Second)
	for {
		select {
		case ev := <-events:
			switch {
			case ev.AC != nil:
				ac++
			case ev.DC != nil:
				dc++
			case ev.NewElement != nil:
				starts++
			case ev.Stopped != nil:
				return ac, dc, starts, ev.Stopped
			}
		case <-deadline:
			t.Fatalf("run did not finish: ac=%d dc=%d starts=%d", ac, dc, starts)
		}
	}
}

func simHandlerForTest(t *testing.T) Handler {
	t.Helper()
	s := NewSim()
	t.Cleanup(func() { _ = s.Close() })
	id, err := s.Connect(context.Background(), "sim0")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if id.Name == "" || id.Channels < 1 {
		t.Fatalf("unexpected identity: %+v", id)
	}
	h, err := s.Handler(id.Name)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return h
}

func TestSim_CyclicVoltammetryRun(t *testing.T) {
	h := simHandlerForTest(t)
	ctx := context.Background()

	cv := models.NewCyclicVoltammetryParams()
	el := encodeElement(t, 0, 2, cv)
	if err := h.Upload(ctx, 0, []models.Element{el}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := h.Start(ctx, 0); err != nil {
		t.Fatalf("start: %v", err)
	}

	ac, dc, starts, stop := drainRun(t, h.Events(0))
	if stop.Aborted || stop.Err != nil {
		t.Fatalf("unexpected stop: %+v", stop)
	}
	if starts != 2 {
		t.Fatalf("expected 2 element starts (2 cycles), got %d", starts)
	}
	if ac != 0 {
		t.Fatalf("CV must not produce AC data, got %d points", ac)
	}
	// One cycle is 12 s at 10 ms sampling: ~1200 points per cycle.
	if dc < 2000 {
		t.Fatalf("expected ~2400 DC points, got %d", dc)
	}
}

func TestSim_EISProducesACOnly(t *testing.T) {
	h := simHandlerForTest(t)
	ctx := context.Background()

	eis := models.NewEISPotentiostaticParams()
	if err := h.Upload(ctx, 1, []models.Element{encodeElement(t, 0, 1, eis)}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := h.Start(ctx, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	ac, dc, starts, stop := drainRun(t, h.Events(1))
	if stop.Aborted || stop.Err != nil {
		t.Fatalf("unexpected stop: %+v", stop)
	}
	if starts != 1 || dc != 0 {
		t.Fatalf("starts=%d dc=%d, want 1 and 0", starts, dc)
	}
	// One decade at 10 points per decade.
	if ac != 11 {
		t.Fatalf("expected 11 AC points, got %d", ac)
	}
}

func TestSim_StopAbortsRun(t *testing.T) {
	s := NewSim()
	s.Speedup = 100 // real sleeps, heavily compressed
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()
	if _, err := s.Connect(ctx, "sim0"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	h, err := s.Handler(simName)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}

	long := models.NewOpenCircuitParams()
	long.Duration = 3600
	if err := h.Upload(ctx, 0, []models.Element{encodeElement(t, 0, 1, long)}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := h.Start(ctx, 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if err := h.Stop(ctx, 0); err != nil {
		t.Fatalf("stop: %v", err)
	}
	_, _, _, stop := drainRun(t, h.Events(0))
	if !stop.Aborted {
		t.Fatalf("expected aborted stop, got %+v", stop)
	}
}

func TestSim_UploadValidation(t *testing.T) {
	h := simHandlerForTest(t)
	ctx := context.Background()

	// Bad params are rejected at upload.
	bad := models.Element{Kind: models.ElementCyclicVoltammetry, Params: `{"scan_rate":-1}`}
	if err := h.Upload(ctx, 0, []models.Element{bad}); err == nil {
		t.Fatalf("expected upload rejection for invalid params")
	}

	// Double upload without start is busy.
	el := encodeElement(t, 0, 1, models.NewConstantCurrentParams())
	if err := h.Upload(ctx, 0, []models.Element{el}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := h.Upload(ctx, 0, []models.Element{el}); !errors.Is(err, ErrChannelBusy) {
		t.Fatalf("expected ErrChannelBusy, got %v", err)
	}

	// Channel out of range.
	if err := h.Upload(ctx, 99, []models.Element{el}); err == nil {
		t.Fatalf("expected error for channel out of range")
	}

	// Start with nothing uploaded.
	if err := h.Start(ctx, 2); err == nil {
		t.Fatalf("expected error starting idle channel")
	}
}

func TestSim_MultiElementSequence(t *testing.T) {
	h := simHandlerForTest(t)
	ctx := context.Background()

	// The vendor example sequence: EIS, then CV, then constant current.
	cc := models.NewConstantCurrentParams()
	cc.Duration = 1
	els := []models.Element{
		encodeElement(t, 0, 1, models.NewEISPotentiostaticParams()),
		encodeElement(t, 1, 1, models.NewCyclicVoltammetryParams()),
		encodeElement(t, 2, 1, cc),
	}
	if err := h.Upload(ctx, 0, els); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := h.Start(ctx, 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	ac, dc, starts, stop := drainRun(t, h.Events(0))
	if stop.Aborted || stop.Err != nil {
		t.Fatalf("unexpected stop: %+v", stop)
	}
	if starts != 3 {
		t.Fatalf("expected 3 element starts, got %d", starts)
	}
	if ac == 0 || dc == 0 {
		t.Fatalf("expected both AC and DC data, got ac=%d dc=%d", ac, dc)
	}
}
