//go:build grpcserver

package grpcserver

import (
	"testing"

	instrumentv1 "squidstatControl/api/instrument/v1"
)

func TestConnectListDisconnectInstrument(t *testing.T) {
	deps := newTestDeps(t, "instsrv1")
	createUser(t, deps.users, "alice")

	s := &InstrumentServer{Users: deps.users, Instruments: deps.instruments, Engine: deps.engine}
	ctx := newPrincipalCtx("alice", "operator")

	// Connect the simulator: the instrument record is created on the fly.
	cResp, err := s.ConnectInstrument(ctx, &instrumentv1.ConnectInstrumentRequest{Port: "sim0"})
	if err != nil {
		t.Fatalf("ConnectInstrument: %v", err)
	}
	in := cResp.GetInstrument()
	if in.GetStatus() != instrumentv1.InstrumentStatus_INSTRUMENT_STATUS_CONNECTED {
		t.Fatalf("status after connect = %v", in.GetStatus())
	}
	if in.GetChannels() != 4 || in.GetPort() != "sim0" || in.GetSerialNumber() == "" {
		t.Fatalf("unexpected instrument: %+v", in)
	}

	// Empty port is rejected.
	if _, err := s.ConnectInstrument(ctx, &instrumentv1.ConnectInstrumentRequest{}); err == nil {
		t.Fatalf("expected error for empty port")
	}

	// The instrument shows up in the list and by id.
	lResp, err := s.ListInstruments(ctx, &instrumentv1.ListInstrumentsRequest{PageSize: 10})
	if err != nil || len(lResp.GetInstruments()) != 1 {
		t.Fatalf("ListInstruments: %v n=%d", err, len(lResp.GetInstruments()))
	}
	gResp, err := s.GetInstrument(ctx, &instrumentv1.GetInstrumentRequest{InstrumentId: in.GetId()})
	if err != nil || gResp.GetInstrument().GetSerialNumber() != in.GetSerialNumber() {
		t.Fatalf("GetInstrument: %v got=%+v", err, gResp.GetInstrument())
	}

	// Disconnect retires the runners and flips the status.
	dResp, err := s.DisconnectInstrument(ctx, &instrumentv1.DisconnectInstrumentRequest{InstrumentId: in.GetId()})
	if err != nil {
		t.Fatalf("DisconnectInstrument: %v", err)
	}
	if got := dResp.GetInstrument().GetStatus(); got != instrumentv1.InstrumentStatus_INSTRUMENT_STATUS_DISCONNECTED {
		t.Fatalf("status after disconnect = %v", got)
	}

	// Unknown instrument is NotFound.
	if _, err := s.DisconnectInstrument(ctx, &instrumentv1.DisconnectInstrumentRequest{InstrumentId: 9999}); err == nil {
		t.Fatalf("expected NotFound for unknown instrument")
	}
}

func TestInstrumentService_RejectsUnknownKind(t *testing.T) {
	deps := newTestDeps(t, "instsrv2")
	s := &InstrumentServer{Users: deps.users, Instruments: deps.instruments, Engine: deps.engine}

	ctx := newPrincipalCtx("ghost", "guest")
	if _, err := s.ListInstruments(ctx, &instrumentv1.ListInstrumentsRequest{}); err == nil {
		t.Fatalf("expected PermissionDenied for unknown kind")
	}
}
