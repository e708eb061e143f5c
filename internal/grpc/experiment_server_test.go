//go:build grpcserver

package grpcserver

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	experimentv1 "squidstatControl/api/experiment/v1"
	"squidstatControl/internal/auth"
	"squidstatControl/internal/db"
	"squidstatControl/internal/device"
	"squidstatControl/internal/engine"
	"squidstatControl/models"
	"squidstatControl/repository"
)

// testDeps bundles everything a server test needs.
type testDeps struct {
	users       *repository.UserRepository
	instruments *repository.InstrumentRepository
	experiments *repository.ExperimentRepository
	points      *repository.MeasurementRepository
	engine      *engine.Engine
}

// newTestDeps opens an in-memory sqlite DB and wires repos plus a sim-backed
// engine. The engine has no runners until an instrument is connected.
func newTestDeps(t *testing.T, name string) *testDeps {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	deps := &testDeps{
		users:       repository.NewUserRepository(d),
		instruments: repository.NewInstrumentRepository(d),
		experiments: repository.NewExperimentRepository(d),
		points:      repository.NewMeasurementRepository(d),
	}
	deps.engine = engine.New(device.NewSim(), deps.instruments, deps.experiments, deps.points, engine.NewBroker())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = deps.engine.Shutdown(ctx)
	})
	return deps
}

func (d *testDeps) server() *Server {
	return &Server{Users: d.users, Instruments: d.instruments, Experiments: d.experiments, Points: d.points, Engine: d.engine}
}

// newPrincipalCtx returns a context with the given principal injected.
func newPrincipalCtx(name, kind string) context.Context {
	p := &auth.Principal{Name: name, Kind: kind}
	return auth.WithPrincipal(context.Background(), p)
}

// createUser ensures a user exists.
func createUser(t *testing.T, users *repository.UserRepository, username string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := users.Create(ctx, username); err != nil {
		if u, err2 := users.GetByUsername(ctx, username); err2 != nil || u == nil {
			t.Fatalf("ensure user: create err=%v, get=%v u=%v", err, err2, u)
		}
	}
}

// createInstrument registers a 4-channel instrument and returns its id.
func createInstrument(t *testing.T, instruments *repository.InstrumentRepository, name string) int64 {
	t.Helper()
	in, err := instruments.Create(context.Background(), &models.Instrument{
		Name: name, SerialNumber: "SN-" + name, Channels: 4,
	})
	if err != nil {
		t.Fatalf("create instrument: %v", err)
	}
	return in.ID
}

func cvElement(t *testing.T) *experimentv1.Element {
	t.Helper()
	raw, err := models.EncodeParams(models.NewCyclicVoltammetryParams())
	if err != nil {
		t.Fatalf("encode params: %v", err)
	}
	return &experimentv1.Element{Kind: string(models.ElementCyclicVoltammetry), Repeats: 1, ParamsJson: raw}
}

func TestSubmitExperiment_Validation(t *testing.T) {
	deps := newTestDeps(t, "expsrv1")
	createUser(t, deps.users, "alice")
	inID := createInstrument(t, deps.instruments, "p1")

	s := deps.server()
	ctx := newPrincipalCtx("alice", "operator")

	cases := []struct {
		name string
		req  *experimentv1.SubmitExperimentRequest
	}{
		{"empty name", &experimentv1.SubmitExperimentRequest{InstrumentId: inID, Elements: []*experimentv1.Element{cvElement(t)}}},
		{"no instrument", &experimentv1.SubmitExperimentRequest{Name: "x", Elements: []*experimentv1.Element{cvElement(t)}}},
		{"no elements", &experimentv1.SubmitExperimentRequest{Name: "x", InstrumentId: inID}},
		{"unknown kind", &experimentv1.SubmitExperimentRequest{Name: "x", InstrumentId: inID,
			Elements: []*experimentv1.Element{{Kind: "voodoo", ParamsJson: "{}"}}}},
		{"bad params", &experimentv1.SubmitExperimentRequest{Name: "x", InstrumentId: inID,
			Elements: []*experimentv1.Element{{Kind: string(models.ElementCyclicVoltammetry), ParamsJson: "{oops"}}}},
		{"channel out of range", &experimentv1.SubmitExperimentRequest{Name: "x", InstrumentId: inID, Channel: 9,
			Elements: []*experimentv1.Element{cvElement(t)}}},
	}
	for _, tc := range cases {
		if _, err := s.SubmitExperiment(ctx, tc.req); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}

	// Unknown instrument id is NotFound.
	if _, err := s.SubmitExperiment(ctx, &experimentv1.SubmitExperimentRequest{
		Name: "x", InstrumentId: 9999, Elements: []*experimentv1.Element{cvElement(t)},
	}); err == nil {
		t.Fatalf("expected error for unknown instrument")
	}
}

func TestSubmitAndGetExperiment(t *testing.T) {
	deps := newTestDeps(t, "expsrv2")
	createUser(t, deps.users, "alice")
	inID := createInstrument(t, deps.instruments, "p1")

	s := deps.server()
	ctx := newPrincipalCtx("alice", "operator")

	resp, err := s.SubmitExperiment(ctx, &experimentv1.SubmitExperimentRequest{
		Name:         "cv sweep",
		InstrumentId: inID,
		Channel:      2,
		Elements:     []*experimentv1.Element{cvElement(t), cvElement(t)},
	})
	if err != nil {
		t.Fatalf("SubmitExperiment: %v", err)
	}
	exp := resp.GetExperiment()
	if exp.GetStatus() != experimentv1.Status_STATUS_QUEUED || exp.GetUuid() == "" || exp.GetChannel() != 2 {
		t.Fatalf("unexpected experiment: %+v", exp)
	}

	// Lookup by id returns the element sequence.
	got, err := s.GetExperiment(ctx, &experimentv1.GetExperimentRequest{ExperimentId: exp.GetId()})
	if err != nil {
		t.Fatalf("GetExperiment by id: %v", err)
	}
	if len(got.GetElements()) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got.GetElements()))
	}

	// Lookup by uuid works too.
	got, err = s.GetExperiment(ctx, &experimentv1.GetExperimentRequest{Uuid: exp.GetUuid()})
	if err != nil || got.GetExperiment().GetId() != exp.GetId() {
		t.Fatalf("GetExperiment by uuid: %v id=%d", err, got.GetExperiment().GetId())
	}

	// Another operator cannot see it.
	createUser(t, deps.users, "mallory")
	if _, err := s.GetExperiment(newPrincipalCtx("mallory", "operator"), &experimentv1.GetExperimentRequest{ExperimentId: exp.GetId()}); err == nil {
		t.Fatalf("expected PermissionDenied for other user")
	}
}

func TestListExperiments_PaginationChaining(t *testing.T) {
	deps := newTestDeps(t, "expsrv3")
	createUser(t, deps.users, "alice")
	inID := createInstrument(t, deps.instruments, "p1")

	s := deps.server()
	ctx := newPrincipalCtx("alice", "operator")

	for i := 0; i < 3; i++ {
		if i > 0 {
			time.Sleep(10 * time.Millisecond)
		}
		if _, err := s.SubmitExperiment(ctx, &experimentv1.SubmitExperimentRequest{
			Name: "run", InstrumentId: inID, Elements: []*experimentv1.Element{cvElement(t)},
		}); err != nil {
			t.Fatalf("SubmitExperiment[%d]: %v", i, err)
		}
	}

	var allIDs []int64
	token := ""
	for page := 0; page < 5; page++ { // upper bound guard
		resp, err := s.ListExperiments(ctx, &experimentv1.ListExperimentsRequest{PageSize: 1, PageToken: token})
		if err != nil {
			t.Fatalf("ListExperiments page=%d: %v", page, err)
		}
		if len(resp.GetExperiments()) > 0 {
			allIDs = append(allIDs, resp.GetExperiments()[0].GetId())
		}
		if resp.GetNextPageToken() == "" {
			break
		}
		if resp.GetNextPageToken() == token {
			t.Fatalf("next_page_token did not advance: %q", token)
		}
		token = resp.GetNextPageToken()
	}

	if len(allIDs) != 3 {
		t.Fatalf("expected 3 experiments across pages, got %d (%v)", len(allIDs), allIDs)
	}
	seen := map[int64]bool{}
	for _, id := range allIDs {
		if seen[id] {
			t.Fatalf("duplicate id in pagination sequence: %d (all=%v)", id, allIDs)
		}
		seen[id] = true
	}
}

func TestListExperiments_InvalidToken(t *testing.T) {
	deps := newTestDeps(t, "expsrv4")
	createUser(t, deps.users, "bob")

	s := deps.server()
	ctx := newPrincipalCtx("bob", "operator")
	if _, err := s.ListExperiments(ctx, &experimentv1.ListExperimentsRequest{PageSize: 1, PageToken: "***invalid***"}); err == nil {
		t.Fatalf("expected error for invalid token, got nil")
	}
}

func TestWithdrawExperiment(t *testing.T) {
	deps := newTestDeps(t, "expsrv5")
	createUser(t, deps.users, "carol")
	inID := createInstrument(t, deps.instruments, "p1")

	s := deps.server()
	ctx := newPrincipalCtx("carol", "operator")

	resp, err := s.SubmitExperiment(ctx, &experimentv1.SubmitExperimentRequest{
		Name: "doomed", InstrumentId: inID, Elements: []*experimentv1.Element{cvElement(t)},
	})
	if err != nil {
		t.Fatalf("SubmitExperiment: %v", err)
	}
	eid := resp.GetExperiment().GetId()

	// Another operator cannot withdraw it.
	createUser(t, deps.users, "mallory")
	if _, err := s.WithdrawExperiment(newPrincipalCtx("mallory", "operator"), &experimentv1.WithdrawExperimentRequest{ExperimentId: eid}); err == nil {
		t.Fatalf("expected PermissionDenied for other user")
	}

	wResp, err := s.WithdrawExperiment(ctx, &experimentv1.WithdrawExperimentRequest{ExperimentId: eid})
	if err != nil {
		t.Fatalf("WithdrawExperiment: %v", err)
	}
	if got := wResp.GetExperiment().GetStatus(); got != experimentv1.Status_STATUS_ABORTED {
		t.Fatalf("withdrawn status = %v, want %v", got, experimentv1.Status_STATUS_ABORTED)
	}

	// Withdrawing again fails: the experiment is terminal.
	if _, err := s.WithdrawExperiment(ctx, &experimentv1.WithdrawExperimentRequest{ExperimentId: eid}); err == nil {
		t.Fatalf("expected FailedPrecondition for terminal experiment")
	}
}

func TestGetDCData_PaginationAndOwnership(t *testing.T) {
	deps := newTestDeps(t, "expsrv6")
	createUser(t, deps.users, "carol")
	inID := createInstrument(t, deps.instruments, "p1")

	s := deps.server()
	ctx := newPrincipalCtx("carol", "operator")

	resp, err := s.SubmitExperiment(ctx, &experimentv1.SubmitExperimentRequest{
		Name: "data", InstrumentId: inID, Elements: []*experimentv1.Element{cvElement(t)},
	})
	if err != nil {
		t.Fatalf("SubmitExperiment: %v", err)
	}
	eid := resp.GetExperiment().GetId()

	// Seed points directly.
	for i := 0; i < 5; i++ {
		if err := deps.points.InsertDC(context.Background(), &models.DCDataPoint{
			ExperimentID: eid, Timestamp: float64(i), WorkingVoltage: 0.1 * float64(i),
		}); err != nil {
			t.Fatalf("insert DC: %v", err)
		}
	}

	var total int
	token := ""
	for page := 0; page < 5; page++ {
		r, err := s.GetDCData(ctx, &experimentv1.GetDCDataRequest{ExperimentId: eid, PageSize: 2, PageToken: token})
		if err != nil {
			t.Fatalf("GetDCData page=%d: %v", page, err)
		}
		total += len(r.GetPoints())
		if r.GetNextPageToken() == "" {
			break
		}
		token = r.GetNextPageToken()
	}
	if total != 5 {
		t.Fatalf("expected 5 points across pages, got %d", total)
	}

	// Other users cannot read the data.
	createUser(t, deps.users, "mallory")
	if _, err := s.GetDCData(newPrincipalCtx("mallory", "operator"), &experimentv1.GetDCDataRequest{ExperimentId: eid}); err == nil {
		t.Fatalf("expected PermissionDenied for other user")
	}
}

// TestEncodeDecodeCursor_RoundTrip tests cursor encoding and decoding round trip.
func TestEncodeDecodeCursor_RoundTrip(t *testing.T) {
	sec := int64(1700000000)
	id := int64(42)
	token := encodeCursor(sec, id)
	if strings.Contains(token, "=") {
		t.Fatalf("cursor token should be raw base64 url without padding: %q", token)
	}
	if _, err := base64.RawURLEncoding.DecodeString(token); err != nil {
		t.Fatalf("token not valid base64: %v", err)
	}
	var gotSec, gotID int64
	if err := decodeCursor(token, &gotSec, &gotID); err != nil {
		t.Fatalf("decodeCursor: %v", err)
	}
	if gotSec != sec || gotID != id {
		t.Fatalf("round trip mismatch: got (%d,%d) want (%d,%d)", gotSec, gotID, sec, id)
	}
}

// TestDecodeCursor_InvalidFormat tests decoding with invalid formats.
func TestDecodeCursor_InvalidFormat(t *testing.T) {
	var s, i int64
	// not base64
	if err := decodeCursor("***", &s, &i); err == nil {
		t.Fatalf("expected error for non-base64 token")
	}
	// wrong parts
	bad := base64.RawURLEncoding.EncodeToString([]byte("not|number|extra"))
	if err := decodeCursor(bad, &s, &i); err == nil {
		t.Fatalf("expected error for invalid parts")
	}
}

// TestCreatedToUnixSeconds tests creation date parsing.
func TestCreatedToUnixSeconds(t *testing.T) {
	// RFC3339
	sec, err := createdToUnixSeconds("2024-01-02T03:04:05Z")
	if err != nil || sec == 0 {
		t.Fatalf("RFC3339 parse failed: sec=%d err=%v", sec, err)
	}
	// SQLite default format
	if _, err := createdToUnixSeconds("2024-01-02 03:04:05"); err != nil {
		t.Fatalf("sqlite format parse failed: %v", err)
	}
	// Unsupported
	if _, err := createdToUnixSeconds("02/01/2024"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
