//go:build grpcserver

package grpcserver

import (
	"context"
	"testing"

	adminv1 "squidstatControl/api/admin/v1"
	experimentv1 "squidstatControl/api/experiment/v1"
	"squidstatControl/models"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// newAdminServer builds repositories and the AdminServer for tests, plus an
// admin principal context backed by a real admin row.
func newAdminServer(t *testing.T, name string) (*AdminServer, *testDeps, context.Context) {
	t.Helper()
	deps := newTestDeps(t, name)
	createUser(t, deps.users, "root")
	if err := deps.users.UpdateRoleByUsername(context.Background(), "root", "admin"); err != nil {
		t.Fatalf("make admin: %v", err)
	}
	s := &AdminServer{Users: deps.users, Instruments: deps.instruments, Experiments: deps.experiments, Points: deps.points}
	return s, deps, newPrincipalCtx("root", "admin")
}

func TestAdmin_CreateAndListUsers(t *testing.T) {
	s, _, ctx := newAdminServer(t, "adminsrv1")

	uResp, err := s.CreateUser(ctx, &adminv1.CreateUserRequest{Username: "op1"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if uResp.GetUser().GetRole() != "operator" {
		t.Fatalf("default role = %q, want operator", uResp.GetUser().GetRole())
	}

	if _, err := s.CreateUser(ctx, &adminv1.CreateUserRequest{Username: "boss", Role: "admin"}); err != nil {
		t.Fatalf("CreateUser admin: %v", err)
	}
	if _, err := s.CreateUser(ctx, &adminv1.CreateUserRequest{Username: "x", Role: "superuser"}); err == nil {
		t.Fatalf("expected InvalidArgument for unknown role")
	}
	if _, err := s.CreateUser(ctx, &adminv1.CreateUserRequest{}); err == nil {
		t.Fatalf("expected InvalidArgument for empty username")
	}

	lResp, err := s.ListUsers(ctx, &adminv1.ListUsersRequest{PageSize: 10})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	// root + op1 + boss
	if len(lResp.GetUsers()) != 3 {
		t.Fatalf("expected 3 users, got %d", len(lResp.GetUsers()))
	}

	// Non-admin principals are rejected.
	if _, err := s.ListUsers(newPrincipalCtx("op1", "operator"), &adminv1.ListUsersRequest{}); err == nil {
		t.Fatalf("expected PermissionDenied for operator")
	}
	// Spoofed admin kind without the DB role is rejected too.
	if _, err := s.ListUsers(newPrincipalCtx("op1", "admin"), &adminv1.ListUsersRequest{}); err == nil {
		t.Fatalf("expected PermissionDenied for spoofed admin")
	}
}

func TestAdmin_CreateInstrument(t *testing.T) {
	s, _, ctx := newAdminServer(t, "adminsrv2")

	resp, err := s.CreateInstrument(ctx, &adminv1.CreateInstrumentRequest{
		Name: "Plus2000", SerialNumber: "SSP-2000", Channels: 8,
	})
	if err != nil {
		t.Fatalf("CreateInstrument: %v", err)
	}
	in := resp.GetInstrument()
	if in.GetChannels() != 8 || in.GetSerialNumber() != "SSP-2000" {
		t.Fatalf("unexpected instrument: %+v", in)
	}

	if _, err := s.CreateInstrument(ctx, &adminv1.CreateInstrumentRequest{Name: "x", SerialNumber: "y"}); err == nil {
		t.Fatalf("expected InvalidArgument for zero channels")
	}
	if _, err := s.CreateInstrument(ctx, &adminv1.CreateInstrumentRequest{Channels: 4}); err == nil {
		t.Fatalf("expected InvalidArgument for missing name/serial")
	}
}

func TestAdmin_ListExperimentsAdmin_Filters(t *testing.T) {
	s, deps, ctx := newAdminServer(t, "adminsrv3")
	createUser(t, deps.users, "alice")
	createUser(t, deps.users, "bob")
	inID := createInstrument(t, deps.instruments, "p1")

	alice, _ := deps.users.GetByUsername(context.Background(), "alice")
	bob, _ := deps.users.GetByUsername(context.Background(), "bob")

	raw, err := models.EncodeParams(models.NewOpenCircuitParams())
	if err != nil {
		t.Fatalf("encode params: %v", err)
	}
	mk := func(userID int64) *models.Experiment {
		e, err := deps.experiments.Create(context.Background(), &models.Experiment{
			UUID: uuid.NewString(), Name: "run", InstrumentID: inID, SubmittedBy: userID,
		}, []models.Element{{Kind: models.ElementOpenCircuit, Repeats: 1, Params: raw}})
		if err != nil {
			t.Fatalf("create experiment: %v", err)
		}
		return e
	}
	mk(alice.ID)
	mk(alice.ID)
	bobExp := mk(bob.ID)

	// No filter: all three.
	resp, err := s.ListExperimentsAdmin(ctx, &adminv1.ListExperimentsAdminRequest{PageSize: 10})
	if err != nil || len(resp.GetExperiments()) != 3 {
		t.Fatalf("list all: %v n=%d", err, len(resp.GetExperiments()))
	}

	// Filter by submitter.
	resp, err = s.ListExperimentsAdmin(ctx, &adminv1.ListExperimentsAdminRequest{PageSize: 10, SubmittedBy: &bob.ID})
	if err != nil || len(resp.GetExperiments()) != 1 || resp.GetExperiments()[0].GetId() != bobExp.ID {
		t.Fatalf("filter by submitter: %v resp=%+v", err, resp.GetExperiments())
	}

	// Filter by status: nothing is aborted yet.
	resp, err = s.ListExperimentsAdmin(ctx, &adminv1.ListExperimentsAdminRequest{
		PageSize:     10,
		StatusFilter: []experimentv1.Status{experimentv1.Status_STATUS_ABORTED},
	})
	if err != nil || len(resp.GetExperiments()) != 0 {
		t.Fatalf("filter by status: %v n=%d", err, len(resp.GetExperiments()))
	}
}

func TestAdmin_PruneExperimentData(t *testing.T) {
	s, deps, ctx := newAdminServer(t, "adminsrv4")
	createUser(t, deps.users, "alice")
	inID := createInstrument(t, deps.instruments, "p1")
	alice, _ := deps.users.GetByUsername(context.Background(), "alice")

	raw, err := models.EncodeParams(models.NewOpenCircuitParams())
	if err != nil {
		t.Fatalf("encode params: %v", err)
	}
	exp, err := deps.experiments.Create(context.Background(), &models.Experiment{
		UUID: uuid.NewString(), Name: "old run", InstrumentID: inID, SubmittedBy: alice.ID,
	}, []models.Element{{Kind: models.ElementOpenCircuit, Repeats: 1, Params: raw}})
	if err != nil {
		t.Fatalf("create experiment: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := deps.points.InsertDC(context.Background(), &models.DCDataPoint{ExperimentID: exp.ID, Timestamp: float64(i)}); err != nil {
			t.Fatalf("insert DC: %v", err)
		}
	}
	if err := deps.points.InsertAC(context.Background(), &models.ACDataPoint{ExperimentID: exp.ID, Frequency: 100}); err != nil {
		t.Fatalf("insert AC: %v", err)
	}

	// Pruning a non-terminal experiment is rejected.
	_, err = s.PruneExperimentData(ctx, &adminv1.PruneExperimentDataRequest{ExperimentId: exp.ID})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}

	if err := deps.experiments.MarkFinished(context.Background(), exp.ID, models.ExperimentStatusCompleted, ""); err != nil {
		t.Fatalf("mark finished: %v", err)
	}

	resp, err := s.PruneExperimentData(ctx, &adminv1.PruneExperimentDataRequest{ExperimentId: exp.ID})
	if err != nil {
		t.Fatalf("PruneExperimentData: %v", err)
	}
	if resp.GetAcPointsDeleted() != 1 || resp.GetDcPointsDeleted() != 3 {
		t.Fatalf("unexpected prune counts: %+v", resp)
	}

	ac, dc, err := deps.points.CountByExperiment(context.Background(), exp.ID)
	if err != nil || ac != 0 || dc != 0 {
		t.Fatalf("points remain after prune: ac=%d dc=%d err=%v", ac, dc, err)
	}
}
