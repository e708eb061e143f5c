//go:build grpcserver

package grpcserver

import (
	"context"
	"strings"

	adminv1 "squidstatControl/api/admin/v1"
	experimentv1 "squidstatControl/api/experiment/v1"
	"squidstatControl/internal/auth"
	"squidstatControl/models"
	"squidstatControl/repository"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AdminServer implements admin.v1.AdminService.
type AdminServer struct {
	adminv1.UnimplementedAdminServiceServer
	Users       *repository.UserRepository
	Instruments *repository.InstrumentRepository
	Experiments *repository.ExperimentRepository
	Points      *repository.MeasurementRepository
}

// CreateUser provisions an operator or admin account.
func (s *AdminServer) CreateUser(ctx context.Context, req *adminv1.CreateUserRequest) (*adminv1.CreateUserResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}
	role := strings.ToLower(strings.TrimSpace(req.GetRole()))
	if role == "" {
		role = "operator"
	}
	if role != "operator" && role != "admin" {
		return nil, status.Error(codes.InvalidArgument, "role must be operator or admin")
	}

	u, err := s.Users.Create(ctx, username)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create user: %v", err)
	}
	if role == "admin" {
		if err := s.Users.UpdateRoleByUsername(ctx, username, role); err != nil {
			return nil, status.Errorf(codes.Internal, "set role: %v", err)
		}
		u.Role = role
	}
	return &adminv1.CreateUserResponse{User: toProtoUser(u)}, nil
}

// ListUsers pages through accounts by limit/offset.
func (s *AdminServer) ListUsers(ctx context.Context, req *adminv1.ListUsersRequest) (*adminv1.ListUsersResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	size := int(req.GetPageSize())
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	list, err := s.Users.List(ctx, size, int(req.GetOffset()))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list users: %v", err)
	}
	out := make([]*adminv1.User, 0, len(list))
	for i := range list {
		out = append(out, toProtoUser(&list[i]))
	}
	return &adminv1.ListUsersResponse{Users: out}, nil
}

// CreateInstrument registers an instrument record ahead of its first
// connection. The port and firmware fields are filled when it connects.
func (s *AdminServer) CreateInstrument(ctx context.Context, req *adminv1.CreateInstrumentRequest) (*adminv1.CreateInstrumentResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	serial := strings.TrimSpace(req.GetSerialNumber())
	if name == "" || serial == "" {
		return nil, status.Error(codes.InvalidArgument, "name and serial_number are required")
	}
	channels := int(req.GetChannels())
	if channels <= 0 {
		return nil, status.Error(codes.InvalidArgument, "channels must be positive")
	}
	in, err := s.Instruments.Create(ctx, &models.Instrument{
		Name:         name,
		SerialNumber: serial,
		Channels:     channels,
		Status:       models.InstrumentStatusDisconnected,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create instrument: %v", err)
	}
	return &adminv1.CreateInstrumentResponse{Instrument: toProtoInstrument(in)}, nil
}

// ListExperimentsAdmin lists experiments across all users with optional
// filters and cursor pagination.
func (s *AdminServer) ListExperimentsAdmin(ctx context.Context, req *adminv1.ListExperimentsAdminRequest) (*adminv1.ListExperimentsAdminResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	if req == nil {
		req = &adminv1.ListExperimentsAdminRequest{}
	}
	size := int(req.GetPageSize())
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	var afterSec, afterID int64
	if strings.TrimSpace(req.GetPageToken()) != "" {
		if err := decodeCursor(req.GetPageToken(), &afterSec, &afterID); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid page_token: %v", err)
		}
	}

	var statuses []models.ExperimentStatus
	for _, st := range req.GetStatusFilter() {
		switch st {
		case experimentv1.Status_STATUS_QUEUED:
			statuses = append(statuses, models.ExperimentStatusQueued)
		case experimentv1.Status_STATUS_UPLOADED:
			statuses = append(statuses, models.ExperimentStatusUploaded)
		case experimentv1.Status_STATUS_RUNNING:
			statuses = append(statuses, models.ExperimentStatusRunning)
		case experimentv1.Status_STATUS_PAUSED:
			statuses = append(statuses, models.ExperimentStatusPaused)
		case experimentv1.Status_STATUS_COMPLETED:
			statuses = append(statuses, models.ExperimentStatusCompleted)
		case experimentv1.Status_STATUS_FAILED:
			statuses = append(statuses, models.ExperimentStatusFailed)
		case experimentv1.Status_STATUS_ABORTED:
			statuses = append(statuses, models.ExperimentStatusAborted)
		}
	}
	var submittedBy, instrumentID *int64
	if req.SubmittedBy != nil {
		v := req.GetSubmittedBy()
		submittedBy = &v
	}
	if req.InstrumentId != nil {
		v := req.GetInstrumentId()
		instrumentID = &v
	}

	list, err := s.Experiments.ListAdmin(ctx, repository.ListExperimentsAdminParams{
		Statuses:     statuses,
		SubmittedBy:  submittedBy,
		InstrumentID: instrumentID,
		PageSize:     size,
		AfterSeconds: afterSec,
		AfterID:      afterID,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list experiments: %v", err)
	}

	resp := &adminv1.ListExperimentsAdminResponse{}
	resp.Experiments = make([]*experimentv1.Experiment, 0, len(list))
	var lastSec, lastID int64
	for i := range list {
		resp.Experiments = append(resp.Experiments, toProtoExperiment(&list[i]))
		sec, err := createdToUnixSeconds(list[i].CreatedAt)
		if err == nil {
			lastSec = sec
			lastID = list[i].ID
		}
	}
	if len(list) == size && lastID != 0 {
		resp.NextPageToken = encodeCursor(lastSec, lastID)
	}
	return resp, nil
}

// PruneExperimentData deletes the stored measurement points of a terminal
// experiment. The experiment record and its elements stay.
func (s *AdminServer) PruneExperimentData(ctx context.Context, req *adminv1.PruneExperimentDataRequest) (*adminv1.PruneExperimentDataResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	if req == nil || req.GetExperimentId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "experiment_id is required")
	}
	exp, err := s.Experiments.GetByID(ctx, req.GetExperimentId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get experiment: %v", err)
	}
	if exp == nil {
		return nil, status.Error(codes.NotFound, "experiment not found")
	}
	if !exp.Status.Terminal() {
		return nil, status.Errorf(codes.FailedPrecondition, "cannot prune experiment with status %s", exp.Status)
	}

	acCount, dcCount, err := s.Points.CountByExperiment(ctx, exp.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "count points: %v", err)
	}
	if err := s.Points.PruneExperiment(ctx, exp.ID); err != nil {
		return nil, status.Errorf(codes.Internal, "prune: %v", err)
	}
	return &adminv1.PruneExperimentDataResponse{
		AcPointsDeleted: acCount,
		DcPointsDeleted: dcCount,
	}, nil
}

func toProtoUser(u *models.User) *adminv1.User {
	if u == nil {
		return nil
	}
	return &adminv1.User{Id: u.ID, Username: u.Username, Role: u.Role}
}
