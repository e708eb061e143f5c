//go:build grpcserver

package grpcserver

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	experimentv1 "squidstatControl/api/experiment/v1"
	"squidstatControl/internal/auth"
	"squidstatControl/internal/engine"
	"squidstatControl/models"
	"squidstatControl/repository"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server bundles dependencies and implements the ExperimentService.
type Server struct {
	experimentv1.UnimplementedExperimentServiceServer
	Users       *repository.UserRepository
	Instruments *repository.InstrumentRepository
	Experiments *repository.ExperimentRepository
	Points      *repository.MeasurementRepository
	Engine      *engine.Engine
}

const (
	maxPageSize      = 100 // Maximum allowed page size for list operations.
	defaultPageSize  = 20  // Default page size for list operations.
	cursorSeparator  = "|" // Separator for cursor components.
	sqliteDateFormat = "2006-01-02 15:04:05"
	maxElements      = 50 // Longest element sequence one experiment may carry.
)

// resolveCurrentUser retrieves the authenticated user from the database.
func (s *Server) resolveCurrentUser(ctx context.Context, p *auth.Principal) (*models.User, error) {
	u, err := s.Users.GetByUsername(ctx, p.Name)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user: %v", err)
	}
	if u == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	return u, nil
}

// SubmitExperiment validates the element sequence and queues it on the
// requested instrument channel.
func (s *Server) SubmitExperiment(ctx context.Context, req *experimentv1.SubmitExperimentRequest) (*experimentv1.SubmitExperimentResponse, error) {
	p, err := auth.RequireOperatorOrAdmin(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.resolveCurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}

	if req == nil || strings.TrimSpace(req.GetName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if req.GetInstrumentId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "instrument_id is required")
	}
	if len(req.GetElements()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one element is required")
	}
	if len(req.GetElements()) > maxElements {
		return nil, status.Errorf(codes.InvalidArgument, "too many elements (max %d)", maxElements)
	}

	in, err := s.Instruments.GetByID(ctx, req.GetInstrumentId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get instrument: %v", err)
	}
	if in == nil {
		return nil, status.Error(codes.NotFound, "instrument not found")
	}
	if ch := int(req.GetChannel()); ch < 0 || ch >= in.Channels {
		return nil, status.Errorf(codes.InvalidArgument, "channel %d out of range for %d-channel instrument", ch, in.Channels)
	}

	// Validate every element before anything is persisted.
	elements := make([]models.Element, 0, len(req.GetElements()))
	for i, el := range req.GetElements() {
		kind := models.ElementKind(el.GetKind())
		if !models.KnownElementKind(kind) {
			return nil, status.Errorf(codes.InvalidArgument, "element %d: unknown kind %q", i, el.GetKind())
		}
		if _, err := models.DecodeParams(kind, el.GetParamsJson()); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "element %d: %v", i, err)
		}
		elements = append(elements, models.Element{
			Kind:    kind,
			Repeats: int(el.GetRepeats()),
			Params:  el.GetParamsJson(),
		})
	}

	exp, err := s.Experiments.Create(ctx, &models.Experiment{
		UUID:         uuid.NewString(),
		Name:         strings.TrimSpace(req.GetName()),
		InstrumentID: in.ID,
		Channel:      int(req.GetChannel()),
		SubmittedBy:  u.ID,
	}, elements)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create experiment: %v", err)
	}

	return &experimentv1.SubmitExperimentResponse{Experiment: toProtoExperiment(exp)}, nil
}

// GetExperiment returns an experiment and its element sequence by id or uuid.
func (s *Server) GetExperiment(ctx context.Context, req *experimentv1.GetExperimentRequest) (*experimentv1.GetExperimentResponse, error) {
	p, err := auth.RequireOperatorOrAdmin(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.resolveCurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}

	exp, err := s.lookupExperiment(ctx, req.GetExperimentId(), req.GetUuid())
	if err != nil {
		return nil, err
	}
	if exp.SubmittedBy != u.ID && p.Kind != "admin" {
		return nil, status.Error(codes.PermissionDenied, "cannot view another user's experiment")
	}

	els, err := s.Experiments.ElementsByExperiment(ctx, exp.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "elements: %v", err)
	}
	out := make([]*experimentv1.Element, 0, len(els))
	for i := range els {
		out = append(out, &experimentv1.Element{
			Kind:       string(els[i].Kind),
			Repeats:    int32(els[i].Repeats),
			ParamsJson: els[i].Params,
		})
	}
	return &experimentv1.GetExperimentResponse{Experiment: toProtoExperiment(exp), Elements: out}, nil
}

func (s *Server) lookupExperiment(ctx context.Context, id int64, uid string) (*models.Experiment, error) {
	var exp *models.Experiment
	var err error
	switch {
	case id != 0:
		exp, err = s.Experiments.GetByID(ctx, id)
	case strings.TrimSpace(uid) != "":
		exp, err = s.Experiments.GetByUUID(ctx, strings.TrimSpace(uid))
	default:
		return nil, status.Error(codes.InvalidArgument, "experiment_id or uuid is required")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get experiment: %v", err)
	}
	if exp == nil {
		return nil, status.Error(codes.NotFound, "experiment not found")
	}
	return exp, nil
}

// ListExperiments retrieves paginated experiments for the authenticated user.
func (s *Server) ListExperiments(ctx context.Context, req *experimentv1.ListExperimentsRequest) (*experimentv1.ListExperimentsResponse, error) {
	p, err := auth.RequireOperatorOrAdmin(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.resolveCurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}

	pageSize := int32(defaultPageSize)
	pageToken := ""
	if req != nil {
		if req.GetPageSize() > 0 {
			pageSize = req.GetPageSize()
		}
		pageToken = req.GetPageToken()
	}
	if pageSize > int32(maxPageSize) {
		pageSize = int32(maxPageSize)
	}

	var afterSeconds, afterID int64
	if pageToken != "" {
		if err := decodeCursor(pageToken, &afterSeconds, &afterID); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid page_token: %v", err)
		}
	}

	list, err := s.Experiments.ListByUserPage(ctx, u.ID, int(pageSize), afterSeconds, afterID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list experiments: %v", err)
	}

	out := make([]*experimentv1.Experiment, 0, len(list))
	for i := range list {
		out = append(out, toProtoExperiment(&list[i]))
	}

	nextToken := ""
	if int32(len(list)) == pageSize && len(list) > 0 {
		last := list[len(list)-1]
		sec, err := createdToUnixSeconds(last.CreatedAt)
		if err == nil {
			nextToken = encodeCursor(sec, last.ID)
		}
	}
	return &experimentv1.ListExperimentsResponse{Experiments: out, NextPageToken: nextToken}, nil
}

// WithdrawExperiment aborts the caller's experiment: a queued one is
// withdrawn from the queue, an active one is stopped on the hardware.
func (s *Server) WithdrawExperiment(ctx context.Context, req *experimentv1.WithdrawExperimentRequest) (*experimentv1.WithdrawExperimentResponse, error) {
	exp, err := s.ownedExperiment(ctx, req.GetExperimentId())
	if err != nil {
		return nil, err
	}

	if err := s.Engine.Abort(ctx, exp.ID); err != nil {
		switch {
		case errors.Is(err, engine.ErrNotRunning), errors.Is(err, sql.ErrNoRows):
			return nil, status.Errorf(codes.FailedPrecondition, "cannot withdraw experiment with status %s", exp.Status)
		default:
			return nil, status.Errorf(codes.Internal, "withdraw: %v", err)
		}
	}

	exp, err = s.Experiments.GetByID(ctx, exp.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get experiment: %v", err)
	}
	return &experimentv1.WithdrawExperimentResponse{Experiment: toProtoExperiment(exp)}, nil
}

// PauseExperiment suspends the caller's running experiment.
func (s *Server) PauseExperiment(ctx context.Context, req *experimentv1.PauseExperimentRequest) (*experimentv1.PauseExperimentResponse, error) {
	exp, err := s.ownedExperiment(ctx, req.GetExperimentId())
	if err != nil {
		return nil, err
	}
	if err := s.controlErr(s.Engine.Pause(ctx, exp.ID), exp); err != nil {
		return nil, err
	}
	exp, err = s.Experiments.GetByID(ctx, exp.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get experiment: %v", err)
	}
	return &experimentv1.PauseExperimentResponse{Experiment: toProtoExperiment(exp)}, nil
}

// ResumeExperiment continues the caller's paused experiment.
func (s *Server) ResumeExperiment(ctx context.Context, req *experimentv1.ResumeExperimentRequest) (*experimentv1.ResumeExperimentResponse, error) {
	exp, err := s.ownedExperiment(ctx, req.GetExperimentId())
	if err != nil {
		return nil, err
	}
	if err := s.controlErr(s.Engine.Resume(ctx, exp.ID), exp); err != nil {
		return nil, err
	}
	exp, err = s.Experiments.GetByID(ctx, exp.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get experiment: %v", err)
	}
	return &experimentv1.ResumeExperimentResponse{Experiment: toProtoExperiment(exp)}, nil
}

// ownedExperiment fetches the experiment and verifies ownership (admins may
// control any experiment).
func (s *Server) ownedExperiment(ctx context.Context, id int64) (*models.Experiment, error) {
	if id == 0 {
		return nil, status.Error(codes.InvalidArgument, "experiment_id is required")
	}
	p, err := auth.RequireOperatorOrAdmin(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.resolveCurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}
	exp, err := s.Experiments.GetByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get experiment: %v", err)
	}
	if exp == nil {
		return nil, status.Error(codes.NotFound, "experiment not found")
	}
	if exp.SubmittedBy != u.ID && p.Kind != "admin" {
		return nil, status.Error(codes.PermissionDenied, "cannot control another user's experiment")
	}
	return exp, nil
}

func (s *Server) controlErr(err error, exp *models.Experiment) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, engine.ErrNotRunning), errors.Is(err, sql.ErrNoRows):
		return status.Errorf(codes.FailedPrecondition, "experiment status is %s", exp.Status)
	default:
		return status.Errorf(codes.Internal, "control: %v", err)
	}
}

// GetACData pages through stored impedance points by id cursor.
func (s *Server) GetACData(ctx context.Context, req *experimentv1.GetACDataRequest) (*experimentv1.GetACDataResponse, error) {
	exp, err := s.ownedExperiment(ctx, req.GetExperimentId())
	if err != nil {
		return nil, err
	}
	size, afterID, err := pointPage(req.GetPageSize(), req.GetPageToken())
	if err != nil {
		return nil, err
	}
	pts, err := s.Points.ListAC(ctx, exp.ID, size, afterID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list AC data: %v", err)
	}
	resp := &experimentv1.GetACDataResponse{Points: make([]*experimentv1.ACDataPoint, 0, len(pts))}
	for i := range pts {
		resp.Points = append(resp.Points, toProtoAC(&pts[i]))
	}
	if len(pts) == size {
		resp.NextPageToken = strconv.FormatInt(pts[len(pts)-1].ID, 10)
	}
	return resp, nil
}

// GetDCData pages through stored time-domain points by id cursor.
func (s *Server) GetDCData(ctx context.Context, req *experimentv1.GetDCDataRequest) (*experimentv1.GetDCDataResponse, error) {
	exp, err := s.ownedExperiment(ctx, req.GetExperimentId())
	if err != nil {
		return nil, err
	}
	size, afterID, err := pointPage(req.GetPageSize(), req.GetPageToken())
	if err != nil {
		return nil, err
	}
	pts, err := s.Points.ListDC(ctx, exp.ID, size, afterID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list DC data: %v", err)
	}
	resp := &experimentv1.GetDCDataResponse{Points: make([]*experimentv1.DCDataPoint, 0, len(pts))}
	for i := range pts {
		resp.Points = append(resp.Points, toProtoDC(&pts[i]))
	}
	if len(pts) == size {
		resp.NextPageToken = strconv.FormatInt(pts[len(pts)-1].ID, 10)
	}
	return resp, nil
}

// GetElementEvents returns all element transitions recorded for a run.
func (s *Server) GetElementEvents(ctx context.Context, req *experimentv1.GetElementEventsRequest) (*experimentv1.GetElementEventsResponse, error) {
	exp, err := s.ownedExperiment(ctx, req.GetExperimentId())
	if err != nil {
		return nil, err
	}
	events, err := s.Points.ListElementEvents(ctx, exp.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list element events: %v", err)
	}
	resp := &experimentv1.GetElementEventsResponse{Events: make([]*experimentv1.ElementEvent, 0, len(events))}
	for i := range events {
		resp.Events = append(resp.Events, toProtoElementEvent(&events[i]))
	}
	return resp, nil
}

// StreamMeasurements streams live measurement points of an active
// experiment until it reaches a terminal state or the client hangs up.
// A terminal experiment yields just the done marker.
func (s *Server) StreamMeasurements(req *experimentv1.StreamMeasurementsRequest, stream experimentv1.ExperimentService_StreamMeasurementsServer) error {
	ctx := stream.Context()
	exp, err := s.ownedExperiment(ctx, req.GetExperimentId())
	if err != nil {
		return err
	}

	// Subscribe before checking the status so a run finishing between the
	// check and the subscribe cannot strand the stream.
	points, cancel := s.Engine.Broker().Subscribe(exp.ID, 512)
	defer cancel()

	exp, err = s.Experiments.GetByID(ctx, exp.ID)
	if err != nil {
		return status.Errorf(codes.Internal, "get experiment: %v", err)
	}
	if exp == nil || exp.Status.Terminal() {
		return stream.Send(&experimentv1.MeasurementPoint{Done: true})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-points:
			if !ok {
				return nil
			}
			var msg experimentv1.MeasurementPoint
			switch {
			case p.AC != nil:
				msg.Ac = toProtoAC(p.AC)
			case p.DC != nil:
				msg.Dc = toProtoDC(p.DC)
			case p.Element != nil:
				msg.Element = toProtoElementEvent(p.Element)
			case p.Done:
				msg.Done = true
			}
			if err := stream.Send(&msg); err != nil {
				return err
			}
			if p.Done {
				return nil
			}
		}
	}
}

// pointPage validates page size and decodes the simple integer id cursor
// used for measurement pages.
func pointPage(size int32, token string) (int, int64, error) {
	n := int(size)
	if n <= 0 {
		n = defaultPageSize
	}
	if n > maxPageSize {
		n = maxPageSize
	}
	var afterID int64
	if t := strings.TrimSpace(token); t != "" {
		v, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, 0, status.Error(codes.InvalidArgument, "invalid page_token")
		}
		afterID = v
	}
	return n, afterID, nil
}

// toProtoExperiment converts a models.Experiment to a proto message.
func toProtoExperiment(e *models.Experiment) *experimentv1.Experiment {
	if e == nil {
		return nil
	}
	out := &experimentv1.Experiment{
		Id:           e.ID,
		Uuid:         e.UUID,
		Name:         e.Name,
		InstrumentId: e.InstrumentID,
		Channel:      int32(e.Channel),
		Status:       toProtoStatus(e.Status),
		SubmittedBy:  e.SubmittedBy,
		CreatedAt:    e.CreatedAt,
		Error:        e.Error,
	}
	if e.StartedAt != nil {
		out.StartedAt = *e.StartedAt
	}
	if e.FinishedAt != nil {
		out.FinishedAt = *e.FinishedAt
	}
	return out
}

// toProtoStatus converts a models.ExperimentStatus to a proto Status enum.
func toProtoStatus(s models.ExperimentStatus) experimentv1.Status {
	switch s {
	case models.ExperimentStatusQueued:
		return experimentv1.Status_STATUS_QUEUED
	case models.ExperimentStatusUploaded:
		return experimentv1.Status_STATUS_UPLOADED
	case models.ExperimentStatusRunning:
		return experimentv1.Status_STATUS_RUNNING
	case models.ExperimentStatusPaused:
		return experimentv1.Status_STATUS_PAUSED
	case models.ExperimentStatusCompleted:
		return experimentv1.Status_STATUS_COMPLETED
	case models.ExperimentStatusFailed:
		return experimentv1.Status_STATUS_FAILED
	case models.ExperimentStatusAborted:
		return experimentv1.Status_STATUS_ABORTED
	default:
		return experimentv1.Status_STATUS_UNSPECIFIED
	}
}

func toProtoAC(p *models.ACDataPoint) *experimentv1.ACDataPoint {
	return &experimentv1.ACDataPoint{
		Id:                      p.ID,
		ElementPosition:         int32(p.ElementPosition),
		Timestamp:               p.Timestamp,
		Frequency:               p.Frequency,
		AbsoluteImpedance:       p.AbsoluteImpedance,
		PhaseAngle:              p.PhaseAngle,
		RealImpedance:           p.RealImpedance,
		ImagImpedance:           p.ImagImpedance,
		TotalHarmonicDistortion: p.TotalHarmonicDist,
		NumberOfCycles:          int32(p.NumberOfCycles),
		WorkingDcVoltage:        p.WorkingDCVoltage,
		DcCurrent:               p.DCCurrent,
		CurrentAmplitude:        p.CurrentAmplitude,
		VoltageAmplitude:        p.VoltageAmplitude,
	}
}

func toProtoDC(p *models.DCDataPoint) *experimentv1.DCDataPoint {
	return &experimentv1.DCDataPoint{
		Id:              p.ID,
		ElementPosition: int32(p.ElementPosition),
		Timestamp:       p.Timestamp,
		WorkingVoltage:  p.WorkingVoltage,
		WorkingCurrent:  p.WorkingCurrent,
		Temperature:     p.Temperature,
	}
}

func toProtoElementEvent(ev *models.ElementEvent) *experimentv1.ElementEvent {
	return &experimentv1.ElementEvent{
		StepName:      ev.StepName,
		StepNumber:    int32(ev.StepNumber),
		SubstepNumber: int32(ev.SubstepNumber),
		OccurredAt:    ev.OccurredAt,
	}
}

// encodeCursor builds an opaque next_page_token from created unix seconds and experiment id.
func encodeCursor(seconds int64, id int64) string {
	raw := strconv.FormatInt(seconds, 10) + cursorSeparator + strconv.FormatInt(id, 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor parses an opaque page_token into created unix seconds and experiment id.
func decodeCursor(token string, seconds *int64, id *int64) error {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("base64: %w", err)
	}
	parts := strings.SplitN(string(b), cursorSeparator, 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid cursor format")
	}
	sec, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return fmt.Errorf("parse seconds: %w", err)
	}
	pid, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return fmt.Errorf("parse id: %w", err)
	}
	*seconds = sec
	*id = pid
	return nil
}

// createdToUnixSeconds parses experiment creation dates into unix seconds.
// Supports RFC3339 format (e.g., 2006-01-02T15:04:05Z) and SQLite CURRENT_TIMESTAMP format.
func createdToUnixSeconds(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty created_at")
	}

	// Try RFC3339 first.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Unix(), nil
	}

	// Try SQLite CURRENT_TIMESTAMP default format (UTC).
	if t, err := time.ParseInLocation(sqliteDateFormat, s, time.UTC); err == nil {
		return t.Unix(), nil
	}

	return 0, fmt.Errorf("unsupported created_at format: %q", s)
}
