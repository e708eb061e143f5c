//go:build grpcserver

package grpcserver

import (
	"context"
	"fmt"
	"strings"

	instrumentv1 "squidstatControl/api/instrument/v1"
	"squidstatControl/internal/auth"
	"squidstatControl/internal/engine"
	"squidstatControl/models"
	"squidstatControl/repository"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InstrumentServer implements InstrumentService RPCs.
type InstrumentServer struct {
	instrumentv1.UnimplementedInstrumentServiceServer
	Users       *repository.UserRepository
	Instruments *repository.InstrumentRepository
	Engine      *engine.Engine
}

// ListInstruments lists instruments with simple id-based cursor pagination.
func (s *InstrumentServer) ListInstruments(ctx context.Context, req *instrumentv1.ListInstrumentsRequest) (*instrumentv1.ListInstrumentsResponse, error) {
	if _, err := auth.RequireOperatorOrAdmin(ctx); err != nil {
		return nil, err
	}
	if req == nil {
		req = &instrumentv1.ListInstrumentsRequest{}
	}
	size := int(req.GetPageSize())
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	var afterID int64
	if t := strings.TrimSpace(req.GetPageToken()); t != "" {
		var v int64
		if _, err := fmt.Sscanf(t, "%d", &v); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid page_token")
		}
		afterID = v
	}

	list, err := s.Instruments.ListAdmin(ctx, repository.ListInstrumentsAdminParams{
		PageSize: size,
		AfterID:  afterID,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list instruments: %v", err)
	}
	out := make([]*instrumentv1.Instrument, 0, len(list))
	var last int64
	for i := range list {
		out = append(out, toProtoInstrument(&list[i]))
		last = list[i].ID
	}
	resp := &instrumentv1.ListInstrumentsResponse{Instruments: out}
	if len(list) == size && last != 0 {
		resp.NextPageToken = fmt.Sprintf("%d", last)
	}
	return resp, nil
}

// GetInstrument returns one instrument by id.
func (s *InstrumentServer) GetInstrument(ctx context.Context, req *instrumentv1.GetInstrumentRequest) (*instrumentv1.GetInstrumentResponse, error) {
	if _, err := auth.RequireOperatorOrAdmin(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetInstrumentId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "instrument_id is required")
	}
	in, err := s.Instruments.GetByID(ctx, req.GetInstrumentId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get instrument: %v", err)
	}
	if in == nil {
		return nil, status.Error(codes.NotFound, "instrument not found")
	}
	return &instrumentv1.GetInstrumentResponse{Instrument: toProtoInstrument(in)}, nil
}

// ConnectInstrument attaches the hardware on the given port and starts
// serving its channels.
func (s *InstrumentServer) ConnectInstrument(ctx context.Context, req *instrumentv1.ConnectInstrumentRequest) (*instrumentv1.ConnectInstrumentResponse, error) {
	if _, err := auth.RequireOperatorOrAdmin(ctx); err != nil {
		return nil, err
	}
	port := strings.TrimSpace(req.GetPort())
	if port == "" {
		return nil, status.Error(codes.InvalidArgument, "port is required")
	}
	in, err := s.Engine.ConnectInstrument(ctx, port)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "connect: %v", err)
	}
	return &instrumentv1.ConnectInstrumentResponse{Instrument: toProtoInstrument(in)}, nil
}

// DisconnectInstrument stops the instrument's runners and marks it
// disconnected. Running experiments on it are aborted.
func (s *InstrumentServer) DisconnectInstrument(ctx context.Context, req *instrumentv1.DisconnectInstrumentRequest) (*instrumentv1.DisconnectInstrumentResponse, error) {
	if _, err := auth.RequireOperatorOrAdmin(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetInstrumentId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "instrument_id is required")
	}
	in, err := s.Instruments.GetByID(ctx, req.GetInstrumentId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get instrument: %v", err)
	}
	if in == nil {
		return nil, status.Error(codes.NotFound, "instrument not found")
	}
	if err := s.Engine.DisconnectInstrument(ctx, in.ID); err != nil {
		return nil, status.Errorf(codes.Internal, "disconnect: %v", err)
	}
	in, err = s.Instruments.GetByID(ctx, in.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get instrument: %v", err)
	}
	return &instrumentv1.DisconnectInstrumentResponse{Instrument: toProtoInstrument(in)}, nil
}

func toProtoInstrument(in *models.Instrument) *instrumentv1.Instrument {
	if in == nil {
		return nil
	}
	out := &instrumentv1.Instrument{
		Id:           in.ID,
		Name:         in.Name,
		SerialNumber: in.SerialNumber,
		Channels:     int32(in.Channels),
		Firmware:     in.Firmware,
	}
	if in.Port != nil {
		out.Port = *in.Port
	}
	switch in.Status {
	case models.InstrumentStatusDisconnected:
		out.Status = instrumentv1.InstrumentStatus_INSTRUMENT_STATUS_DISCONNECTED
	case models.InstrumentStatusConnected:
		out.Status = instrumentv1.InstrumentStatus_INSTRUMENT_STATUS_CONNECTED
	case models.InstrumentStatusFaulted:
		out.Status = instrumentv1.InstrumentStatus_INSTRUMENT_STATUS_FAULTED
	default:
		out.Status = instrumentv1.InstrumentStatus_INSTRUMENT_STATUS_UNSPECIFIED
	}
	return out
}
