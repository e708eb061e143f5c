//go:build grpcserver

package grpcserver

import (
	"context"
	"net"

	adminv1 "squidstatControl/api/admin/v1"
	experimentv1 "squidstatControl/api/experiment/v1"
	instrumentv1 "squidstatControl/api/instrument/v1"
	"squidstatControl/internal/auth"
	"squidstatControl/internal/config"
	"squidstatControl/internal/engine"
	"squidstatControl/repository"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// StartGRPC starts the gRPC server on the given address and returns a shutdown function.
// The server implements ExperimentService, InstrumentService, and AdminService with authentication interceptors.
func StartGRPC(cfg *config.Config, eng *engine.Engine, users *repository.UserRepository, instruments *repository.InstrumentRepository, experiments *repository.ExperimentRepository, points *repository.MeasurementRepository) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	// Allow plaintext for simplicity; in production, configure TLS.
	_ = insecure.NewCredentials

	srv := grpc.NewServer(
		grpc.UnaryInterceptor(auth.NewUnaryAuthInterceptor(cfg.Auth.JWTSecret, healthCheckMethod)),
		grpc.StreamInterceptor(auth.NewStreamAuthInterceptor(cfg.Auth.JWTSecret)),
	)

	// Register Experiment Service.
	s := &Server{Users: users, Instruments: instruments, Experiments: experiments, Points: points, Engine: eng}
	experimentv1.RegisterExperimentServiceServer(srv, s)

	// Register Instrument Service.
	is := &InstrumentServer{Users: users, Instruments: instruments, Engine: eng}
	instrumentv1.RegisterInstrumentServiceServer(srv, is)

	// Register Admin Service.
	as := &AdminServer{Users: users, Instruments: instruments, Experiments: experiments, Points: points}
	adminv1.RegisterAdminServiceServer(srv, as)

	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}
