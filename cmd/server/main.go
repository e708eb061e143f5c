//go:build grpcserver

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"squidstatControl/internal/config"
	"squidstatControl/internal/db"
	"squidstatControl/internal/device"
	"squidstatControl/internal/engine"
	grpcserver "squidstatControl/internal/grpc"
	"squidstatControl/repository"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	// Open DB
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	users := repository.NewUserRepository(d)
	instruments := repository.NewInstrumentRepository(d)
	experiments := repository.NewExperimentRepository(d)
	points := repository.NewMeasurementRepository(d)

	// Pick the instrument driver.
	var driver device.Driver
	switch cfg.Device.Driver {
	case "serial":
		driver = device.NewSerial(cfg.Device.SerialBaud)
	default:
		driver = device.NewSim()
	}

	eng := engine.New(driver, instruments, experiments, points, engine.NewBroker())

	// The simulator needs no physical port; attach it right away so its
	// channels start serving the queue. Serial instruments are connected
	// through the InstrumentService.
	if cfg.Device.Driver == "sim" {
		if _, err := eng.ConnectInstrument(context.Background(), "sim0"); err != nil {
			log.Fatalf("connect simulator: %v", err)
		}
	}

	// Start gRPC
	shutdown, err := grpcserver.StartGRPC(cfg, eng, users, instruments, experiments, points)
	if err != nil {
		log.Fatalf("start grpc: %v", err)
	}
	log.Printf("gRPC server listening on %s", cfg.GRPC.Address)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	if err := eng.Shutdown(ctx); err != nil {
		log.Printf("engine shutdown: %v", err)
	}
}
