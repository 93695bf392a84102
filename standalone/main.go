package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"movie-portal/pkg/logger"
)

func main() {
	// Create centralized configuration
	cfg := createEmbeddedConfig()

	logger.InitLogger(cfg)

	logger.Info("Starting Movie Portal standalone application...")
	logger.Info("This includes: embedded PostgreSQL and the API service")

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())

	// Start embedded PostgreSQL
	wg.Add(1)
	go func() {
		defer wg.Done()
		startEmbeddedDB(ctx)
	}()

	// Wait for the database to be ready before the API connects
	waitForPostgreSQLReady()

	// Update config with the actual embedded database port
	updateConfigWithEmbeddedServices(cfg)

	// Start API service with config
	wg.Add(1)
	go func() {
		defer wg.Done()
		startAPIService(ctx, cfg)
	}()

	// Setup graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logger.Info("Shutting down...")
	cancel()
	wg.Wait()
	logger.Info("Shutdown complete")
}

// waitForPostgreSQLReady waits for PostgreSQL to be ready
func waitForPostgreSQLReady() {
	logger.Info("Waiting for PostgreSQL to be ready...")
	for i := 0; i < 60; i++ { // wait up to 60 seconds
		if GetDBConnection() != nil {
			err := GetDBConnection().Ping()
			if err == nil {
				logger.Info("PostgreSQL is ready")
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	logger.Error(nil, "PostgreSQL failed to become ready within 60 seconds")
}
