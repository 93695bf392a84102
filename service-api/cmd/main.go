package main

import (
	"movie-portal/pkg/config"
	"movie-portal/pkg/logger"
	"movie-portal/service-api/internal/app"
)

func main() {
	// Initialize configuration
	cfg := config.NewConfig()

	// Initialize logger
	logger.InitLogger(cfg)

	// Create and start the application server
	server := app.NewAppServer(cfg)
	server.Serve()
}
