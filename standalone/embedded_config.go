package main

import (
	"fmt"
	"time"

	"movie-portal/pkg/config"
)

// createEmbeddedConfig creates a hardcoded configuration for the standalone application
func createEmbeddedConfig() *config.Config {
	return &config.Config{
		Port:      "8080",
		JWTSecret: "embedded-jwt-secret-key-change-in-production",
		Database: config.DatabaseConfig{
			Name:            "movieportal",
			Host:            "localhost",
			Port:            "15432", // updated once the embedded DB picks its port
			Username:        "postgres",
			Password:        "postgres",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 5 * time.Minute,
			SSLMode:         "disable",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		TMDB: config.TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Language:     "en-US",
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

// updateConfigWithEmbeddedServices points the config at the port the
// embedded database actually started on.
func updateConfigWithEmbeddedServices(cfg *config.Config) {
	cfg.Database.Port = fmt.Sprintf("%d", GetDBPort())
}
