package main

import (
	"context"

	"movie-portal/pkg/config"
	api "movie-portal/service-api"
)

func startAPIService(ctx context.Context, cfg *config.Config) {
	app := api.NewAppServer(cfg)
	app.Serve()
}
