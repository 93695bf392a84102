package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"movie-portal/pkg/config"
	"movie-portal/pkg/database"
	"movie-portal/pkg/logger"
	"movie-portal/pkg/tmdb"
	ctl "movie-portal/service-api/internal/controller"
	authRepo "movie-portal/service-api/internal/repository/auth"
	featuredRepo "movie-portal/service-api/internal/repository/featured"
	movieRepo "movie-portal/service-api/internal/repository/movie"
	qualityRepo "movie-portal/service-api/internal/repository/quality"
	requestRepo "movie-portal/service-api/internal/repository/request"
	settingRepo "movie-portal/service-api/internal/repository/setting"
	userRepo "movie-portal/service-api/internal/repository/user"
	authService "movie-portal/service-api/internal/service/auth"
	catalogService "movie-portal/service-api/internal/service/catalog"
	featuredService "movie-portal/service-api/internal/service/featured"
	ingestService "movie-portal/service-api/internal/service/ingest"
	metadataService "movie-portal/service-api/internal/service/metadata"
	requestService "movie-portal/service-api/internal/service/request"
	settingService "movie-portal/service-api/internal/service/setting"
	userService "movie-portal/service-api/internal/service/user"
)

type AppServer struct {
	config             *config.Config
	controller         ctl.ControllerProvider
	movieController    *ctl.MovieController
	featuredController *ctl.FeaturedController
	requestController  *ctl.RequestController
	metadataController *ctl.MetadataController
	settingsController *ctl.SettingsController
	usersController    *ctl.UsersController
}

// NewAppServer creates a new instance of AppServer with the provided configuration.
func NewAppServer(cfg *config.Config) *AppServer {
	// initialize database
	db, err := database.NewPgDB(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	// initialize repositories
	userRepository := userRepo.NewRepository(db)
	authRepository := authRepo.NewRepository(db)
	movieRepository := movieRepo.NewRepository(db)
	qualityRepository := qualityRepo.NewRepository(db)
	featuredRepository := featuredRepo.NewRepository(db)
	requestRepository := requestRepo.NewRepository(db)
	settingRepository := settingRepo.NewRepository(db)

	// metadata client reads its API key from api_settings on every call
	tmdbClient := tmdb.NewClient(&cfg.TMDB, settingRepository)

	// initialize services
	userSvc := userService.NewUserService(userRepository)
	authSvc := authService.NewAuthService(cfg, userSvc, authRepository)
	catalogSvc := catalogService.NewCatalogService(&cfg.TMDB, movieRepository, qualityRepository, featuredRepository)
	ingestSvc := ingestService.NewIngestService(movieRepository, qualityRepository, requestRepository)
	metadataSvc := metadataService.NewMetadataService(tmdbClient)
	featuredSvc := featuredService.NewFeaturedService(featuredRepository, movieRepository)
	requestSvc := requestService.NewRequestService(requestRepository)
	settingSvc := settingService.NewSettingService(settingRepository)

	// initialize controllers
	controller := ctl.NewController(authSvc, userSvc)
	movieController := ctl.NewMovieController(catalogSvc, ingestSvc)
	featuredController := ctl.NewFeaturedController(featuredSvc)
	requestController := ctl.NewRequestController(requestSvc)
	metadataController := ctl.NewMetadataController(metadataSvc)
	settingsController := ctl.NewSettingsController(settingSvc)
	usersController := ctl.NewUsersController(userSvc)

	return &AppServer{
		config:             cfg,
		controller:         controller,
		movieController:    movieController,
		featuredController: featuredController,
		requestController:  requestController,
		metadataController: metadataController,
		settingsController: settingsController,
		usersController:    usersController,
	}
}

func (a *AppServer) Serve() {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.Port),
		Handler: a.RegisterHandlers(),
	}

	// serve the server
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	logger.Infof("server started on port %s", a.config.Port)

	a.gracefulShutdown(server)

	logger.Info("server shutdown complete")
}

func (a *AppServer) gracefulShutdown(server *http.Server) {
	ctx, stopCtx := context.WithCancel(context.Background())

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP) // wait for the sigterm
		<-signals

		// we received an os signal, shut down.
		err := server.Shutdown(ctx)
		if err != nil {
			logger.Error(err, "server shutdown error")
		} else {
			logger.Info("server graceful shutdown")
		}

		stopCtx()
	}()

	<-ctx.Done()
}
