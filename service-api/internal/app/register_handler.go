package app

import (
	"movie-portal/pkg/auth"
	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (a *AppServer) RegisterHandlers() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	handler := gin.New()

	// middlewares
	logger.Debugf("allowing CORS origins: %v", a.config.CORS.AllowedOrigins)
	logger.Debugf("allowing CORS methods: %v", a.config.CORS.AllowedMethods)
	logger.Debugf("allowing CORS headers: %v", a.config.CORS.AllowedHeaders)

	// cors middleware
	corsConfig := cors.Config{
		AllowOrigins:     a.config.CORS.AllowedOrigins,
		AllowMethods:     a.config.CORS.AllowedMethods,
		AllowHeaders:     a.config.CORS.AllowedHeaders,
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			for _, allowedOrigin := range a.config.CORS.AllowedOrigins {
				if origin == allowedOrigin {
					return true
				}
			}
			return false
		},
	}
	handler.Use(cors.New(corsConfig))
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// create JWT middleware
	jwtManager := auth.NewJWTManager(a.config.JWTSecret)
	authMiddleware := auth.AuthMiddleware(jwtManager)
	adminMiddleware := auth.RequireRole(model.RoleAdmin)

	// health check
	handler.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// api routes
	api := handler.Group("/api/v1")

	// public routes (no authentication required)
	{
		// auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", a.controller.Login)
			authRoutes.POST("/logout", a.controller.Logout)
		}

		// user routes - public registration
		users := api.Group("/users")
		{
			users.POST("/register", a.controller.RegisterUser)
		}

		// public catalog
		api.GET("/movies", a.movieController.ListMovies)
		api.GET("/movies/:id", a.movieController.GetMovie)
		api.POST("/movies/:id/download", a.movieController.RegisterDownload)
		api.GET("/featured", a.movieController.GetFeatured)

		// public movie request form
		api.POST("/requests", a.requestController.CreateRequest)
	}

	// authenticated user routes
	userRoutes := api.Group("")
	userRoutes.Use(authMiddleware)
	{
		userRoutes.GET("/profile", a.controller.GetProfile)
	}

	// admin-only routes (authentication + admin role required)
	adminRoutes := api.Group("/admin")
	adminRoutes.Use(authMiddleware)
	adminRoutes.Use(adminMiddleware)
	{
		// movies management
		adminRoutes.POST("/movies", a.movieController.UploadMovie)
		adminRoutes.GET("/movies", a.movieController.GetMovies)
		adminRoutes.PUT("/movies/:id", a.movieController.UpdateMovie)
		adminRoutes.DELETE("/movies/:id", a.movieController.DeleteMovie)
		adminRoutes.GET("/stats", a.movieController.GetStats)

		// featured sections
		adminRoutes.POST("/featured", a.featuredController.AddFeatured)
		adminRoutes.DELETE("/featured/:id", a.featuredController.RemoveFeatured)

		// movie requests
		adminRoutes.GET("/requests", a.requestController.GetRequests)
		adminRoutes.PATCH("/requests/:id", a.requestController.UpdateRequestStatus)

		// metadata lookups for the upload form
		adminRoutes.GET("/metadata/search", a.metadataController.SearchMovies)
		adminRoutes.GET("/metadata/movie/:id", a.metadataController.GetMoviePreview)
		adminRoutes.GET("/metadata/popular", a.metadataController.GetPopular)

		// api settings
		adminRoutes.GET("/settings", a.settingsController.GetSettings)
		adminRoutes.PUT("/settings", a.settingsController.UpsertSetting)

		// user administration
		adminRoutes.GET("/users", a.usersController.GetUsers)
		adminRoutes.GET("/users/:id/role", a.usersController.GetUserRole)
		adminRoutes.PUT("/users/:id/role", a.usersController.SetUserRole)

		// admin registration (bootstrap additional admins)
		adminRoutes.POST("/register", a.controller.RegisterAdmin)
	}

	return handler
}
