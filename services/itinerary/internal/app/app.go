package internal

import (
	"net/http"
	"time"

	"itinera/pkg/cache"
	"itinera/pkg/config"
	"itinera/pkg/database"
	"itinera/pkg/httpserver"
	"itinera/pkg/jwt"
	"itinera/pkg/logger"
	"itinera/pkg/middleware"
	"itinera/pkg/s3"
	itineraryHTTP "itinera/services/itinerary/internal/controller/http"
	"itinera/services/itinerary/internal/repo/persistent"
	"itinera/services/itinerary/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "itinera/services/itinerary/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v (photo uploads disabled)", err)
		s3Client = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
	}, nil
}

func (a *App) Run() error {
	itineraryRepo := persistent.NewItineraryRepository(a.db)

	// A nil *s3.Client must not become a non-nil interface.
	var storage usecase.ObjectStorage
	if a.s3Client != nil {
		storage = a.s3Client
	}

	itineraryUseCase := usecase.NewItineraryUseCase(
		itineraryRepo,
		storage,
		a.redisClient,
		a.cfg.PublicBaseURL,
		a.log,
	)
	itineraryHandler := itineraryHTTP.NewItineraryHandler(itineraryUseCase, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := httpserver.NewRouter(a.log)

	exportLimiter := middleware.NewLocalLimiter(2*time.Second, 5)

	api := r.Group("/api/v1")
	{
		public := api.Group("")
		public.Use(middleware.OptionalAuthMiddleware(a.jwtService))
		{
			public.GET("/itineraries/steps", itineraryHandler.GetSteps)
			public.GET("/itineraries/:id", itineraryHandler.GetItinerary)
			public.GET("/itineraries/:id/photos", itineraryHandler.ListPhotos)
			public.GET("/itineraries/:id/export.pdf", exportLimiter.Middleware(), itineraryHandler.ExportPDF)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		protected.Use(middleware.RateLimitMiddleware(a.redisClient, 120, time.Minute))
		{
			protected.GET("/itineraries/mine", itineraryHandler.ListMine)
			protected.POST("/itineraries/:id/photos", itineraryHandler.AddPhoto)

			builder := protected.Group("")
			builder.Use(middleware.RequireRole(middleware.RoleCreator, middleware.RoleAdmin))
			{
				builder.POST("/itineraries", itineraryHandler.CreateItinerary)
				builder.PUT("/itineraries/:id", itineraryHandler.UpdateItinerary)
				builder.GET("/itineraries/:id/progress", itineraryHandler.GetProgress)
				builder.PUT("/itineraries/:id/publish", itineraryHandler.SetPublished)
				builder.DELETE("/itineraries/:id", itineraryHandler.DeleteItinerary)
			}
		}
	}

	a.httpServer = httpserver.Start("Itinerary", a.cfg.ServerPort, r, a.log)
	return nil
}

func (a *App) Wait() {
	httpserver.WaitForSignal()
	a.log.Info("Shutting down itinerary service...")
}

func (a *App) Shutdown() error {
	if err := httpserver.Shutdown(a.httpServer); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Itinerary service exited")
	a.log.Sync()
	return nil
}
