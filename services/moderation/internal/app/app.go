package internal

import (
	"net/http"

	"itinera/pkg/cache"
	"itinera/pkg/config"
	"itinera/pkg/database"
	"itinera/pkg/httpserver"
	"itinera/pkg/jwt"
	"itinera/pkg/logger"
	"itinera/pkg/middleware"
	"itinera/pkg/queue"
	moderationHTTP "itinera/services/moderation/internal/controller/http"
	"itinera/services/moderation/internal/repo/persistent"
	"itinera/services/moderation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "itinera/services/moderation/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
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
		log.Error("Failed to connect to redis: %v (explore cache will not be invalidated)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without notifications)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
	}, nil
}

func (a *App) Run() error {
	var publisher queue.Publisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	moderationRepo := persistent.NewModerationRepository(a.db)
	moderationUseCase := usecase.NewModerationUseCase(moderationRepo, publisher, a.redisClient, a.log)
	moderationHandler := moderationHTTP.NewModerationHandler(moderationUseCase, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := httpserver.NewRouter(a.log)

	adminOnly := []gin.HandlerFunc{
		middleware.AuthMiddleware(a.jwtService),
		middleware.RequireRole(middleware.RoleAdmin),
	}

	api := r.Group("/api/v1", adminOnly...)
	{
		api.GET("/moderation/itineraries", moderationHandler.ListItineraries)
		api.POST("/moderation/approve", moderationHandler.Approve)
	}

	// Path used by the web client.
	legacy := r.Group("/api", adminOnly...)
	{
		legacy.POST("/itineraries/approve", moderationHandler.Approve)
	}

	a.httpServer = httpserver.Start("Moderation", a.cfg.ServerPort, r, a.log)
	return nil
}

func (a *App) Wait() {
	httpserver.WaitForSignal()
	a.log.Info("Shutting down moderation service...")
}

func (a *App) Shutdown() error {
	if err := httpserver.Shutdown(a.httpServer); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
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

	a.log.Info("Moderation service exited")
	a.log.Sync()
	return nil
}
