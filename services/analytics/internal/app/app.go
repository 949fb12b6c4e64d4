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
	analyticsHTTP "itinera/services/analytics/internal/controller/http"
	"itinera/services/analytics/internal/repo/persistent"
	"itinera/services/analytics/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "itinera/services/analytics/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
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
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
	}, nil
}

func (a *App) Run() error {
	analyticsRepo := persistent.NewAnalyticsRepository(a.db)
	analyticsUseCase := usecase.NewAnalyticsUseCase(analyticsRepo, a.log)
	analyticsHandler := analyticsHTTP.NewAnalyticsHandler(analyticsUseCase, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := httpserver.NewRouter(a.log)

	api := r.Group("/api/v1/analytics")
	api.Use(middleware.AuthMiddleware(a.jwtService))
	api.Use(middleware.RateLimitMiddleware(a.redisClient, 60, time.Minute))

	creator := api.Group("/creator", middleware.RequireRole(middleware.RoleCreator, middleware.RoleAdmin))
	{
		creator.GET("/stats", analyticsHandler.GetCreatorStats)
		creator.GET("/itineraries/:id", analyticsHandler.GetItineraryStats)
		creator.GET("/revenue", analyticsHandler.GetRevenue)
	}

	admin := api.Group("/admin", middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.GET("/overview", analyticsHandler.GetOverview)
	}

	a.httpServer = httpserver.Start("Analytics", a.cfg.ServerPort, r, a.log)
	return nil
}

func (a *App) Wait() {
	httpserver.WaitForSignal()
	a.log.Info("Shutting down analytics service...")
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

	a.log.Info("Analytics service exited")
	a.log.Sync()
	return nil
}
