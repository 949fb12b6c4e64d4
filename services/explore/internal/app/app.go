package internal

import (
	"net/http"
	"time"

	"itinera/pkg/cache"
	"itinera/pkg/config"
	"itinera/pkg/database"
	"itinera/pkg/httpserver"
	"itinera/pkg/logger"
	"itinera/pkg/middleware"
	exploreHTTP "itinera/services/explore/internal/controller/http"
	"itinera/services/explore/internal/repo/persistent"
	"itinera/services/explore/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "itinera/services/explore/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
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
		log.Error("Failed to connect to redis: %v (serving without cache)", err)
		redisClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
	}, nil
}

func (a *App) Run() error {
	exploreRepo := persistent.NewExploreRepository(a.db)
	exploreUseCase := usecase.NewExploreUseCase(exploreRepo, a.redisClient, a.log)
	exploreHandler := exploreHTTP.NewExploreHandler(exploreUseCase, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := httpserver.NewRouter(a.log)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(a.redisClient, 300, time.Minute))
	{
		api.GET("/explore", exploreHandler.Search)
		api.GET("/explore/tags", exploreHandler.Tags)
	}

	a.httpServer = httpserver.Start("Explore", a.cfg.ServerPort, r, a.log)
	return nil
}

func (a *App) Wait() {
	httpserver.WaitForSignal()
	a.log.Info("Shutting down explore service...")
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

	a.log.Info("Explore service exited")
	a.log.Sync()
	return nil
}
