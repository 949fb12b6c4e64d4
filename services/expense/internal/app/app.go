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
	expenseHTTP "itinera/services/expense/internal/controller/http"
	"itinera/services/expense/internal/repo/persistent"
	"itinera/services/expense/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "itinera/services/expense/docs" // Swagger docs
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
		log.Error("Failed to connect to redis: %v (rate limiting disabled)", err)
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
	expenseRepo := persistent.NewExpenseRepository(a.db)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo, a.log)
	expenseHandler := expenseHTTP.NewExpenseHandler(expenseUseCase, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := httpserver.NewRouter(a.log)

	authed := []gin.HandlerFunc{
		middleware.AuthMiddleware(a.jwtService),
		middleware.RateLimitMiddleware(a.redisClient, 120, time.Minute),
	}

	// The web client calls /api/expenses directly.
	for _, prefix := range []string{"/api/v1", "/api"} {
		g := r.Group(prefix, authed...)
		g.POST("/expenses", expenseHandler.AddExpense)
		g.GET("/expenses", expenseHandler.ListExpenses)
		g.DELETE("/expenses", expenseHandler.DeleteExpense)
		g.GET("/expenses/summary", expenseHandler.GetSummary)
	}

	a.httpServer = httpserver.Start("Expense", a.cfg.ServerPort, r, a.log)
	return nil
}

func (a *App) Wait() {
	httpserver.WaitForSignal()
	a.log.Info("Shutting down expense service...")
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

	a.log.Info("Expense service exited")
	a.log.Sync()
	return nil
}
