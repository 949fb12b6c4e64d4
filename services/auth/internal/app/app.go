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
	authHTTP "itinera/services/auth/internal/controller/http"
	"itinera/services/auth/internal/repo/persistent"
	"itinera/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "itinera/services/auth/docs" // Swagger docs
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
		// Redis is optional for auth service
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
	userRepo := persistent.NewUserRepository(a.db)
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	authHandler := authHTTP.NewAuthHandler(authUseCase, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := httpserver.NewRouter(a.log)

	// Credential endpoints get a tighter budget than the rest of the API.
	public := r.Group("/api/v1")
	public.Use(middleware.RateLimitMiddleware(a.redisClient, 20, time.Minute))
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
		public.GET("/profiles/:id", authHandler.GetProfile)
	}

	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(a.jwtService))
	{
		protected.GET("/me", authHandler.Me)
		protected.PUT("/profile", authHandler.UpdateProfile)

		internal := protected.Group("/internal")
		internal.Use(middleware.RequireRole(middleware.RoleAdmin))
		{
			internal.POST("/verify/:user_id", authHandler.VerifyCreator)
		}
	}

	a.httpServer = httpserver.Start("Auth", a.cfg.ServerPort, r, a.log)
	return nil
}

func (a *App) Wait() {
	httpserver.WaitForSignal()
	a.log.Info("Shutting down auth service...")
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

	a.log.Info("Auth service exited")
	a.log.Sync()
	return nil
}
