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
	"itinera/pkg/queue"
	notificationHTTP "itinera/services/notification/internal/controller/http"
	"itinera/services/notification/internal/repo/persistent"
	"itinera/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "itinera/services/notification/docs" // Swagger docs
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

// NewApp fails without Redis since the inbox lives there. The broker is
// optional: without it the inbox can still be read.
func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (no new notifications will arrive)", err)
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
	var inspector usecase.QueueInspector
	if a.queueClient != nil {
		inspector = a.queueClient
	}

	notificationRepo := persistent.NewNotificationRepository(a.db)
	inbox := persistent.NewRedisInbox(a.redisClient)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, inbox, inspector, a.log)
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, a.redisClient, a.log, a.jwtService)

	gin.SetMode(gin.ReleaseMode)
	r := httpserver.NewRouter(a.log)

	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(a.jwtService))
	protected.Use(middleware.RateLimitMiddleware(a.redisClient, 120, time.Minute))
	{
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/queue", middleware.RequireRole(middleware.RoleAdmin), notificationHandler.QueueStatus)
	}

	// Authenticates from the token query parameter.
	r.GET("/ws/notifications", notificationHandler.HandleWebSocket)

	if a.queueClient != nil {
		a.log.Info("Starting notification queue processor...")
		if err := a.queueClient.ConsumeNotificationTasks(notificationUseCase.HandleTask); err != nil {
			a.log.Error("Error starting notification queue consumer: %v", err)
			return err
		}
	}

	a.httpServer = httpserver.Start("Notification", a.cfg.ServerPort, r, a.log)
	return nil
}

func (a *App) Wait() {
	httpserver.WaitForSignal()
	a.log.Info("Shutting down notification service...")
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

	if err := a.redisClient.Close(); err != nil {
		a.log.Error("Error closing Redis: %v", err)
	}

	a.log.Info("Notification service exited")
	a.log.Sync()
	return nil
}
