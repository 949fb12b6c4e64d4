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
	"itinera/pkg/payment"
	"itinera/pkg/queue"
	walletHTTP "itinera/services/wallet/internal/controller/http"
	"itinera/services/wallet/internal/repo/persistent"
	"itinera/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "itinera/services/wallet/docs" // Swagger docs
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
		log.Error("Failed to connect to redis: %v (rate limiting disabled)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without notifications)", err)
		queueClient = nil
	}

	if cfg.PaymentKeyID == "" || cfg.PaymentKeySecret == "" {
		log.Warn("Payment keys are not configured, creator verification will fail")
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

	walletRepo := persistent.NewWalletRepository(a.db)
	verificationRepo := persistent.NewVerificationRepository(a.db)

	walletUseCase := usecase.NewWalletUseCase(walletRepo, publisher, a.log)
	verificationUseCase := usecase.NewVerificationUseCase(
		verificationRepo,
		payment.NewClient(a.cfg),
		publisher,
		a.cfg.VerificationFee,
		a.cfg.PaymentCurrency,
		a.log,
	)

	walletHandler := walletHTTP.NewWalletHandler(walletUseCase, verificationUseCase, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := httpserver.NewRouter(a.log)

	authed := []gin.HandlerFunc{
		middleware.AuthMiddleware(a.jwtService),
		middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute),
	}
	creatorOnly := middleware.RequireRole(middleware.RoleCreator)

	api := r.Group("/api/v1", authed...)
	{
		api.GET("/wallet", walletHandler.GetWallet)
		api.POST("/wallet/topup", walletHandler.TopUp)
		api.GET("/wallet/transactions", walletHandler.GetTransactions)

		api.GET("/purchases", walletHandler.ListPurchases)
		api.POST("/purchases/:itinerary_id", walletHandler.PurchaseItinerary)
		api.GET("/purchases/:itinerary_id/status", walletHandler.PurchaseStatus)

		api.POST("/verify", creatorOnly, walletHandler.StartVerification)
		api.POST("/verify/confirm", creatorOnly, walletHandler.ConfirmVerification)
	}

	// Path used by the web client.
	legacy := r.Group("/api", authed...)
	{
		legacy.POST("/verify", creatorOnly, walletHandler.StartVerification)
	}

	a.httpServer = httpserver.Start("Wallet", a.cfg.ServerPort, r, a.log)
	return nil
}

func (a *App) Wait() {
	httpserver.WaitForSignal()
	a.log.Info("Shutting down wallet service...")
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

	a.log.Info("Wallet service exited")
	a.log.Sync()
	return nil
}
