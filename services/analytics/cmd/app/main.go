package main

import (
	"itinera/pkg/config"
	app "itinera/services/analytics/internal/app"

	_ "itinera/services/analytics/docs" // Swagger docs
)

// @title           Analytics Service API
// @version         1.0
// @description     Creator dashboards and platform overview

// @host      localhost:8008
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if !cfg.HasJWTSecret() {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
