package main

import (
	"itinera/pkg/config"
	app "itinera/services/review/internal/app"

	_ "itinera/services/review/docs" // Swagger docs
)

// @title           Review Service API
// @version         1.0
// @description     Itinerary ratings and reviews

// @host      localhost:8007
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
