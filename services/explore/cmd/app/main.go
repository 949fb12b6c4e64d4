package main

import (
	"itinera/pkg/config"
	app "itinera/services/explore/internal/app"

	_ "itinera/services/explore/docs" // Swagger docs
)

// @title           Explore Service API
// @version         1.0
// @description     Discovery over published and approved itineraries

// @host      localhost:8003
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
