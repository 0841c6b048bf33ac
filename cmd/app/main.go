package main

import (
	"sky-archive/internal/app"
	"sky-archive/pkg/config"
)

// @title           Sky Archive API
// @version         1.0
// @description     User authentication and event image metadata storage for the immersive sky experience.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecretKey == "" || cfg.JWTRefreshSecretKey == "" {
		panic("JWT_SECRET_KEY and JWT_REFRESH_SECRET_KEY must be set in environment variables")
	}
	if cfg.JWTSecretKey == cfg.JWTRefreshSecretKey {
		panic("JWT_SECRET_KEY and JWT_REFRESH_SECRET_KEY must differ")
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
