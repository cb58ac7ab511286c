package main

import (
	"imersao-completa/internal/app"
	"imersao-completa/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == config.DefaultJWTSecret || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	if err := app.RunNotifier(cfg); err != nil {
		panic(err)
	}
}
