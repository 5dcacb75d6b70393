package main

import (
	"ripple/internal/app"
	"ripple/pkg/cache"
	"ripple/pkg/config"
	"ripple/pkg/database"
	"ripple/pkg/logger"
	"ripple/pkg/queue"

	_ "ripple/docs" // Swagger docs
)

// @title           Ripple API
// @version         1.0
// @description     Social feed and search service

// @host      localhost:8080
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

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	// Notifications degrade gracefully when the broker is down.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, notifications disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, redisClient, queueClient)
}
