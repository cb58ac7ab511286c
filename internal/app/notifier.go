package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blogHTTP "imersao-completa/internal/controller/http"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/cache"
	"imersao-completa/pkg/config"
	"imersao-completa/pkg/database"
	"imersao-completa/pkg/jwt"
	"imersao-completa/pkg/logger"
	"imersao-completa/pkg/middleware"
	"imersao-completa/pkg/queue"

	"github.com/gin-gonic/gin"
)

// RunNotifier consumes notification tasks into the Redis outbox and serves
// a small admin API until SIGINT or SIGTERM.
func RunNotifier(cfg *config.Config) error {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	notificationUseCase := usecase.NewNotificationUseCase(
		persistent.NewNewsletterRepository(db),
		persistent.NewOutboxRepository(redisClient),
		cfg.SiteURL,
		log,
	)
	services := NewServices(cfg, log, db, redisClient, nil, nil)
	outboxHandler := blogHTTP.NewOutboxHandler(notificationUseCase, queueClient, log)
	liveHandler := blogHTTP.NewLiveOutboxHandler(persistent.NewOutboxFeed(redisClient), log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwt.NewService(cfg.JWTSecret)))
	admin.Use(middleware.RequireRoles(services.Auth, "admin"))
	{
		admin.GET("/outbox/live", liveHandler.Stream)
		admin.GET("/outbox/:email", outboxHandler.GetOutbox)
		admin.GET("/queue", outboxHandler.QueueStatus)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	log.Info("[NOTIFIER] Starting notification queue processor...")
	if err := queueClient.ConsumeNotificationTasks(notificationUseCase.HandleTask); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	go func() {
		log.Info("Notifier starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down notifier...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Notifier exited")
	return nil
}
