package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/chelwa/internal/config"
	v1 "github.com/shenikar/chelwa/internal/handler/http/v1"
	"github.com/shenikar/chelwa/internal/places"
	"github.com/shenikar/chelwa/internal/repository"
	"github.com/shenikar/chelwa/internal/service"
	"github.com/shenikar/chelwa/internal/session"
	"github.com/shenikar/chelwa/internal/webhook"
	"github.com/shenikar/chelwa/pkg/logger"
	"github.com/shenikar/chelwa/pkg/metrics"
	"github.com/shenikar/chelwa/pkg/postgres"
	redisclient "github.com/shenikar/chelwa/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/chelwa/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Chelwa Eating Spots API
// @version 1.0
// @description Recommends nearby eating spots for the current time of day.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Клиент справочника мест
	if cfg.PlacesAPIKey == "" {
		log.Warn("PLACES_API_KEY is not set, place search will return no results")
	}
	placesClient := places.NewClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, cfg.PlacesTimeout, log)

	// Инициализация репозиториев
	recommendationRepo := repository.NewRecommendationRepository(dbpool, redisClient)

	// Инициализация сервисов
	sessionStore := session.NewStore()
	go sessionStore.RunEviction(ctx, cfg.SessionSweepInterval, cfg.SessionIdleTTL, log)
	recommendationService := service.NewRecommendationService(
		recommendationRepo,
		placesClient,
		placesClient,
		sessionStore,
		webhookPublisher,
		log,
		cfg,
	)

	// Очередь событий сессий
	dispatcher := session.NewDispatcher(service.EventHandler(recommendationService), cfg.EventQueueSize, cfg.EventWorkers, log)
	dispatcher.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(recommendationService, dispatcher, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", metrics.Handler())

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	cancel()

	log.Info("Server gracefully stopped")
}
