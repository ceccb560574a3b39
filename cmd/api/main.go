package main

// @title Places Microservice API
// @version 1.0.0
// @description CRUD API для мест пользователей с геокодированием адресов через Mapbox.
// @description Создание и удаление места атомарно обновляют список мест владельца.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/places-microservice/docs"
	"github.com/places-microservice/internal/config"
	httpDelivery "github.com/places-microservice/internal/delivery/http"
	"github.com/places-microservice/internal/delivery/http/handler"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/infrastructure/mapbox"
	"github.com/places-microservice/internal/pkg/auth"
	"github.com/places-microservice/internal/pkg/logger"
	"github.com/places-microservice/internal/repository/cache"
	"github.com/places-microservice/internal/repository/postgres"
	redisRepo "github.com/places-microservice/internal/repository/redis"
	"github.com/places-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("enforce_ownership", cfg.Auth.EnforceOwnership),
		zap.Bool("events_enabled", cfg.Events.Enabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	placeRepo := postgres.NewPlaceRepository(db)
	userRepo := postgres.NewUserRepository(db)
	transactor := postgres.NewTransactor(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	var streamRepo repository.StreamRepository
	if cfg.Events.Enabled {
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
	}

	// Геокодер Mapbox с кэшем координат в Redis
	geocoder := mapbox.NewCachedGeocoder(
		mapbox.NewMapboxClient(&cfg.Mapbox, log),
		cacheRepo,
		cfg.Cache.GeocodeCacheTTL,
		log,
	)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	placeUC := usecase.NewPlaceUseCase(
		placeRepo,
		userRepo,
		transactor,
		geocoder,
		streamRepo,
		usecase.PlaceUseCaseConfig{
			DefaultImage:     cfg.Place.DefaultImage,
			EnforceOwnership: cfg.Auth.EnforceOwnership,
			EventsStream:     cfg.Events.Stream,
		},
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	}, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		auth.NewJWTAuthenticator(cfg.Auth.JWTSecret),
		placeHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
