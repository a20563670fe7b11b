package main

// @title Location Loader API
// @version 1.0.0
// @description Загрузка GeoJSON коллекций в таблицу locations. Для каждого именованного объекта создаётся одна локация; координаты линий и полигонов усредняются до одной точки.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/location-loader/docs"
	"github.com/location-loader/internal/config"
	httpDelivery "github.com/location-loader/internal/delivery/http"
	"github.com/location-loader/internal/delivery/http/handler"
	"github.com/location-loader/internal/domain/repository"
	"github.com/location-loader/internal/pkg/logger"
	"github.com/location-loader/internal/repository/cache"
	"github.com/location-loader/internal/repository/postgres"
	redisRepo "github.com/location-loader/internal/repository/redis"
	"github.com/location-loader/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Location Loader API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Connect to Redis
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	locationRepo := postgres.NewLocationRepository(db)

	var streamRepo repository.StreamRepository
	var cacheRepo repository.CacheRepository
	if redisClient != nil {
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	importUC := usecase.NewImportUseCase(
		locationRepo,
		streamRepo,
		cacheRepo,
		usecase.NewRecordBuilder(cfg.Import.Defaults()),
		log,
		cfg.Import.ReportTTL,
	)
	locationUC := usecase.NewLocationUseCase(locationRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	importHandler := handler.NewImportHandler(importUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, importHandler, locationHandler)

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
