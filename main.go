// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-api/cmd"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/internal/wire"
	"ecommerce-api/pkg/cache"
	"ecommerce-api/pkg/database"
	"ecommerce-api/pkg/storage"
	"ecommerce-api/pkg/telemetry"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if config.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	shutdownTracing, err := telemetry.Init(ctx, config.Telemetry, logger)
	if err != nil {
		logger.Fatal("Failed to init tracing", zap.Error(err))
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := database.InitDB(config.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := database.Migrate(db.SQL(), logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	appCache := cache.New(newCacheStore(ctx, config.Cache, logger), config.Cache.TTL, logger)
	defer appCache.Store.Close()

	store := newStorage(config.Storage, logger)

	// Initialize all repositories and services
	repos := repository.NewRepository(db.Gorm, logger)
	tokens := utils.NewTokenManager(config.JWT)
	service := usecase.NewService(repos, tokens, appCache, store, logger)

	// Wire all dependencies
	app, err := wire.Wiring(service, db, tokens, logger)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

// newCacheStore falls back to a no-op store when redis is absent or down.
func newCacheStore(ctx context.Context, cfg utils.CacheConfig, logger *zap.Logger) cache.Store {
	if cfg.Addr == "" {
		logger.Info("Cache disabled")
		return cache.NoopStore{}
	}

	store, err := cache.NewRedisStore(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unavailable, caching disabled", zap.Error(err))
		return cache.NoopStore{}
	}

	logger.Info("Redis cache connected", zap.String("addr", cfg.Addr))
	return store
}

func newStorage(cfg utils.StorageConfig, logger *zap.Logger) storage.Storage {
	if cfg.Endpoint == "" {
		logger.Info("Object storage not configured, image upload disabled")
		return storage.Disabled()
	}

	store, err := storage.NewMinIO(cfg)
	if err != nil {
		logger.Warn("Object storage unavailable, image upload disabled", zap.Error(err))
		return storage.Disabled()
	}

	logger.Info("Object storage configured", zap.String("bucket", cfg.Bucket))
	return store
}
