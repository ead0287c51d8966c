package main

// @title Facility Directory API
// @version 1.0.0
// @description Service for finding and submitting nearby baby-care facilities: diaper changing stations, lactation rooms and related amenities.
// @description
// @description Main capabilities:
// @description - Facility listings sorted by distance from a reference point
// @description - Facility submission with location de-duplication by address
// @description - Address search via the national geocoder
// @description - Reference data: facility types and amenities

// @contact.name API Support

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

	"go.uber.org/zap"

	_ "github.com/facility-directory/docs/swagger"
	"github.com/facility-directory/internal/config"
	httpDelivery "github.com/facility-directory/internal/delivery/http"
	"github.com/facility-directory/internal/delivery/http/handler"
	"github.com/facility-directory/internal/domain/repository"
	"github.com/facility-directory/internal/images"
	"github.com/facility-directory/internal/infrastructure/onemap"
	"github.com/facility-directory/internal/infrastructure/restdb"
	"github.com/facility-directory/internal/infrastructure/s3store"
	"github.com/facility-directory/internal/pkg/logger"
	"github.com/facility-directory/internal/repository/cache"
	"github.com/facility-directory/internal/repository/postgres"
	"github.com/facility-directory/internal/repository/sqlite"
	"github.com/facility-directory/internal/usecase"
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

	log.Info("Starting Facility Directory")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Select and connect the persistence backend
	backend, err := cfg.ResolveBackend()
	if err != nil {
		log.Fatal("Failed to resolve persistence backend", zap.Error(err))
	}

	var (
		gateway  repository.FacilityRepository
		closeDB  func() error
		healthDB func(context.Context) error
	)
	switch backend {
	case config.BackendPostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		gateway = postgres.NewFacilityRepository(db)
		closeDB = db.Close
		healthDB = db.Health
		log.Info("PostgreSQL connected")
	case config.BackendSQLite:
		db, err := sqlite.New(&cfg.SQLite, log)
		if err != nil {
			log.Fatal("Failed to open embedded database", zap.Error(err))
		}
		gateway = sqlite.NewFacilityRepository(db)
		closeDB = db.Close
		healthDB = db.Health
		log.Info("Embedded SQLite database ready", zap.String("data_dir", cfg.SQLite.DataDir))
	}
	defer func() {
		if err := closeDB(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := healthDB(ctx); err != nil {
		log.Fatal("Database health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and infrastructure clients
	cacheRepo := cache.NewCacheRepository(redisClient)

	var reader repository.ListingReader
	if cfg.RestDBEnabled() {
		reader = restdb.NewClient(&cfg.RestDB, log)
		log.Info("Managed read API enabled", zap.String("url", cfg.RestDB.URL))
	}

	geocoder := onemap.NewClient(&cfg.Geocoder, log)

	localStore, err := images.NewLocalStore(cfg.SQLite.DataDir)
	if err != nil {
		log.Fatal("Failed to prepare local image store", zap.Error(err))
	}
	var remoteStore *s3store.Store
	if cfg.RemoteStorageEnabled() {
		remoteStore, err = s3store.New(ctx, &cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		log.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	}
	imagePipeline := images.NewPipeline(remoteStore, localStore, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	listingUC := usecase.NewListingUseCase(
		reader,
		gateway,
		cacheRepo,
		imagePipeline,
		log,
		cfg.Cache.ListingCacheTTL,
	)

	submissionUC := usecase.NewSubmissionUseCase(
		gateway,
		listingUC,
		log,
	)

	addressUC := usecase.NewAddressUseCase(
		geocoder,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	facilityHandler := handler.NewFacilityHandler(listingUC, log)
	submissionHandler := handler.NewSubmissionHandler(submissionUC, log)
	addressHandler := handler.NewAddressHandler(addressUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		facilityHandler,
		submissionHandler,
		addressHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("backend", string(backend)),
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

	log.Info("Server stopped successfully")
}
