package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aescanero/kvitems/internal/application/items"
	"github.com/aescanero/kvitems/internal/application/uptime"
	"github.com/aescanero/kvitems/internal/config"
	"github.com/aescanero/kvitems/pkg/adapters/metrics/prometheus"
	redisstorage "github.com/aescanero/kvitems/pkg/adapters/storage/redis"
	"github.com/aescanero/kvitems/pkg/adapters/storage/sqlite"
	"github.com/aescanero/kvitems/pkg/adapters/storage/tiered"
	"github.com/aescanero/kvitems/pkg/api/grpc"
	"github.com/aescanero/kvitems/pkg/api/http"
	"github.com/aescanero/kvitems/pkg/ports"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// BuildTime is set by build flags
	BuildTime = "unknown"

	startTime = time.Now()
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting item service",
		zap.String("version", cfg.Version),
		zap.String("build_time", BuildTime))

	// Initialize storage
	var store ports.ItemStore
	store, err = sqlite.NewItemStore(cfg.DBPath, logger)
	if err != nil {
		logger.Fatal("failed to open item store", zap.Error(err), zap.String("path", cfg.DBPath))
	}

	var redisClient *goredis.Client
	if cfg.CacheEnabled() {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			PoolSize:    cfg.Redis.PoolSize,
			DialTimeout: cfg.Redis.DialTimeout,
		})

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			// The cache is optional; reads and writes fall back to SQLite.
			logger.Warn("Redis not reachable, item cache will degrade to SQLite",
				zap.String("addr", cfg.Redis.Addr),
				zap.Error(err))
		} else {
			logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
		cancel()

		cache := redisstorage.NewItemCache(redisClient, cfg.Redis.CacheTTL, logger)
		store = tiered.NewItemStore(cache, store, logger)
	}

	// Initialize application components
	metricsCollector := prometheus.NewCollector(cfg.Version)

	itemService := items.NewService(store, metricsCollector, logger)

	uptimeTicker := uptime.NewTicker(startTime, cfg.UptimeInterval, metricsCollector, logger)
	uptimeTicker.Start()

	// Initialize API servers
	httpServer := http.NewServer(&http.Config{
		Port:    cfg.HTTPPort,
		Version: cfg.Version,
		Items:   itemService,
		Metrics: metricsCollector,
		Logger:  logger,
	})

	var grpcServer *grpc.Server
	if cfg.GRPCEnabled() {
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Port:   cfg.GRPCPort,
			Logger: logger,
		})
		if err != nil {
			logger.Fatal("failed to create gRPC server", zap.Error(err))
		}
	}

	// Start servers
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Fatal("gRPC server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("item service started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.Int("grpc_port", cfg.GRPCPort),
		zap.Bool("cache_enabled", cfg.CacheEnabled()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if grpcServer != nil {
		if err := grpcServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gRPC server shutdown error", zap.Error(err))
		}
	}

	uptimeTicker.Stop()

	if err := store.Close(); err != nil {
		logger.Error("item store close error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Redis close error", zap.Error(err))
		}
	}

	logger.Info("item service shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
