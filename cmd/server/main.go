package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"market_backend/internal/app/di"
	"market_backend/internal/app/router"
	"market_backend/internal/feature/classification/schemes"
	classificationhandler "market_backend/internal/feature/classification/transport/handler"
	marketdatahandler "market_backend/internal/feature/marketdata/transport/handler"
	"market_backend/internal/platform/config"
	infradb "market_backend/internal/platform/db"
	platformhandler "market_backend/internal/platform/http/handler"
	"market_backend/internal/platform/logger"
	infraredis "market_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	_, logCloser := logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	defer func() {
		if err := logCloser.Close(); err != nil {
			slog.Warn("failed to close log file", "error", err)
		}
	}()

	checks := map[string]platformhandler.CheckFunc{}

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		tmp, err := infraredis.NewRedisClient(ctx, cfg.RedisAddr)
		cancel()
		if err != nil {
			slog.Warn("Redis unavailable. Running without cross-process usage totals.")
		} else {
			rdb = tmp
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("Failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// db
	var db *gorm.DB
	if cfg.DatabaseDSN != "" {
		db, err = infradb.OpenDB(cfg.DatabaseDSN)
		if err != nil {
			slog.Error("failed to open usage ledger", "error", err)
			os.Exit(1)
		}
		checks["ledger"] = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}

	// Usage meter
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	meter, err := di.NewMeter(reg, rdb, db)
	if err != nil {
		slog.Error("failed to build usage meter", "error", err)
		os.Exit(1)
	}

	// Usecase
	marketUC, err := di.NewMarketDataUsecase(cfg.HTTPTimeout, meter)
	if err != nil {
		slog.Error("failed to configure market data providers", "error", err)
		os.Exit(1)
	}
	catalog, err := schemes.NewCatalog()
	if err != nil {
		slog.Error("failed to load classification schemes", "error", err)
		os.Exit(1)
	}

	// ルータ生成
	r := router.NewRouter(router.Deps{
		JWTSecret:      cfg.JWTSecret,
		Health:         platformhandler.NewHealthHandler(checks),
		MarketData:     marketdatahandler.NewMarketDataHandler(marketUC, meter),
		Classification: classificationhandler.NewClassificationHandler(catalog),
		Metrics:        reg,
	})

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Protected routes will answer 500 until it is configured.")
	}

	slog.Info("starting server", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
