package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Nakshatra2405/sales-ledger-backend/api"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/catalog"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/customers"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/reports"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/sales"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/transactions"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/config"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/metrics"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/migrate"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var reportCache reports.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		reportCache = redisClient
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reportMetrics := metrics.NewReportMetrics(registry)

	customerService, err := customers.NewService(customers.NewRepository(dbClient.DB()))
	exitOnError(logg, "failed to create customer service", err)

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	exitOnError(logg, "failed to create catalog service", err)

	salesService, err := sales.NewService(sales.NewRepository(dbClient.DB()), cfg.Ledger.Policy())
	exitOnError(logg, "failed to create sales service", err)

	reportService, err := reports.NewService(
		reports.NewRepository(dbClient.DB()),
		reportCache,
		cfg.Reports.CacheTTL,
		reportMetrics,
		logg,
	)
	exitOnError(logg, "failed to create report service", err)

	transactionService, err := transactions.NewService(transactions.NewRepository(dbClient.DB()))
	exitOnError(logg, "failed to create transaction service", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: api.NewHandler(cfg, logg, api.Deps{
			Customers:    customerService,
			Catalog:      catalogService,
			Sales:        salesService,
			Reports:      reportService,
			Transactions: transactionService,
			DB:           dbClient,
			Registry:     registry,
		}),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	}()

	<-shutdown
	logg.Info(ctx, "shutting down api server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error(ctx, "graceful shutdown failed", err)
	}
}

func exitOnError(logg *logger.Logger, msg string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), msg, err)
	os.Exit(1)
}
