package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/Nakshatra2405/sales-ledger-backend/internal/seed"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/config"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
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

	// The seeder always migrates first so fixtures land on a current schema.
	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		logg.Error(context.Background(), "failed to extract sql.DB for migrations", err)
		os.Exit(1)
	}
	if err := migrate.Run(context.Background(), sqlDB, migrate.DefaultDir, "up"); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
		os.Exit(1)
	}

	loader, err := seed.NewLoader(dbClient.DB(), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create seed loader", err)
		os.Exit(1)
	}

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)
	if err := loader.Load(ctx, seed.Default()); err != nil {
		logg.Error(ctx, "seed run finished with errors", err)
		os.Exit(1)
	}
	logg.Info(ctx, "seed run complete")
}
