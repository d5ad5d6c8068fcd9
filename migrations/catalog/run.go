package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/biblioteca/migrations"
	"github.com/ghuser/biblioteca/pkg/config"
	"github.com/ghuser/biblioteca/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, migrations.Catalog); err != nil {
		slog.Error("catalog migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog migrations applied")
}
