package migrator

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/biblioteca/pkg/database"
	"github.com/ghuser/biblioteca/pkg/logger"
)

// Source resolves the migration set for a database driver.
type Source func(database.Driver) (fs.FS, error)

// RunMigrations opens dbUrl and applies every pending migration from source.
func RunMigrations(ctx context.Context, dbUrl string, source Source) error {
	db, err := database.NewPool(ctx, dbUrl, logger.Discard())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return Up(ctx, db, source)
}

// Up applies pending migrations on an already open database.
func Up(ctx context.Context, db *database.Database, source Source) error {
	files, err := source(db.Driver())
	if err != nil {
		return err
	}

	dialect := goose.DialectPostgres
	if db.Driver() == database.DriverSQLite {
		dialect = goose.DialectSQLite3
	}

	provider, err := goose.NewProvider(dialect, db.DB(), files)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}
