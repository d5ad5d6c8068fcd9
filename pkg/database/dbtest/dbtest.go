// Package dbtest opens a migrated in-memory SQLite catalog for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/ghuser/biblioteca/migrations"
	"github.com/ghuser/biblioteca/pkg/database"
	"github.com/ghuser/biblioteca/pkg/logger"
	"github.com/ghuser/biblioteca/pkg/migrator"
)

// New returns a fresh, fully migrated database that is closed when t ends.
// Every call gets its own in-memory store.
func New(t testing.TB) *database.Database {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.DriverSQLite, ":memory:", logger.Discard())
	if err != nil {
		t.Fatalf("dbtest: open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrator.Up(ctx, db, migrations.Catalog); err != nil {
		t.Fatalf("dbtest: migrate: %v", err)
	}
	return db
}
