// Package migrations embeds the goose migration sets. PostgreSQL is the
// production dialect; the SQLite set mirrors it for tests and local runs.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/ghuser/biblioteca/pkg/database"
)

//go:embed catalog/postgres/*.sql catalog/sqlite/*.sql
var files embed.FS

// Catalog returns the catalog migrations for driver.
func Catalog(driver database.Driver) (fs.FS, error) {
	switch driver {
	case database.DriverPostgres:
		return fs.Sub(files, "catalog/postgres")
	case database.DriverSQLite:
		return fs.Sub(files, "catalog/sqlite")
	default:
		return nil, fmt.Errorf("migrations: no catalog migrations for driver %q", driver)
	}
}
