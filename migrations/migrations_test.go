package migrations_test

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/biblioteca/migrations"
	"github.com/ghuser/biblioteca/pkg/database"
)

// Column types narrower than float64 or int64 would reject or round values
// the validators accept, so both dialects store them at full width.
func TestCatalog_NumericColumnsHoldGoValues(t *testing.T) {
	narrow := regexp.MustCompile(`(?i)\b(NUMERIC|DECIMAL|REAL|SMALLINT|INTEGER)\b`)
	wide := regexp.MustCompile(`(?m)^\s+precio\s+DOUBLE PRECISION`)

	set, err := migrations.Catalog(database.DriverPostgres)
	require.NoError(t, err)
	files, err := fs.Glob(set, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, name := range files {
		body, err := fs.ReadFile(set, name)
		require.NoError(t, err)
		assert.Empty(t, narrow.FindAllString(string(body), -1), name)
		assert.Regexp(t, wide, string(body), name)
	}
}

func TestCatalog_UnknownDriver(t *testing.T) {
	_, err := migrations.Catalog(database.Driver("mysql"))
	assert.Error(t, err)
}
