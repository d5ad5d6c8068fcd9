package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ghuser/biblioteca/pkg/catalog"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Strings runs a single-column query and collects the values. The result is
// never nil.
func Strings(ctx context.Context, q Querier, query string, args ...any) ([]string, error) {
	rows, err := q.QueryContext(ctx, Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query strings: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan string: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate strings: %w", err)
	}
	return out, nil
}

// CountByAvailability tallies the rows of table by its disponible column in
// one statement, so the three numbers are mutually consistent.
func CountByAvailability(ctx context.Context, q Querier, table string) (catalog.Tally, error) {
	var t catalog.Tally
	err := q.QueryRowContext(ctx, `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN disponible THEN 1 ELSE 0 END), 0) FROM `+table,
	).Scan(&t.Total, &t.Available)
	if err != nil {
		return t, fmt.Errorf("count %s: %w", table, err)
	}
	t.Unavailable = t.Total - t.Available
	return t, nil
}
