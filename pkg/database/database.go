// Package database owns the relational store connection. It wraps *sql.DB so
// repositories can use the same SQL against PostgreSQL (pgx stdlib driver) in
// production and an embedded SQLite database (modernc.org/sqlite) in tests and
// local single-binary runs.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ghuser/biblioteca/pkg/logger"
)

// Driver identifies the database/sql driver behind a Database.
type Driver string

const (
	DriverPostgres Driver = "pgx"
	DriverSQLite   Driver = "sqlite"
)

// Database is the shared connection pool handed to every repository.
type Database struct {
	db     *sql.DB
	driver Driver
	log    logger.Logger
}

// NewPool opens a pool for url and verifies it with a ping.
// postgres:// and postgresql:// URLs use pgx; sqlite:// (or sqlite:) URLs open
// the file path that follows, or an in-memory database for sqlite://:memory:.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	driver, dsn, err := parseURL(url)
	if err != nil {
		return nil, err
	}
	return Open(ctx, driver, dsn, log)
}

// Open opens a pool for an explicit driver and DSN.
func Open(ctx context.Context, driver Driver, dsn string, log logger.Logger) (*Database, error) {
	if log == nil {
		log = logger.Discard()
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", driver, err)
	}

	switch driver {
	case DriverSQLite:
		// A single connection serializes writers and keeps :memory: databases
		// alive for the lifetime of the pool.
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping %s: %w", driver, err)
	}

	log.Debug("database pool opened", "driver", string(driver))
	return &Database{db: db, driver: driver, log: log}, nil
}

func parseURL(url string) (Driver, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		return DriverSQLite, sqliteDSN(strings.TrimPrefix(url, "sqlite://")), nil
	case strings.HasPrefix(url, "sqlite:"):
		return DriverSQLite, sqliteDSN(strings.TrimPrefix(url, "sqlite:")), nil
	default:
		return "", "", fmt.Errorf("database: unsupported url scheme in %q", redact(url))
	}
}

func sqliteDSN(path string) string {
	if path == "" || path == ":memory:" {
		return ":memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// redact strips credentials so connection URLs can be logged.
func redact(url string) string {
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return url
	}
	return url[:scheme+3] + "***" + url[at:]
}

// DB returns the underlying *sql.DB for read queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Driver reports which driver backs the pool.
func (d *Database) Driver() Driver {
	return d.driver
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise (including on panic).
func (d *Database) WithTx(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				d.log.ErrorContext(ctx, "database: rollback failed", "error", rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("database: commit tx: %w", err)
	}
	return nil
}

// Ping checks database connectivity. Satisfies httpx.HealthChecker.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close releases every pooled connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// IsUniqueViolation reports whether err is a unique-constraint violation from
// either supported driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// Connections without extended result codes only report the primary code.
			return strings.Contains(liteErr.Error(), "UNIQUE")
		}
	}
	return false
}
