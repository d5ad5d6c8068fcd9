package app

import (
	"github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/pkg/config"
	"github.com/ghuser/biblioteca/pkg/database"
	"github.com/ghuser/biblioteca/pkg/events"
	"github.com/ghuser/biblioteca/pkg/logger"
	"github.com/ghuser/biblioteca/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "libro creado", "libro_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
//
// EventBus and Redis are optional: a SQLite-backed deployment runs without
// the outbox, and caches are skipped when Redis is not configured.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
	Metrics  *telemetry.CatalogMetrics
	Config   *config.Config
}
