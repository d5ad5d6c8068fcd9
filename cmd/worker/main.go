package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/pkg/config"
	"github.com/ghuser/biblioteca/pkg/database"
	"github.com/ghuser/biblioteca/pkg/events"
	"github.com/ghuser/biblioteca/pkg/logger"
	"github.com/ghuser/biblioteca/pkg/telemetry"
	bookSvcs "github.com/ghuser/biblioteca/services/book/application/services"
	bookEvents "github.com/ghuser/biblioteca/services/book/domain/events"
	dashboardSvcs "github.com/ghuser/biblioteca/services/dashboard/application/services"
	dvdSvcs "github.com/ghuser/biblioteca/services/dvd/application/services"
	dvdEvents "github.com/ghuser/biblioteca/services/dvd/domain/events"
	magazineSvcs "github.com/ghuser/biblioteca/services/magazine/application/services"
	magazineEvents "github.com/ghuser/biblioteca/services/magazine/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if errors.Is(err, events.ErrUnsupportedStore) {
		log.Error("the worker consumes the PostgreSQL event bus; nothing to do for this database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Metrics:  telemetry.NewCatalogMetrics(),
		Config:   cfg,
	}

	subCtx, cancelSubs := context.WithCancel(ctx)
	if err := registerSubscribers(subCtx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		cancelSubs()
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelSubs()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// newCacheSync builds the handler that keeps every catalog cache and the
// dashboard summary in step with the write side.
func newCacheSync(a *app.Application) *cacheSync {
	books := bookSvcs.New(a)
	magazines := magazineSvcs.New(a)
	dvds := dvdSvcs.New(a)
	dashboard := dashboardSvcs.New(a, books.Book, magazines.Magazine, dvds.DVD)

	ttl := a.Config.CatalogCacheTTL
	return &cacheSync{
		targets: map[catalog.Kind]cacheTarget{
			catalog.KindBook: entryTarget(
				cache.NewEntryCache[bookSvcs.BookDTO](a.Redis, bookSvcs.CachePrefix, ttl), books.Book.FindByID),
			catalog.KindMagazine: entryTarget(
				cache.NewEntryCache[magazineSvcs.MagazineDTO](a.Redis, magazineSvcs.CachePrefix, ttl), magazines.Magazine.FindByID),
			catalog.KindDVD: entryTarget(
				cache.NewEntryCache[dvdSvcs.DVDDTO](a.Redis, dvdSvcs.CachePrefix, ttl), dvds.DVD.FindByID),
		},
		invalidateStats: dashboard.Dashboard.Invalidate,
		log:             a.Logger,
	}
}

// registerSubscribers wires the cache handler to every catalog topic.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	var topics []string
	topics = append(topics, bookEvents.Topics...)
	topics = append(topics, magazineEvents.Topics...)
	topics = append(topics, dvdEvents.Topics...)

	errCh, err := a.EventBus.SubscribeAll(ctx, topics, newCacheSync(a).Handle)
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error", "error", err)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}
