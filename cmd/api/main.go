package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/biblioteca/docs/swagger"
	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/pkg/config"
	"github.com/ghuser/biblioteca/pkg/database"
	"github.com/ghuser/biblioteca/pkg/errhttp"
	"github.com/ghuser/biblioteca/pkg/events"
	"github.com/ghuser/biblioteca/pkg/httpx"
	"github.com/ghuser/biblioteca/pkg/logger"
	"github.com/ghuser/biblioteca/pkg/telemetry"
	bookApi "github.com/ghuser/biblioteca/services/book/application/api"
	dashboardApi "github.com/ghuser/biblioteca/services/dashboard/application/api"
	dvdApi "github.com/ghuser/biblioteca/services/dvd/application/api"
	magazineApi "github.com/ghuser/biblioteca/services/magazine/application/api"
)

// @title					Biblioteca API
// @version				1.0
// @description			Catalog of books, magazines and DVDs for a small library.
// @contact.name			Biblioteca
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
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
	errhttp.SetProduction(cfg.Environment == config.EnvProduction)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected", "driver", pool.Driver())

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	switch {
	case errors.Is(err, events.ErrUnsupportedStore):
		log.Warn("event bus disabled for this database", "driver", pool.Driver())
	case err != nil:
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	default:
		defer eventBus.Close() //nolint:errcheck
		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	redisClient, err := cache.ConnectOptional(ctx, cfg)
	switch {
	case errors.Is(err, cache.ErrCacheDisabled):
		log.Info("REDIS_URL not set, serving without cache")
	case err != nil:
		log.Warn("redis unavailable, serving without cache", "error", err)
		redisClient = nil
	default:
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	}

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Metrics:  telemetry.NewCatalogMetrics(),
		Config:   cfg,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(healthChecks(appConfig)))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	books := bookApi.BookRoutes(r, a)
	magazines := magazineApi.MagazineRoutes(r, a)
	dvds := dvdApi.DVDRoutes(r, a)
	dashboard := dashboardApi.DashboardRoutes(r, a, books.Book, magazines.Magazine, dvds.DVD)

	// Writes clear the summary right away; the worker repeats it for other instances.
	books.Book.InvalidateOnWrite(dashboard.Dashboard)
	magazines.Magazine.InvalidateOnWrite(dashboard.Dashboard)
	dvds.DVD.InvalidateOnWrite(dashboard.Dashboard)
}

// healthChecks leaves disabled dependencies as nil interfaces so they report
// "disabled" instead of being pinged through a nil pointer.
func healthChecks(a *app.Application) httpx.HealthChecks {
	checks := httpx.HealthChecks{Database: a.Db}
	if a.Redis != nil {
		checks.Redis = a.Redis
	}
	if a.EventBus != nil {
		checks.EventBus = a.EventBus
	}
	return checks
}
