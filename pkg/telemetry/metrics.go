package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/ghuser/biblioteca/catalog"

// CatalogMetrics records catalog writes and read-cache lookups on the global
// meter, which the Prometheus reader installed by Setup exposes on /metrics.
// A nil *CatalogMetrics records nothing.
type CatalogMetrics struct {
	writes  metric.Int64Counter
	lookups metric.Int64Counter
}

// NewCatalogMetrics registers the catalog instruments. Registration failures
// fall back to no-op instruments.
func NewCatalogMetrics() *CatalogMetrics {
	meter := otel.Meter(meterName)
	fallback := noop.NewMeterProvider().Meter(meterName)

	writes, err := meter.Int64Counter("catalog.writes",
		metric.WithDescription("Catalog create, update and delete operations"),
		metric.WithUnit("{operation}"))
	if err != nil {
		writes, _ = fallback.Int64Counter("catalog.writes")
	}
	lookups, err := meter.Int64Counter("catalog.cache.lookups",
		metric.WithDescription("Catalog read-cache lookups by result"),
		metric.WithUnit("{lookup}"))
	if err != nil {
		lookups, _ = fallback.Int64Counter("catalog.cache.lookups")
	}
	return &CatalogMetrics{writes: writes, lookups: lookups}
}

// Write counts one successful mutation of kind ("LIBRO", "REVISTA", "DVD").
func (m *CatalogMetrics) Write(ctx context.Context, kind, action string) {
	if m == nil {
		return
	}
	m.writes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("action", action),
	))
}

// CacheLookup counts one read-cache lookup.
func (m *CatalogMetrics) CacheLookup(ctx context.Context, cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cache", cache),
		attribute.String("result", result),
	))
}
