package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	pkgcache "github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/pkg/logger"
	"github.com/ghuser/biblioteca/pkg/telemetry"
)

const (
	CachePrefix = "dashboard"
	StatsKey    = "stats"
)

// StatsDTO is the cross-catalog summary shown on the dashboard.
type StatsDTO struct {
	TotalBooks     int64 `json:"totalLibros"            example:"120"`
	TotalMagazines int64 `json:"totalRevistas"          example:"40"`
	TotalDVDs      int64 `json:"totalDVDs"              example:"35"`
	TotalItems     int64 `json:"totalElementos"         example:"195"`
	Available      int64 `json:"elementosDisponibles"   example:"170"`
	Unavailable    int64 `json:"elementosNoDisponibles" example:"25"`
} // @name EstadisticasDashboard

// DashboardService aggregates the availability tallies of every catalog.
// Each tally is consistent on its own; the three are read concurrently and
// are not taken from a single snapshot.
type DashboardService struct {
	books     catalog.Counter
	magazines catalog.Counter
	dvds      catalog.Counter
	cache     *pkgcache.EntryCache[StatsDTO]
	metrics   *telemetry.CatalogMetrics
	log       logger.Logger
}

func NewDashboardService(
	books, magazines, dvds catalog.Counter,
	cache *pkgcache.EntryCache[StatsDTO],
	metrics *telemetry.CatalogMetrics,
	log logger.Logger,
) *DashboardService {
	if log == nil {
		log = logger.Discard()
	}
	return &DashboardService{
		books:     books,
		magazines: magazines,
		dvds:      dvds,
		cache:     cache,
		metrics:   metrics,
		log:       log,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (StatsDTO, error) {
	if s.cache != nil {
		stats, hit, err := s.cache.Get(ctx, StatsKey)
		if err != nil {
			s.log.WarnContext(ctx, "dashboard cache read failed", "error", err)
		}
		s.metrics.CacheLookup(ctx, CachePrefix, hit)
		if hit {
			return stats, nil
		}
	}

	var books, magazines, dvds catalog.Tally
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		books, err = s.books.CountByAvailability(gctx)
		return err
	})
	g.Go(func() (err error) {
		magazines, err = s.magazines.CountByAvailability(gctx)
		return err
	})
	g.Go(func() (err error) {
		dvds, err = s.dvds.CountByAvailability(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return StatsDTO{}, fmt.Errorf("dashboard stats: %w", err)
	}

	stats := StatsDTO{
		TotalBooks:     books.Total,
		TotalMagazines: magazines.Total,
		TotalDVDs:      dvds.Total,
		TotalItems:     books.Total + magazines.Total + dvds.Total,
		Available:      books.Available + magazines.Available + dvds.Available,
		Unavailable:    books.Unavailable + magazines.Unavailable + dvds.Unavailable,
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, StatsKey, stats); err != nil {
			s.log.WarnContext(ctx, "dashboard cache write failed", "error", err)
		}
	}
	return stats, nil
}

// Invalidate drops the cached summary.
func (s *DashboardService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, StatsKey)
}
