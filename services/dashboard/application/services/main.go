package services

import (
	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/pkg/catalog"
)

// Services is the application-layer service container for the dashboard.
type Services struct {
	Dashboard *DashboardService
}

// New wires the dashboard over the counters of the catalog modules.
func New(a *app.Application, books, magazines, dvds catalog.Counter) *Services {
	statsCache := cache.NewEntryCache[StatsDTO](a.Redis, CachePrefix, a.Config.StatsCacheTTL)
	return &Services{
		Dashboard: NewDashboardService(books, magazines, dvds, statsCache, a.Metrics, a.Logger),
	}
}
