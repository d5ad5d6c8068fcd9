package services

import (
	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/services/dvd/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the DVD context.
type Services struct {
	DVD *DVDService
}

func New(a *app.Application) *Services {
	repo := postgres.NewDVDRepository(a.Db, a.EventBus)
	dvdCache := cache.NewEntryCache[DVDDTO](a.Redis, CachePrefix, a.Config.CatalogCacheTTL)
	return &Services{
		DVD: NewDVDService(repo, dvdCache, a.Metrics, a.Logger),
	}
}
