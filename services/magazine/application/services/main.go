package services

import (
	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/services/magazine/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the magazine context.
type Services struct {
	Magazine *MagazineService
}

func New(a *app.Application) *Services {
	repo := postgres.NewMagazineRepository(a.Db, a.EventBus)
	magazineCache := cache.NewEntryCache[MagazineDTO](a.Redis, CachePrefix, a.Config.CatalogCacheTTL)
	return &Services{
		Magazine: NewMagazineService(repo, magazineCache, a.Metrics, a.Logger),
	}
}
