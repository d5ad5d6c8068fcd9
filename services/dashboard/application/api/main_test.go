package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/pkg/cache/cachetest"
	"github.com/ghuser/biblioteca/pkg/database/dbtest"
	"github.com/ghuser/biblioteca/pkg/logger"
	bookpg "github.com/ghuser/biblioteca/services/book/infrastructure/persistence/postgres"
	"github.com/ghuser/biblioteca/services/dashboard/application/api"
	appsvcs "github.com/ghuser/biblioteca/services/dashboard/application/services"
	dvdapi "github.com/ghuser/biblioteca/services/dvd/application/api"
	dvdsvcs "github.com/ghuser/biblioteca/services/dvd/application/services"
	dvdmodels "github.com/ghuser/biblioteca/services/dvd/domain/models"
	dvdpg "github.com/ghuser/biblioteca/services/dvd/infrastructure/persistence/postgres"
	magazinepg "github.com/ghuser/biblioteca/services/magazine/infrastructure/persistence/postgres"
)

func TestDashboardRoutes_Stats(t *testing.T) {
	db := dbtest.New(t)
	books := bookpg.NewBookRepository(db, nil)
	magazines := magazinepg.NewMagazineRepository(db, nil)
	dvds := dvdpg.NewDVDRepository(db, nil)

	for i, available := range []bool{true, false} {
		d := &dvdmodels.DVD{Title: "Film", Director: "Someone", Available: available}
		d.MarkCreated(time.Date(2024, 5, 1, i, 0, 0, 0, time.UTC))
		require.NoError(t, dvds.Save(t.Context(), d))
	}

	svcs := &appsvcs.Services{
		Dashboard: appsvcs.NewDashboardService(books, magazines, dvds, nil, nil, logger.Discard()),
	}
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) { api.Mount(r, svcs) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalLibros":0,"totalRevistas":0,"totalDVDs":2,"totalElementos":2,
		"elementosDisponibles":1,"elementosNoDisponibles":1}`, rec.Body.String())
}

func TestDashboardRoutes_StatsRefreshAfterWrite(t *testing.T) {
	db := dbtest.New(t)
	dvdRepo := dvdpg.NewDVDRepository(db, nil)
	store := cachetest.NewMemStore()
	statsCache := cache.NewEntryCacheWithStore[appsvcs.StatsDTO](store, appsvcs.CachePrefix, time.Minute)

	dashboard := &appsvcs.Services{Dashboard: appsvcs.NewDashboardService(
		bookpg.NewBookRepository(db, nil), magazinepg.NewMagazineRepository(db, nil), dvdRepo,
		statsCache, nil, logger.Discard())}
	dvds := &dvdsvcs.Services{DVD: dvdsvcs.NewDVDService(dvdRepo, nil, nil, logger.Discard())}
	dvds.DVD.InvalidateOnWrite(dashboard.Dashboard)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		api.Mount(r, dashboard)
		dvdapi.Mount(r, dvds)
	})
	stats := func() string {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	assert.Contains(t, stats(), `"totalDVDs":0`)
	assert.True(t, store.Has(statsCache.Key(appsvcs.StatsKey)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/dvds",
		strings.NewReader(`{"titulo":"Alien","director":"Ridley Scott"}`)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.False(t, store.Has(statsCache.Key(appsvcs.StatsKey)))

	assert.Contains(t, stats(), `"totalDVDs":1`)
}
