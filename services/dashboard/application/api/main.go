package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/dashboard/application/handlers"
	appsvcs "github.com/ghuser/biblioteca/services/dashboard/application/services"
)

// DashboardRoutes registers the dashboard endpoints on the provided chi router
// and returns the container so catalog writers can invalidate its cache.
func DashboardRoutes(r chi.Router, a *app.Application, books, magazines, dvds catalog.Counter) *appsvcs.Services {
	svcs := appsvcs.New(a, books, magazines, dvds)
	Mount(r, svcs)
	return svcs
}

func Mount(r chi.Router, svcs *appsvcs.Services) {
	h := handlers.NewDashboardHandlers(svcs)
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.Stats)
	})
}
