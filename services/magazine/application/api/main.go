package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/catalogapi"
	"github.com/ghuser/biblioteca/services/magazine/application/handlers"
	appsvcs "github.com/ghuser/biblioteca/services/magazine/application/services"
)

// MagazineRoutes registers magazine endpoints on the provided chi router and returns
// the wired container so other modules can reuse its services.
func MagazineRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)
	Mount(r, svcs)
	return svcs
}

func Mount(r chi.Router, svcs *appsvcs.Services) {
	h := handlers.NewMagazineHandlers(svcs)
	r.Route("/revistas", func(r chi.Router) {
		r.Get("/categoria", h.ByCategory)
		r.Get("/periodicidad", h.ByFrequency)
		r.Get("/editorial", h.ByPublisher)
		r.Get("/autor", h.ByAuthor)
		r.Get("/categorias", h.Categories)
		catalogapi.MountCRUD(r, h)
	})
}
