package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/catalogapi"
	"github.com/ghuser/biblioteca/services/book/application/handlers"
	appsvcs "github.com/ghuser/biblioteca/services/book/application/services"
)

// BookRoutes registers book endpoints on the provided chi router and returns
// the wired container so other modules can reuse its services.
func BookRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)
	Mount(r, svcs)
	return svcs
}

// Mount registers the /libros routes for an already wired container.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	h := handlers.NewBookHandlers(svcs)
	r.Route("/libros", func(r chi.Router) {
		r.Get("/genero", h.ByGenre)
		r.Get("/editorial", h.ByPublisher)
		r.Get("/autor", h.ByAuthor)
		r.Get("/isbn/{isbn}", h.ByISBN)
		r.Get("/generos", h.Genres)
		catalogapi.MountCRUD(r, h)
	})
}
