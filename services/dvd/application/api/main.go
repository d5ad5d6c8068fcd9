package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/biblioteca/pkg/app"
	"github.com/ghuser/biblioteca/pkg/catalogapi"
	"github.com/ghuser/biblioteca/services/dvd/application/handlers"
	appsvcs "github.com/ghuser/biblioteca/services/dvd/application/services"
)

// DVDRoutes registers DVD endpoints on the provided chi router and returns
// the wired container so other modules can reuse its services.
func DVDRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)
	Mount(r, svcs)
	return svcs
}

func Mount(r chi.Router, svcs *appsvcs.Services) {
	h := handlers.NewDVDHandlers(svcs)
	r.Route("/dvds", func(r chi.Router) {
		r.Get("/titulo", h.ByTitle)
		r.Get("/genero", h.ByGenre)
		r.Get("/director", h.ByDirector)
		r.Get("/clasificacion", h.ByRating)
		r.Get("/actor", h.ByCast)
		r.Get("/ano", h.ByReleaseYear)
		r.Get("/duracion", h.ByDuration)
		r.Get("/anos", h.ByYearRange)
		r.Get("/precio", h.ByPriceRange)
		r.Get("/precio-maximo", h.AtMostPrice)
		r.Get("/recientes", h.Recent)
		r.Get("/generos", h.Genres)
		r.Get("/clasificaciones", h.Ratings)
		r.Get("/estadisticas", h.Stats)
		catalogapi.MountCRUD(r, h)
	})
}
