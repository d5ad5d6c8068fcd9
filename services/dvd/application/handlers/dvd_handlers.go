package handlers

import (
	"net/http"

	"github.com/ghuser/biblioteca/pkg/catalogapi"
	"github.com/ghuser/biblioteca/pkg/errhttp"
	"github.com/ghuser/biblioteca/pkg/httpx"
	appsvcs "github.com/ghuser/biblioteca/services/dvd/application/services"
)

// DVDHandlers serves the DVD lookups, range queries and statistics.
type DVDHandlers struct {
	svc  *appsvcs.Services
	crud *catalogapi.Handlers[appsvcs.DVDDTO]
}

func NewDVDHandlers(svc *appsvcs.Services) *DVDHandlers {
	return &DVDHandlers{svc: svc, crud: newCRUD(svc)}
}

// ByTitle godoc
//
//	@Summary	DVDs by title
//	@Tags		dvds
//	@Produce	json
//	@Param		titulo	query	string	true	"Title substring"
//	@Success	200		{array}	appsvcs.DVDDTO
//	@Router		/dvds/titulo [get]
func (h *DVDHandlers) ByTitle(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("titulo", true, h.svc.DVD.FindByTitle)(w, r)
}

// ByGenre godoc
//
//	@Summary	DVDs by genre
//	@Tags		dvds
//	@Produce	json
//	@Param		genero	query	string	true	"Genre substring"
//	@Success	200		{array}	appsvcs.DVDDTO
//	@Router		/dvds/genero [get]
func (h *DVDHandlers) ByGenre(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("genero", true, h.svc.DVD.FindByGenre)(w, r)
}

// ByDirector godoc
//
//	@Summary	DVDs by director
//	@Tags		dvds
//	@Produce	json
//	@Param		director	query	string	true	"Director substring"
//	@Success	200			{array}	appsvcs.DVDDTO
//	@Router		/dvds/director [get]
func (h *DVDHandlers) ByDirector(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("director", true, h.svc.DVD.FindByDirector)(w, r)
}

// ByRating godoc
//
//	@Summary	DVDs by rating
//	@Tags		dvds
//	@Produce	json
//	@Param		clasificacion	query	string	true	"Rating substring"
//	@Success	200				{array}	appsvcs.DVDDTO
//	@Router		/dvds/clasificacion [get]
func (h *DVDHandlers) ByRating(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("clasificacion", true, h.svc.DVD.FindByRating)(w, r)
}

// ByCast godoc
//
//	@Summary	DVDs by cast member
//	@Tags		dvds
//	@Produce	json
//	@Param		actor	query	string	true	"Actor substring"
//	@Success	200		{array}	appsvcs.DVDDTO
//	@Router		/dvds/actor [get]
func (h *DVDHandlers) ByCast(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("actor", true, h.svc.DVD.FindByCast)(w, r)
}

// ByReleaseYear godoc
//
//	@Summary	DVDs released in a year
//	@Tags		dvds
//	@Produce	json
//	@Param		ano	query	int	true	"Release year"
//	@Success	200	{array}	appsvcs.DVDDTO
//	@Router		/dvds/ano [get]
func (h *DVDHandlers) ByReleaseYear(w http.ResponseWriter, r *http.Request) {
	year, err := httpx.QueryInt(r, "ano")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.DVD.FindByReleaseYear(r.Context(), year)
	catalogapi.WriteList(w, items, err)
}

// ByDuration godoc
//
//	@Summary	DVDs by running time
//	@Tags		dvds
//	@Produce	json
//	@Param		minDuracion	query	int	true	"Minimum minutes (inclusive)"
//	@Param		maxDuracion	query	int	true	"Maximum minutes (inclusive)"
//	@Success	200			{array}	appsvcs.DVDDTO
//	@Router		/dvds/duracion [get]
func (h *DVDHandlers) ByDuration(w http.ResponseWriter, r *http.Request) {
	lo, err := httpx.QueryInt(r, "minDuracion")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	hi, err := httpx.QueryInt(r, "maxDuracion")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.DVD.FindByDurationBetween(r.Context(), lo, hi)
	catalogapi.WriteList(w, items, err)
}

// ByYearRange godoc
//
//	@Summary	DVDs released in a year range
//	@Tags		dvds
//	@Produce	json
//	@Param		anoInicio	query	int	true	"First year (inclusive)"
//	@Param		anoFin		query	int	true	"Last year (inclusive)"
//	@Success	200			{array}	appsvcs.DVDDTO
//	@Router		/dvds/anos [get]
func (h *DVDHandlers) ByYearRange(w http.ResponseWriter, r *http.Request) {
	from, err := httpx.QueryInt(r, "anoInicio")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	to, err := httpx.QueryInt(r, "anoFin")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.DVD.FindByReleaseYearBetween(r.Context(), from, to)
	catalogapi.WriteList(w, items, err)
}

// ByPriceRange godoc
//
//	@Summary	DVDs in a price range
//	@Tags		dvds
//	@Produce	json
//	@Param		precioMin	query	number	true	"Minimum price (inclusive)"
//	@Param		precioMax	query	number	true	"Maximum price (inclusive)"
//	@Success	200			{array}	appsvcs.DVDDTO
//	@Router		/dvds/precio [get]
func (h *DVDHandlers) ByPriceRange(w http.ResponseWriter, r *http.Request) {
	lo, err := httpx.QueryFloat(r, "precioMin")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	hi, err := httpx.QueryFloat(r, "precioMax")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.DVD.FindByPriceBetween(r.Context(), lo, hi)
	catalogapi.WriteList(w, items, err)
}

// AtMostPrice godoc
//
//	@Summary	DVDs at or below a price, cheapest first
//	@Tags		dvds
//	@Produce	json
//	@Param		precio	query	number	true	"Price ceiling"
//	@Success	200		{array}	appsvcs.DVDDTO
//	@Router		/dvds/precio-maximo [get]
func (h *DVDHandlers) AtMostPrice(w http.ResponseWriter, r *http.Request) {
	ceiling, err := httpx.QueryFloat(r, "precio")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.DVD.FindAtMostPrice(r.Context(), ceiling)
	catalogapi.WriteList(w, items, err)
}

// Recent godoc
//
//	@Summary	Available DVDs, newest first
//	@Tags		dvds
//	@Produce	json
//	@Success	200	{array}	appsvcs.DVDDTO
//	@Router		/dvds/recientes [get]
func (h *DVDHandlers) Recent(w http.ResponseWriter, r *http.Request) {
	catalogapi.ListOf(h.svc.DVD.RecentAvailable)(w, r)
}

// Genres godoc
//
//	@Summary	DVD genres
//	@Tags		dvds
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/dvds/generos [get]
func (h *DVDHandlers) Genres(w http.ResponseWriter, r *http.Request) {
	catalogapi.ListOf(h.svc.DVD.Genres)(w, r)
}

// Ratings godoc
//
//	@Summary	DVD ratings
//	@Tags		dvds
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/dvds/clasificaciones [get]
func (h *DVDHandlers) Ratings(w http.ResponseWriter, r *http.Request) {
	catalogapi.ListOf(h.svc.DVD.Ratings)(w, r)
}

// Stats godoc
//
//	@Summary	Available DVD count and average price
//	@Tags		dvds
//	@Produce	json
//	@Success	200	{object}	appsvcs.StatsDTO
//	@Router		/dvds/estadisticas [get]
func (h *DVDHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.DVD.Stats(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
