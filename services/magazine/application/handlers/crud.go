package handlers

import (
	"net/http"

	"github.com/ghuser/biblioteca/pkg/catalogapi"
	appsvcs "github.com/ghuser/biblioteca/services/magazine/application/services"
	magazinedomain "github.com/ghuser/biblioteca/services/magazine/domain"
)

// Annotated entry points for the routes every catalog shares. The work is
// done by catalogapi.Handlers.

var _ catalogapi.CRUD = (*MagazineHandlers)(nil)

func newCRUD(svc *appsvcs.Services) *catalogapi.Handlers[appsvcs.MagazineDTO] {
	return catalogapi.NewHandlers[appsvcs.MagazineDTO](svc.Magazine, magazinedomain.ErrMagazineNotFound)
}

// List godoc
//
//	@Summary	List all magazines
//	@Tags		revistas
//	@Produce	json
//	@Success	200	{array}		appsvcs.MagazineDTO
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/revistas [get]
func (h *MagazineHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.crud.List(w, r)
}

// Create godoc
//
//	@Summary	Create magazine
//	@Tags		revistas
//	@Accept		json
//	@Produce	json
//	@Param		body	body		appsvcs.MagazineDTO	true	"Payload"
//	@Success	201		{object}	appsvcs.MagazineDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/revistas [post]
func (h *MagazineHandlers) Create(w http.ResponseWriter, r *http.Request) {
	h.crud.Create(w, r)
}

// Get godoc
//
//	@Summary	Get by id
//	@Tags		revistas
//	@Produce	json
//	@Param		id	path		int	true	"Identifier"
//	@Success	200	{object}	appsvcs.MagazineDTO
//	@Failure	400	{object}	catalogapi.ErrorResponse
//	@Failure	404	{object}	catalogapi.ErrorResponse
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/revistas/{id} [get]
func (h *MagazineHandlers) Get(w http.ResponseWriter, r *http.Request) {
	h.crud.Get(w, r)
}

// Update godoc
//
//	@Summary	Replace by id
//	@Tags		revistas
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int		true	"Identifier"
//	@Param		body	body		appsvcs.MagazineDTO	true	"Payload"
//	@Success	200		{object}	appsvcs.MagazineDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	404		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/revistas/{id} [put]
func (h *MagazineHandlers) Update(w http.ResponseWriter, r *http.Request) {
	h.crud.Update(w, r)
}

// Delete godoc
//
//	@Summary	Delete by id
//	@Tags		revistas
//	@Produce	json
//	@Param		id	path	int	true	"Identifier"
//	@Success	204
//	@Failure	400	{object}	catalogapi.ErrorResponse
//	@Failure	404	{object}	catalogapi.ErrorResponse
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/revistas/{id} [delete]
func (h *MagazineHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.crud.Delete(w, r)
}

// Search godoc
//
//	@Summary	Free-text search
//	@Tags		revistas
//	@Produce	json
//	@Param		query	query		string	true	"Search text"
//	@Success	200		{array}		appsvcs.MagazineDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/revistas/search [get]
func (h *MagazineHandlers) Search(w http.ResponseWriter, r *http.Request) {
	h.crud.Search(w, r)
}

// Available godoc
//
//	@Summary	Filter by availability
//	@Tags		revistas
//	@Produce	json
//	@Param		disponible	query		bool	false	"Defaults to true"
//	@Success	200			{array}		appsvcs.MagazineDTO
//	@Failure	400			{object}	catalogapi.ErrorResponse
//	@Failure	500			{object}	catalogapi.ErrorResponse
//	@Router		/revistas/disponibles [get]
func (h *MagazineHandlers) Available(w http.ResponseWriter, r *http.Request) {
	h.crud.Available(w, r)
}
