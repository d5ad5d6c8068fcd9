package handlers

import (
	"net/http"

	"github.com/ghuser/biblioteca/pkg/catalogapi"
	appsvcs "github.com/ghuser/biblioteca/services/dvd/application/services"
	dvddomain "github.com/ghuser/biblioteca/services/dvd/domain"
)

// Annotated entry points for the routes every catalog shares. The work is
// done by catalogapi.Handlers.

var _ catalogapi.CRUD = (*DVDHandlers)(nil)

func newCRUD(svc *appsvcs.Services) *catalogapi.Handlers[appsvcs.DVDDTO] {
	return catalogapi.NewHandlers[appsvcs.DVDDTO](svc.DVD, dvddomain.ErrDVDNotFound)
}

// List godoc
//
//	@Summary	List all dvds
//	@Tags		dvds
//	@Produce	json
//	@Success	200	{array}		appsvcs.DVDDTO
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/dvds [get]
func (h *DVDHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.crud.List(w, r)
}

// Create godoc
//
//	@Summary	Create dvd
//	@Tags		dvds
//	@Accept		json
//	@Produce	json
//	@Param		body	body		appsvcs.DVDDTO	true	"Payload"
//	@Success	201		{object}	appsvcs.DVDDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/dvds [post]
func (h *DVDHandlers) Create(w http.ResponseWriter, r *http.Request) {
	h.crud.Create(w, r)
}

// Get godoc
//
//	@Summary	Get by id
//	@Tags		dvds
//	@Produce	json
//	@Param		id	path		int	true	"Identifier"
//	@Success	200	{object}	appsvcs.DVDDTO
//	@Failure	400	{object}	catalogapi.ErrorResponse
//	@Failure	404	{object}	catalogapi.ErrorResponse
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/dvds/{id} [get]
func (h *DVDHandlers) Get(w http.ResponseWriter, r *http.Request) {
	h.crud.Get(w, r)
}

// Update godoc
//
//	@Summary	Replace by id
//	@Tags		dvds
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int		true	"Identifier"
//	@Param		body	body		appsvcs.DVDDTO	true	"Payload"
//	@Success	200		{object}	appsvcs.DVDDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	404		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/dvds/{id} [put]
func (h *DVDHandlers) Update(w http.ResponseWriter, r *http.Request) {
	h.crud.Update(w, r)
}

// Delete godoc
//
//	@Summary	Delete by id
//	@Tags		dvds
//	@Produce	json
//	@Param		id	path	int	true	"Identifier"
//	@Success	204
//	@Failure	400	{object}	catalogapi.ErrorResponse
//	@Failure	404	{object}	catalogapi.ErrorResponse
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/dvds/{id} [delete]
func (h *DVDHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.crud.Delete(w, r)
}

// Search godoc
//
//	@Summary	Free-text search
//	@Tags		dvds
//	@Produce	json
//	@Param		query	query		string	true	"Search text"
//	@Success	200		{array}		appsvcs.DVDDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/dvds/search [get]
func (h *DVDHandlers) Search(w http.ResponseWriter, r *http.Request) {
	h.crud.Search(w, r)
}

// Available godoc
//
//	@Summary	Filter by availability
//	@Tags		dvds
//	@Produce	json
//	@Param		disponible	query		bool	false	"Defaults to true"
//	@Success	200			{array}		appsvcs.DVDDTO
//	@Failure	400			{object}	catalogapi.ErrorResponse
//	@Failure	500			{object}	catalogapi.ErrorResponse
//	@Router		/dvds/disponibles [get]
func (h *DVDHandlers) Available(w http.ResponseWriter, r *http.Request) {
	h.crud.Available(w, r)
}
