package handlers

import (
	"net/http"

	"github.com/ghuser/biblioteca/pkg/catalogapi"
	appsvcs "github.com/ghuser/biblioteca/services/book/application/services"
	bookdomain "github.com/ghuser/biblioteca/services/book/domain"
)

// Annotated entry points for the routes every catalog shares. The work is
// done by catalogapi.Handlers.

var _ catalogapi.CRUD = (*BookHandlers)(nil)

func newCRUD(svc *appsvcs.Services) *catalogapi.Handlers[appsvcs.BookDTO] {
	return catalogapi.NewHandlers[appsvcs.BookDTO](svc.Book, bookdomain.ErrBookNotFound)
}

// List godoc
//
//	@Summary	List all books
//	@Tags		libros
//	@Produce	json
//	@Success	200	{array}		appsvcs.BookDTO
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/libros [get]
func (h *BookHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.crud.List(w, r)
}

// Create godoc
//
//	@Summary	Create book
//	@Tags		libros
//	@Accept		json
//	@Produce	json
//	@Param		body	body		appsvcs.BookDTO	true	"Payload"
//	@Success	201		{object}	appsvcs.BookDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/libros [post]
func (h *BookHandlers) Create(w http.ResponseWriter, r *http.Request) {
	h.crud.Create(w, r)
}

// Get godoc
//
//	@Summary	Get by id
//	@Tags		libros
//	@Produce	json
//	@Param		id	path		int	true	"Identifier"
//	@Success	200	{object}	appsvcs.BookDTO
//	@Failure	400	{object}	catalogapi.ErrorResponse
//	@Failure	404	{object}	catalogapi.ErrorResponse
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/libros/{id} [get]
func (h *BookHandlers) Get(w http.ResponseWriter, r *http.Request) {
	h.crud.Get(w, r)
}

// Update godoc
//
//	@Summary	Replace by id
//	@Tags		libros
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int		true	"Identifier"
//	@Param		body	body		appsvcs.BookDTO	true	"Payload"
//	@Success	200		{object}	appsvcs.BookDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	404		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/libros/{id} [put]
func (h *BookHandlers) Update(w http.ResponseWriter, r *http.Request) {
	h.crud.Update(w, r)
}

// Delete godoc
//
//	@Summary	Delete by id
//	@Tags		libros
//	@Produce	json
//	@Param		id	path	int	true	"Identifier"
//	@Success	204
//	@Failure	400	{object}	catalogapi.ErrorResponse
//	@Failure	404	{object}	catalogapi.ErrorResponse
//	@Failure	500	{object}	catalogapi.ErrorResponse
//	@Router		/libros/{id} [delete]
func (h *BookHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.crud.Delete(w, r)
}

// Search godoc
//
//	@Summary	Free-text search
//	@Tags		libros
//	@Produce	json
//	@Param		query	query		string	true	"Search text"
//	@Success	200		{array}		appsvcs.BookDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Failure	500		{object}	catalogapi.ErrorResponse
//	@Router		/libros/search [get]
func (h *BookHandlers) Search(w http.ResponseWriter, r *http.Request) {
	h.crud.Search(w, r)
}

// Available godoc
//
//	@Summary	Filter by availability
//	@Tags		libros
//	@Produce	json
//	@Param		disponible	query		bool	false	"Defaults to true"
//	@Success	200			{array}		appsvcs.BookDTO
//	@Failure	400			{object}	catalogapi.ErrorResponse
//	@Failure	500			{object}	catalogapi.ErrorResponse
//	@Router		/libros/disponibles [get]
func (h *BookHandlers) Available(w http.ResponseWriter, r *http.Request) {
	h.crud.Available(w, r)
}
