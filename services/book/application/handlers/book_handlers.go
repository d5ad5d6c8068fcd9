package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/biblioteca/pkg/catalogapi"
	"github.com/ghuser/biblioteca/pkg/errhttp"
	"github.com/ghuser/biblioteca/pkg/httpx"
	appsvcs "github.com/ghuser/biblioteca/services/book/application/services"
	bookdomain "github.com/ghuser/biblioteca/services/book/domain"
)

// BookHandlers serves the book-only lookups. The shared CRUD routes come
// from catalogapi.
type BookHandlers struct {
	svc  *appsvcs.Services
	crud *catalogapi.Handlers[appsvcs.BookDTO]
}

func NewBookHandlers(svc *appsvcs.Services) *BookHandlers {
	return &BookHandlers{svc: svc, crud: newCRUD(svc)}
}

// ByGenre lists books whose genre contains the query value.
//
//	@Summary	Books by genre
//	@Tags		libros
//	@Produce	json
//	@Param		genero	query		string	true	"Genre substring"
//	@Success	200		{array}		appsvcs.BookDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Router		/libros/genero [get]
func (h *BookHandlers) ByGenre(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("genero", true, h.svc.Book.FindByGenre)(w, r)
}

// ByPublisher lists books whose publisher contains the query value.
//
//	@Summary	Books by publisher
//	@Tags		libros
//	@Produce	json
//	@Param		editorial	query		string	true	"Publisher substring"
//	@Success	200			{array}		appsvcs.BookDTO
//	@Failure	400			{object}	catalogapi.ErrorResponse
//	@Router		/libros/editorial [get]
func (h *BookHandlers) ByPublisher(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("editorial", true, h.svc.Book.FindByPublisher)(w, r)
}

// ByAuthor lists books whose author contains the query value.
//
//	@Summary	Books by author
//	@Tags		libros
//	@Produce	json
//	@Param		autor	query		string	true	"Author substring"
//	@Success	200		{array}		appsvcs.BookDTO
//	@Failure	400		{object}	catalogapi.ErrorResponse
//	@Router		/libros/autor [get]
func (h *BookHandlers) ByAuthor(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("autor", true, h.svc.Book.FindByAuthor)(w, r)
}

// ByISBN returns the single book with the exact ISBN.
//
//	@Summary	Book by ISBN
//	@Tags		libros
//	@Produce	json
//	@Param		isbn	path		string	true	"ISBN"
//	@Success	200		{object}	appsvcs.BookDTO
//	@Failure	404		{object}	catalogapi.ErrorResponse
//	@Router		/libros/isbn/{isbn} [get]
func (h *BookHandlers) ByISBN(w http.ResponseWriter, r *http.Request) {
	dto, found, err := h.svc.Book.FindByISBN(r.Context(), chi.URLParam(r, "isbn"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !found {
		errhttp.WriteError(w, bookdomain.ErrBookNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

// Genres lists the distinct genres in use.
//
//	@Summary	Book genres
//	@Tags		libros
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/libros/generos [get]
func (h *BookHandlers) Genres(w http.ResponseWriter, r *http.Request) {
	catalogapi.ListOf(h.svc.Book.Genres)(w, r)
}
