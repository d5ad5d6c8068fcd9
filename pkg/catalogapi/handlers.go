// Package catalogapi exposes any catalog.Service over HTTP with the CRUD,
// search and availability routes every catalog family shares.
package catalogapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/pkg/errhttp"
	"github.com/ghuser/biblioteca/pkg/httpx"
	pkgvalidator "github.com/ghuser/biblioteca/pkg/validator"
)

// Handlers serves one catalog family. D is the family's DTO.
type Handlers[D any] struct {
	svc      catalog.Service[D]
	notFound error
}

// NewHandlers returns Handlers over svc. notFound is written when a GET by id
// finds nothing, so the response matches the family's other 404s.
func NewHandlers[D any](svc catalog.Service[D], notFound error) *Handlers[D] {
	return &Handlers[D]{svc: svc, notFound: notFound}
}

// ErrorResponse documents the error body for the generated API docs.
type ErrorResponse httpx.ErrorBody // @name ErrorResponse

// CRUD is the set of handlers behind the shared routes. Handlers satisfies
// it, as do the annotated per-family wrappers.
type CRUD interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Available(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// MountCRUD registers the shared routes on r:
//
//	GET    /             list every item
//	POST   /             create (201)
//	GET    /search       ?query= substring search
//	GET    /disponibles  ?disponible= (default true)
//	GET    /{id}
//	PUT    /{id}         full replace
//	DELETE /{id}         (204)
func MountCRUD(r chi.Router, h CRUD) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/search", h.Search)
	r.Get("/disponibles", h.Available)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// Mount registers the shared routes for h on r.
func (h *Handlers[D]) Mount(r chi.Router) {
	MountCRUD(r, h)
}

func (h *Handlers[D]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.FindAll(r.Context())
	WriteList(w, items, err)
}

func (h *Handlers[D]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	dto, found, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !found {
		errhttp.WriteError(w, h.notFound)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *Handlers[D]) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[D](w, r)
	if !ok {
		return
	}
	dto, err := h.svc.Save(r.Context(), *req)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, dto)
}

func (h *Handlers[D]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[D](w, r)
	if !ok {
		return
	}
	dto, err := h.svc.Update(r.Context(), id, *req)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *Handlers[D]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.svc.DeleteByID(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}

// Search requires the query parameter; an empty value matches everything.
func (h *Handlers[D]) Search(w http.ResponseWriter, r *http.Request) {
	ByQuery("query", true, h.svc.Search)(w, r)
}

func (h *Handlers[D]) Available(w http.ResponseWriter, r *http.Request) {
	available, err := httpx.QueryBool(r, "disponible", true)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.FindByAvailable(r.Context(), available)
	WriteList(w, items, err)
}

// ByQuery adapts a single-string lookup to a handler reading the query
// parameter param.
func ByQuery[T any](param string, required bool, fn func(context.Context, string) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := httpx.QueryString(r, param, required)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		items, err := fn(r.Context(), v)
		WriteList(w, items, err)
	}
}

// ListOf adapts a parameterless list lookup such as a distinct-genre query.
func ListOf[T any](fn func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fn(r.Context())
		WriteList(w, items, err)
	}
}

// WriteList answers 200 with a JSON array, never null.
func WriteList[T any](w http.ResponseWriter, items []T, err error) {
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	httpx.JSON(w, http.StatusOK, items)
}
