package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/biblioteca/pkg/database/dbtest"
	"github.com/ghuser/biblioteca/pkg/logger"
	"github.com/ghuser/biblioteca/services/book/application/api"
	appsvcs "github.com/ghuser/biblioteca/services/book/application/services"
	"github.com/ghuser/biblioteca/services/book/infrastructure/persistence/postgres"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	repo := postgres.NewBookRepository(dbtest.New(t), nil)
	svcs := &appsvcs.Services{Book: appsvcs.NewBookService(repo, nil, nil, logger.Discard())}
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) { api.Mount(r, svcs) })
	return r
}

func send(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const dune = `{"titulo":"Dune","autor":"Frank Herbert","anoPublicacion":1965,
	"isbn":"978-0441172719","genero":"Ciencia ficción","editorial":"Ace","numeroPaginas":412,"precio":19.99}`

func TestBookRoutes_CreateAndFetch(t *testing.T) {
	h := newServer(t)

	rec := send(t, h, http.MethodPost, "/api/libros", dune)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, true, body["disponible"])
	assert.Equal(t, "LIBRO", body["tipo"])
	assert.Equal(t, body["fechaCreacion"], body["fechaActualizacion"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, body["fechaCreacion"])
	assert.NotContains(t, body, "stock")

	rec = send(t, h, http.MethodGet, "/api/libros/isbn/978-0441172719", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"titulo":"Dune"`)

	assert.Equal(t, http.StatusNotFound, send(t, h, http.MethodGet, "/api/libros/isbn/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, send(t, h, http.MethodGet, "/api/libros/77", "").Code)
}

func TestBookRoutes_DuplicateISBNConflicts(t *testing.T) {
	h := newServer(t)

	require.Equal(t, http.StatusCreated, send(t, h, http.MethodPost, "/api/libros", dune).Code)
	rec := send(t, h, http.MethodPost, "/api/libros", dune)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookRoutes_Validation(t *testing.T) {
	h := newServer(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing isbn", `{"titulo":"Dune","autor":"Herbert","anoPublicacion":1965}`, "isbn"},
		{"year too early", `{"titulo":"Dune","autor":"Herbert","anoPublicacion":999,"isbn":"1"}`, "anoPublicacion"},
		{"blank author", `{"titulo":"Dune","autor":" ","anoPublicacion":1965,"isbn":"1"}`, "autor"},
		{"negative price", `{"titulo":"Dune","autor":"H","anoPublicacion":1965,"isbn":"1","precio":-1}`, "precio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(t, h, http.MethodPost, "/api/libros", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var body struct {
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Fields, tt.field)
		})
	}
}

func TestBookRoutes_TypeSpecificLookups(t *testing.T) {
	h := newServer(t)
	require.Equal(t, http.StatusCreated, send(t, h, http.MethodPost, "/api/libros", dune).Code)
	require.Equal(t, http.StatusCreated, send(t, h, http.MethodPost, "/api/libros",
		`{"titulo":"Emma","autor":"Jane Austen","anoPublicacion":1815,"isbn":"2","genero":"Novela","disponible":false}`).Code)

	tests := []struct {
		target string
		want   int
	}{
		{"/api/libros/genero?genero=novela", 1},
		{"/api/libros/editorial?editorial=ACE", 1},
		{"/api/libros/autor?autor=austen", 1},
		{"/api/libros/search?query=e", 2},
		{"/api/libros/disponibles", 1},
		{"/api/libros/disponibles?disponible=false", 1},
		{"/api/libros", 2},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := send(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)
			var got []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Len(t, got, tt.want)
		})
	}

	rec := send(t, h, http.MethodGet, "/api/libros/generos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Ciencia ficción","Novela"]`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, send(t, h, http.MethodGet, "/api/libros/genero", "").Code)
}

func TestBookRoutes_UpdateAndDelete(t *testing.T) {
	h := newServer(t)
	require.Equal(t, http.StatusCreated, send(t, h, http.MethodPost, "/api/libros", dune).Code)

	rec := send(t, h, http.MethodPut, "/api/libros/1",
		`{"id":99,"titulo":"Dune Messiah","autor":"Frank Herbert","anoPublicacion":1969,"isbn":"978-0441172719"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Dune Messiah", body["titulo"])
	assert.Equal(t, "", body["genero"])

	assert.Equal(t, http.StatusNotFound, send(t, h, http.MethodPut, "/api/libros/5",
		`{"titulo":"x","autor":"y","anoPublicacion":2000,"isbn":"z"}`).Code)

	assert.Equal(t, http.StatusNoContent, send(t, h, http.MethodDelete, "/api/libros/1", "").Code)
	assert.Equal(t, http.StatusNotFound, send(t, h, http.MethodDelete, "/api/libros/1", "").Code)
}

func TestBookRoutes_SearchKeepsWhitespace(t *testing.T) {
	h := newServer(t)
	require.Equal(t, http.StatusCreated, send(t, h, http.MethodPost, "/api/libros",
		`{"titulo":"Dune","autor":"Herbert","anoPublicacion":1965,"isbn":"1"}`).Code)
	require.Equal(t, http.StatusCreated, send(t, h, http.MethodPost, "/api/libros",
		`{"titulo":"El Hobbit","autor":"Tolkien","anoPublicacion":1937,"isbn":"2"}`).Code)

	tests := []struct {
		query string
		want  []string
	}{
		{"%20", []string{"El Hobbit"}},
		{"l%20H", []string{"El Hobbit"}},
		{"", []string{"Dune", "El Hobbit"}},
	}
	for _, tt := range tests {
		t.Run("query="+tt.query, func(t *testing.T) {
			rec := send(t, h, http.MethodGet, "/api/libros/search?query="+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code)
			var got []struct {
				Title string `json:"titulo"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			titles := make([]string, 0, len(got))
			for _, b := range got {
				titles = append(titles, b.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}
