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
	"github.com/ghuser/biblioteca/services/dvd/application/api"
	appsvcs "github.com/ghuser/biblioteca/services/dvd/application/services"
	"github.com/ghuser/biblioteca/services/dvd/infrastructure/persistence/postgres"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	repo := postgres.NewDVDRepository(dbtest.New(t), nil)
	svcs := &appsvcs.Services{DVD: appsvcs.NewDVDService(repo, nil, nil, logger.Discard())}
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

func seed(t *testing.T, h http.Handler) {
	t.Helper()
	for _, body := range []string{
		`{"titulo":"Alien","director":"Ridley Scott","anoLanzamiento":1979,"genero":"Ciencia ficción",
			"duracion":117,"clasificacion":"R","actores":"Sigourney Weaver","precio":12}`,
		`{"titulo":"Toy Story","director":"John Lasseter","anoLanzamiento":1995,"genero":"Animación",
			"duracion":81,"clasificacion":"G","actores":"Tom Hanks, Tim Allen","precio":8}`,
		`{"titulo":"Jaws","director":"Steven Spielberg","anoLanzamiento":1975,"genero":"Terror",
			"duracion":124,"clasificacion":"PG","precio":5,"disponible":false}`,
	} {
		rec := send(t, h, http.MethodPost, "/api/dvds", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func TestDVDRoutes_CreateAndFetch(t *testing.T) {
	h := newServer(t)

	rec := send(t, h, http.MethodPost, "/api/dvds", `{"titulo":"Alien","director":"Ridley Scott"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, true, body["disponible"])
	assert.NotContains(t, body, "precio")
	assert.NotContains(t, body, "tipo")

	rec = send(t, h, http.MethodGet, "/api/dvds/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"director":"Ridley Scott"`)

	assert.Equal(t, http.StatusNotFound, send(t, h, http.MethodGet, "/api/dvds/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, send(t, h, http.MethodGet, "/api/dvds/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		send(t, h, http.MethodPost, "/api/dvds", `{"titulo":"Alien"}`).Code)
}

func TestDVDRoutes_Lookups(t *testing.T) {
	h := newServer(t)
	seed(t, h)

	tests := []struct {
		target string
		want   int
	}{
		{"/api/dvds", 3},
		{"/api/dvds/search?query=ridley", 1},
		{"/api/dvds/disponibles", 2},
		{"/api/dvds/titulo?titulo=toy", 1},
		{"/api/dvds/genero?genero=terror", 1},
		{"/api/dvds/director?director=SPIELBERG", 1},
		{"/api/dvds/clasificacion?clasificacion=g", 2},
		{"/api/dvds/actor?actor=hanks", 1},
		{"/api/dvds/ano?ano=1979", 1},
		{"/api/dvds/duracion?minDuracion=100&maxDuracion=130", 2},
		{"/api/dvds/anos?anoInicio=1970&anoFin=1980", 2},
		{"/api/dvds/precio?precioMin=6&precioMax=20", 2},
		{"/api/dvds/precio-maximo?precio=8", 2},
		{"/api/dvds/recientes", 2},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := send(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var got []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Len(t, got, tt.want)
		})
	}

	rec := send(t, h, http.MethodGet, "/api/dvds/precio-maximo?precio=8", "")
	var cheap []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cheap))
	assert.Equal(t, "Jaws", cheap[0]["titulo"])

	rec = send(t, h, http.MethodGet, "/api/dvds/clasificaciones", "")
	assert.JSONEq(t, `["G","PG","R"]`, rec.Body.String())
	rec = send(t, h, http.MethodGet, "/api/dvds/generos", "")
	assert.JSONEq(t, `["Animación","Ciencia ficción","Terror"]`, rec.Body.String())

	for _, target := range []string{
		"/api/dvds/ano",
		"/api/dvds/ano?ano=uno",
		"/api/dvds/duracion?minDuracion=1",
		"/api/dvds/precio-maximo?precio=x",
		"/api/dvds/actor",
	} {
		assert.Equal(t, http.StatusBadRequest, send(t, h, http.MethodGet, target, "").Code, target)
	}
}

func TestDVDRoutes_Stats(t *testing.T) {
	h := newServer(t)

	rec := send(t, h, http.MethodGet, "/api/dvds/estadisticas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"disponibles":0,"precioPromedio":null}`, rec.Body.String())

	seed(t, h)
	rec = send(t, h, http.MethodGet, "/api/dvds/estadisticas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"disponibles":2,"precioPromedio":10}`, rec.Body.String())
}

func TestDVDRoutes_UpdateAndDelete(t *testing.T) {
	h := newServer(t)
	seed(t, h)

	rec := send(t, h, http.MethodPut, "/api/dvds/2", `{"titulo":"Toy Story 2","director":"John Lasseter"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["id"])
	assert.Equal(t, "", body["genero"])
	assert.NotNil(t, body["fechaCreacion"])

	assert.Equal(t, http.StatusNotFound,
		send(t, h, http.MethodPut, "/api/dvds/9", `{"titulo":"x","director":"y"}`).Code)
	assert.Equal(t, http.StatusNoContent, send(t, h, http.MethodDelete, "/api/dvds/2", "").Code)
	assert.Equal(t, http.StatusNotFound, send(t, h, http.MethodDelete, "/api/dvds/2", "").Code)
}
