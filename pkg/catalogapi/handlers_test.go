package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookdomain "github.com/ghuser/biblioteca/services/book/domain"
)

type entry struct {
	ID         int64  `json:"id,omitempty"`
	Titulo     string `json:"titulo" validate:"notblank"`
	Disponible bool   `json:"disponible"`
}

// memService is an in-memory catalog.Service[entry].
type memService struct {
	items  []entry
	nextID int64
	err    error
}

func (m *memService) FindAll(context.Context) ([]entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *memService) FindByID(_ context.Context, id int64) (entry, bool, error) {
	for _, e := range m.items {
		if e.ID == id {
			return e, true, nil
		}
	}
	return entry{}, false, m.err
}

func (m *memService) Save(_ context.Context, e entry) (entry, error) {
	m.nextID++
	e.ID = m.nextID
	m.items = append(m.items, e)
	return e, nil
}

func (m *memService) Update(_ context.Context, id int64, e entry) (entry, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			e.ID = id
			m.items[i] = e
			return e, nil
		}
	}
	return entry{}, bookdomain.ErrBookNotFound
}

func (m *memService) DeleteByID(_ context.Context, id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return bookdomain.ErrBookNotFound
}

func (m *memService) Search(_ context.Context, q string) ([]entry, error) {
	var out []entry
	for _, e := range m.items {
		if strings.Contains(strings.ToLower(e.Titulo), strings.ToLower(q)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memService) FindByAvailable(_ context.Context, available bool) ([]entry, error) {
	var out []entry
	for _, e := range m.items {
		if e.Disponible == available {
			out = append(out, e)
		}
	}
	return out, nil
}

func newRouter(svc *memService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/libros", NewHandlers[entry](svc, bookdomain.ErrBookNotFound).Mount)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlers_CRUD(t *testing.T) {
	svc := &memService{}
	h := newRouter(svc)

	rec := do(t, h, http.MethodPost, "/api/libros", `{"titulo":"Dune","disponible":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	rec = do(t, h, http.MethodGet, "/api/libros/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"titulo":"Dune"`)

	rec = do(t, h, http.MethodPut, "/api/libros/1", `{"titulo":"Dune Messiah"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune Messiah")

	rec = do(t, h, http.MethodDelete, "/api/libros/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/libros/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "book not found")
}

func TestHandlers_MissingIDs(t *testing.T) {
	h := newRouter(&memService{})

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/api/libros/9", `{"titulo":"x"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/libros/9", "").Code)
}

func TestHandlers_BadInput(t *testing.T) {
	h := newRouter(&memService{})

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"non-numeric id", http.MethodGet, "/api/libros/abc", "", http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/api/libros", `{"titulo":`, http.StatusBadRequest},
		{"blank title", http.MethodPost, "/api/libros", `{"titulo":"  "}`, http.StatusBadRequest},
		{"search without query", http.MethodGet, "/api/libros/search", "", http.StatusBadRequest},
		{"bad availability flag", http.MethodGet, "/api/libros/disponibles?disponible=maybe", "", http.StatusBadRequest},
		{"put with bad id", http.MethodPut, "/api/libros/x", `{"titulo":"a"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, do(t, h, tt.method, tt.target, tt.body).Code)
		})
	}
}

func TestHandlers_ListsAreNeverNull(t *testing.T) {
	h := newRouter(&memService{})

	for _, target := range []string{
		"/api/libros",
		"/api/libros/search?query=zzz",
		"/api/libros/disponibles",
	} {
		rec := do(t, h, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `[]`, rec.Body.String(), target)
	}
}

func TestHandlers_SearchAndAvailability(t *testing.T) {
	svc := &memService{}
	h := newRouter(svc)
	_, _ = svc.Save(context.Background(), entry{Titulo: "Dune", Disponible: true})
	_, _ = svc.Save(context.Background(), entry{Titulo: "Emma", Disponible: false})

	var got []entry
	rec := do(t, h, http.MethodGet, "/api/libros/search?query=DUN", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Titulo)

	rec = do(t, h, http.MethodGet, "/api/libros/search?query=", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	rec = do(t, h, http.MethodGet, "/api/libros/disponibles", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Titulo)

	rec = do(t, h, http.MethodGet, "/api/libros/disponibles?disponible=false", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Emma", got[0].Titulo)
}

func TestHandlers_ServiceErrorIs500(t *testing.T) {
	h := newRouter(&memService{err: errors.New("db down")})
	assert.Equal(t, http.StatusInternalServerError, do(t, h, http.MethodGet, "/api/libros", "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(t, h, http.MethodGet, "/api/libros/1", "").Code)
}

func TestListOf(t *testing.T) {
	h := ListOf(func(context.Context) ([]string, error) { return nil, nil })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/generos", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
