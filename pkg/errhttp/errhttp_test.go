package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/biblioteca/pkg/httpx"
	bookdomain "github.com/ghuser/biblioteca/services/book/domain"
	dvddomain "github.com/ghuser/biblioteca/services/dvd/domain"
	magazinedomain "github.com/ghuser/biblioteca/services/magazine/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrBookNotFound", bookdomain.ErrBookNotFound, http.StatusNotFound},
		{"ErrMagazineNotFound", magazinedomain.ErrMagazineNotFound, http.StatusNotFound},
		{"ErrDVDNotFound", dvddomain.ErrDVDNotFound, http.StatusNotFound},
		{"ErrBookAlreadyExists", bookdomain.ErrBookAlreadyExists, http.StatusConflict},
		{"ErrInvalidBook", bookdomain.ErrInvalidBook, http.StatusBadRequest},
		{"ErrInvalidMagazine", magazinedomain.ErrInvalidMagazine, http.StatusBadRequest},
		{"ErrInvalidDVD", dvddomain.ErrInvalidDVD, http.StatusBadRequest},
		{"ErrInvalidParam", httpx.ErrInvalidParam, http.StatusBadRequest},
		{"wrapped ErrBookNotFound", fmt.Errorf("get book: %w", bookdomain.ErrBookNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidDVD", fmt.Errorf("%w: director is required", dvddomain.ErrInvalidDVD), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, bookdomain.ErrBookNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != bookdomain.ErrBookNotFound.Error() {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestWriteError_ProductionMasksInternalErrors(t *testing.T) {
	SetProduction(true)
	t.Cleanup(func() { SetProduction(false) })

	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: relation \"libros\" does not exist"))

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected masked message, got %q", body["error"])
	}

	// Client errors keep their message.
	w = httptest.NewRecorder()
	WriteError(w, dvddomain.ErrDVDNotFound)
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != dvddomain.ErrDVDNotFound.Error() {
		t.Fatalf("expected 404 message preserved, got %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, bookdomain.ErrBookNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
