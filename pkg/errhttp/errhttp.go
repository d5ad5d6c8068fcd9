// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/biblioteca/pkg/httpx"
	bookdomain "github.com/ghuser/biblioteca/services/book/domain"
	dvddomain "github.com/ghuser/biblioteca/services/dvd/domain"
	magazinedomain "github.com/ghuser/biblioteca/services/magazine/domain"
)

var production atomic.Bool

// SetProduction toggles masking of 5xx messages. Call once at startup.
func SetProduction(on bool) {
	production.Store(on)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, production.Load()))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, bookdomain.ErrBookNotFound),
		errors.Is(err, magazinedomain.ErrMagazineNotFound),
		errors.Is(err, dvddomain.ErrDVDNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, bookdomain.ErrBookAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, bookdomain.ErrInvalidBook),
		errors.Is(err, magazinedomain.ErrInvalidMagazine),
		errors.Is(err, dvddomain.ErrInvalidDVD),
		errors.Is(err, httpx.ErrInvalidParam):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
