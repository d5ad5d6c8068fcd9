package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ErrInvalidParam is returned by the parameter helpers when a path or query
// value is missing or cannot be parsed. errhttp maps it to 400.
var ErrInvalidParam = errors.New("invalid parameter")

// PathInt64 parses the chi URL parameter name as a base-10 int64.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidParam, name, raw)
	}
	return v, nil
}

// QueryString returns the query value as sent, whitespace included. When
// required is true an absent parameter is an error; an explicitly empty value
// is allowed.
func QueryString(r *http.Request, name string, required bool) (string, error) {
	q := r.URL.Query()
	if _, ok := q[name]; !ok && required {
		return "", fmt.Errorf("%w: query parameter %q is required", ErrInvalidParam, name)
	}
	return q.Get(name), nil
}

// QueryInt parses a required integer query parameter.
func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: query parameter %q is required", ErrInvalidParam, name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidParam, name, raw)
	}
	return v, nil
}

// QueryFloat parses a required decimal query parameter.
func QueryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: query parameter %q is required", ErrInvalidParam, name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidParam, name, raw)
	}
	return v, nil
}

// QueryBool parses an optional boolean query parameter, returning def when
// the parameter is absent.
func QueryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false, got %q", ErrInvalidParam, name, raw)
	}
	return v, nil
}

// NoContent writes a 204 with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
