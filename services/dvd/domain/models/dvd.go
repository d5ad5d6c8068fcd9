package models

import "github.com/ghuser/biblioteca/pkg/catalog"

// DVD is a film on disc. It is not a catalog.Item: it has a director instead
// of an author and a release year with no lower bound.
type DVD struct {
	ID          int64
	Title       string
	Director    string
	ReleaseYear *int
	Genre       string
	Duration    *int // minutes
	Rating      string
	Cast        string
	Synopsis    string
	Price       *float64
	Available   bool
	catalog.Audit
}
