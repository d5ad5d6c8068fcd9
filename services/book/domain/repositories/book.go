package repositories

import (
	"context"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/book/domain/models"
)

// Filter narrows Find. Zero-valued fields are ignored; set fields are ANDed.
// Query matches titulo, autor, genero, editorial or isbn; Genre, Publisher and
// Author are case-insensitive substrings; ISBN is exact.
type Filter struct {
	Query     string
	Available *bool
	Genre     string
	Publisher string
	Author    string
	ISBN      string
}

// BookRepository is the persistence interface for books.
// The domain layer owns this interface; infrastructure implements it.
type BookRepository interface {
	// Save inserts book and assigns its ID. Returns ErrBookAlreadyExists on a duplicate ISBN.
	Save(ctx context.Context, book *models.Book) error

	// Update replaces every mutable column of the book with book.ID, keeping
	// the stored creation time. Returns ErrBookNotFound if the row is gone.
	Update(ctx context.Context, book *models.Book) error

	// Delete removes the book. Returns ErrBookNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// GetByID returns ErrBookNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*models.Book, error)

	// Find returns books matching f ordered by id.
	Find(ctx context.Context, f Filter) ([]*models.Book, error)

	// Genres returns the distinct non-empty genres, sorted.
	Genres(ctx context.Context) ([]string, error)

	CountByAvailability(ctx context.Context) (catalog.Tally, error)
}
