package repositories

import (
	"context"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/dvd/domain/models"
)

// Order selects the sort of Find results.
type Order int

const (
	OrderByID Order = iota
	OrderByPriceAsc
	OrderByNewest
)

// Filter narrows Find. Set fields are ANDed. Text filters are
// case-insensitive substrings, ReleaseYear is exact and the Min/Max pairs are
// inclusive bounds. Query matches titulo, director or genero.
type Filter struct {
	Query       string
	Available   *bool
	Title       string
	Director    string
	Genre       string
	Rating      string
	Cast        string
	ReleaseYear *int
	MinYear     *int
	MaxYear     *int
	MinDuration *int
	MaxDuration *int
	MinPrice    *float64
	MaxPrice    *float64
	Order       Order
}

// DVDRepository is the persistence interface for DVDs.
type DVDRepository interface {
	Save(ctx context.Context, d *models.DVD) error
	// Update returns ErrDVDNotFound if the row is gone.
	Update(ctx context.Context, d *models.DVD) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.DVD, error)
	Find(ctx context.Context, f Filter) ([]*models.DVD, error)
	Genres(ctx context.Context) ([]string, error)
	Ratings(ctx context.Context) ([]string, error)
	CountByAvailability(ctx context.Context) (catalog.Tally, error)
	// AveragePriceAvailable is nil when no available DVD has a price.
	AveragePriceAvailable(ctx context.Context) (*float64, error)
}
