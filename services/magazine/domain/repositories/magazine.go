package repositories

import (
	"context"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/magazine/domain/models"
)

// Filter narrows Find. Set fields are ANDed; text filters are
// case-insensitive substrings. Query matches titulo, autor, categoria,
// editorial or issn.
type Filter struct {
	Query     string
	Available *bool
	Category  string
	Frequency string
	Publisher string
	Author    string
}

// MagazineRepository is the persistence interface for magazines.
type MagazineRepository interface {
	Save(ctx context.Context, m *models.Magazine) error
	// Update returns ErrMagazineNotFound if the row is gone.
	Update(ctx context.Context, m *models.Magazine) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Magazine, error)
	Find(ctx context.Context, f Filter) ([]*models.Magazine, error)
	Categories(ctx context.Context) ([]string, error)
	CountByAvailability(ctx context.Context) (catalog.Tally, error)
}
