package catalog

import (
	"context"
	"errors"
)

// Service is the contract every catalog implements over its own DTO type.
// FindByID reports absence through found=false instead of an error; Update and
// DeleteByID fail with the catalog's NotFound error.
type Service[D any] interface {
	FindAll(ctx context.Context) ([]D, error)
	FindByID(ctx context.Context, id int64) (dto D, found bool, err error)
	Save(ctx context.Context, dto D) (D, error)
	Update(ctx context.Context, id int64, dto D) (D, error)
	DeleteByID(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]D, error)
	FindByAvailable(ctx context.Context, available bool) ([]D, error)
}

// Counter is implemented by every catalog for dashboard aggregation.
type Counter interface {
	CountByAvailability(ctx context.Context) (Tally, error)
}

// Invalidator drops data derived from the catalogs, such as the cached
// dashboard summary.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Invalidators clears every member and joins their failures.
type Invalidators []Invalidator

func (v Invalidators) Invalidate(ctx context.Context) error {
	var errs []error
	for _, inv := range v {
		if err := inv.Invalidate(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
