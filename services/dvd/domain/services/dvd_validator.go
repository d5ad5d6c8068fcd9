package services

import (
	"errors"
	"fmt"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/dvd/domain/models"
)

// ValidateDVD enforces the DVD invariants. The release year is not bounded.
func ValidateDVD(d *models.DVD) error {
	if d == nil {
		return fmt.Errorf("dvd cannot be nil")
	}
	return errors.Join(
		catalog.RequireText("titulo", d.Title, catalog.MaxTitleLen),
		catalog.RequireText("director", d.Director, 150),
		catalog.MaxText("genero", d.Genre, 100),
		catalog.MinInt("duracion", d.Duration, 1),
		catalog.MaxText("clasificacion", d.Rating, 10),
		catalog.NonNegative("precio", d.Price),
	)
}
