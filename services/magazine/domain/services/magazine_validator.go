package services

import (
	"errors"
	"fmt"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/magazine/domain/models"
)

// ValidateMagazine enforces the magazine invariants before persistence.
func ValidateMagazine(m *models.Magazine) error {
	if m == nil {
		return fmt.Errorf("magazine cannot be nil")
	}
	if m.Kind != catalog.KindMagazine {
		return fmt.Errorf("tipo must be %s, got %q", catalog.KindMagazine, m.Kind)
	}
	return errors.Join(
		catalog.ValidateItem(m.Item),
		catalog.MinInt("numeroEdicion", m.IssueNumber, 1),
		catalog.MaxText("categoria", m.Category, 100),
		catalog.MaxText("periodicidad", m.Frequency, 50),
		catalog.MaxText("issn", m.ISSN, 20),
		catalog.NonNegative("precio", m.Price),
		catalog.MinInt("numeroPaginas", m.Pages, 1),
		catalog.MaxText("editorial", m.Publisher, 150),
	)
}
