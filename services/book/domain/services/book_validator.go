// Package services contains stateless domain services for the book context.
package services

import (
	"errors"
	"fmt"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/book/domain/models"
)

const (
	maxISBNLen      = 20
	maxGenreLen     = 100
	maxPublisherLen = 150
	maxLanguageLen  = 50
)

// ValidateBook enforces the book invariants before it is persisted. All
// violations are reported together.
func ValidateBook(b *models.Book) error {
	if b == nil {
		return fmt.Errorf("book cannot be nil")
	}
	if b.Kind != catalog.KindBook {
		return fmt.Errorf("tipo must be %s, got %q", catalog.KindBook, b.Kind)
	}
	return errors.Join(
		catalog.ValidateItem(b.Item),
		catalog.RequireText("isbn", b.ISBN, maxISBNLen),
		catalog.MinInt("numeroPaginas", b.Pages, 1),
		catalog.MaxText("genero", b.Genre, maxGenreLen),
		catalog.MaxText("editorial", b.Publisher, maxPublisherLen),
		catalog.MaxText("idioma", b.Language, maxLanguageLen),
		catalog.NonNegative("precio", b.Price),
		catalog.MinInt("stock", b.Stock, 0),
	)
}
