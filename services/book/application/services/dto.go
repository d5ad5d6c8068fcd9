package services

import (
	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/book/domain/models"
)

// BookDTO is the JSON shape of a book on the wire and in the read cache.
type BookDTO struct {
	catalog.ItemDTO
	ISBN      string   `json:"isbn"                    validate:"notblank,max=20"   example:"978-0441172719"`
	Pages     *int     `json:"numeroPaginas,omitempty" validate:"omitempty,gte=1"  example:"412"`
	Genre     string   `json:"genero"                  validate:"max=100"          example:"Ciencia ficción"`
	Publisher string   `json:"editorial"               validate:"max=150"          example:"Ace"`
	Language  string   `json:"idioma"                  validate:"max=50"           example:"Español"`
	Price     *float64 `json:"precio,omitempty"        validate:"omitempty,gte=0"  example:"19.99"`
	Stock     *int     `json:"stock,omitempty"         validate:"omitempty,gte=0"  example:"3"`
} // @name Libro

func toDTO(b *models.Book) BookDTO {
	return BookDTO{
		ItemDTO:   catalog.ItemToDTO(b.Item),
		ISBN:      b.ISBN,
		Pages:     b.Pages,
		Genre:     b.Genre,
		Publisher: b.Publisher,
		Language:  b.Language,
		Price:     b.Price,
		Stock:     b.Stock,
	}
}

func toDTOs(books []*models.Book) []BookDTO {
	out := make([]BookDTO, len(books))
	for i, b := range books {
		out[i] = toDTO(b)
	}
	return out
}

// toModel copies the client-writable fields; id and timestamps stay zero.
func toModel(d BookDTO) *models.Book {
	return &models.Book{
		Item:      catalog.ItemFromDTO(d.ItemDTO, catalog.KindBook),
		ISBN:      d.ISBN,
		Pages:     d.Pages,
		Genre:     d.Genre,
		Publisher: d.Publisher,
		Language:  d.Language,
		Price:     d.Price,
		Stock:     d.Stock,
	}
}
