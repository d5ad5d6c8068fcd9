package services

import (
	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/magazine/domain/models"
)

// MagazineDTO is the JSON shape of a magazine.
type MagazineDTO struct {
	catalog.ItemDTO
	IssueNumber *int     `json:"numeroEdicion,omitempty" validate:"omitempty,gte=1" example:"245"`
	Category    string   `json:"categoria"               validate:"max=100"         example:"Ciencia"`
	Frequency   string   `json:"periodicidad"            validate:"max=50"          example:"Mensual"`
	ISSN        string   `json:"issn"                    validate:"max=20"          example:"0027-9358"`
	Price       *float64 `json:"precio,omitempty"        validate:"omitempty,gte=0" example:"6.5"`
	Pages       *int     `json:"numeroPaginas,omitempty" validate:"omitempty,gte=1" example:"120"`
	Publisher   string   `json:"editorial"               validate:"max=150"         example:"National Geographic Society"`
} // @name Revista

func toDTO(m *models.Magazine) MagazineDTO {
	return MagazineDTO{
		ItemDTO:     catalog.ItemToDTO(m.Item),
		IssueNumber: m.IssueNumber,
		Category:    m.Category,
		Frequency:   m.Frequency,
		ISSN:        m.ISSN,
		Price:       m.Price,
		Pages:       m.Pages,
		Publisher:   m.Publisher,
	}
}

func toDTOs(ms []*models.Magazine) []MagazineDTO {
	out := make([]MagazineDTO, len(ms))
	for i, m := range ms {
		out[i] = toDTO(m)
	}
	return out
}

func toModel(d MagazineDTO) *models.Magazine {
	return &models.Magazine{
		Item:        catalog.ItemFromDTO(d.ItemDTO, catalog.KindMagazine),
		IssueNumber: d.IssueNumber,
		Category:    d.Category,
		Frequency:   d.Frequency,
		ISSN:        d.ISSN,
		Price:       d.Price,
		Pages:       d.Pages,
		Publisher:   d.Publisher,
	}
}
