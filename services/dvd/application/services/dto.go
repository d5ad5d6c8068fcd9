package services

import (
	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/services/dvd/domain/models"
)

// DVDDTO is the JSON shape of a DVD.
type DVDDTO struct {
	ID          int64             `json:"id,omitempty"`
	Title       string            `json:"titulo"                   validate:"notblank,max=200"  example:"Alien"`
	Director    string            `json:"director"                 validate:"notblank,max=150"  example:"Ridley Scott"`
	ReleaseYear *int              `json:"anoLanzamiento,omitempty"                              example:"1979"`
	Genre       string            `json:"genero"                   validate:"max=100"           example:"Ciencia ficción"`
	Duration    *int              `json:"duracion,omitempty"       validate:"omitempty,gte=1"   example:"117"`
	Rating      string            `json:"clasificacion"            validate:"max=10"            example:"R"`
	Cast        string            `json:"actores"                                               example:"Sigourney Weaver, Tom Skerritt"`
	Synopsis    string            `json:"sinopsis"`
	Price       *float64          `json:"precio,omitempty"         validate:"omitempty,gte=0"   example:"12.5"`
	Available   *bool             `json:"disponible"`
	CreatedAt   catalog.Timestamp `json:"fechaCreacion"`
	UpdatedAt   catalog.Timestamp `json:"fechaActualizacion"`
} // @name DVD

// StatsDTO summarizes the available DVDs.
type StatsDTO struct {
	Available    int64    `json:"disponibles"`
	AveragePrice *float64 `json:"precioPromedio"`
} // @name EstadisticasDVD

func toDTO(d *models.DVD) DVDDTO {
	available := d.Available
	return DVDDTO{
		ID:          d.ID,
		Title:       d.Title,
		Director:    d.Director,
		ReleaseYear: d.ReleaseYear,
		Genre:       d.Genre,
		Duration:    d.Duration,
		Rating:      d.Rating,
		Cast:        d.Cast,
		Synopsis:    d.Synopsis,
		Price:       d.Price,
		Available:   &available,
		CreatedAt:   catalog.NewTimestamp(d.CreatedAt),
		UpdatedAt:   catalog.NewTimestamp(d.UpdatedAt),
	}
}

func toDTOs(ds []*models.DVD) []DVDDTO {
	out := make([]DVDDTO, len(ds))
	for i, d := range ds {
		out[i] = toDTO(d)
	}
	return out
}

func toModel(d DVDDTO) *models.DVD {
	return &models.DVD{
		Title:       d.Title,
		Director:    d.Director,
		ReleaseYear: d.ReleaseYear,
		Genre:       d.Genre,
		Duration:    d.Duration,
		Rating:      d.Rating,
		Cast:        d.Cast,
		Synopsis:    d.Synopsis,
		Price:       d.Price,
		Available:   catalog.AvailableOrDefault(d.Available),
	}
}
