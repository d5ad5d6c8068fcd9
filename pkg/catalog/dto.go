package catalog

// ItemDTO is the transfer shape of the common item fields. Type-specific DTOs
// embed it so the fields flatten into one JSON object.
type ItemDTO struct {
	ID              int64     `json:"id,omitempty"`
	Title           string    `json:"titulo"         validate:"notblank,max=200"`
	Author          string    `json:"autor"          validate:"notblank,max=150"`
	PublicationYear int       `json:"anoPublicacion" validate:"gte=1000"`
	Description     string    `json:"descripcion"    validate:"max=500"`
	Available       *bool     `json:"disponible"`
	Kind            Kind      `json:"tipo,omitempty"`
	CreatedAt       Timestamp `json:"fechaCreacion"`
	UpdatedAt       Timestamp `json:"fechaActualizacion"`
}

// ItemToDTO projects the common fields of a stored item.
func ItemToDTO(it Item) ItemDTO {
	available := it.Available
	return ItemDTO{
		ID:              it.ID,
		Title:           it.Title,
		Author:          it.Author,
		PublicationYear: it.PublicationYear,
		Description:     it.Description,
		Available:       &available,
		Kind:            it.Kind,
		CreatedAt:       NewTimestamp(it.CreatedAt),
		UpdatedAt:       NewTimestamp(it.UpdatedAt),
	}
}

// ItemFromDTO copies the client-writable common fields. Server-managed fields
// (id, timestamps) are left zero and kind is forced to the catalog's own.
func ItemFromDTO(d ItemDTO, kind Kind) Item {
	return Item{
		Title:           d.Title,
		Author:          d.Author,
		PublicationYear: d.PublicationYear,
		Description:     d.Description,
		Available:       AvailableOrDefault(d.Available),
		Kind:            kind,
	}
}

// AvailableOrDefault treats an absent availability flag as available.
func AvailableOrDefault(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}
