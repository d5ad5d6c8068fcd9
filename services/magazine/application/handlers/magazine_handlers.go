package handlers

import (
	"net/http"

	"github.com/ghuser/biblioteca/pkg/catalogapi"
	appsvcs "github.com/ghuser/biblioteca/services/magazine/application/services"
)

// MagazineHandlers serves the magazine-only lookups.
type MagazineHandlers struct {
	svc  *appsvcs.Services
	crud *catalogapi.Handlers[appsvcs.MagazineDTO]
}

func NewMagazineHandlers(svc *appsvcs.Services) *MagazineHandlers {
	return &MagazineHandlers{svc: svc, crud: newCRUD(svc)}
}

// ByCategory godoc
//
//	@Summary	Magazines by category
//	@Tags		revistas
//	@Produce	json
//	@Param		categoria	query	string	true	"Category substring"
//	@Success	200			{array}	appsvcs.MagazineDTO
//	@Router		/revistas/categoria [get]
func (h *MagazineHandlers) ByCategory(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("categoria", true, h.svc.Magazine.FindByCategory)(w, r)
}

// ByFrequency godoc
//
//	@Summary	Magazines by frequency
//	@Tags		revistas
//	@Produce	json
//	@Param		periodicidad	query	string	true	"Frequency substring"
//	@Success	200				{array}	appsvcs.MagazineDTO
//	@Router		/revistas/periodicidad [get]
func (h *MagazineHandlers) ByFrequency(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("periodicidad", true, h.svc.Magazine.FindByFrequency)(w, r)
}

// ByPublisher godoc
//
//	@Summary	Magazines by publisher
//	@Tags		revistas
//	@Produce	json
//	@Param		editorial	query	string	true	"Publisher substring"
//	@Success	200			{array}	appsvcs.MagazineDTO
//	@Router		/revistas/editorial [get]
func (h *MagazineHandlers) ByPublisher(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("editorial", true, h.svc.Magazine.FindByPublisher)(w, r)
}

// ByAuthor godoc
//
//	@Summary	Magazines by author
//	@Tags		revistas
//	@Produce	json
//	@Param		autor	query	string	true	"Author substring"
//	@Success	200		{array}	appsvcs.MagazineDTO
//	@Router		/revistas/autor [get]
func (h *MagazineHandlers) ByAuthor(w http.ResponseWriter, r *http.Request) {
	catalogapi.ByQuery("autor", true, h.svc.Magazine.FindByAuthor)(w, r)
}

// Categories godoc
//
//	@Summary	Magazine categories
//	@Tags		revistas
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/revistas/categorias [get]
func (h *MagazineHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	catalogapi.ListOf(h.svc.Magazine.Categories)(w, r)
}
