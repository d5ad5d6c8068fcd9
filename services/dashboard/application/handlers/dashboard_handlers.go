package handlers

import (
	"net/http"

	"github.com/ghuser/biblioteca/pkg/errhttp"
	"github.com/ghuser/biblioteca/pkg/httpx"
	appsvcs "github.com/ghuser/biblioteca/services/dashboard/application/services"
)

type DashboardHandlers struct {
	svc *appsvcs.Services
}

func NewDashboardHandlers(svc *appsvcs.Services) *DashboardHandlers {
	return &DashboardHandlers{svc: svc}
}

// Stats godoc
//
//	@Summary	Totals across every catalog
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	appsvcs.StatsDTO
//	@Router		/dashboard/stats [get]
func (h *DashboardHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Dashboard.Stats(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
