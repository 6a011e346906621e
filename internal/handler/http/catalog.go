package http

import (
	"net/http"

	"github.com/mlevashov/clientdesk/internal/utils"
)

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	offerings := h.services.CatalogService.ListOfferings(r.Context())

	utils.WriteJSON(w, offerings, http.StatusOK)
}
