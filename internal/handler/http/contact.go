package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/models"
)

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var message models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		log.Err(err).Str("func", "*Handler.submitContact").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.ContactService.SubmitMessage(ctx, message)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitContact").Msg("contact submission failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}
