package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/models"
)

// getClients lists client records. The store decides how much each view
// carries: full records under an admin session, id/name pairs otherwise. The
// route is deliberately public — the reduced view is the anonymous surface of
// the portal.
func (h *Handler) getClients(w http.ResponseWriter, r *http.Request) {
	views := h.clientStore.GetClients(r.Context())

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) addClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.NewClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.clientStore.AddClient(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.addClient").Str("id", req.ID).Msg("client creation failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getLoginEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")

	entries, err := h.clientStore.GetLoginEntries(ctx, clientID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLoginEntries").Str("id", clientID).Msg("login entries lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) updateClientProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")

	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		log.Err(err).Str("func", "*Handler.updateClientProfile").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.clientStore.UpdateClientProfile(ctx, clientID, updates); err != nil {
		log.Err(err).Str("func", "*Handler.updateClientProfile").Str("id", clientID).Msg("profile update failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
