package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.clientStore.Login(ctx, payload); err != nil {
		log.Err(err).Str("id", payload.ID).Msg("login failed")
		writeError(w, err)
		return
	}

	// Login never leaves the store without a session; the identity comes from
	// the stored record, which is why the payload is not used here.
	session := h.clientStore.Session()
	if session == nil {
		log.Error().Msg("no session after successful login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, err := h.services.SessionService.CreateToken(ctx, *session)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("id", session.ID).Str("role", session.Role).Msg("client successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, Session: *session}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	h.clientStore.Logout()

	log.Debug().Msg("session cleared")
	w.WriteHeader(http.StatusNoContent)
}
