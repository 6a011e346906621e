package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/models"
)

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.checkout").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The checkout runs on behalf of the token's identity.
	if session, ok := utils.GetSessionFromContext(ctx); ok && req.ClientID == "" {
		req.ClientID = session.ID
	}

	invoice, err := h.services.BillingService.Checkout(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.checkout").Str("client", req.ClientID).Msg("checkout failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, invoice, http.StatusCreated)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	invoiceID := chi.URLParam(r, "invoiceID")

	invoice, err := h.services.BillingService.GetInvoice(ctx, invoiceID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getInvoice").Str("invoice", invoiceID).Msg("invoice lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, invoice, http.StatusOK)
}
