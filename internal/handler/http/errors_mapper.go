package http

import (
	"errors"
	"net/http"

	"github.com/mlevashov/clientdesk/internal/app"
	"github.com/mlevashov/clientdesk/internal/service"
	"github.com/mlevashov/clientdesk/internal/store"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/models"
)

var errorStatusMap = map[error]int{
	store.ErrInvalidLoginPayload: http.StatusBadRequest,
	store.ErrPasswordRequired:    http.StatusUnauthorized,
	store.ErrInvalidCredentials:  http.StatusUnauthorized,
	store.ErrUnauthorized:        http.StatusForbidden,
	store.ErrInvalidClient:       http.StatusBadRequest,
	store.ErrClientAlreadyExists: http.StatusConflict,
	store.ErrClientNotFound:      http.StatusNotFound,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnknownOffering:         http.StatusBadRequest,
	service.ErrInvoiceNotFound:         http.StatusNotFound,

	store.ErrContactAlreadyExists: http.StatusConflict,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and sends a JSON error body. Internal
// errors are masked with a generic message so that storage details never leak
// to API clients.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
