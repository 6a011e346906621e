package handler

import (
	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/handler/http"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/service"
	"github.com/mlevashov/clientdesk/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(clientStore *store.ClientStore, services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(clientStore, services, logger),
	}, nil
}
