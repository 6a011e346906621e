package http

import (
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/service"
	"github.com/mlevashov/clientdesk/internal/store"
)

type Handler struct {
	clientStore *store.ClientStore
	services    *service.Services

	logger *logger.Logger
}

func NewHandler(clientStore *store.ClientStore, services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		clientStore: clientStore,
		services:    services,
		logger:      logger,
	}
}
