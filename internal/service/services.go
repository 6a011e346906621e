package service

import (
	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/store"
)

type Services struct {
	SessionService SessionService
	CatalogService CatalogService
	ContactService ContactService
	BillingService BillingService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	catalogService, err := NewCatalogService(cfg.Catalog, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SessionService: NewSessionService(cfg.Auth, logger),
		CatalogService: catalogService,
		ContactService: NewContactService(storages.ContactRepository, logger),
		BillingService: NewBillingService(catalogService, cfg.Billing, logger),
	}, nil
}
