package workers

import (
	"context"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker of the application. Workers
// stop when ctx is cancelled.
func NewWorkers(ctx context.Context, services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSettlementWorker(ctx, services.BillingService, cfg.Billing, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
