package workers

import (
	"context"
	"time"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/service"
)

// defaultSweepInterval is used when the billing config leaves the sweep
// interval unset.
const defaultSweepInterval = 5 * time.Second

// settlementWorker periodically asks the billing service to settle aged
// pending invoices. It is the only moving part of the simulated payment flow.
type settlementWorker struct {
	billingService service.BillingService
	sweepInterval  time.Duration
	logger         *logger.Logger

	ctx context.Context
}

// NewSettlementWorker constructs a settlement worker bound to ctx. The worker
// exits when ctx is cancelled.
func NewSettlementWorker(ctx context.Context, billingService service.BillingService, cfg config.Billing, log *logger.Logger) Worker {
	sweepInterval := cfg.SweepInterval
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}

	return &settlementWorker{
		billingService: billingService,
		sweepInterval:  sweepInterval,
		logger:         log,
		ctx:            ctx,
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately.
func (w *settlementWorker) Run() {
	go w.sweep()
}

func (w *settlementWorker) sweep() {
	w.logger.Info().Dur("interval", w.sweepInterval).Msg("settlement worker started")

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Msg("settlement worker stopped")
			return
		case <-ticker.C:
			if settled := w.billingService.SettleDue(w.ctx); settled > 0 {
				w.logger.Debug().Int("settled", settled).Msg("settlement sweep completed")
			}
		}
	}
}
