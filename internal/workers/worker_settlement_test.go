package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/models"
)

// countingBillingService stubs the billing service and counts settle sweeps.
type countingBillingService struct {
	sweeps atomic.Int64
}

func (c *countingBillingService) Checkout(ctx context.Context, request models.CheckoutRequest) (models.Invoice, error) {
	return models.Invoice{}, nil
}

func (c *countingBillingService) GetInvoice(ctx context.Context, invoiceID string) (models.Invoice, error) {
	return models.Invoice{}, nil
}

func (c *countingBillingService) ListInvoices(ctx context.Context, clientID string) ([]models.Invoice, error) {
	return nil, nil
}

func (c *countingBillingService) SettleDue(ctx context.Context) int {
	c.sweeps.Add(1)
	return 1
}

func TestSettlementWorker_SweepsUntilCancelled(t *testing.T) {
	billing := &countingBillingService{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := NewSettlementWorker(ctx, billing, config.Billing{SweepInterval: 5 * time.Millisecond}, logger.Nop())
	worker.Run()

	require.Eventually(t, func() bool {
		return billing.sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond, "worker never swept")

	cancel()
	time.Sleep(20 * time.Millisecond)
	settled := billing.sweeps.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, billing.sweeps.Load(), "worker kept sweeping after cancel")
}

func TestNewSettlementWorker_DefaultInterval(t *testing.T) {
	worker := NewSettlementWorker(context.Background(), &countingBillingService{}, config.Billing{}, logger.Nop())

	w, ok := worker.(*settlementWorker)
	require.True(t, ok)
	assert.Equal(t, defaultSweepInterval, w.sweepInterval)
}
