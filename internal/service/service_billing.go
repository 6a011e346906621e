package service

import (
	"context"
	"sync"
	"time"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/models"
)

// defaultSettleDelay is used when the billing config leaves the delay unset.
const defaultSettleDelay = 30 * time.Second

// billingService is the concrete implementation of BillingService. Invoices
// live in process memory; the ledger is a simulation aid for the client
// portal, not an accounting system.
type billingService struct {
	catalogService CatalogService
	idGenerator    *utils.UUIDGenerator
	settleDelay    time.Duration
	logger         *logger.Logger

	mu       sync.RWMutex
	invoices map[string]*models.Invoice
	order    []string

	now func() time.Time
}

// NewBillingService constructs a BillingService. Checkout amounts default to
// the catalog list price, so the service needs the catalog to resolve
// offerings.
func NewBillingService(catalogService CatalogService, cfg config.Billing, logger *logger.Logger) BillingService {
	settleDelay := cfg.SettleDelay
	if settleDelay <= 0 {
		settleDelay = defaultSettleDelay
	}

	return &billingService{
		catalogService: catalogService,
		idGenerator:    utils.NewUUIDGenerator(),
		settleDelay:    settleDelay,
		logger:         logger,
		invoices:       make(map[string]*models.Invoice),
		now:            time.Now,
	}
}

// Checkout creates a pending invoice for the given client and offering.
//
// The offering must exist in the catalog. A zero amount falls back to the
// offering's list price; a negative amount is rejected.
//
// Returns the created invoice or:
//   - ErrInvalidDataProvided if the client id is empty or the amount is
//     negative.
//   - ErrUnknownOffering if the offering id is not in the catalog.
func (b *billingService) Checkout(ctx context.Context, request models.CheckoutRequest) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	if request.ClientID == "" || request.Amount < 0 {
		log.Error().Str("func", "*billingService.Checkout").Msg("invalid checkout request provided")
		return models.Invoice{}, ErrInvalidDataProvided
	}

	offering, err := b.catalogService.FindOffering(ctx, request.OfferingID)
	if err != nil {
		return models.Invoice{}, err
	}

	amount := request.Amount
	if amount == 0 {
		amount = offering.Price
	}

	invoice := &models.Invoice{
		ID:         b.idGenerator.Generate(),
		ClientID:   request.ClientID,
		OfferingID: offering.ID,
		Amount:     amount,
		Status:     models.InvoiceStatusPending,
		CreatedAt:  b.now(),
	}

	b.mu.Lock()
	b.invoices[invoice.ID] = invoice
	b.order = append(b.order, invoice.ID)
	b.mu.Unlock()

	log.Info().Str("invoice", invoice.ID).Str("client", invoice.ClientID).Int64("amount", amount).Msg("invoice created")
	return *invoice, nil
}

// GetInvoice looks an invoice up by id. Returns ErrInvoiceNotFound when no
// invoice with that id exists.
func (b *billingService) GetInvoice(ctx context.Context, invoiceID string) (models.Invoice, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	invoice, ok := b.invoices[invoiceID]
	if !ok {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	return *invoice, nil
}

// ListInvoices returns the invoices of one client in creation order. An empty
// clientID lists the whole ledger.
func (b *billingService) ListInvoices(ctx context.Context, clientID string) ([]models.Invoice, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	invoices := make([]models.Invoice, 0, len(b.order))
	for _, id := range b.order {
		invoice := b.invoices[id]
		if clientID != "" && invoice.ClientID != clientID {
			continue
		}
		invoices = append(invoices, *invoice)
	}
	return invoices, nil
}

// SettleDue flips every pending invoice older than the settle delay to
// settled and returns how many were flipped. Called periodically by the
// settlement worker.
func (b *billingService) SettleDue(ctx context.Context) int {
	now := b.now()
	due := now.Add(-b.settleDelay)

	b.mu.Lock()
	defer b.mu.Unlock()

	settled := 0
	for _, id := range b.order {
		invoice := b.invoices[id]
		if invoice.Status != models.InvoiceStatusPending || invoice.CreatedAt.After(due) {
			continue
		}
		settledAt := now
		invoice.Status = models.InvoiceStatusSettled
		invoice.SettledAt = &settledAt
		settled++
	}

	if settled > 0 {
		b.logger.Info().Int("settled", settled).Msg("invoices settled")
	}
	return settled
}
