package service

import (
	"context"

	"github.com/mlevashov/clientdesk/models"
)

// SessionService mints and verifies the bearer tokens that carry an
// authenticated session across HTTP requests. The tokens are transport
// plumbing only; authorization decisions stay with the client store.
type SessionService interface {
	CreateToken(ctx context.Context, session models.Session) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService serves the read-only services marketplace.
type CatalogService interface {
	ListOfferings(ctx context.Context) []models.ServiceOffering
	FindOffering(ctx context.Context, offeringID string) (models.ServiceOffering, error)
}

// ContactService accepts and lists contact-form submissions.
type ContactService interface {
	SubmitMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// BillingService runs the simulated checkout flow. Invoices start pending and
// are flipped to settled by the settlement worker after a configured delay; no
// payment provider is involved.
type BillingService interface {
	Checkout(ctx context.Context, request models.CheckoutRequest) (models.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (models.Invoice, error)
	ListInvoices(ctx context.Context, clientID string) ([]models.Invoice, error)

	// SettleDue marks every pending invoice older than the settle delay as
	// settled and returns how many were flipped.
	SettleDue(ctx context.Context) int
}
