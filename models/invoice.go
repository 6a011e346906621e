package models

import "time"

// InvoiceStatus is the lifecycle state of a simulated checkout.
type InvoiceStatus string

const (
	// InvoiceStatusPending marks an invoice created by checkout and not yet
	// picked up by the settlement worker.
	InvoiceStatusPending InvoiceStatus = "pending"

	// InvoiceStatusSettled marks an invoice the settlement worker has
	// completed. Settlement is simulated; no payment provider is involved.
	InvoiceStatusSettled InvoiceStatus = "settled"
)

// Invoice is the record produced by the simulated billing flow.
type Invoice struct {
	ID         string        `json:"id"`
	ClientID   string        `json:"client_id"`
	OfferingID string        `json:"offering_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	SettledAt  *time.Time    `json:"settled_at,omitempty"`
}

// CheckoutRequest is the payload accepted by the billing checkout endpoint.
type CheckoutRequest struct {
	ClientID   string `json:"client_id"`
	OfferingID string `json:"offering_id"`
	Amount     int64  `json:"amount"`
}
