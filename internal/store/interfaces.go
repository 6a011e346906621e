package store

import (
	"context"

	"github.com/mlevashov/clientdesk/models"
)

// Persistence is the durable key/value surface behind the client store. One
// opaque blob — the full serialized portal state — lives under a fixed key.
//
// The store treats persistence as best-effort: Save errors are swallowed so
// that a storage fault never prevents an in-memory operation from completing.
type Persistence interface {
	// Load returns the previously saved portal state, or ErrStateNotFound
	// when nothing has been saved yet.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the saved portal state with data.
	Save(ctx context.Context, data []byte) error
}

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	SaveMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// ErrorClassificator translates driver-specific SQL errors into portable
// conditions the repositories can branch on.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
}
