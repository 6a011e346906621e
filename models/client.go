package models

import "time"

// Role values recognised by the access checks. Role is a free-form string at
// the storage level; only RoleAdmin grants elevated privileges.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Client represents one registered identity of the agency portal — either an
// administrator or a regular client. Sensitive fields (PasswordHash, Profile,
// LoginEntries, Meta) must never cross the non-admin visibility boundary.
type Client struct {
	// ID is the opaque unique identifier of the client, caller-supplied at
	// creation time and immutable once stored.
	ID string `json:"id"`

	// Name is the display name of the client. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Role is either "admin" or "client". Defaults to "client" when left
	// empty at creation.
	Role string `json:"role"`

	// PasswordHash holds the encoded password, or nil when the client has no
	// password protection. The encoding is the deliberately reversible
	// transform applied by the store — it is NOT a cryptographic hash.
	PasswordHash *string `json:"passwordHash"`

	// Profile is an open, schema-less bag of client attributes. Admin-only.
	Profile map[string]any `json:"profile"`

	// LoginEntries is the append-only login history of this client.
	// Admin-only; entries are never removed or reordered.
	LoginEntries []LoginEntry `json:"loginEntries"`

	// Meta is an open caller-supplied bag, opaque to the store.
	Meta map[string]any `json:"meta"`
}

// LoginEntry is a single record of the append-only login history.
type LoginEntry struct {
	// Time is the moment the login completed.
	Time time.Time `json:"time"`

	// By is the display name supplied in the login payload — which may differ
	// from the stored client name; the store preserves that asymmetry.
	By string `json:"by"`

	// Note is an optional caller-supplied annotation; nil when omitted.
	Note *string `json:"note"`
}

// ClientView is the visibility-filtered projection of a Client returned by
// listing operations. For non-admin callers only ID and Name are populated;
// every other field is zero and omitted from JSON output.
type ClientView struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Role         string         `json:"role,omitempty"`
	PasswordHash *string        `json:"passwordHash,omitempty"`
	Profile      map[string]any `json:"profile,omitempty"`
	LoginEntries []LoginEntry   `json:"loginEntries,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
}

// Session is the identity of the currently authenticated client. It lives only
// in memory: it is never persisted and every process restart begins without an
// active session.
type Session struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// LoginRequest is the payload accepted by the login operation.
//
// For an existing client the stored record wins: Name and Role from the
// payload do not rename or re-role the account, though Name is still recorded
// as the "by" field of the appended login entry.
type LoginRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role,omitempty"`
	Password string  `json:"password,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// NewClientRequest is the payload accepted by the admin-only client creation
// operation. Unsupplied collections default to empty rather than nil so that
// the persisted JSON shape stays stable.
type NewClientRequest struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Role         string         `json:"role,omitempty"`
	Password     string         `json:"password,omitempty"`
	Profile      map[string]any `json:"profile,omitempty"`
	LoginEntries []LoginEntry   `json:"loginEntries,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
}
