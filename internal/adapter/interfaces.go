// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Levashov

// Package adapter provides transport-layer abstractions for communicating
// with the clientdesk server.
//
// The primary abstraction is [PortalAdapter], which decouples the admin
// console from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPortalAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mlevashov/clientdesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// PortalAdapter defines transport-agnostic communication with the clientdesk
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type PortalAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates against the server. On success it stores the
	// returned bearer token via SetToken and returns the login response with
	// the established session identity.
	Login(ctx context.Context, payload models.LoginRequest) (models.LoginResponse, error)

	// Logout clears the server-side session and drops the stored token.
	Logout(ctx context.Context) error

	// Clients lists client records. The level of detail depends on the
	// server-side session: full records for admins, id/name pairs otherwise.
	Clients(ctx context.Context) ([]models.ClientView, error)

	// AddClient creates a new client record. Requires an admin session.
	AddClient(ctx context.Context, req models.NewClientRequest) error

	// LoginEntries fetches the login history of one client. Requires an admin
	// session.
	LoginEntries(ctx context.Context, clientID string) ([]models.LoginEntry, error)

	// UpdateClientProfile shallow-merges updates into the client's profile.
	// Requires an admin session.
	UpdateClientProfile(ctx context.Context, clientID string, updates map[string]any) error
}
