// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Levashov

// Package app contains shared application-layer constants used across the
// clientdesk server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoActiveSession is returned when an operation requires a login but
	// the portal currently has no authenticated session.
	MsgNoActiveSession = "no active session"

	// MsgAccessDenied is returned when the current session lacks the admin
	// role required by the requested operation.
	MsgAccessDenied = "access denied"
)
