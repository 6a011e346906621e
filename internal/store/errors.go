package store

import "errors"

// Sentinel errors returned by the client store to signal well-known rejection
// conditions. Callers should use [errors.Is] to match against these values.
// None of them are retried internally and none are fatal to the process.
var (
	// ErrInvalidLoginPayload is returned by Login when the payload is missing
	// the required id or name.
	ErrInvalidLoginPayload = errors.New("invalid login payload")

	// ErrPasswordRequired is returned by Login when the target client is
	// password-protected and the payload carries no password.
	ErrPasswordRequired = errors.New("password required")

	// ErrInvalidCredentials is returned by Login when the encoded password
	// does not match the stored credential.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned by privileged operations when there is no
	// active session or the session does not carry the admin role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidClient is returned by AddClient when the new client is
	// missing the required id or name.
	ErrInvalidClient = errors.New("invalid client")

	// ErrClientAlreadyExists is returned by AddClient on an id collision.
	ErrClientAlreadyExists = errors.New("client already exists")

	// ErrClientNotFound is returned when an operation targets an id with no
	// stored client record.
	ErrClientNotFound = errors.New("client not found")
)

// Persistence and repository errors.
var (
	// ErrStateNotFound is returned by Persistence.Load when no portal state
	// has been saved yet. The store treats it as an empty record set.
	ErrStateNotFound = errors.New("portal state not found")

	// ErrContactAlreadyExists is returned when a contact message insert
	// collides with an existing message id.
	ErrContactAlreadyExists = errors.New("contact message already exists")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
