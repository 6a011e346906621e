package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName      = errors.New("name is required")
	ErrEmptyEmail     = errors.New("email is required")
	ErrMalformedEmail = errors.New("malformed email")
	ErrEmptyBody      = errors.New("body is required")
)
