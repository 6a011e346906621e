package validators

import (
	"context"
	"strings"

	"github.com/mlevashov/clientdesk/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldBody  = "body"
)

type ContactValidator struct {
}

func NewContactValidator() Validator {
	return &ContactValidator{}
}

func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactMessage:
		return v.validateContactMessage(ctx, value, fields...)
	case *models.ContactMessage:
		return v.validateContactMessage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateContactMessage(_ context.Context, message models.ContactMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(message.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			email := strings.TrimSpace(message.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if !strings.Contains(email, "@") {
				return ErrMalformedEmail
			}
		case FieldBody:
			if strings.TrimSpace(message.Body) == "" {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
