package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/models"
)

// sessionService is the concrete implementation of SessionService. It signs
// session tokens with HMAC-SHA256 using parameters from the Auth config
// section.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(cfg config.Auth, logger *logger.Logger) SessionService {
	return &sessionService{
		tokenSignKey:  cfg.SessionSignKey,
		tokenIssuer:   cfg.SessionIssuer,
		tokenDuration: cfg.SessionDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for the given session.
//
// The token is signed with the configured sign key, carries the configured
// issuer as the "iss" claim, and expires after the configured duration.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (s *sessionService) CreateToken(ctx context.Context, session models.Session) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, session.ID, session.Name, session.Role, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (s *sessionService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
