package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT claim set minted for an authenticated portal
// session. The registered "sub" claim carries the client id; Role mirrors the
// role of the stored client record at login time.
type SessionClaims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`

	// Name is the display name of the session identity.
	Name string `json:"name,omitempty"`
}

// Token wraps a JWT session token with convenience accessors used by the
// transport layer.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header. ClientID and Role are
// cached copies of the corresponding claims, populated during generation or
// validation so that callers do not re-parse the claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON because only the compact form is meaningful outside
	// the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ClientID is the client identifier extracted from the "sub" claim.
	ClientID string `json:"-"`

	// Role is the role claim carried by the token.
	Role string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
