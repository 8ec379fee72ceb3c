package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the only token type the host hands out.
const TokenTypeBearer = "Bearer"

// TokenClaims is the claim set carried by every bearer token the host signs.
//
// Besides the registered claims (iss, sub, aud, exp, iat, jti) it carries the
// role of the credential the token was exchanged for. Authorization decisions
// downstream of authentication are made on that role only.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is the role of the principal, see [RoleUser] and [RoleAdmin].
	Role string `json:"role,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be placed into an Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// Principal returns the authenticated identity carried by the token.
func (t *Token) Principal() (Principal, error) {
	if t.Subject == "" {
		return Principal{}, errors.New("token has no subject")
	}

	principal := Principal{Subject: t.Subject, Role: t.Role}
	if t.ExpiresAt != nil {
		principal.ExpiresAt = t.ExpiresAt.Time
	}

	return principal, nil
}

// ExpiresIn returns the remaining lifetime of the token relative to now.
// A token without an expiry claim reports zero.
func (t *Token) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}

	left := t.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}

	return left
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenRequest is the body of an explicit exchange request.
type TokenRequest struct {
	Token string `json:"token"`
}

// TokenResponse is returned by the explicit exchange endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
}
