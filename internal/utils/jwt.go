package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bot-host/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidTokenParams is returned by [GenerateJWTToken] when a required
// parameter is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// TokenParams groups the inputs of [GenerateJWTToken].
type TokenParams struct {
	// Issuer is placed into the "iss" claim.
	Issuer string
	// Audience is placed into the "aud" claim when non-empty.
	Audience string
	// Subject is placed into the "sub" claim.
	Subject string
	// Role is placed into the custom "role" claim.
	Role string
	// Duration is added to the current time to produce the "exp" claim.
	Duration time.Duration
	// SignKey is the HMAC-SHA256 key.
	SignKey []byte
	// Now overrides the issuing time; zero means time.Now().
	Now time.Time
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): the intended consumer, when configured
//   - Subject   (sub): the principal the token is issued for
//   - IssuedAt  (iat): the issuing time
//   - ExpiresAt (exp): the issuing time plus Duration
//   - ID        (jti): a random UUID
//   - role           : the principal's role
//
// Issuer, Subject, Duration and SignKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "bot-host", Subject: "alice", Duration: time.Hour, SignKey: key,
//	})
func GenerateJWTToken(params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Subject == "" || params.Duration <= 0 || len(params.SignKey) == 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   params.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Role: params.Role,
	}
	if params.Audience != "" {
		claims.Audience = jwt.ClaimStrings{params.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(params.SignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided issuer
//   - Audience (aud) claim check when audience is non-empty
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, key, "bot-host", "bot-api")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString string, signKey []byte, issuer, audience string) (models.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if audience != "" {
		options = append(options, jwt.WithAudience(audience))
	}

	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	}, options...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, TokenClaims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], models.TokenTypeBearer) {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
