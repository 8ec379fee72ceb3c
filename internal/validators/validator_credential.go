package validators

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-bot-host/internal/utils"
	"github.com/MKhiriev/go-bot-host/models"
)

const (
	FieldSubject   = "subject"
	FieldRole      = "role"
	FieldExpiresIn = "expires_in"
	FieldToken     = "token"
)

// MaxSubjectLength bounds the subject of a credential, in characters.
const MaxSubjectLength = 128

// MaxExpiresIn is the longest lifetime, in seconds, that still fits a
// time.Duration.
const MaxExpiresIn = int64(math.MaxInt64 / time.Second)

// CredentialValidator validates credential mint requests and explicit token
// exchange requests.
type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialRequest:
		return v.validateCredentialRequest(ctx, value, fields...)
	case *models.CredentialRequest:
		return v.validateCredentialRequest(ctx, *value, fields...)

	case models.TokenRequest:
		return v.validateTokenRequest(ctx, value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentialRequest treats an empty role as valid: the service
// defaults it.
func (v *CredentialValidator) validateCredentialRequest(_ context.Context, request models.CredentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubject, FieldRole, FieldExpiresIn}
	}

	for _, f := range fields {
		switch f {
		case FieldSubject:
			subject := strings.TrimSpace(request.Subject)
			if subject == "" {
				return ErrEmptySubject
			}
			if utf8.RuneCountInString(subject) > MaxSubjectLength {
				return ErrSubjectTooLong
			}
		case FieldRole:
			if request.Role != "" && !models.IsKnownRole(request.Role) {
				return ErrUnknownRole
			}
		case FieldExpiresIn:
			if request.ExpiresIn < 0 {
				return ErrNegativeExpiry
			}
			if request.ExpiresIn > MaxExpiresIn {
				return ErrExpiryTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateTokenRequest(_ context.Context, request models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if len(request.Token) != utils.OpaqueTokenLength {
				return ErrInvalidOpaqueToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
