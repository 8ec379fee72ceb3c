package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySubject       = errors.New("subject is required")
	ErrSubjectTooLong     = errors.New("subject is too long")
	ErrUnknownRole        = errors.New("unknown role")
	ErrNegativeExpiry     = errors.New("expires_in cannot be negative")
	ErrExpiryTooLarge     = errors.New("expires_in exceeds the maximum lifetime")
	ErrInvalidOpaqueToken = errors.New("token must be a 32 character opaque credential")
)
