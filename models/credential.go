package models

import "time"

// Credential is a stored opaque credential.
//
// Only the keyed digest of the opaque value is persisted; the value itself is
// shown once, at minting time, through [IssuedCredential].
type Credential struct {
	TokenHash string     `json:"-"`
	Subject   string     `json:"subject"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// IsActive reports whether the credential can still be exchanged at now.
func (c Credential) IsActive(now time.Time) bool {
	if c.RevokedAt != nil {
		return false
	}

	return c.ExpiresAt == nil || now.Before(*c.ExpiresAt)
}

// CredentialRequest is the body of a mint request.
type CredentialRequest struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
	// ExpiresIn is the credential lifetime in seconds; zero means no expiry.
	ExpiresIn int64 `json:"expires_in"`
}

// IssuedCredential is returned exactly once, when a credential is minted.
type IssuedCredential struct {
	Token     string     `json:"token"`
	Subject   string     `json:"subject"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
