// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Roles known to the host.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Principal is the authenticated caller, built from a validated bearer token.
type Principal struct {
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// HasRole reports whether the principal was granted role.
// Admins implicitly hold every role.
func (p Principal) HasRole(role string) bool {
	return p.Role == role || p.Role == RoleAdmin
}

// IsKnownRole reports whether role is one the host can grant.
func IsKnownRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
