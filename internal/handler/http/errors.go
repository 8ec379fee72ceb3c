// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-bot-host/internal/app"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is reported when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is reported when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoPrincipal is reported by role checks mounted without authentication.
	ErrNoPrincipal = errors.New("no authenticated principal")

	// ErrForbidden is reported when the principal lacks the required role.
	ErrForbidden = errors.New("insufficient role")
)

// Reasons reported in 401 bodies when the token exchange gate failed for the
// request.
const (
	reasonInvalidCredential = app.MsgInvalidCredential
	reasonIssuerUnavailable = app.MsgIssuerUnavailable
	reasonExchangeFailed    = app.MsgExchangeFailed
	reasonInvalidBody       = app.MsgInvalidJSON
)
