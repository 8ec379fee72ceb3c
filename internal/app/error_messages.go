// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-bot-host HTTP and gRPC handlers.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies, gRPC status messages or log entries to describe the
// outcome of an operation. Both transports report the same wording.
package app

const (
	// MsgInvalidCredential is reported when the gate or the explicit exchange
	// endpoint rejected an opaque credential (unknown, revoked or expired).
	MsgInvalidCredential = "invalid credential"

	// MsgIssuerUnavailable is reported when the token issuer is misconfigured
	// or its backing store cannot be reached.
	MsgIssuerUnavailable = "token issuer unavailable"

	// MsgExchangeFailed is reported for any other failed exchange.
	MsgExchangeFailed = "token exchange failed"

	// MsgInvalidToken is reported when a bearer token cannot be verified.
	MsgInvalidToken = "invalid token"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgMissingCredentials is reported when a call carries no credentials.
	MsgMissingCredentials = "authorization metadata is missing"

	// MsgNotBearerToken is reported when the credentials are not of the form
	// "Bearer <token>".
	MsgNotBearerToken = "authorization metadata is not a bearer token"
)
