// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests entering the host before they reach
// storage or the token issuer.
//
// A Validator accepts a value and, optionally, the names of the fields to
// check. Without field names every field of the value is checked. Errors are
// package sentinels, so callers wrap them with their own error kinds.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
