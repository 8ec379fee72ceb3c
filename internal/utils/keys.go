// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Key purposes used with [DeriveKey]. Each purpose yields an independent key
// from the same configured secret.
const (
	KeyPurposeTokenSigning     = "go-bot-host/token-signing"
	KeyPurposeCredentialLookup = "go-bot-host/credential-lookup"
)

// DerivedKeySize is the size of keys produced by [DeriveKey].
const DerivedKeySize = 32

// ErrEmptySecret is returned by [DeriveKey] when no secret is configured.
var ErrEmptySecret = errors.New("empty secret")

// DeriveKey expands secret into a DerivedKeySize key bound to purpose using
// HKDF-SHA256.
func DeriveKey(secret, purpose string) ([]byte, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(purpose))
	key := make([]byte, DerivedKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("error deriving key for %q: %w", purpose, err)
	}

	return key, nil
}
