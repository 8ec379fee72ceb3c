// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-bot-host/internal/utils"
)

// keyring holds the keys derived from the configured signing secret.
// A keyring built from an empty secret carries the derivation error and
// reports ErrIssuerMisconfigured on every use.
type keyring struct {
	signing []byte
	lookup  []byte
	err     error
}

func newKeyring(secret string) keyring {
	signing, err := utils.DeriveKey(secret, utils.KeyPurposeTokenSigning)
	if err != nil {
		return keyring{err: err}
	}

	lookup, err := utils.DeriveKey(secret, utils.KeyPurposeCredentialLookup)
	if err != nil {
		return keyring{err: err}
	}

	return keyring{signing: signing, lookup: lookup}
}

func (k keyring) signingKey() ([]byte, error) {
	if k.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIssuerMisconfigured, k.err)
	}

	return k.signing, nil
}

// digest returns the storage key of an opaque credential.
func (k keyring) digest(opaqueToken string) (string, error) {
	if k.err != nil {
		return "", fmt.Errorf("%w: %w", ErrIssuerMisconfigured, k.err)
	}

	return utils.HashString(opaqueToken, k.lookup), nil
}
