// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Token signing settings are not checked here; an incomplete issuer
// configuration is reported by every exchange attempt instead.
//
// Returns nil if the configuration is valid, or a joined error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, ErrNoServerAddress)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.App.IssuerURL != "" {
		u, err := url.Parse(cfg.App.IssuerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ErrInvalidIssuerURL)
		}
	}

	if cfg.App.TokenDuration < 0 || cfg.App.ExchangeTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		errs = append(errs, ErrNegativeDuration)
	}

	if cfg.Workers.CleanupInterval < 0 || cfg.Workers.Retention < 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}
