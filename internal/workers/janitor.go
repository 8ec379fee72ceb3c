// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/service"
)

// CredentialJanitor periodically deletes credentials that expired or were
// revoked more than the retention window ago.
type CredentialJanitor struct {
	credentials service.CredentialService
	observer    PurgeObserver

	interval  time.Duration
	retention time.Duration

	logger *logger.Logger
}

// NewCredentialJanitor returns a janitor purging through credentials. observer
// may be nil.
func NewCredentialJanitor(credentials service.CredentialService, observer PurgeObserver, cfg config.Workers, logger *logger.Logger) *CredentialJanitor {
	return &CredentialJanitor{
		credentials: credentials,
		observer:    observer,
		interval:    cfg.CleanupInterval,
		retention:   cfg.Retention,
		logger:      logger,
	}
}

// Run purges once immediately and then on every tick until ctx is done.
func (j *CredentialJanitor) Run(ctx context.Context) {
	j.logger.Info().
		Dur("interval", j.interval).
		Dur("retention", j.retention).
		Msg("credential janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.purge(ctx)

		select {
		case <-ctx.Done():
			j.logger.Info().Msg("credential janitor stopped")
			return
		case <-ticker.C:
		}
	}
}

func (j *CredentialJanitor) purge(ctx context.Context) {
	purged, err := j.credentials.PurgeStale(ctx, j.retention)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Msg("error purging stale credentials")
		}
		return
	}

	if j.observer != nil {
		j.observer.ObservePurge(purged)
	}
	if purged > 0 {
		j.logger.Info().Int64("purged", purged).Msg("stale credentials purged")
	}
}
