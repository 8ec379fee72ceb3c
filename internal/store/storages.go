package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
)

// Storages groups the repositories backed by one database connection.
type Storages struct {
	DB                   *DB
	CredentialRepository CredentialRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to storage: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Str("dialect", db.Dialect()).Msg("storage migrated")

	return &Storages{
		DB:                   db,
		CredentialRepository: NewCredentialRepository(db, log),
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}

	return s.DB.Close()
}
