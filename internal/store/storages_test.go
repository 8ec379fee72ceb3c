package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStorages_SQLiteRoundTrip runs the credential repository against a real
// SQLite file migrated with the embedded schema.
func TestStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "bot.db")

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	assert.Equal(t, DialectSQLite, storages.DB.Dialect())

	repo := storages.CredentialRepository
	now := time.Now().UTC().Truncate(time.Second)
	expired := now.Add(-48 * time.Hour)

	_, err = repo.CreateCredential(ctx, models.Credential{
		TokenHash: "active",
		Subject:   "alice",
		Role:      models.RoleAdmin,
		CreatedAt: now,
	})
	require.NoError(t, err)

	_, err = repo.CreateCredential(ctx, models.Credential{
		TokenHash: "expired",
		Subject:   "bob",
		Role:      models.RoleUser,
		CreatedAt: expired,
		ExpiresAt: &expired,
	})
	require.NoError(t, err)

	_, err = repo.CreateCredential(ctx, models.Credential{TokenHash: "active", Subject: "mallory", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrCredentialAlreadyExists)

	found, err := repo.FindCredential(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Subject)
	assert.Nil(t, found.ExpiresAt)
	assert.True(t, found.IsActive(now))

	_, err = repo.FindCredential(ctx, "missing")
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	require.NoError(t, repo.RevokeCredential(ctx, "active", now))
	assert.ErrorIs(t, repo.RevokeCredential(ctx, "active", now), ErrCredentialNotFound, "second revoke finds nothing active")

	revoked, err := repo.FindCredential(ctx, "active")
	require.NoError(t, err)
	require.NotNil(t, revoked.RevokedAt)
	assert.False(t, revoked.IsActive(now))

	deleted, err := repo.DeleteStaleCredentials(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted, "only the credential expired two days ago is stale")

	_, err = repo.FindCredential(ctx, "expired")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyDSN)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
