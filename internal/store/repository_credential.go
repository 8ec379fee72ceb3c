package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/models"
)

const (
	maxRetries = 3
	retryDelay = 50 * time.Millisecond
)

// credentialRepository is the SQL implementation of [CredentialRepository].
// It works on both PostgreSQL and SQLite; the dialect only changes the
// placeholder format and the error classifier.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCredential persists a new credential. CreatedAt is set to the current
// time when zero.
//
// Error handling:
//   - unique violation on token_hash → [ErrCredentialAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContextOr(ctx, r.logger)

	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertCredentialQuery(r.db.builder(), credential)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Credential{}, ErrCredentialAlreadyExists
		}
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return credential, nil
}

// FindCredential looks a credential up by digest. Transient driver errors are
// retried.
func (r *credentialRepository) FindCredential(ctx context.Context, tokenHash string) (models.Credential, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectCredentialQuery(r.db.builder(), tokenHash)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.Credential
	err = r.withRetry(ctx, func() error {
		var expiresAt, revokedAt sql.NullTime
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Scan(
			&credential.TokenHash,
			&credential.Subject,
			&credential.Role,
			&credential.CreatedAt,
			&expiresAt,
			&revokedAt,
		); err != nil {
			return err
		}

		credential.ExpiresAt = nullTimePtr(expiresAt)
		credential.RevokedAt = nullTimePtr(revokedAt)
		return nil
	})

	switch {
	case err == nil:
		return credential, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrCredentialNotFound
	default:
		log.Err(err).Str("func", "*credentialRepository.FindCredential").Msg("error selecting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// RevokeCredential sets revoked_at on an active credential.
func (r *credentialRepository) RevokeCredential(ctx context.Context, tokenHash string, at time.Time) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildRevokeCredentialQuery(r.db.builder(), tokenHash, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.RevokeCredential").Msg("error revoking credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// DeleteStaleCredentials removes credentials that expired or were revoked
// before the given time.
func (r *credentialRepository) DeleteStaleCredentials(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildDeleteStaleCredentialsQuery(r.db.builder(), before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		deleted, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteStaleCredentials").Msg("error deleting stale credentials")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

// withRetry runs op up to maxRetries times while the classifier reports the
// error as retryable.
func (r *credentialRepository) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = op()
		if err == nil || r.db.errorClassificator.Classify(err) != Retryable || attempt == maxRetries {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(retryDelay * time.Duration(attempt)):
		}
	}

	return err
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time
	return &v
}
