package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &credentialRepository{
		db:     newPostgresDB(db, l),
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func credentialRows() *sqlmock.Rows {
	return sqlmock.NewRows(credentialColumns)
}

func TestCreateCredential_Success(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	expires := time.Now().Add(time.Hour).UTC()
	credential := models.Credential{
		TokenHash: testHash,
		Subject:   "alice",
		Role:      models.RoleUser,
		ExpiresAt: &expires,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credentials (token_hash,subject,role,created_at,expires_at,revoked_at) VALUES ($1,$2,$3,$4,$5,$6)")).
		WithArgs(testHash, "alice", models.RoleUser, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateCredential(context.Background(), credential)
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Subject)
	assert.False(t, created.CreatedAt.IsZero(), "CreatedAt is filled in")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCredential_UniqueViolation(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec("INSERT INTO credentials").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCredential(context.Background(), models.Credential{TokenHash: testHash})
	assert.ErrorIs(t, err, ErrCredentialAlreadyExists)
}

func TestCreateCredential_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec("INSERT INTO credentials").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateCredential(context.Background(), models.Credential{TokenHash: testHash})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrCredentialAlreadyExists)
}

func TestFindCredential_Success(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	expires := created.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token_hash, subject, role, created_at, expires_at, revoked_at FROM credentials WHERE token_hash = $1")).
		WithArgs(testHash).
		WillReturnRows(credentialRows().AddRow(testHash, "alice", models.RoleAdmin, created, expires, nil))

	found, err := repo.FindCredential(context.Background(), testHash)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Subject)
	assert.Equal(t, models.RoleAdmin, found.Role)
	assert.Equal(t, created, found.CreatedAt)
	require.NotNil(t, found.ExpiresAt)
	assert.Equal(t, expires, *found.ExpiresAt)
	assert.Nil(t, found.RevokedAt)
}

func TestFindCredential_NotFound(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("SELECT token_hash").
		WithArgs(testHash).
		WillReturnRows(credentialRows())

	_, err := repo.FindCredential(context.Background(), testHash)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestFindCredential_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("SELECT token_hash").
		WithArgs(testHash).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT token_hash").
		WithArgs(testHash).
		WillReturnRows(credentialRows().AddRow(testHash, "alice", models.RoleUser, time.Now(), nil, nil))

	found, err := repo.FindCredential(context.Background(), testHash)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Subject)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCredential_GivesUpOnPermanentErrors(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("SELECT token_hash").
		WithArgs(testHash).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindCredential(context.Background(), testHash)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet(), "permanent errors are not retried")
}

func TestFindCredential_StopsRetryingOnCancel(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock.ExpectQuery("SELECT token_hash").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.FindCredential(ctx, testHash)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRevokeCredential(t *testing.T) {
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		result   sql.Result
		err      error
		expected error
	}{
		{"revoked", sqlmock.NewResult(0, 1), nil, nil},
		{"unknown or already revoked", sqlmock.NewResult(0, 0), nil, ErrCredentialNotFound},
		{"db error", nil, errors.New("boom"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCredentialRepo(t)

			exp := mock.ExpectExec(regexp.QuoteMeta("UPDATE credentials SET revoked_at = $1 WHERE token_hash = $2 AND revoked_at IS NULL")).
				WithArgs(at, testHash)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.RevokeCredential(context.Background(), testHash, at)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestDeleteStaleCredentials(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	before := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credentials WHERE (expires_at < $1 OR revoked_at < $2)")).
		WithArgs(before, before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteStaleCredentials(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestDeleteStaleCredentials_Error(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec("DELETE FROM credentials").
		WillReturnError(errors.New("boom"))

	_, err := repo.DeleteStaleCredentials(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
