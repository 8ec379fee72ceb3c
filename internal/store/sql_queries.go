package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bot-host/models"
)

const credentialsTable = "credentials"

var credentialColumns = []string{
	"token_hash",
	"subject",
	"role",
	"created_at",
	"expires_at",
	"revoked_at",
}

func buildInsertCredentialQuery(b sq.StatementBuilderType, credential models.Credential) (string, []any, error) {
	return b.Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(
			credential.TokenHash,
			credential.Subject,
			credential.Role,
			credential.CreatedAt,
			credential.ExpiresAt,
			credential.RevokedAt,
		).
		ToSql()
}

func buildSelectCredentialQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return b.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

// buildRevokeCredentialQuery only touches credentials that are not revoked
// yet, so the first revocation time is kept.
func buildRevokeCredentialQuery(b sq.StatementBuilderType, tokenHash string, at time.Time) (string, []any, error) {
	return b.Update(credentialsTable).
		Set("revoked_at", at).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
}

func buildDeleteStaleCredentialsQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete(credentialsTable).
		Where(sq.Or{
			sq.Lt{"expires_at": before},
			sq.Lt{"revoked_at": before},
		}).
		ToSql()
}
