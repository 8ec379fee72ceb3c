// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-bot-host/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertCredentialQuery(t *testing.T) {
	credential := models.Credential{
		TokenHash: testHash,
		Subject:   "alice",
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}

	query, args, err := buildInsertCredentialQuery(dollarBuilder, credential)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into credentials")
	for _, c := range credentialColumns {
		assert.Contains(t, q, c)
	}
	assert.Contains(t, query, "$6")
	require.Len(t, args, 6)
	assert.Equal(t, testHash, args[0])
	assert.Equal(t, "alice", args[1])
}

func Test_buildSelectCredentialQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{"postgres", dollarBuilder, "$1"},
		{"sqlite", questionBuilder, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectCredentialQuery(tt.builder, testHash)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM credentials")
			assert.Contains(t, query, "token_hash = "+tt.placeholder)
			assert.Equal(t, []any{testHash}, args)
		})
	}
}

func Test_buildRevokeCredentialQuery_OnlyActive(t *testing.T) {
	at := time.Now()

	query, args, err := buildRevokeCredentialQuery(dollarBuilder, testHash, at)
	require.NoError(t, err)

	assert.Contains(t, query, "SET revoked_at = $1")
	assert.Contains(t, query, "revoked_at IS NULL")
	assert.Equal(t, []any{at, testHash}, args)
}

func Test_buildDeleteStaleCredentialsQuery(t *testing.T) {
	before := time.Now()

	query, args, err := buildDeleteStaleCredentialsQuery(questionBuilder, before)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM credentials WHERE (expires_at < ? OR revoked_at < ?)", query)
	assert.Equal(t, []any{before, before}, args)
}
