package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokeAllForUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at=NOW\(\) WHERE user_id=\? AND revoked_at IS NULL`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, NewTokenRepo(db).RevokeAllForUser(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeByHashOnlyTouchesActiveRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at=NOW\(\) WHERE token_hash=\? AND revoked_at IS NULL`).
		WithArgs("abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewTokenRepo(db).RevokeByHash(context.Background(), "abc123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
