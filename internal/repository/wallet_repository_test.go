package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateByGroupBuildsKeyedPatch(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE group_wallets SET balance_cents = ?, target_amount_cents = ?, updated_at = NOW() WHERE group_id = ?").
		WithArgs(int64(5000), int64(90000), int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	upd := WalletUpdate{BalanceCents: ptr(int64(5000)), TargetAmountCents: ptr(int64(90000))}
	require.NoError(t, NewWalletRepo(db).UpdateByGroup(context.Background(), 12, upd))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateByGroupEmptyPatchTouchesRow(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE group_wallets SET updated_at = NOW() WHERE group_id = ?").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewWalletRepo(db).UpdateByGroup(context.Background(), 12, WalletUpdate{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
