package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/group-travel-booking/internal/model"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestGroupCreateCommitsAllThreeRows(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO travel_groups").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO group_wallets").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("INSERT INTO group_members").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT .+ FROM travel_groups WHERE id = ").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "creator_id", "tour_id", "status", "max_members", "is_public", "created_at", "updated_at"}).
			AddRow(7, "Goa Gang", "", 3, nil, model.GroupPlanning, 6, true, now, now))
	mock.ExpectQuery("SELECT .+ FROM group_wallets WHERE id = ").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "balance_cents", "target_amount_cents", "created_at", "updated_at"}).
			AddRow(4, 7, 0, 0, now, now))
	mock.ExpectQuery("SELECT .+ FROM group_members WHERE id = ").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "user_id", "role", "status", "contribution_cents", "created_at", "updated_at"}).
			AddRow(11, 7, 3, model.MemberRoleAdmin, model.MemberAccepted, 0, now, now))
	mock.ExpectCommit()

	g := model.Group{Name: "Goa Gang", CreatorID: 3, MaxMembers: 6, IsPublic: true}
	wallet, member, err := NewGroupRepo(db).Create(context.Background(), &g)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), g.ID)
	assert.Equal(t, model.GroupPlanning, g.Status)
	assert.Equal(t, uint64(7), wallet.GroupID)
	assert.Zero(t, wallet.BalanceCents)
	assert.Equal(t, model.MemberRoleAdmin, member.Role)
	assert.Equal(t, model.MemberAccepted, member.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupCreateRollsBackWhenWalletInsertFails(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO travel_groups").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO group_wallets").
		WillReturnError(errors.New("wallet insert failed"))
	mock.ExpectRollback()

	g := model.Group{Name: "Goa Gang", CreatorID: 3, MaxMembers: 6}
	_, _, err := NewGroupRepo(db).Create(context.Background(), &g)
	assert.Error(t, err)

	// no commit expectation: the group row must not survive the failure
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupCreateRollsBackWhenMemberInsertFails(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO travel_groups").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO group_wallets").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("INSERT INTO group_members").
		WillReturnError(errors.New("member insert failed"))
	mock.ExpectRollback()

	g := model.Group{Name: "Goa Gang", CreatorID: 3}
	_, _, err := NewGroupRepo(db).Create(context.Background(), &g)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMemberRejectsExistingPair(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id FROM group_members WHERE group_id = ").
		WithArgs(int64(5), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := NewGroupRepo(db).AddMember(context.Background(), 5, 9, model.MemberRoleMember)
	assert.ErrorIs(t, err, ErrDuplicateMembership)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMemberMapsDuplicateKeyToSentinel(t *testing.T) {
	// concurrent join slips past the pre-check; the unique key on
	// (group_id, user_id) fires instead and must map to the same error
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id FROM group_members WHERE group_id = ").
		WithArgs(int64(5), int64(9)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO group_members").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '5-9' for key 'uq_group_members_pair'"))

	_, err := NewGroupRepo(db).AddMember(context.Background(), 5, 9, model.MemberRoleMember)
	assert.ErrorIs(t, err, ErrDuplicateMembership)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMemberInsertsPendingMembership(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id FROM group_members WHERE group_id = ").
		WithArgs(int64(5), int64(9)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO group_members").
		WithArgs(int64(5), int64(9), model.MemberRoleMember, model.MemberPending).
		WillReturnResult(sqlmock.NewResult(13, 1))
	mock.ExpectQuery("SELECT .+ FROM group_members WHERE id = ").
		WithArgs(int64(13)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "user_id", "role", "status", "contribution_cents", "created_at", "updated_at"}).
			AddRow(13, 5, 9, model.MemberRoleMember, model.MemberPending, 0, now, now))

	m, err := NewGroupRepo(db).AddMember(context.Background(), 5, 9, model.MemberRoleMember)
	require.NoError(t, err)
	assert.Equal(t, model.MemberPending, m.Status)
	assert.Zero(t, m.ContributionCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}
