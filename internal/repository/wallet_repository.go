package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roamly/group-travel-booking/internal/model"
)

// ErrWalletNotFound is returned when a group has no wallet row.  Under
// normal operation this cannot happen because wallets are created in the
// same transaction as their group.
var ErrWalletNotFound = errors.New("group wallet not found")

// WalletRepo reads and patches group wallets.  Balance changes arrive
// from an external settlement job through Update; recording a
// Transaction never touches the balance from this codebase.
type WalletRepo struct{ db *sql.DB }

func NewWalletRepo(db *sql.DB) *WalletRepo { return &WalletRepo{db: db} }

// GetByGroup fetches the wallet owned by the given group.
func (r *WalletRepo) GetByGroup(ctx context.Context, groupID uint64) (model.GroupWallet, error) {
	var w model.GroupWallet
	err := r.db.QueryRowContext(ctx,
		"SELECT id, group_id, balance_cents, target_amount_cents, created_at, updated_at FROM group_wallets WHERE group_id = ? LIMIT 1",
		groupID).Scan(&w.ID, &w.GroupID, &w.BalanceCents, &w.TargetAmountCents, &w.CreatedAt, &w.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.GroupWallet{}, ErrWalletNotFound
	}
	return w, err
}

// WalletUpdate enumerates the mutable wallet columns.
type WalletUpdate struct {
	BalanceCents      *int64
	TargetAmountCents *int64
}

func (u WalletUpdate) assignments() ([]string, []any) {
	var sets []string
	var args []any
	if u.BalanceCents != nil {
		sets = append(sets, "balance_cents = ?")
		args = append(args, *u.BalanceCents)
	}
	if u.TargetAmountCents != nil {
		sets = append(sets, "target_amount_cents = ?")
		args = append(args, *u.TargetAmountCents)
	}
	return sets, args
}

// UpdateByGroup merges the supplied fields into the group's wallet row.
func (r *WalletRepo) UpdateByGroup(ctx context.Context, groupID uint64, upd WalletUpdate) error {
	sets, args := upd.assignments()
	args = append(args, groupID)
	_, err := r.db.ExecContext(ctx, patchSQLBy("group_wallets", sets, "group_id"), args...)
	return err
}
