package repository

import (
	"context"
	"database/sql"

	"github.com/roamly/group-travel-booking/internal/model"
)

// TransactionRepo records monetary events.  Transactions are append-only
// from this service's point of view; status corrections arrive through
// the payment gateway's own reconciliation path.  Inserting a DEPOSIT
// does not credit the group wallet - balances are settled externally.
type TransactionRepo struct{ db *sql.DB }

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

const txColumns = "id, user_id, group_id, wallet_id, type, status, payment_method, amount_cents, gateway_ref, created_at"

// Create inserts a transaction and populates its ID and created_at.
func (r *TransactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	if t.Status == "" {
		t.Status = model.TxPending
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO transactions (user_id, group_id, wallet_id, type, status, payment_method, amount_cents, gateway_ref) VALUES (?,?,?,?,?,?,?,?)",
		t.UserID, t.GroupID, t.WalletID, t.Type, t.Status, t.PaymentMethod, t.AmountCents, t.GatewayRef)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM transactions WHERE id = ?", t.ID).Scan(&t.CreatedAt)
}

// ListByUser returns the user's transactions, newest first.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Transaction, error) {
	return r.list(ctx, "SELECT "+txColumns+" FROM transactions WHERE user_id = ? ORDER BY created_at DESC, id DESC", userID)
}

// ListByGroup returns a group's transactions, newest first.
func (r *TransactionRepo) ListByGroup(ctx context.Context, groupID uint64) ([]model.Transaction, error) {
	return r.list(ctx, "SELECT "+txColumns+" FROM transactions WHERE group_id = ? ORDER BY created_at DESC, id DESC", groupID)
}

func (r *TransactionRepo) list(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Transaction, 0)
	for rows.Next() {
		var (
			t   model.Transaction
			ref sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.UserID, &nullableID{&t.GroupID}, &nullableID{&t.WalletID},
			&t.Type, &t.Status, &t.PaymentMethod, &t.AmountCents, &ref, &t.CreatedAt); err != nil {
			return nil, err
		}
		if ref.Valid {
			v := ref.String
			t.GatewayRef = &v
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
