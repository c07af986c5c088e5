package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roamly/group-travel-booking/internal/model"
)

// ErrGroupNotFound is returned when a group cannot be found.
var ErrGroupNotFound = errors.New("group not found")

// ErrDuplicateMembership is returned when a user is added to a group
// they already belong to.
var ErrDuplicateMembership = errors.New("user already in group")

// GroupRepo provides persistence for travel groups, their memberships
// and their wallets' creation.  The group/wallet/admin-member triple is
// the one multi-row invariant in the data model and is written inside a
// single transaction.
type GroupRepo struct{ db *sql.DB }

func NewGroupRepo(db *sql.DB) *GroupRepo { return &GroupRepo{db: db} }

const groupColumns = "id, name, description, creator_id, tour_id, status, max_members, is_public, created_at, updated_at"
const memberColumns = "id, group_id, user_id, role, status, contribution_cents, created_at, updated_at"

// Create inserts a group together with its wallet and the creator's
// ADMIN membership.  All three rows commit or roll back together, so a
// failed wallet insert can never leave a dangling group.  On success g
// is fully populated and the new wallet and membership are returned.
func (r *GroupRepo) Create(ctx context.Context, g *model.Group) (model.GroupWallet, model.GroupMember, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO travel_groups (name, description, creator_id, tour_id, status, max_members, is_public) VALUES (?,?,?,?,?,?,?)",
		g.Name, g.Description, g.CreatorID, g.TourID, model.GroupPlanning, g.MaxMembers, g.IsPublic)
	if err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}
	gid, err := res.LastInsertId()
	if err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}
	g.ID = uint64(gid)

	res, err = tx.ExecContext(ctx,
		"INSERT INTO group_wallets (group_id, balance_cents, target_amount_cents) VALUES (?,0,0)",
		g.ID)
	if err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}
	wid, err := res.LastInsertId()
	if err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}

	res, err = tx.ExecContext(ctx,
		"INSERT INTO group_members (group_id, user_id, role, status, contribution_cents) VALUES (?,?,?,?,0)",
		g.ID, g.CreatorID, model.MemberRoleAdmin, model.MemberAccepted)
	if err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}
	mid, err := res.LastInsertId()
	if err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}

	// Query back the group row inside the transaction to populate
	// defaults and timestamps before committing.
	if err := tx.QueryRowContext(ctx,
		"SELECT "+groupColumns+" FROM travel_groups WHERE id = ?", g.ID).Scan(
		&g.ID, &g.Name, &g.Description, &g.CreatorID, &nullableID{&g.TourID},
		&g.Status, &g.MaxMembers, &g.IsPublic, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}

	var wallet model.GroupWallet
	if err := tx.QueryRowContext(ctx,
		"SELECT id, group_id, balance_cents, target_amount_cents, created_at, updated_at FROM group_wallets WHERE id = ?",
		wid).Scan(&wallet.ID, &wallet.GroupID, &wallet.BalanceCents, &wallet.TargetAmountCents,
		&wallet.CreatedAt, &wallet.UpdatedAt); err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}

	var member model.GroupMember
	if err := tx.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM group_members WHERE id = ?",
		mid).Scan(&member.ID, &member.GroupID, &member.UserID, &member.Role, &member.Status,
		&member.ContributionCents, &member.CreatedAt, &member.UpdatedAt); err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.GroupWallet{}, model.GroupMember{}, err
	}
	return wallet, member, nil
}

// nullableID adapts a **uint64 field for scanning a nullable BIGINT
// column.
type nullableID struct{ dst **uint64 }

func (n *nullableID) Scan(src any) error {
	if src == nil {
		*n.dst = nil
		return nil
	}
	var v sql.NullInt64
	if err := v.Scan(src); err != nil {
		return err
	}
	id := uint64(v.Int64)
	*n.dst = &id
	return nil
}

// GetByID fetches a group by id.
func (r *GroupRepo) GetByID(ctx context.Context, id uint64) (model.Group, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+groupColumns+" FROM travel_groups WHERE id = ? LIMIT 1", id)
	g, err := scanGroup(row)
	if err == sql.ErrNoRows {
		return model.Group{}, ErrGroupNotFound
	}
	return g, err
}

// ListByCreator returns groups created by the given user, in insertion
// order.
func (r *GroupRepo) ListByCreator(ctx context.Context, creatorID uint64) ([]model.Group, error) {
	return r.list(ctx, "SELECT "+groupColumns+" FROM travel_groups WHERE creator_id = ? ORDER BY id ASC", creatorID)
}

// ListPublic returns all groups flagged public, in insertion order.
func (r *GroupRepo) ListPublic(ctx context.Context) ([]model.Group, error) {
	return r.list(ctx, "SELECT "+groupColumns+" FROM travel_groups WHERE is_public = 1 ORDER BY id ASC")
}

// ListAll returns every group, in insertion order.
func (r *GroupRepo) ListAll(ctx context.Context) ([]model.Group, error) {
	return r.list(ctx, "SELECT "+groupColumns+" FROM travel_groups ORDER BY id ASC")
}

func (r *GroupRepo) list(ctx context.Context, query string, args ...any) ([]model.Group, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGroup(row rowScanner) (model.Group, error) {
	var g model.Group
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.CreatorID, &nullableID{&g.TourID},
		&g.Status, &g.MaxMembers, &g.IsPublic, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// GroupUpdate enumerates the mutable group columns.  Status accepts any
// of the known values; transitions are not guarded.
type GroupUpdate struct {
	Name        *string
	Description *string
	TourID      *uint64
	Status      *string
	MaxMembers  *uint32
	IsPublic    *bool
}

func (u GroupUpdate) assignments() ([]string, []any) {
	var sets []string
	var args []any
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.TourID != nil {
		sets = append(sets, "tour_id = ?")
		args = append(args, *u.TourID)
	}
	if u.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *u.Status)
	}
	if u.MaxMembers != nil {
		sets = append(sets, "max_members = ?")
		args = append(args, *u.MaxMembers)
	}
	if u.IsPublic != nil {
		sets = append(sets, "is_public = ?")
		args = append(args, *u.IsPublic)
	}
	return sets, args
}

// Update merges the supplied fields into the group row.
func (r *GroupRepo) Update(ctx context.Context, id uint64, upd GroupUpdate) error {
	sets, args := upd.assignments()
	args = append(args, id)
	_, err := r.db.ExecContext(ctx, patchSQL("travel_groups", sets), args...)
	return err
}

// AddMember inserts a membership with status PENDING and zero
// contribution.  The (group, user) pair is checked first so the common
// duplicate case gets ErrDuplicateMembership; the unique key on the pair
// backstops concurrent calls and a 1062 from the insert maps to the same
// error.
func (r *GroupRepo) AddMember(ctx context.Context, groupID, userID uint64, role string) (model.GroupMember, error) {
	var existing uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM group_members WHERE group_id = ? AND user_id = ? LIMIT 1",
		groupID, userID).Scan(&existing)
	if err == nil {
		return model.GroupMember{}, ErrDuplicateMembership
	}
	if err != sql.ErrNoRows {
		return model.GroupMember{}, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO group_members (group_id, user_id, role, status, contribution_cents) VALUES (?,?,?,?,0)",
		groupID, userID, role, model.MemberPending)
	if err != nil {
		if isDuplicateKey(err) {
			return model.GroupMember{}, ErrDuplicateMembership
		}
		return model.GroupMember{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.GroupMember{}, err
	}
	var m model.GroupMember
	err = r.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM group_members WHERE id = ?", id).Scan(
		&m.ID, &m.GroupID, &m.UserID, &m.Role, &m.Status,
		&m.ContributionCents, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// ListMembers returns all memberships of a group in insertion order.
func (r *GroupRepo) ListMembers(ctx context.Context, groupID uint64) ([]model.GroupMember, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+memberColumns+" FROM group_members WHERE group_id = ? ORDER BY id ASC", groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.GroupMember, 0)
	for rows.Next() {
		var m model.GroupMember
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Role, &m.Status,
			&m.ContributionCents, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MemberUpdate enumerates the mutable membership columns.  Contribution
// is a pledge amount and is not reconciled against the wallet balance.
type MemberUpdate struct {
	Role              *string
	Status            *string
	ContributionCents *int64
}

func (u MemberUpdate) assignments() ([]string, []any) {
	var sets []string
	var args []any
	if u.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *u.Role)
	}
	if u.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *u.Status)
	}
	if u.ContributionCents != nil {
		sets = append(sets, "contribution_cents = ?")
		args = append(args, *u.ContributionCents)
	}
	return sets, args
}

// UpdateMember merges the supplied fields into a membership row.
func (r *GroupRepo) UpdateMember(ctx context.Context, memberID uint64, upd MemberUpdate) error {
	sets, args := upd.assignments()
	args = append(args, memberID)
	_, err := r.db.ExecContext(ctx, patchSQL("group_members", sets), args...)
	return err
}
