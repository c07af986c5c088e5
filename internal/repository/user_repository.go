package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/roamly/group-travel-booking/internal/model"
	"github.com/roamly/group-travel-booking/internal/utils"
)

// ErrEmailExists is returned when registering with an email that already
// has an account.
var ErrEmailExists = errors.New("email already exists")

// UserRepo provides persistence for users.
type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = "id, email, name, password_hash, avatar_url, phone, role, kyc_status, created_at, updated_at"

// Create inserts a new user and returns its ID.  The email is normalized
// to lower case and checked against the unique index first so that the
// common duplicate case gets a friendly error; the unique key on
// users.email backstops concurrent registrations and a 1062 from the
// insert maps to the same ErrEmailExists.  New users start with
// kyc_status PENDING.
func (r *UserRepo) Create(ctx context.Context, email, name, password, role string, avatarURL, phone *string, bcryptCost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var existing uint64
	err := r.db.QueryRowContext(ctx, "SELECT id FROM users WHERE email = ? LIMIT 1", email).Scan(&existing)
	if err == nil {
		return 0, ErrEmailExists
	}
	if err != sql.ErrNoRows {
		return 0, err
	}
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (email, name, password_hash, avatar_url, phone, role, kyc_status) VALUES (?,?,?,?,?,?,?)",
		email, name, hash, avatarURL, phone, role, model.KYCPending)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.  A miss surfaces as
// sql.ErrNoRows.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ? LIMIT 1", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.scanOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id)
}

func (r *UserRepo) scanOne(ctx context.Context, query string, arg any) (model.User, error) {
	var (
		u      model.User
		avatar sql.NullString
		phone  sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &avatar, &phone,
		&u.Role, &u.KYCStatus, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	if avatar.Valid {
		v := avatar.String
		u.AvatarURL = &v
	}
	if phone.Valid {
		v := phone.String
		u.Phone = &v
	}
	return u, nil
}

// UserUpdate enumerates the mutable user columns.  Nil fields are left
// untouched.  KYC status accepts any of the known values in any order;
// there is no transition guard.
type UserUpdate struct {
	Name      *string
	AvatarURL *string
	Phone     *string
	KYCStatus *string
}

func (u UserUpdate) assignments() ([]string, []any) {
	var sets []string
	var args []any
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.AvatarURL != nil {
		sets = append(sets, "avatar_url = ?")
		args = append(args, *u.AvatarURL)
	}
	if u.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *u.Phone)
	}
	if u.KYCStatus != nil {
		sets = append(sets, "kyc_status = ?")
		args = append(args, *u.KYCStatus)
	}
	return sets, args
}

// Update merges the supplied fields into the user row and refreshes
// updated_at.
func (r *UserRepo) Update(ctx context.Context, id uint64, upd UserUpdate) error {
	sets, args := upd.assignments()
	args = append(args, id)
	_, err := r.db.ExecContext(ctx, patchSQL("users", sets), args...)
	return err
}
