package model

import "time"

// Roles stored in users.role.  ADMIN accounts manage the catalog
// (destinations and tours); TRAVELER accounts form groups and book trips.
const (
	RoleTraveler = "TRAVELER"
	RoleAdmin    = "ADMIN"
)

// KYC verification states stored in users.kyc_status.  New accounts start
// as PENDING; transitions are not ordered, any value may follow any value.
const (
	KYCPending  = "PENDING"
	KYCVerified = "VERIFIED"
	KYCRejected = "REJECTED"
)

// User represents an application user record as stored in the `users`
// table.  Email is unique across the table.  AvatarURL and Phone are
// optional profile fields and may be nil.  Accounts are never hard
// deleted by this service; removal is handled by an external identity
// webhook.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email (unique, lower-cased)
	Name         string    // users.name
	PasswordHash string    // users.password_hash (bcrypt)
	AvatarURL    *string   // users.avatar_url (nullable)
	Phone        *string   // users.phone (nullable)
	Role         string    // users.role (TRAVELER or ADMIN)
	KYCStatus    string    // users.kyc_status
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
