package model

import "time"

// Group lifecycle states stored in travel_groups.status.  The nominal
// order is PLANNING -> ACTIVE -> COMPLETED | CANCELLED but no transition
// guard exists; UpdateGroup accepts any value.
const (
	GroupPlanning  = "PLANNING"
	GroupActive    = "ACTIVE"
	GroupCompleted = "COMPLETED"
	GroupCancelled = "CANCELLED"
)

// Membership roles and states.
const (
	MemberRoleAdmin  = "ADMIN"
	MemberRoleMember = "MEMBER"

	MemberPending  = "PENDING"
	MemberAccepted = "ACCEPTED"
	MemberDeclined = "DECLINED"
)

// Group is a set of travelers pooling money toward a trip.  Every group
// owns exactly one GroupWallet and its creator is its first ADMIN
// member; both records are created in the same transaction as the group
// row itself.
type Group struct {
	ID          uint64    // travel_groups.id
	Name        string    // travel_groups.name
	Description string    // travel_groups.description
	CreatorID   uint64    // travel_groups.creator_id
	TourID      *uint64   // travel_groups.tour_id (nullable)
	Status      string    // travel_groups.status
	MaxMembers  uint32    // travel_groups.max_members
	IsPublic    bool      // travel_groups.is_public
	CreatedAt   time.Time // travel_groups.created_at
	UpdatedAt   time.Time // travel_groups.updated_at
}

// GroupMember links a user to a group.  A user appears at most once per
// group; the pair carries a unique key and AddMember additionally checks
// before inserting.  ContributionCents is the amount the member has
// pledged; it is not reconciled against the wallet balance.
type GroupMember struct {
	ID                uint64    // group_members.id
	GroupID           uint64    // group_members.group_id
	UserID            uint64    // group_members.user_id
	Role              string    // group_members.role
	Status            string    // group_members.status
	ContributionCents int64     // group_members.contribution_cents
	CreatedAt         time.Time // group_members.created_at
	UpdatedAt         time.Time // group_members.updated_at
}

// GroupWallet is the pooled balance of a group, one row per group.
// BalanceCents is maintained by an external settlement job; recording a
// Transaction does not move it.
type GroupWallet struct {
	ID                uint64    // group_wallets.id
	GroupID           uint64    // group_wallets.group_id (unique)
	BalanceCents      int64     // group_wallets.balance_cents
	TargetAmountCents int64     // group_wallets.target_amount_cents
	CreatedAt         time.Time // group_wallets.created_at
	UpdatedAt         time.Time // group_wallets.updated_at
}
