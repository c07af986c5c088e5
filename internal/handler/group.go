package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/model"
	"github.com/roamly/group-travel-booking/internal/repository"
)

// GroupHandler serves the travel-group endpoints.  Group creation is the
// one multi-row write in the service: the group, its wallet and the
// creator's ADMIN membership are committed in a single transaction by
// the repository.
type GroupHandler struct {
	Groups  *repository.GroupRepo
	Wallets *repository.WalletRepo
}

func NewGroupHandler(g *repository.GroupRepo, w *repository.WalletRepo) *GroupHandler {
	if g == nil || w == nil {
		panic("nil repository passed to NewGroupHandler")
	}
	return &GroupHandler{Groups: g, Wallets: w}
}

type createGroupReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TourID      *uint64 `json:"tour_id"`
	MaxMembers  uint32  `json:"max_members"`
	IsPublic    bool    `json:"is_public"`
}

type createGroupResp struct {
	Group  model.Group       `json:"group"`
	Wallet model.GroupWallet `json:"wallet"`
	Admin  model.GroupMember `json:"admin_member"`
}

// CreateGroup handles POST /v1/groups.  The caller becomes the group's
// creator and first ADMIN member; the response carries all three records
// created by the transaction.
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createGroupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	if req.MaxMembers == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_members must be positive"})
	}
	g := model.Group{
		Name: req.Name, Description: req.Description, CreatorID: uid,
		TourID: req.TourID, MaxMembers: req.MaxMembers, IsPublic: req.IsPublic,
	}
	wallet, admin, err := h.Groups.Create(c.Request().Context(), &g)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create group failed"})
	}
	return c.JSON(http.StatusCreated, createGroupResp{Group: g, Wallet: wallet, Admin: admin})
}

// MyGroups handles GET /v1/my-groups and lists the groups the caller
// created.
func (h *GroupHandler) MyGroups(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Groups.ListByCreator(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListGroups handles GET /v1/groups.  Travelers see public groups;
// admins see everything.
func (h *GroupHandler) ListGroups(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		items []model.Group
		err   error
	)
	if isAdmin(c) {
		items, err = h.Groups.ListAll(ctx)
	} else {
		items, err = h.Groups.ListPublic(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetGroup handles GET /v1/groups/:id.  Private groups are visible only
// to their members and admins.
func (h *GroupHandler) GetGroup(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrGroupNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "group not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !g.IsPublic && !isAdmin(c) {
		uid, err := getUserID(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		member, err := h.isMember(c, id, uid)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if !member {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GroupHandler) isMember(c echo.Context, groupID, userID uint64) (bool, error) {
	members, err := h.Groups.ListMembers(c.Request().Context(), groupID)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type updateGroupReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	TourID      *uint64 `json:"tour_id"`
	Status      *string `json:"status"`
	MaxMembers  *uint32 `json:"max_members"`
	IsPublic    *bool   `json:"is_public"`
}

// UpdateGroup handles PATCH /v1/groups/:id.  Only the creator (or an
// admin) may patch a group.  Status accepts any known value; transitions
// are deliberately unguarded, COMPLETED -> PLANNING included.
func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateGroupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status != nil {
		s := strings.ToUpper(strings.TrimSpace(*req.Status))
		switch s {
		case model.GroupPlanning, model.GroupActive, model.GroupCompleted, model.GroupCancelled:
			req.Status = &s
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
	}
	ctx := c.Request().Context()
	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrGroupNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "group not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := requireOwner(c, g.CreatorID); err != nil {
		if err == repository.ErrForbidden {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	upd := repository.GroupUpdate{
		Name: req.Name, Description: req.Description, TourID: req.TourID,
		Status: req.Status, MaxMembers: req.MaxMembers, IsPublic: req.IsPublic,
	}
	if err := h.Groups.Update(ctx, id, upd); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	g, err = h.Groups.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, g)
}

type addMemberReq struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
}

// AddMember handles POST /v1/groups/:id/members.  The creator (or an
// admin) may add any user; a traveler may add only themselves, which is
// the join-public-group flow.  New memberships start PENDING with zero
// contribution.  Adding the same user twice yields 409.
func (h *GroupHandler) AddMember(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req addMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id required"})
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.MemberRoleMember
	}
	if role != model.MemberRoleAdmin && role != model.MemberRoleMember {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
	}
	ctx := c.Request().Context()
	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrGroupNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "group not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if g.CreatorID != uid && !isAdmin(c) {
		// self-join is allowed for public groups only, and never with
		// an elevated role
		if req.UserID != uid || !g.IsPublic || role != model.MemberRoleMember {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
	}
	m, err := h.Groups.AddMember(ctx, id, req.UserID, role)
	if err != nil {
		if err == repository.ErrDuplicateMembership {
			return c.JSON(http.StatusConflict, echo.Map{"error": "user already in group"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add member failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// ListMembers handles GET /v1/groups/:id/members.
func (h *GroupHandler) ListMembers(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Groups.GetByID(ctx, id); err != nil {
		if err == repository.ErrGroupNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "group not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items, err := h.Groups.ListMembers(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetWallet handles GET /v1/groups/:id/wallet.
func (h *GroupHandler) GetWallet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	w, err := h.Wallets.GetByGroup(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrWalletNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "wallet not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, w)
}

type updateWalletReq struct {
	BalanceCents      *int64 `json:"balance_cents"`
	TargetAmountCents *int64 `json:"target_amount_cents"`
}

// UpdateWallet handles PATCH /v1/groups/:id/wallet.  Only the group
// creator (or an admin) may patch the wallet.  Balance is a verbatim
// figure from the settlement side; nothing here reconciles it against
// recorded transactions.
func (h *GroupHandler) UpdateWallet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateWalletReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx := c.Request().Context()
	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrGroupNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "group not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := requireOwner(c, g.CreatorID); err != nil {
		if err == repository.ErrForbidden {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	upd := repository.WalletUpdate{BalanceCents: req.BalanceCents, TargetAmountCents: req.TargetAmountCents}
	if err := h.Wallets.UpdateByGroup(ctx, id, upd); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	w, err := h.Wallets.GetByGroup(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, w)
}
