package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/model"
	"github.com/roamly/group-travel-booking/internal/repository"
)

// UserHandler exposes profile endpoints for the authenticated user plus
// the admin-only KYC patch.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

type profileResp struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	KYCStatus string    `json:"kyc_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toProfile(u model.User) profileResp {
	return profileResp{
		ID: u.ID, Email: u.Email, Name: u.Name,
		AvatarURL: u.AvatarURL, Phone: u.Phone,
		Role: u.Role, KYCStatus: u.KYCStatus,
		CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}
}

// Me handles GET /v1/me and returns the caller's profile.
func (h *UserHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	u, err := h.Users.GetByID(c.Request().Context(), uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toProfile(u))
}

// UpdateMe handles PATCH /v1/me.  Only the supplied fields are merged
// into the profile; KYC status is not reachable from here.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name      *string `json:"name"`
		AvatarURL *string `json:"avatar_url"`
		Phone     *string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx := c.Request().Context()
	upd := repository.UserUpdate{Name: body.Name, AvatarURL: body.AvatarURL, Phone: body.Phone}
	if err := h.Users.Update(ctx, uid, upd); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toProfile(u))
}

// UpdateKYC handles PATCH /v1/users/:id/kyc (ADMIN only).  Any known
// status may be set in any order; there is no transition guard.
func (h *UserHandler) UpdateKYC(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		KYCStatus string `json:"kyc_status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch body.KYCStatus {
	case model.KYCPending, model.KYCVerified, model.KYCRejected:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown kyc_status"})
	}
	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Users.Update(ctx, id, repository.UserUpdate{KYCStatus: &body.KYCStatus}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
