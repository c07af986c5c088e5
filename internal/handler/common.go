package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/repository"
)

// getUserID extracts the user_id placed in the context by the JWT
// middleware and converts it to uint64.  JWT numeric claims decode as
// float64, so that case dominates.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// isAdmin reports whether the role claim in the context is ADMIN.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == "ADMIN"
}

// requireOwner checks that the caller is ownerID or an admin.  A missing
// or malformed user claim surfaces as its own error; any other caller
// gets repository.ErrForbidden, which handlers map to HTTP 403.
func requireOwner(c echo.Context, ownerID uint64) error {
	uid, err := getUserID(c)
	if err != nil {
		return err
	}
	if uid != ownerID && !isAdmin(c) {
		return repository.ErrForbidden
	}
	return nil
}

// pathID parses the named path parameter as a positive uint64.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
