// Package repository contains the data access layer.  This file defines
// error values shared across repositories so that handlers can map
// failure scenarios to HTTP responses without string matching.
package repository

import (
	"errors"
	"strings"
)

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own, e.g. patching another user's booking.
// Handlers translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error number 1062).  Unique keys back up the application-level
// existence checks on users.email and group_members (group_id, user_id).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
