package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/group-travel-booking/internal/config"
	"github.com/roamly/group-travel-booking/internal/repository"
)

func TestLogoutAllRevokesEverySession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at=NOW\(\) WHERE user_id=\? AND revoked_at IS NULL`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	h := NewAuthHandler(config.Config{}, repository.NewUserRepo(db), repository.NewTokenRepo(db))
	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/logout-all", "")
	c.Set("user_id", float64(7))

	assert.NoError(t, h.LogoutAll(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogoutAllWithoutClaim(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := NewAuthHandler(config.Config{}, repository.NewUserRepo(db), repository.NewTokenRepo(db))
	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/logout-all", "")

	assert.NoError(t, h.LogoutAll(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
