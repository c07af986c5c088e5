package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/group-travel-booking/internal/repository"
)

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetUserIDAcceptsJWTFloatClaim(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")
	c.Set("user_id", float64(42)) // jwt.MapClaims decodes numbers as float64

	id, err := getUserID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestGetUserIDOtherTypes(t *testing.T) {
	for _, v := range []any{uint64(7), int(7), int64(7), "7"} {
		c, _ := newTestContext(t, http.MethodGet, "/", "")
		c.Set("user_id", v)
		id, err := getUserID(c)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), id)
	}
}

func TestGetUserIDMissing(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")
	_, err := getUserID(c)
	assert.Error(t, err)

	c.Set("user_id", "not-a-number")
	_, err = getUserID(c)
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")
	assert.False(t, isAdmin(c))

	c.Set("role", "TRAVELER")
	assert.False(t, isAdmin(c))

	c.Set("role", "ADMIN")
	assert.True(t, isAdmin(c))
}

func TestRequireOwner(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")
	c.Set("user_id", float64(4))

	assert.NoError(t, requireOwner(c, 4))
	assert.ErrorIs(t, requireOwner(c, 5), repository.ErrForbidden)

	// admins may act on anyone's resource
	c.Set("role", "ADMIN")
	assert.NoError(t, requireOwner(c, 5))
}

func TestRequireOwnerMissingClaim(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")
	err := requireOwner(c, 4)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrForbidden)
}

func TestPathID(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("15")
	id, err := pathID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(15), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		c.SetParamValues(bad)
		_, err := pathID(c, "id")
		assert.Error(t, err, bad)
	}
}
