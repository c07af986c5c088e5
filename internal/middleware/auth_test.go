package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/group-travel-booking/internal/utils"
)

const testSecret = "unit-test-secret"

func doRequest(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthValidToken(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		// claims land in the context as issued by JWTAuth
		assert.Equal(t, "TRAVELER", c.Get("role"))
		assert.NotNil(t, c.Get("user_id"))
		return c.NoContent(http.StatusOK)
	}, JWTAuth(testSecret))

	at, err := utils.NewAccessToken(testSecret, 9, "TRAVELER", 5)
	require.NoError(t, err)

	rec := doRequest(e, at.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, JWTAuth(testSecret))

	rec := doRequest(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, JWTAuth(testSecret))

	at, err := utils.NewAccessToken("some-other-secret", 9, "TRAVELER", 5)
	require.NoError(t, err)

	rec := doRequest(e, at.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		JWTAuth(testSecret), RequireRole("ADMIN"))

	admin, err := utils.NewAccessToken(testSecret, 1, "ADMIN", 5)
	require.NoError(t, err)
	traveler, err := utils.NewAccessToken(testSecret, 2, "TRAVELER", 5)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(e, admin.Token).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(e, traveler.Token).Code)
}
