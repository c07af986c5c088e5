package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework for routing

	"github.com/roamly/group-travel-booking/internal/handler"    // handlers implementing business logic
	"github.com/roamly/group-travel-booking/internal/middleware" // JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring probes hit this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while the profile endpoints live under /v1 behind JWT auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, jwtSecret string) {
	// Session management does not require an existing session: register,
	// login, refresh (which rotates the refresh token) and logout all
	// operate on credentials or refresh tokens carried in the body.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body containing a `refresh_token` and
	// invalidates it; no access token is needed, so a client with an
	// expired access token can still terminate its session.
	g.POST("/logout", a.Logout)

	// Profile endpoints require a valid access token.  Both roles are
	// accepted; the middleware rejects missing or unknown roles.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("TRAVELER", "ADMIN"))
	auth.GET("/me", u.Me)
	auth.PATCH("/me", u.UpdateMe)
	// Revokes every refresh token of the caller, not just one session.
	auth.POST("/auth/logout-all", a.LogoutAll)
}
