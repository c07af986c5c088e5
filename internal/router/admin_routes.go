package router

// This file registers ADMIN-scoped routes: catalog management, KYC
// review, per-tour booking listings and operational diagnostics.  They
// are kept separate from the traveler routes to keep concerns isolated.

import (
	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/handler"
	"github.com/roamly/group-travel-booking/internal/middleware"
)

// RegisterAdmin registers ADMIN-only endpoints under /v1.  All routes
// require a valid JWT and the ADMIN role.
func RegisterAdmin(e *echo.Echo, cat *handler.AdminCatalogHandler, u *handler.UserHandler, b *handler.BookingHandler, diag *handler.DiagHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Catalog management ----
	// NOTE: Listing and fetching destinations and tours is handled by the
	// public browse API; only mutations live here to avoid route conflicts.
	g.POST("/admin/destinations", cat.CreateDestination)
	g.PATCH("/admin/destinations/:id", cat.UpdateDestination)
	g.POST("/admin/tours", cat.CreateTour)
	g.PATCH("/admin/tours/:id", cat.UpdateTour)

	// ---- KYC review ----
	g.PATCH("/users/:id/kyc", u.UpdateKYC)

	// ---- Bookings per tour ----
	g.GET("/admin/tours/:id/bookings", b.ListByTour)

	// ---- Diagnostics ----
	g.GET("/admin/diag/image-dirs", diag.ImageDirs)
}
