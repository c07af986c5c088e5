package router

import (
	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/handler"
	"github.com/roamly/group-travel-booking/internal/middleware"
)

// RegisterTraveler registers the authenticated endpoints under /v1.  All
// routes require a valid JWT; both TRAVELER and ADMIN are accepted, and
// the handlers apply the finer-grained ownership and membership checks
// (group creator vs member, booking owner, admin overrides).
func RegisterTraveler(e *echo.Echo, g *handler.GroupHandler, b *handler.BookingHandler, t *handler.TransactionHandler, jwtSecret string) {
	r := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("TRAVELER", "ADMIN"),
	)

	// ---- Travel groups ----
	r.POST("/groups", g.CreateGroup) // atomically creates group + wallet + admin membership
	r.GET("/groups", g.ListGroups)   // public groups; admins see all
	r.GET("/my-groups", g.MyGroups)
	r.GET("/groups/:id", g.GetGroup)
	r.PATCH("/groups/:id", g.UpdateGroup)
	r.POST("/groups/:id/members", g.AddMember)
	r.GET("/groups/:id/members", g.ListMembers)

	// ---- Group wallet ----
	r.GET("/groups/:id/wallet", g.GetWallet)
	r.PATCH("/groups/:id/wallet", g.UpdateWallet)

	// ---- Bookings ----
	r.POST("/bookings", b.CreateBooking)
	r.GET("/my-bookings", b.MyBookings)
	r.GET("/bookings/:id", b.GetBooking)
	r.PATCH("/bookings/:id", b.UpdateBooking)

	// ---- Transactions ----
	r.POST("/transactions", t.CreateTransaction)
	r.GET("/my-transactions", t.MyTransactions)
	r.GET("/groups/:id/transactions", t.GroupTransactions)
}
