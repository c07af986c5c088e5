package router

import (
	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/handler"
)

// RegisterPublic registers the unauthenticated catalog browse endpoints.
// These routes carry no JWT or role middleware so guests can explore
// destinations and tours before creating an account.  The optional
// extra middlewares (response cache, rate limiter) are applied to this
// group only: catalog responses are user-independent and safe to cache,
// while authenticated routes must never be.
func RegisterPublic(e *echo.Echo, p *handler.CatalogHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)

	// Destinations
	g.GET("/destinations", p.ListDestinations) // ?category= and ?featured=true filters
	g.GET("/destinations/:id", p.GetDestination)
	g.GET("/destinations/:id/tours", p.ListToursByDestination)

	// Tours
	g.GET("/tours", p.ListTours)
	g.GET("/tours/:id", p.GetTour)

	// Search with name/destination/category/max_price filters and pagination.
	g.GET("/search/tours", p.SearchTours)
}
