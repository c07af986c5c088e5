// This file defines handlers for the public catalog API.  These routes
// let unauthenticated visitors browse destinations and tours; responses
// sit behind the Redis cache middleware, so they must stay free of
// per-user data.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/repository"
)

// CatalogHandler aggregates repositories needed for catalog browsing.
type CatalogHandler struct {
	Destinations *repository.DestinationRepo
	Tours        *repository.TourRepo
}

func NewCatalogHandler(d *repository.DestinationRepo, t *repository.TourRepo) *CatalogHandler {
	if d == nil || t == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{Destinations: d, Tours: t}
}

// ListDestinations handles GET /v1/destinations.  The optional
// ?category= query narrows the list to one category; ?featured=true
// returns only featured entries.
func (h *CatalogHandler) ListDestinations(c echo.Context) error {
	ctx := c.Request().Context()
	if cat := strings.ToUpper(strings.TrimSpace(c.QueryParam("category"))); cat != "" {
		items, err := h.Destinations.ListByCategory(ctx, cat)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	}
	if c.QueryParam("featured") == "true" {
		items, err := h.Destinations.ListFeatured(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	}
	items, err := h.Destinations.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetDestination handles GET /v1/destinations/:id.
func (h *CatalogHandler) GetDestination(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	d, err := h.Destinations.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrDestinationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "destination not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, d)
}

// ListToursByDestination handles GET /v1/destinations/:id/tours.  It
// validates the destination exists, then lists its tours in insertion
// order.
func (h *CatalogHandler) ListToursByDestination(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Destinations.GetByID(ctx, id); err != nil {
		if err == repository.ErrDestinationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "destination not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items, err := h.Tours.ListByDestination(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListTours handles GET /v1/tours.
func (h *CatalogHandler) ListTours(c echo.Context) error {
	items, err := h.Tours.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetTour handles GET /v1/tours/:id.
func (h *CatalogHandler) GetTour(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	t, err := h.Tours.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrTourNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, t)
}

// SearchTours handles GET /v1/search/tours with name/destination/
// category/max_price filters and pagination.
func (h *CatalogHandler) SearchTours(c echo.Context) error {
	q := repository.TourSearchQuery{
		Name:        strings.TrimSpace(c.QueryParam("name")),
		Destination: strings.TrimSpace(c.QueryParam("destination")),
		Category:    strings.TrimSpace(c.QueryParam("category")),
	}
	if v := c.QueryParam("max_price_cents"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.MaxPriceCents = n
		}
	}
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Page = n
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.PageSize = n
		}
	}
	items, total, err := h.Tours.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": total})
}
