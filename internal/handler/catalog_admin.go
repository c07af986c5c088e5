package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/model"
	"github.com/roamly/group-travel-booking/internal/repository"
)

// AdminCatalogHandler bundles the repositories admins use to manage the
// catalog.  All routes behind it require the ADMIN role.
type AdminCatalogHandler struct {
	Destinations *repository.DestinationRepo
	Tours        *repository.TourRepo
}

func NewAdminCatalogHandler(d *repository.DestinationRepo, t *repository.TourRepo) *AdminCatalogHandler {
	if d == nil || t == nil {
		panic("nil repository passed to NewAdminCatalogHandler")
	}
	return &AdminCatalogHandler{Destinations: d, Tours: t}
}

type createDestinationReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
}

// CreateDestination handles POST /v1/admin/destinations.  New
// destinations start unrated and unfeatured.
func (h *AdminCatalogHandler) CreateDestination(c echo.Context) error {
	var req createDestinationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.ToUpper(strings.TrimSpace(req.Category))
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	if !model.ValidCategory(req.Category) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}
	d := model.Destination{
		Name: req.Name, Description: req.Description, Category: req.Category,
		Latitude: req.Latitude, Longitude: req.Longitude, Address: req.Address,
	}
	if err := h.Destinations.Create(c.Request().Context(), &d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, d)
}

type updateDestinationReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     *string  `json:"address"`
	Rating      *float64 `json:"rating"`
	ReviewCount *uint32  `json:"review_count"`
	Featured    *bool    `json:"featured"`
}

// UpdateDestination handles PATCH /v1/admin/destinations/:id.  Only the
// supplied fields are merged; no field-level validation is applied
// beyond the category enum.
func (h *AdminCatalogHandler) UpdateDestination(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateDestinationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Category != nil {
		cat := strings.ToUpper(strings.TrimSpace(*req.Category))
		if !model.ValidCategory(cat) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
		}
		req.Category = &cat
	}
	ctx := c.Request().Context()
	if _, err := h.Destinations.GetByID(ctx, id); err != nil {
		if err == repository.ErrDestinationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "destination not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	upd := repository.DestinationUpdate{
		Name: req.Name, Description: req.Description, Category: req.Category,
		Latitude: req.Latitude, Longitude: req.Longitude, Address: req.Address,
		Rating: req.Rating, ReviewCount: req.ReviewCount, Featured: req.Featured,
	}
	if err := h.Destinations.Update(ctx, id, upd); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	d, err := h.Destinations.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, d)
}

type createTourReq struct {
	DestinationID      uint64          `json:"destination_id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	PriceCents         int64           `json:"price_cents"`
	OriginalPriceCents *int64          `json:"original_price_cents"`
	MinGroupSize       uint32          `json:"min_group_size"`
	MaxGroupSize       uint32          `json:"max_group_size"`
	Itinerary          []model.DayPlan `json:"itinerary"`
	Availability       []string        `json:"availability"`
}

// CreateTour handles POST /v1/admin/tours.  The destination must exist;
// price and group-size bounds are stored as supplied, without
// cross-field validation.
func (h *AdminCatalogHandler) CreateTour(c echo.Context) error {
	var req createTourReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.DestinationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and destination_id required"})
	}
	ctx := c.Request().Context()
	if _, err := h.Destinations.GetByID(ctx, req.DestinationID); err != nil {
		if err == repository.ErrDestinationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "destination not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	t := model.Tour{
		DestinationID: req.DestinationID, Name: req.Name, Description: req.Description,
		PriceCents: req.PriceCents, OriginalPriceCents: req.OriginalPriceCents,
		MinGroupSize: req.MinGroupSize, MaxGroupSize: req.MaxGroupSize,
		Itinerary: req.Itinerary, Availability: req.Availability,
	}
	if err := h.Tours.Create(ctx, &t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, t)
}

type updateTourReq struct {
	Name               *string         `json:"name"`
	Description        *string         `json:"description"`
	PriceCents         *int64          `json:"price_cents"`
	OriginalPriceCents *int64          `json:"original_price_cents"`
	MinGroupSize       *uint32         `json:"min_group_size"`
	MaxGroupSize       *uint32         `json:"max_group_size"`
	Itinerary          []model.DayPlan `json:"itinerary"`
	Availability       []string        `json:"availability"`
	Rating             *float64        `json:"rating"`
	ReviewCount        *uint32         `json:"review_count"`
}

// UpdateTour handles PATCH /v1/admin/tours/:id.
func (h *AdminCatalogHandler) UpdateTour(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateTourReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx := c.Request().Context()
	if _, err := h.Tours.GetByID(ctx, id); err != nil {
		if err == repository.ErrTourNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	upd := repository.TourUpdate{
		Name: req.Name, Description: req.Description,
		PriceCents: req.PriceCents, OriginalPriceCents: req.OriginalPriceCents,
		MinGroupSize: req.MinGroupSize, MaxGroupSize: req.MaxGroupSize,
		Itinerary: req.Itinerary, Availability: req.Availability,
		Rating: req.Rating, ReviewCount: req.ReviewCount,
	}
	if err := h.Tours.Update(ctx, id, upd); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	t, err := h.Tours.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, t)
}
