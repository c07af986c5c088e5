package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roamly/group-travel-booking/internal/model"
	"github.com/roamly/group-travel-booking/internal/queue"
	"github.com/roamly/group-travel-booking/internal/repository"
	queue_publisher "github.com/roamly/group-travel-booking/internal/service"
)

// BookingHandler serves the booking endpoints.  Creation publishes a
// booking.created event to the broker; publish failures are logged by
// the publisher and never fail the request.
type BookingHandler struct {
	Bookings     *repository.BookingRepo
	Tours        *repository.TourRepo
	Destinations *repository.DestinationRepo
}

func NewBookingHandler(b *repository.BookingRepo, t *repository.TourRepo, d *repository.DestinationRepo) *BookingHandler {
	if b == nil || t == nil || d == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Tours: t, Destinations: d}
}

type createBookingReq struct {
	TourID           uint64           `json:"tour_id"`
	GroupID          *uint64          `json:"group_id"`
	Travelers        []model.Traveler `json:"travelers"`
	TotalAmountCents int64            `json:"total_amount_cents"`
	TravelDate       string           `json:"travel_date"` // 2006-01-02
	SpecialRequests  *string          `json:"special_requests"`
}

// CreateBooking handles POST /v1/bookings.  The booking always starts
// with zero paid amount and PENDING payment and booking status, whatever
// total the client supplies.  The traveler count is not checked against
// the tour's group-size bounds and the travel date is not checked
// against the tour's availability set; both stay caller-owned for now.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TourID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tour_id required"})
	}
	if len(req.Travelers) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "travelers required"})
	}
	travelDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.TravelDate))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "travel_date must be YYYY-MM-DD"})
	}

	ctx := c.Request().Context()
	tour, err := h.Tours.GetByID(ctx, req.TourID)
	if err != nil {
		if err == repository.ErrTourNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	b := model.NewBooking(uid, req.TourID, req.GroupID, req.Travelers, req.TotalAmountCents, travelDate, req.SpecialRequests)
	if err := h.Bookings.Create(ctx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	destName := ""
	if dest, err := h.Destinations.GetByID(ctx, tour.DestinationID); err == nil {
		destName = dest.Name
	}
	ev := queue.BookingCreatedEvent{
		BookingID:        b.ID,
		UserID:           b.UserID,
		TourID:           b.TourID,
		TourName:         tour.Name,
		DestinationName:  destName,
		GroupID:          b.GroupID,
		TravelerCount:    len(b.Travelers),
		TotalAmountCents: b.TotalAmountCents,
		TravelDate:       b.TravelDate.Format("2006-01-02"),
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339),
	}
	_ = queue_publisher.PublishBookingCreated(ctx, ev) // best effort

	return c.JSON(http.StatusCreated, b)
}

// MyBookings handles GET /v1/my-bookings, newest first.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Bookings.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetBooking handles GET /v1/bookings/:id.  A booking is visible to its
// owner and to admins.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := requireOwner(c, b.UserID); err != nil {
		if err == repository.ErrForbidden {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, b)
}

type updateBookingReq struct {
	PaidAmountCents *int64  `json:"paid_amount_cents"`
	PaymentStatus   *string `json:"payment_status"`
	BookingStatus   *string `json:"booking_status"`
	TravelDate      *string `json:"travel_date"`
	SpecialRequests *string `json:"special_requests"`
}

// UpdateBooking handles PATCH /v1/bookings/:id.  Only the supplied
// fields change; payment_status and paid_amount_cents are independent
// and nothing enforces paid <= total or derives one status from the
// other.  Applying the same patch twice leaves the row unchanged after
// the first application.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PaymentStatus != nil {
		s := strings.ToUpper(strings.TrimSpace(*req.PaymentStatus))
		switch s {
		case model.PaymentPending, model.PaymentPartial, model.PaymentCompleted:
			req.PaymentStatus = &s
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown payment_status"})
		}
	}
	if req.BookingStatus != nil {
		s := strings.ToUpper(strings.TrimSpace(*req.BookingStatus))
		switch s {
		case model.BookingPending, model.BookingConfirmed, model.BookingCancelled:
			req.BookingStatus = &s
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown booking_status"})
		}
	}
	if req.TravelDate != nil {
		if _, err := time.Parse("2006-01-02", *req.TravelDate); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "travel_date must be YYYY-MM-DD"})
		}
	}
	ctx := c.Request().Context()
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := requireOwner(c, b.UserID); err != nil {
		if err == repository.ErrForbidden {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	upd := repository.BookingUpdate{
		PaidAmountCents: req.PaidAmountCents,
		PaymentStatus:   req.PaymentStatus,
		BookingStatus:   req.BookingStatus,
		TravelDate:      req.TravelDate,
		SpecialRequests: req.SpecialRequests,
	}
	if err := h.Bookings.Update(ctx, id, upd); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	b, err = h.Bookings.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, b)
}

// ListByTour handles GET /v1/admin/tours/:id/bookings (ADMIN only),
// newest first.
func (h *BookingHandler) ListByTour(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	items, err := h.Bookings.ListByTour(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
