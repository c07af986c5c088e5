package model

import "time"

// Payment and booking states stored on bookings.  Both fields are
// caller-set; nothing derives payment_status from paid/total amounts.
const (
	PaymentPending   = "PENDING"
	PaymentPartial   = "PARTIAL"
	PaymentCompleted = "COMPLETED"

	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

// Traveler is one person covered by a booking.  The list is stored as a
// JSON column, ordered as supplied by the client.
type Traveler struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	IDType   string `json:"id_type"`
	IDNumber string `json:"id_number"`
}

// Booking records a user's (optionally group-backed) purchase of a tour
// departure.  TravelDate is the chosen departure day.
type Booking struct {
	ID               uint64     // bookings.id
	UserID           uint64     // bookings.user_id
	TourID           uint64     // bookings.tour_id
	GroupID          *uint64    // bookings.group_id (nullable)
	Travelers        []Traveler // bookings.travelers (JSON)
	TotalAmountCents int64      // bookings.total_amount_cents
	PaidAmountCents  int64      // bookings.paid_amount_cents
	PaymentStatus    string     // bookings.payment_status
	BookingStatus    string     // bookings.booking_status
	TravelDate       time.Time  // bookings.travel_date (date only)
	SpecialRequests  *string    // bookings.special_requests (nullable)
	CreatedAt        time.Time  // bookings.created_at
	UpdatedAt        time.Time  // bookings.updated_at
}

// NewBooking builds a booking in its initial state.  Payment starts at
// zero with PENDING payment and booking status regardless of the
// supplied total; callers advance the two status fields independently
// via updates.
func NewBooking(userID, tourID uint64, groupID *uint64, travelers []Traveler, totalCents int64, travelDate time.Time, specialRequests *string) *Booking {
	return &Booking{
		UserID:           userID,
		TourID:           tourID,
		GroupID:          groupID,
		Travelers:        travelers,
		TotalAmountCents: totalCents,
		PaidAmountCents:  0,
		PaymentStatus:    PaymentPending,
		BookingStatus:    BookingPending,
		TravelDate:       travelDate,
		SpecialRequests:  specialRequests,
	}
}
