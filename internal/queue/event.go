// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully
// inserted.  It carries enough context for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID        uint64  `json:"booking_id"`
	UserID           uint64  `json:"user_id"`
	TourID           uint64  `json:"tour_id"`
	TourName         string  `json:"tour_name"`
	DestinationName  string  `json:"destination_name"`
	GroupID          *uint64 `json:"group_id,omitempty"`
	TravelerCount    int     `json:"traveler_count"`
	TotalAmountCents int64   `json:"total_amount_cents"`
	TravelDate       string  `json:"travel_date"`
	CreatedAt        string  `json:"created_at"`
}
