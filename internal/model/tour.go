package model

import "time"

// DayPlan is one entry of a tour itinerary.  Itineraries are stored as a
// JSON column on the tours table, so the json tags here define the wire
// and storage format at once.
type DayPlan struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Activities    []string `json:"activities"`
	Meals         []string `json:"meals"`
	Accommodation *string  `json:"accommodation,omitempty"`
}

// Tour is a bookable trip belonging to exactly one destination.  Prices
// are stored in minor units.  Availability holds the departure dates a
// tour can be booked for, formatted as "2006-01-02" strings; the set is
// informational only and createBooking does not cross-check it.
type Tour struct {
	ID                 uint64    // tours.id
	DestinationID      uint64    // tours.destination_id
	Name               string    // tours.name
	Description        string    // tours.description
	PriceCents         int64     // tours.price_cents
	OriginalPriceCents *int64    // tours.original_price_cents (nullable, pre-discount)
	MinGroupSize       uint32    // tours.min_group_size
	MaxGroupSize       uint32    // tours.max_group_size
	Itinerary          []DayPlan // tours.itinerary (JSON)
	Availability       []string  // tours.availability (JSON array of dates)
	Rating             float64   // tours.rating (externally maintained)
	ReviewCount        uint32    // tours.review_count (externally maintained)
	CreatedAt          time.Time // tours.created_at
	UpdatedAt          time.Time // tours.updated_at
}
