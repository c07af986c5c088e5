package model

import "time"

// Destination categories stored in destinations.category.
const (
	CategoryBeach     = "BEACH"
	CategoryMountain  = "MOUNTAIN"
	CategoryHeritage  = "HERITAGE"
	CategoryAdventure = "ADVENTURE"
	CategoryCity      = "CITY"
)

// ValidCategory reports whether s is one of the known destination
// categories.  The catalog handlers reject unknown values on create.
func ValidCategory(s string) bool {
	switch s {
	case CategoryBeach, CategoryMountain, CategoryHeritage, CategoryAdventure, CategoryCity:
		return true
	}
	return false
}

// Destination represents a place travelers can visit.  Rating and
// ReviewCount are aggregates mutated by an external review pipeline;
// this service only reads and patches them verbatim.
type Destination struct {
	ID          uint64    // destinations.id
	Name        string    // destinations.name
	Description string    // destinations.description
	Category    string    // destinations.category
	Latitude    float64   // destinations.latitude
	Longitude   float64   // destinations.longitude
	Address     string    // destinations.address
	Rating      float64   // destinations.rating (externally maintained)
	ReviewCount uint32    // destinations.review_count (externally maintained)
	Featured    bool      // destinations.featured
	CreatedAt   time.Time // destinations.created_at
	UpdatedAt   time.Time // destinations.updated_at
}
