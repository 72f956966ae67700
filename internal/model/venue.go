package model

// Venue is the owning side of seats.  Only the columns the inventory engine
// needs are mapped; venue administration lives elsewhere.
type Venue struct {
	ID       uint64 `json:"id"`        // venues.id
	Name     string `json:"name"`      // venues.name
	IsActive bool   `json:"is_active"` // venues.is_active
}
