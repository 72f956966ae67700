package model

// VenueStats is the derived inventory projection of a venue.  Only active
// seats are counted.  Available excludes seats under an unexpired hold;
// Held counts them.
type VenueStats struct {
	VenueID   uint64         `json:"venue_id"`
	Total     int            `json:"total"`
	Available int            `json:"available"`
	Held      int            `json:"held"`
	ByType    map[string]int `json:"by_type"`
	ByPrice   map[string]int `json:"by_price"`
}

// NewVenueStats returns an empty projection with initialised maps so that
// callers can render zero counts without nil checks.
func NewVenueStats(venueID uint64) *VenueStats {
	return &VenueStats{
		VenueID: venueID,
		ByType:  map[string]int{},
		ByPrice: map[string]int{},
	}
}

// SeatRow groups the seats of one row for the seat-map projection.
type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}
