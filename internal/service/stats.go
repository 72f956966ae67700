package service

import (
	"context"

	"github.com/iliyamo/seat-inventory/internal/model"
)

// VenueStats computes the projection of the venue's active seats: total,
// available (vacant and not under a live hold), held, and breakdowns by
// type and by price.  Nothing is cached.
func (s *InventoryService) VenueStats(ctx context.Context, venueID uint64) (*model.VenueStats, error) {
	if err := s.requireVenue(ctx, venueID); err != nil {
		return nil, err
	}
	st, err := s.seats.Stats(ctx, venueID, s.now())
	if err != nil {
		return nil, storageErr(err, "venue stats")
	}
	return st, nil
}
