package service

import (
	"context"
	"math"

	"github.com/iliyamo/seat-inventory/internal/errs"
	"github.com/iliyamo/seat-inventory/internal/repository"
	"github.com/iliyamo/seat-inventory/internal/utils"
)

// SeatAddress is a validated row/column pair with its canonical location.
type SeatAddress struct {
	Row      string `json:"row"`
	Column   uint32 `json:"column"`
	Location string `json:"location"`
}

// ParseAddress normalizes row to upper case and validates both parts.
func ParseAddress(row string, column int) (SeatAddress, error) {
	r, ok := utils.NormalizeRowLabel(row)
	if !ok {
		return SeatAddress{}, errs.Wrapf(ErrInvalidIdentifier, "row %q must be 1-%d letters A-Z", row, utils.MaxRowLabelLen)
	}
	if column < 1 || int64(column) > math.MaxUint32 {
		return SeatAddress{}, errs.Wrapf(ErrInvalidIdentifier, "column %d must be a positive integer", column)
	}
	c := uint32(column)
	return SeatAddress{Row: r, Column: c, Location: utils.SeatLocation(r, c)}, nil
}

// Resolve returns the canonical address of row/column in the venue and
// fails with ErrCollision when an active seat already occupies it.
func (s *InventoryService) Resolve(ctx context.Context, venueID uint64, row string, column int) (SeatAddress, error) {
	addr, err := ParseAddress(row, column)
	if err != nil {
		return SeatAddress{}, err
	}
	if err := s.requireVenue(ctx, venueID); err != nil {
		return SeatAddress{}, err
	}
	_, err = s.seats.FindActiveByLocation(ctx, venueID, addr.Location)
	switch {
	case err == nil:
		return addr, errs.Wrapf(ErrCollision, "location %s", addr.Location)
	case errs.Is(err, repository.ErrSeatNotFound):
		return addr, nil
	default:
		return SeatAddress{}, storageErr(err, "find seat by location")
	}
}
