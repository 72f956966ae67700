package service

import (
	"context"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/seat-inventory/internal/errs"
	"github.com/iliyamo/seat-inventory/internal/metrics"
	"github.com/iliyamo/seat-inventory/internal/model"
	"github.com/iliyamo/seat-inventory/internal/queue"
	"github.com/iliyamo/seat-inventory/internal/repository"
	"github.com/iliyamo/seat-inventory/internal/utils"
)

const maxTypeLen = 32

// SingleSeatInput describes one seat to create.
type SingleSeatInput struct {
	VenueID uint64
	Row     string
	Column  int
	Type    string
	Price   string
}

// BulkRange describes a rectangular range of seats to create.
type BulkRange struct {
	VenueID  uint64
	RowStart string
	RowEnd   string
	ColStart int
	ColEnd   int
	Type     string
	Price    string
}

// BulkResult counts created seats and seats skipped because an active seat
// already occupied the location.
type BulkResult struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
}

// SeatChanges is a sparse set of field changes.  Nil fields are untouched.
type SeatChanges struct {
	Type    *string
	Price   *string
	Vacancy *string
}

func parsePrice(raw string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, errs.Wrapf(ErrInvalidPrice, "price %q is not a number", raw)
	}
	if p.IsNegative() {
		return decimal.Decimal{}, errs.Wrapf(ErrInvalidPrice, "price %s is negative", p)
	}
	return p.Round(2), nil
}

func normalizeType(raw string) (string, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", errs.Wrap(ErrInvalidType, "type must not be empty")
	}
	if len(t) > maxTypeLen {
		return "", errs.Wrapf(ErrInvalidType, "type longer than %d characters", maxTypeLen)
	}
	return t, nil
}

// parseVacancy maps the accepted spellings to a vacancy flag.  The second
// result is false for unrecognised input, which callers ignore.
func parseVacancy(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "vacant", "yes", "true", "1":
		return true, true
	case "not_vacant", "not-vacant", "no", "false", "0":
		return false, true
	default:
		return false, false
	}
}

func (s *InventoryService) newSeat(venueID uint64, addr SeatAddress, typ string, price decimal.Decimal, actorID string) model.Seat {
	now := s.now()
	return model.Seat{
		VenueID:   venueID,
		Row:       addr.Row,
		Column:    addr.Column,
		Location:  addr.Location,
		Type:      typ,
		Price:     price,
		IsVacant:  true,
		IsActive:  true,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedBy: actorID,
		UpdatedAt: now,
	}
}

// GenerateSingle creates one seat and returns its id.
func (s *InventoryService) GenerateSingle(ctx context.Context, in SingleSeatInput, actorID string) (uint64, error) {
	if err := requireActor(actorID); err != nil {
		return 0, err
	}
	addr, err := ParseAddress(in.Row, in.Column)
	if err != nil {
		return 0, err
	}
	typ, err := normalizeType(in.Type)
	if err != nil {
		return 0, err
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return 0, err
	}

	seat := s.newSeat(in.VenueID, addr, typ, price, actorID)
	if err := s.seats.Create(ctx, &seat); err != nil {
		if errs.Is(err, repository.ErrDuplicateLocation) {
			return 0, errs.Wrapf(ErrCollision, "location %s", addr.Location)
		}
		return 0, mapRepoErr(err, "create seat")
	}

	metrics.SeatsGenerated("single", 1)
	s.logger.InfoContext(ctx, "seat created", "venue_id", in.VenueID, "seat_id", seat.ID, "location", seat.Location)
	s.publish(ctx, queue.InventoryEvent{
		Kind: queue.KindSeatsGenerated, VenueID: in.VenueID, ActorID: actorID, Count: 1,
		SeatIDs: []uint64{seat.ID}, Locations: []string{seat.Location},
	})
	return seat.ID, nil
}

// validateBulk checks every precondition of GenerateBulk before any write.
func (s *InventoryService) validateBulk(in BulkRange) (string, string, string, decimal.Decimal, error) {
	rs := strings.ToUpper(strings.TrimSpace(in.RowStart))
	re := strings.ToUpper(strings.TrimSpace(in.RowEnd))
	single := func(r string) bool { return len(r) == 1 && r[0] >= 'A' && r[0] <= 'Z' }
	if !single(rs) || !single(re) {
		return "", "", "", decimal.Decimal{}, errs.Wrapf(ErrInvalidRange, "rows %q..%q must be single letters A-Z", in.RowStart, in.RowEnd)
	}
	if rs > re {
		return "", "", "", decimal.Decimal{}, errs.Wrapf(ErrInvalidRange, "rowStart %q > rowEnd %q", rs, re)
	}
	if in.ColStart < 1 || in.ColEnd < in.ColStart {
		return "", "", "", decimal.Decimal{}, errs.Wrapf(ErrInvalidRange, "columns %d..%d must be positive and ascending", in.ColStart, in.ColEnd)
	}
	typ, err := normalizeType(in.Type)
	if err != nil {
		return "", "", "", decimal.Decimal{}, errs.Mark(err, ErrInvalidRange)
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return "", "", "", decimal.Decimal{}, errs.Mark(err, ErrInvalidRange)
	}
	grid := int(re[0]-rs[0]+1) * (in.ColEnd - in.ColStart + 1)
	if s.cfg.MaxGridSize > 0 && grid > s.cfg.MaxGridSize {
		return "", "", "", decimal.Decimal{}, errs.Wrapf(ErrInvalidRange, "grid of %d seats exceeds limit %d", grid, s.cfg.MaxGridSize)
	}
	return rs, re, typ, price, nil
}

// GenerateBulk creates every seat of the rectangle that is not already
// occupied by an active seat.  Occupied locations are skipped, not errors,
// so re-running over an overlapping range is idempotent.
func (s *InventoryService) GenerateBulk(ctx context.Context, in BulkRange, actorID string) (BulkResult, error) {
	if err := requireActor(actorID); err != nil {
		return BulkResult{}, err
	}
	rs, re, typ, price, err := s.validateBulk(in)
	if err != nil {
		return BulkResult{}, err
	}

	candidates := make([]model.Seat, 0, int(re[0]-rs[0]+1)*(in.ColEnd-in.ColStart+1))
	for r := rs[0]; r <= re[0]; r++ {
		row := string(r)
		for c := in.ColStart; c <= in.ColEnd; c++ {
			addr := SeatAddress{Row: row, Column: uint32(c), Location: utils.SeatLocation(row, uint32(c))}
			candidates = append(candidates, s.newSeat(in.VenueID, addr, typ, price, actorID))
		}
	}

	res, err := s.seats.CreateBulk(ctx, in.VenueID, candidates)
	if err != nil {
		return BulkResult{}, mapRepoErr(err, "bulk create seats")
	}

	out := BulkResult{Generated: res.Inserted, Skipped: len(res.Skipped)}
	metrics.SeatsGenerated("bulk", out.Generated)
	metrics.SeatsSkipped(out.Skipped)
	s.logger.InfoContext(ctx, "seats generated",
		"venue_id", in.VenueID, "range", rs+"-"+re, "generated", out.Generated, "skipped", out.Skipped)
	if out.Generated > 0 {
		s.publish(ctx, queue.InventoryEvent{
			Kind: queue.KindSeatsGenerated, VenueID: in.VenueID, ActorID: actorID, Count: int64(out.Generated),
		})
	}
	return out, nil
}

func uniqueIDs(ids []uint64) []uint64 {
	out := make([]uint64, 0, len(ids))
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == 0 {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func buildPatch(ch SeatChanges) (repository.SeatPatch, error) {
	var p repository.SeatPatch
	if ch.Type != nil {
		t, err := normalizeType(*ch.Type)
		if err != nil {
			return p, err
		}
		p.Type = &t
	}
	if ch.Price != nil {
		price, err := parsePrice(*ch.Price)
		if err != nil {
			return p, err
		}
		p.Price = &price
	}
	if ch.Vacancy != nil {
		if v, ok := parseVacancy(*ch.Vacancy); ok {
			p.IsVacant = &v
		}
	}
	if p.Empty() {
		return p, ErrNoChangesSpecified
	}
	return p, nil
}

// UpdateSeats applies ch to the given seats of the venue in one transaction
// and returns the number of seats that actually changed.  Ids of other
// venues or of inactive seats are silently excluded.
func (s *InventoryService) UpdateSeats(ctx context.Context, venueID uint64, ids []uint64, ch SeatChanges, actorID string) (int64, error) {
	if err := requireActor(actorID); err != nil {
		return 0, err
	}
	patch, err := buildPatch(ch)
	if err != nil {
		return 0, err
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, ErrNoSeatsSpecified
	}
	if err := s.requireVenue(ctx, venueID); err != nil {
		return 0, err
	}

	n, err := s.seats.UpdateFields(ctx, venueID, ids, patch, actorID, s.now())
	if err != nil {
		return 0, storageErr(err, "update seats")
	}

	metrics.SeatsMutated("update", n)
	s.logger.InfoContext(ctx, "seats updated", "venue_id", venueID, "requested", len(ids), "affected", n)
	if n > 0 {
		s.publish(ctx, queue.InventoryEvent{Kind: queue.KindSeatsUpdated, VenueID: venueID, ActorID: actorID, Count: n, SeatIDs: ids})
	}
	return n, nil
}

// SoftDeleteSeats marks the given seats of the venue inactive.  Rows are
// kept as history and the location becomes free for a new seat.
func (s *InventoryService) SoftDeleteSeats(ctx context.Context, venueID uint64, ids []uint64, actorID string) (int64, error) {
	if err := requireActor(actorID); err != nil {
		return 0, err
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, ErrNoSeatsSpecified
	}
	if err := s.requireVenue(ctx, venueID); err != nil {
		return 0, err
	}

	n, err := s.seats.SoftDelete(ctx, venueID, ids, actorID, s.now())
	if err != nil {
		return 0, storageErr(err, "soft delete seats")
	}

	metrics.SeatsMutated("delete", n)
	s.logger.InfoContext(ctx, "seats deactivated", "venue_id", venueID, "requested", len(ids), "affected", n)
	if n > 0 {
		s.publish(ctx, queue.InventoryEvent{Kind: queue.KindSeatsDeleted, VenueID: venueID, ActorID: actorID, Count: n, SeatIDs: ids})
	}
	return n, nil
}

// ListVenueSeats returns the active seats of the venue ordered by row and
// then column.  Lapsed holds are presented as released.
func (s *InventoryService) ListVenueSeats(ctx context.Context, venueID uint64) ([]model.Seat, error) {
	if err := s.requireVenue(ctx, venueID); err != nil {
		return nil, err
	}
	seats, err := s.seats.ListActiveByVenue(ctx, venueID)
	if err != nil {
		return nil, storageErr(err, "list seats")
	}
	now := s.now()
	for i := range seats {
		seats[i] = seats[i].WithLazyExpiry(now)
	}
	slices.SortStableFunc(seats, func(a, b model.Seat) int {
		if c := utils.CompareRows(a.Row, b.Row); c != 0 {
			return c
		}
		return int(a.Column) - int(b.Column)
	})
	return seats, nil
}

// SeatMap groups ListVenueSeats by row for the seat-map projection.
func (s *InventoryService) SeatMap(ctx context.Context, venueID uint64) ([]model.SeatRow, error) {
	seats, err := s.ListVenueSeats(ctx, venueID)
	if err != nil {
		return nil, err
	}
	rows := []model.SeatRow{}
	for _, seat := range seats {
		if n := len(rows); n == 0 || rows[n-1].Row != seat.Row {
			rows = append(rows, model.SeatRow{Row: seat.Row})
		}
		last := &rows[len(rows)-1]
		last.Seats = append(last.Seats, seat)
	}
	return rows, nil
}
