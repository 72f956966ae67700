package service

import (
	"context"
	"time"

	"github.com/iliyamo/seat-inventory/internal/errs"
	"github.com/iliyamo/seat-inventory/internal/metrics"
	"github.com/iliyamo/seat-inventory/internal/model"
	"github.com/iliyamo/seat-inventory/internal/queue"
	"github.com/iliyamo/seat-inventory/internal/repository"
)

const fallbackHoldTTL = 10 * time.Minute

// HoldResult is returned by a successful acquisition.
type HoldResult struct {
	Held      bool      `json:"held"`
	SeatID    uint64    `json:"seat_id"`
	VenueID   uint64    `json:"venue_id,omitempty"`
	HeldUntil time.Time `json:"held_until"`
}

// ReleaseResult is returned by ReleaseHold.  Released is true even when
// there was nothing to release; VenueID is set only when a hold was cleared.
type ReleaseResult struct {
	Released bool   `json:"released"`
	VenueID  uint64 `json:"venue_id,omitempty"`
}

// holdTTL applies the configured default and cap.
func (s *InventoryService) holdTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = s.cfg.HoldTTL
	}
	if ttl <= 0 {
		ttl = fallbackHoldTTL
	}
	if s.cfg.HoldMaxTTL > 0 && ttl > s.cfg.HoldMaxTTL {
		ttl = s.cfg.HoldMaxTTL
	}
	return ttl
}

// AcquireHold places a hold on a seat for actorID, or extends the actor's
// existing hold.  A hold of another actor that already lapsed is taken over
// without waiting for the sweep.  The write is a single conditional update;
// when it matches no row the seat is re-read to report NotFound, NotVacant
// or AlreadyHeld, and a lost race is retried a bounded number of times.
func (s *InventoryService) AcquireHold(ctx context.Context, seatID uint64, actorID string, ttl time.Duration) (HoldResult, error) {
	if err := requireActor(actorID); err != nil {
		return HoldResult{}, err
	}
	ttl = s.holdTTL(ttl)

	attempts := s.cfg.AcquireRetries
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		now := s.now()
		until := now.Add(ttl)

		ok, err := s.seats.AcquireHold(ctx, seatID, actorID, until, now)
		if err != nil {
			metrics.HoldOperation("acquire", "error")
			return HoldResult{}, storageErr(err, "acquire hold")
		}
		if ok {
			return s.acquired(ctx, seatID, actorID, until), nil
		}

		seat, err := s.seats.GetByID(ctx, seatID)
		if err != nil {
			if errs.Is(err, repository.ErrSeatNotFound) {
				metrics.HoldOperation("acquire", "not_found")
				return HoldResult{}, errs.Wrap(ErrNotFound, "seat")
			}
			metrics.HoldOperation("acquire", "error")
			return HoldResult{}, storageErr(err, "read seat after contended acquire")
		}
		if err := classifyRejectedHold(seat, actorID, now); err != nil {
			return HoldResult{}, err
		}
		// Our own hold already reaching until: the conditional write changed nothing.
		if seat.HoldActive(now) && seat.HeldBy != nil && *seat.HeldBy == actorID && !seat.HeldUntil.Before(until) {
			return s.acquired(ctx, seatID, actorID, *seat.HeldUntil), nil
		}
		s.logger.DebugContext(ctx, "hold acquisition raced, retrying", "seat_id", seatID, "attempt", i+1)
	}

	metrics.HoldOperation("acquire", "contended")
	return HoldResult{}, errs.Wrapf(ErrAlreadyHeld, "lost the race for seat %d after %d attempts", seatID, attempts)
}

// classifyRejectedHold explains why the conditional write did not match
// seat.  It returns nil when the seat looks acquirable, meaning the state
// changed between the write and the read.
func classifyRejectedHold(seat *model.Seat, actorID string, now time.Time) error {
	switch {
	case !seat.IsActive:
		metrics.HoldOperation("acquire", "not_found")
		return errs.Wrap(ErrNotFound, "seat is inactive")
	case !seat.IsVacant:
		metrics.HoldOperation("acquire", "not_vacant")
		return errs.Wrapf(ErrNotVacant, "seat %d", seat.ID)
	case seat.HeldByOther(actorID, now):
		metrics.HoldOperation("acquire", "contended")
		return &HoldConflictError{HeldUntil: *seat.HeldUntil}
	}
	return nil
}

func (s *InventoryService) acquired(ctx context.Context, seatID uint64, actorID string, until time.Time) HoldResult {
	res := HoldResult{Held: true, SeatID: seatID, HeldUntil: until}
	ev := queue.InventoryEvent{
		Kind: queue.KindHoldAcquired, ActorID: actorID, Count: 1, SeatIDs: []uint64{seatID}, HeldUntil: &until,
	}
	if seat, err := s.seats.GetByID(ctx, seatID); err == nil {
		res.VenueID = seat.VenueID
		ev.VenueID = seat.VenueID
		ev.Locations = []string{seat.Location}
	} else {
		s.logger.WarnContext(ctx, "hold placed but seat re-read failed", "seat_id", seatID, "error", err)
	}

	metrics.HoldOperation("acquire", "ok")
	s.logger.InfoContext(ctx, "hold acquired", "seat_id", seatID, "actor_id", actorID, "held_until", until)
	s.publish(ctx, ev)
	return res
}

// ReleaseHold clears the hold on a seat.  Without override only the
// holder's own hold (or a lapsed one) is cleared and a live hold of another
// actor yields AlreadyHeld.  Releasing a seat that is not held is a no-op.
func (s *InventoryService) ReleaseHold(ctx context.Context, seatID uint64, actorID string, override bool) (ReleaseResult, error) {
	if err := requireActor(actorID); err != nil {
		return ReleaseResult{}, err
	}
	holder := actorID
	if override {
		holder = ""
	}
	now := s.now()

	n, err := s.seats.ReleaseHold(ctx, seatID, holder, actorID, now)
	if err != nil {
		metrics.HoldOperation("release", "error")
		return ReleaseResult{}, storageErr(err, "release hold")
	}
	if n == 0 {
		seat, err := s.seats.GetByID(ctx, seatID)
		if err != nil {
			if errs.Is(err, repository.ErrSeatNotFound) {
				metrics.HoldOperation("release", "not_found")
				return ReleaseResult{}, errs.Wrap(ErrNotFound, "seat")
			}
			return ReleaseResult{}, storageErr(err, "read seat after release")
		}
		if !override && seat.HeldByOther(actorID, now) {
			metrics.HoldOperation("release", "contended")
			return ReleaseResult{}, &HoldConflictError{HeldUntil: *seat.HeldUntil}
		}
		return ReleaseResult{Released: true}, nil
	}

	res := ReleaseResult{Released: true}
	ev := queue.InventoryEvent{Kind: queue.KindHoldReleased, ActorID: actorID, Count: n, SeatIDs: []uint64{seatID}}
	if seat, err := s.seats.GetByID(ctx, seatID); err == nil {
		res.VenueID = seat.VenueID
		ev.VenueID = seat.VenueID
		ev.Locations = []string{seat.Location}
	} else {
		s.logger.WarnContext(ctx, "hold released but seat re-read failed", "seat_id", seatID, "error", err)
	}

	metrics.HoldOperation("release", "ok")
	s.logger.InfoContext(ctx, "hold released", "seat_id", seatID, "actor_id", actorID, "override", override)
	s.publish(ctx, ev)
	return res, nil
}

// ReleaseActorHolds drops every hold actorID has in the venue, as on
// checkout cancel, and returns how many were released.
func (s *InventoryService) ReleaseActorHolds(ctx context.Context, venueID uint64, actorID string) (int64, error) {
	if err := requireActor(actorID); err != nil {
		return 0, err
	}
	if err := s.requireVenue(ctx, venueID); err != nil {
		return 0, err
	}
	n, err := s.seats.ReleaseByActor(ctx, venueID, actorID, s.now())
	if err != nil {
		return 0, storageErr(err, "release actor holds")
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "actor holds released", "venue_id", venueID, "actor_id", actorID, "released", n)
		s.publish(ctx, queue.InventoryEvent{Kind: queue.KindHoldReleased, VenueID: venueID, ActorID: actorID, Count: n})
	}
	return n, nil
}
