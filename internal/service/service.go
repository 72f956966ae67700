// Package service implements the seat inventory and hold engine on top of a
// transactional seat store.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/iliyamo/seat-inventory/internal/clock"
	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/queue"
)

// SweeperActor is recorded as updated_by on rows cleared by the sweep.
const SweeperActor = "system:sweeper"

// InventoryService exposes the engine's operations.  It holds no seat state
// between calls; every operation is a full read/validate/write cycle against
// the store.
type InventoryService struct {
	seats     SeatStore
	venues    VenueStore
	publisher Publisher
	clock     clock.Clock
	cfg       config.InventoryConfig
	logger    *slog.Logger
}

func NewInventoryService(
	seats SeatStore,
	venues VenueStore,
	publisher Publisher,
	clk clock.Clock,
	cfg config.InventoryConfig,
	logger *slog.Logger,
) *InventoryService {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &InventoryService{
		seats:     seats,
		venues:    venues,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// now is millisecond precision to match DATETIME(3).
func (s *InventoryService) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Millisecond)
}

// publish emits an event after commit.  Broker failures never fail the
// operation that already committed.
func (s *InventoryService) publish(ctx context.Context, ev queue.InventoryEvent) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = s.now()
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "inventory event not published", "kind", ev.Kind, "error", err)
	}
}

func (s *InventoryService) requireVenue(ctx context.Context, venueID uint64) error {
	if _, err := s.venues.GetByID(ctx, venueID); err != nil {
		return mapRepoErr(err, "get venue")
	}
	return nil
}

func requireActor(actorID string) error {
	if actorID == "" {
		return ErrInvalidActor
	}
	return nil
}
