package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iliyamo/seat-inventory/internal/clock"
	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/errs"
	"github.com/iliyamo/seat-inventory/internal/model"
	"github.com/iliyamo/seat-inventory/internal/queue"
	"github.com/iliyamo/seat-inventory/internal/service"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	seats  *MockSeatStore
	venues *MockVenueStore
	clock  *clock.MockClock
	svc    *service.InventoryService

	mu     sync.Mutex
	events []queue.InventoryEvent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		seats:  NewMockSeatStore(ctrl),
		venues: NewMockVenueStore(ctrl),
		clock:  clock.NewMockClock(t0),
	}
	pub := NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev queue.InventoryEvent) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, ev)
			return nil
		}).AnyTimes()

	cfg := config.NewTestConfig().Inventory
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = service.NewInventoryService(f.seats, f.venues, pub, f.clock, cfg, logger)
	return f
}

func (f *fixture) published() []queue.InventoryEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]queue.InventoryEvent(nil), f.events...)
}

func (f *fixture) venueExists(id uint64) {
	f.venues.EXPECT().GetByID(gomock.Any(), id).Return(&model.Venue{ID: id, Name: "Main", IsActive: true}, nil)
}

func ptr[T any](v T) *T { return &v }

func vacantSeat(id, venueID uint64, location string) *model.Seat {
	return &model.Seat{ID: id, VenueID: venueID, Location: location, Type: "Regular", IsVacant: true, IsActive: true}
}

func heldSeat(id uint64, by string, until time.Time) *model.Seat {
	s := vacantSeat(id, 7, "A1")
	s.IsHeld = true
	s.HeldBy = &by
	s.HeldUntil = &until
	return s
}

// requireErrIs checks err against target with cockroachdb semantics, which
// also sees marks.
func requireErrIs(t *testing.T, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errs.Is(err, target), "expected %v to match %v", err, target)
}
