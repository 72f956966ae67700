package handler_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/seat-inventory/internal/model"
	"github.com/iliyamo/seat-inventory/internal/service"
)

// MockInventory stands in for the inventory service.
type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) Resolve(ctx context.Context, venueID uint64, row string, column int) (service.SeatAddress, error) {
	args := m.Called(ctx, venueID, row, column)
	return args.Get(0).(service.SeatAddress), args.Error(1)
}

func (m *MockInventory) GenerateSingle(ctx context.Context, in service.SingleSeatInput, actorID string) (uint64, error) {
	args := m.Called(ctx, in, actorID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockInventory) GenerateBulk(ctx context.Context, in service.BulkRange, actorID string) (service.BulkResult, error) {
	args := m.Called(ctx, in, actorID)
	return args.Get(0).(service.BulkResult), args.Error(1)
}

func (m *MockInventory) ListVenueSeats(ctx context.Context, venueID uint64) ([]model.Seat, error) {
	args := m.Called(ctx, venueID)
	seats, _ := args.Get(0).([]model.Seat)
	return seats, args.Error(1)
}

func (m *MockInventory) SeatMap(ctx context.Context, venueID uint64) ([]model.SeatRow, error) {
	args := m.Called(ctx, venueID)
	rows, _ := args.Get(0).([]model.SeatRow)
	return rows, args.Error(1)
}

func (m *MockInventory) VenueStats(ctx context.Context, venueID uint64) (*model.VenueStats, error) {
	args := m.Called(ctx, venueID)
	stats, _ := args.Get(0).(*model.VenueStats)
	return stats, args.Error(1)
}

func (m *MockInventory) UpdateSeats(ctx context.Context, venueID uint64, ids []uint64, ch service.SeatChanges, actorID string) (int64, error) {
	args := m.Called(ctx, venueID, ids, ch, actorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventory) SoftDeleteSeats(ctx context.Context, venueID uint64, ids []uint64, actorID string) (int64, error) {
	args := m.Called(ctx, venueID, ids, actorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventory) AcquireHold(ctx context.Context, seatID uint64, actorID string, ttl time.Duration) (service.HoldResult, error) {
	args := m.Called(ctx, seatID, actorID, ttl)
	return args.Get(0).(service.HoldResult), args.Error(1)
}

func (m *MockInventory) ReleaseHold(ctx context.Context, seatID uint64, actorID string, override bool) (service.ReleaseResult, error) {
	args := m.Called(ctx, seatID, actorID, override)
	return args.Get(0).(service.ReleaseResult), args.Error(1)
}

func (m *MockInventory) ReleaseActorHolds(ctx context.Context, venueID uint64, actorID string) (int64, error) {
	args := m.Called(ctx, venueID, actorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventory) ReclaimExpiredHolds(ctx context.Context) (service.ReclaimResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.ReclaimResult), args.Error(1)
}

// MockCache records venue invalidations.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) InvalidateVenue(ctx context.Context, venueID uint64) error {
	args := m.Called(ctx, venueID)
	return args.Error(0)
}
