package service

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=service_test

import (
	"context"
	"time"

	"github.com/iliyamo/seat-inventory/internal/model"
	"github.com/iliyamo/seat-inventory/internal/queue"
	"github.com/iliyamo/seat-inventory/internal/repository"
)

// SeatStore is the seat persistence the engine needs.  Each method is
// atomic on its own; *repository.SeatRepo implements it on MySQL.
type SeatStore interface {
	Create(ctx context.Context, s *model.Seat) error
	CreateBulk(ctx context.Context, venueID uint64, seats []model.Seat) (repository.BulkInsertResult, error)
	FindActiveByLocation(ctx context.Context, venueID uint64, location string) (*model.Seat, error)
	GetByID(ctx context.Context, id uint64) (*model.Seat, error)
	ListActiveByVenue(ctx context.Context, venueID uint64) ([]model.Seat, error)
	UpdateFields(ctx context.Context, venueID uint64, ids []uint64, patch repository.SeatPatch, actor string, now time.Time) (int64, error)
	SoftDelete(ctx context.Context, venueID uint64, ids []uint64, actor string, now time.Time) (int64, error)
	AcquireHold(ctx context.Context, seatID uint64, actorID string, until, now time.Time) (bool, error)
	ReleaseHold(ctx context.Context, seatID uint64, holder, actor string, now time.Time) (int64, error)
	ReleaseByActor(ctx context.Context, venueID uint64, actorID string, now time.Time) (int64, error)
	ReclaimExpired(ctx context.Context, actor string, now time.Time) (int64, error)
	Stats(ctx context.Context, venueID uint64, now time.Time) (*model.VenueStats, error)
}

// VenueStore resolves venues; *repository.VenueRepo implements it.
type VenueStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
}

// Publisher receives an event after every committed change.
type Publisher interface {
	Publish(ctx context.Context, ev queue.InventoryEvent) error
}

var (
	_ SeatStore  = (*repository.SeatRepo)(nil)
	_ VenueStore = (*repository.VenueRepo)(nil)
	_ Publisher  = (*queue.Publisher)(nil)
	_ Publisher  = queue.NopPublisher{}
)
