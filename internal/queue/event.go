// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// Event kinds published by the inventory engine.
const (
	KindSeatsGenerated = "seats.generated"
	KindSeatsUpdated   = "seats.updated"
	KindSeatsDeleted   = "seats.deleted"
	KindHoldAcquired   = "hold.acquired"
	KindHoldReleased   = "hold.released"
	KindHoldsReclaimed = "holds.reclaimed"
)

// InventoryEvent is published after a committed inventory change.  It
// carries enough information for downstream consumers (audit log, cache
// warmers, analytics) to react without querying the primary database.
type InventoryEvent struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	VenueID    uint64     `json:"venue_id,omitempty"`
	SeatIDs    []uint64   `json:"seat_ids,omitempty"`
	Locations  []string   `json:"locations,omitempty"`
	ActorID    string     `json:"actor_id"`
	Count      int64      `json:"count"`
	HeldUntil  *time.Time `json:"held_until,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}
