package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seat is one sellable unit of venue inventory, addressed by row and
// column.  It corresponds to a row in the `seats` table.  Seats are never
// hard-deleted; IsActive=false marks a soft-deleted seat kept for history.
//
// Fields:
//	ID        – primary key identifier.
//	VenueID   – owning venue; fixed for the seat's lifetime.
//	Row       – 1–3 uppercase letters.
//	Column    – positive seat number within the row.
//	Location  – Row followed by Column; unique per venue among active seats.
//	Type      – opaque category tag (Regular, VIP, Recliner, ...).
//	Price     – non-negative price.
//	IsVacant  – available to sell (false once sold/committed).
//	IsHeld    – a temporary hold is recorded on the row.
//	HeldBy    – actor holding the seat; set only while IsHeld.
//	HeldUntil – hold expiry (UTC); set only while IsHeld.
//	IsActive  – live inventory flag.
type Seat struct {
	ID        uint64          `json:"id"`         // seats.id
	VenueID   uint64          `json:"venue_id"`   // seats.venue_id
	Row       string          `json:"row"`        // seats.seat_row
	Column    uint32          `json:"column"`     // seats.seat_column
	Location  string          `json:"location"`   // seats.location
	Type      string          `json:"type"`       // seats.seat_type
	Price     decimal.Decimal `json:"price"`      // seats.price
	IsVacant  bool            `json:"is_vacant"`  // seats.is_vacant
	IsHeld    bool            `json:"is_held"`    // seats.is_held
	HeldBy    *string         `json:"held_by"`    // seats.held_by (nullable)
	HeldUntil *time.Time      `json:"held_until"` // seats.held_until (nullable)
	IsActive  bool            `json:"is_active"`  // seats.is_active
	CreatedBy string          `json:"created_by"` // seats.created_by
	CreatedAt time.Time       `json:"created_at"` // seats.created_at
	UpdatedBy string          `json:"updated_by"` // seats.updated_by
	UpdatedAt time.Time       `json:"updated_at"` // seats.updated_at
}

// HoldActive reports whether the seat carries a hold that has not lapsed at
// now.  A hold whose HeldUntil is in the past is logically expired even if
// the sweep has not cleared it yet.
func (s *Seat) HoldActive(now time.Time) bool {
	return s.IsHeld && s.HeldUntil != nil && !now.After(*s.HeldUntil)
}

// HeldByOther reports whether an unexpired hold belongs to someone other
// than actorID.
func (s *Seat) HeldByOther(actorID string, now time.Time) bool {
	if !s.HoldActive(now) {
		return false
	}
	return s.HeldBy == nil || *s.HeldBy != actorID
}

// WithLazyExpiry returns a copy of the seat in which a lapsed hold is
// presented as released.
func (s Seat) WithLazyExpiry(now time.Time) Seat {
	if s.IsHeld && !s.HoldActive(now) {
		s.IsHeld = false
		s.HeldBy = nil
		s.HeldUntil = nil
	}
	return s
}
