package model_test

import (
	"testing"
	"time"

	"github.com/iliyamo/seat-inventory/internal/model"

	"github.com/stretchr/testify/assert"
)

func heldSeat(by string, until time.Time) model.Seat {
	return model.Seat{ID: 1, IsActive: true, IsVacant: true, IsHeld: true, HeldBy: &by, HeldUntil: &until}
}

func TestSeatHoldActive(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	s := heldSeat("user1", now.Add(time.Minute))
	assert.True(t, s.HoldActive(now))
	assert.True(t, s.HoldActive(now.Add(time.Minute)), "expiry instant is still held")
	assert.False(t, s.HoldActive(now.Add(61*time.Second)))

	var free model.Seat
	assert.False(t, free.HoldActive(now))
}

func TestSeatHeldByOther(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := heldSeat("user1", now.Add(time.Minute))

	assert.False(t, s.HeldByOther("user1", now))
	assert.True(t, s.HeldByOther("user2", now))
	assert.False(t, s.HeldByOther("user2", now.Add(2*time.Minute)))
}

func TestSeatWithLazyExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	lapsed := heldSeat("user1", now.Add(-time.Second)).WithLazyExpiry(now)
	assert.False(t, lapsed.IsHeld)
	assert.Nil(t, lapsed.HeldBy)
	assert.Nil(t, lapsed.HeldUntil)

	live := heldSeat("user1", now.Add(time.Second)).WithLazyExpiry(now)
	assert.True(t, live.IsHeld)
	assert.Equal(t, "user1", *live.HeldBy)
}
