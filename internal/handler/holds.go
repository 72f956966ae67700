package handler // handler package contains seat hold handlers

import (
	"net/http" // http defines status code constants
	"time"     // time converts the requested TTL

	"github.com/labstack/echo/v4" // echo framework provides context and JSON helpers

	"github.com/iliyamo/seat-inventory/internal/middleware" // middleware exposes actor and role
)

type acquireHoldRequest struct {
	TTLSeconds int `json:"ttl_seconds"` // optional hold duration; 0 uses the default
}

// AcquireHold handles POST /v1/seats/:id/hold.  The caller becomes the
// holder; repeating the call extends the caller's own hold.
func (h *InventoryHandler) AcquireHold(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return unauthorized(c)
	}
	seatID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid_seat_id", "invalid seat id")
	}
	var body acquireHoldRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid_body", "invalid request body")
	}
	if body.TTLSeconds < 0 {
		return badRequest(c, "invalid_ttl", "ttl_seconds must not be negative")
	}
	res, err := h.svc.AcquireHold(c.Request().Context(), seatID, actorID, time.Duration(body.TTLSeconds)*time.Second)
	if err != nil {
		return h.writeError(c, err)
	}
	out := echo.Map{
		"held":       res.Held,
		"seat_id":    res.SeatID,
		"held_until": res.HeldUntil,
	}
	if res.VenueID != 0 {
		out["venue_id"] = res.VenueID
		out["stats"] = h.afterWrite(c, res.VenueID)
	}
	return c.JSON(http.StatusOK, out)
}

// ReleaseHold handles DELETE /v1/seats/:id/hold.  Customers release only
// their own holds; admins may release any hold.  A cleared hold refreshes the
// venue's cached seat maps and stats.
func (h *InventoryHandler) ReleaseHold(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return unauthorized(c)
	}
	seatID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid_seat_id", "invalid seat id")
	}
	res, err := h.svc.ReleaseHold(c.Request().Context(), seatID, actorID, middleware.IsAdmin(c))
	if err != nil {
		return h.writeError(c, err)
	}
	out := echo.Map{"released": res.Released, "seat_id": seatID}
	if res.VenueID != 0 {
		out["venue_id"] = res.VenueID
		out["stats"] = h.afterWrite(c, res.VenueID)
	}
	return c.JSON(http.StatusOK, out)
}

// ReleaseMyHolds handles DELETE /v1/venues/:venue_id/holds/mine and drops
// every hold the caller has in the venue
func (h *InventoryHandler) ReleaseMyHolds(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return unauthorized(c)
	}
	venueID, ok := parseID(c, "venue_id")
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	n, err := h.svc.ReleaseActorHolds(c.Request().Context(), venueID, actorID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"released": n,
		"stats":    h.afterWrite(c, venueID),
	})
}

// ReclaimHolds handles POST /v1/internal/holds/reclaim and runs one sweep
// of lapsed holds on demand
func (h *InventoryHandler) ReclaimHolds(c echo.Context) error {
	res, err := h.svc.ReclaimExpiredHolds(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
