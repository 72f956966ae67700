package handler // handler defines http handlers

import (
	"bytes"         // bytes trims raw JSON tokens
	"context"       // context carries request deadlines to the service
	"encoding/json" // json decodes flexible scalar fields
	"log/slog"      // slog records failures the client only sees as 500
	"net/http"      // http defines status code constants
	"strconv"       // strconv converts path params to numbers
	"time"          // time expresses hold TTLs

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/iliyamo/seat-inventory/internal/errs"       // errs matches marked errors
	"github.com/iliyamo/seat-inventory/internal/middleware" // middleware exposes the authenticated actor
	"github.com/iliyamo/seat-inventory/internal/model"      // model defines seats and stats
	"github.com/iliyamo/seat-inventory/internal/service"    // service holds the inventory engine
)

// Inventory is the slice of the inventory service the HTTP layer drives.
type Inventory interface {
	Resolve(ctx context.Context, venueID uint64, row string, column int) (service.SeatAddress, error)
	GenerateSingle(ctx context.Context, in service.SingleSeatInput, actorID string) (uint64, error)
	GenerateBulk(ctx context.Context, in service.BulkRange, actorID string) (service.BulkResult, error)
	ListVenueSeats(ctx context.Context, venueID uint64) ([]model.Seat, error)
	SeatMap(ctx context.Context, venueID uint64) ([]model.SeatRow, error)
	VenueStats(ctx context.Context, venueID uint64) (*model.VenueStats, error)
	UpdateSeats(ctx context.Context, venueID uint64, ids []uint64, ch service.SeatChanges, actorID string) (int64, error)
	SoftDeleteSeats(ctx context.Context, venueID uint64, ids []uint64, actorID string) (int64, error)
	AcquireHold(ctx context.Context, seatID uint64, actorID string, ttl time.Duration) (service.HoldResult, error)
	ReleaseHold(ctx context.Context, seatID uint64, actorID string, override bool) (service.ReleaseResult, error)
	ReleaseActorHolds(ctx context.Context, venueID uint64, actorID string) (int64, error)
	ReclaimExpiredHolds(ctx context.Context) (service.ReclaimResult, error)
}

// CacheInvalidator drops cached seat maps of a venue after a write.
type CacheInvalidator interface {
	InvalidateVenue(ctx context.Context, venueID uint64) error
}

var (
	_ Inventory        = (*service.InventoryService)(nil)
	_ CacheInvalidator = (*middleware.SeatMapCache)(nil)
)

// InventoryHandler bundles the service and cache for venue inventory routes
type InventoryHandler struct {
	svc    Inventory        // svc runs every inventory operation
	cache  CacheInvalidator // cache is told about venue writes; may be nil
	logger *slog.Logger     // logger records internal failures
}

// NewInventoryHandler constructs a handler and panics if the service is nil
func NewInventoryHandler(svc Inventory, cache CacheInvalidator, logger *slog.Logger) *InventoryHandler {
	if svc == nil { // the service is mandatory
		panic("nil inventory service passed to NewInventoryHandler")
	}
	return &InventoryHandler{svc: svc, cache: cache, logger: logger}
}

// parseID reads a positive numeric path parameter
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64) // parse decimal id
	return id, err == nil && id > 0
}

// badRequest writes a 400 with the given code
func badRequest(c echo.Context, code, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg, "code": code})
}

// flexString accepts a JSON string, number or boolean, so a price may be
// sent as "12.50" or 12.5 and a vacancy as "vacant" or true.  The raw
// number text is kept to avoid float rounding.
type flexString struct {
	Value string
	Set   bool
}

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = flexString{}
		return nil
	}
	f.Set = true
	if bytes.Equal(b, []byte("true")) || bytes.Equal(b, []byte("false")) {
		f.Value = string(b)
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &f.Value)
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	f.Value = n.String()
	return nil
}

func (f flexString) ptr() *string {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// errorStatus maps the service error taxonomy onto HTTP.  Bulk validation
// errors carry both InvalidRange and the detailed cause, so the range check
// comes first.
func errorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, service.ErrInvalidRange):
		return http.StatusBadRequest, "invalid_range"
	case errs.Is(err, service.ErrInvalidIdentifier):
		return http.StatusBadRequest, "invalid_identifier"
	case errs.Is(err, service.ErrInvalidPrice):
		return http.StatusBadRequest, "invalid_price"
	case errs.Is(err, service.ErrInvalidType):
		return http.StatusBadRequest, "invalid_type"
	case errs.Is(err, service.ErrNoChangesSpecified):
		return http.StatusBadRequest, "no_changes_specified"
	case errs.Is(err, service.ErrNoSeatsSpecified):
		return http.StatusBadRequest, "no_seats_specified"
	case errs.Is(err, service.ErrInvalidActor):
		return http.StatusUnauthorized, "invalid_actor"
	case errs.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errs.Is(err, service.ErrCollision):
		return http.StatusConflict, "collision"
	case errs.Is(err, service.ErrAlreadyHeld):
		return http.StatusConflict, "already_held"
	case errs.Is(err, service.ErrNotVacant):
		return http.StatusConflict, "not_vacant"
	default:
		return http.StatusInternalServerError, "storage_failure"
	}
}

// writeError renders a service error.  Internal failures are logged with
// their stack and reported without detail.
func (h *InventoryHandler) writeError(c echo.Context, err error) error {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(c.Request().Context(), "inventory operation failed",
			"request_id", middleware.RequestID(c),
			"error", err,
			"stack", errs.ExtractStackLines(err, 8),
		)
		return c.JSON(status, echo.Map{"error": "internal error", "code": code})
	}
	body := echo.Map{"error": err.Error(), "code": code}
	var conflict *service.HoldConflictError
	if errs.As(err, &conflict) {
		body["held_until"] = conflict.HeldUntil.UTC()
	}
	return c.JSON(status, body)
}

// unauthorized answers a request that reached a handler without an actor
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized", "code": "invalid_actor"})
}

// afterWrite drops the venue's cached seat maps and returns its fresh
// statistics.  Neither failure undoes the committed write: a stale cache
// entry expires on its own and a missing stats block is logged.
func (h *InventoryHandler) afterWrite(c echo.Context, venueID uint64) *model.VenueStats {
	ctx := c.Request().Context()
	if h.cache != nil {
		if err := h.cache.InvalidateVenue(ctx, venueID); err != nil {
			h.logger.WarnContext(ctx, "seat map cache invalidation failed", "venue_id", venueID, "error", err)
		}
	}
	stats, err := h.svc.VenueStats(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "stats after write failed", "venue_id", venueID, "error", err)
		return nil
	}
	return stats
}
