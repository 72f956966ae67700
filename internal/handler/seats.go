package handler // handler package contains venue inventory handlers

import (
	"net/http" // http defines status code constants
	"strconv"  // strconv parses the column query parameter

	"github.com/labstack/echo/v4" // echo framework provides context and JSON helpers

	"github.com/iliyamo/seat-inventory/internal/middleware" // middleware exposes the authenticated actor
	"github.com/iliyamo/seat-inventory/internal/service"    // service defines operation inputs
)

type createSeatRequest struct {
	Row    string     `json:"row"`    // row label, 1-3 letters
	Column int        `json:"column"` // positive seat number
	Type   string     `json:"type"`   // seat category
	Price  flexString `json:"price"`  // non-negative price
}

type bulkSeatsRequest struct {
	RowStart string     `json:"row_start"` // first row label
	RowEnd   string     `json:"row_end"`   // last row label, inclusive
	ColStart int        `json:"col_start"` // first column
	ColEnd   int        `json:"col_end"`   // last column, inclusive
	Type     string     `json:"type"`      // seat category for every seat
	Price    flexString `json:"price"`     // price for every seat
}

type updateSeatsRequest struct {
	IDs     []uint64   `json:"ids"`     // seats to change
	Type    flexString `json:"type"`    // optional new category
	Price   flexString `json:"price"`   // optional new price
	Vacancy flexString `json:"vacancy"` // optional vacant/not_vacant
}

type seatIDsRequest struct {
	IDs []uint64 `json:"ids"` // seats to remove
}

// CreateSeat handles POST /v1/venues/:venue_id/seats and adds one seat
func (h *InventoryHandler) CreateSeat(c echo.Context) error {
	actorID, ok := middleware.ActorID(c) // caller from the token
	if !ok {
		return unauthorized(c)
	}
	venueID, ok := parseID(c, "venue_id") // venue from the path
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	var body createSeatRequest
	if err := c.Bind(&body); err != nil { // bind incoming JSON
		return badRequest(c, "invalid_body", "invalid request body")
	}
	id, err := h.svc.GenerateSingle(c.Request().Context(), service.SingleSeatInput{
		VenueID: venueID,
		Row:     body.Row,
		Column:  body.Column,
		Type:    body.Type,
		Price:   body.Price.Value,
	}, actorID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":    id,
		"stats": h.afterWrite(c, venueID),
	})
}

// CreateSeatsBulk handles POST /v1/venues/:venue_id/seats/bulk and creates
// every seat of a rectangular row/column range, skipping occupied locations
func (h *InventoryHandler) CreateSeatsBulk(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return unauthorized(c)
	}
	venueID, ok := parseID(c, "venue_id")
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	var body bulkSeatsRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid_body", "invalid request body")
	}
	res, err := h.svc.GenerateBulk(c.Request().Context(), service.BulkRange{
		VenueID:  venueID,
		RowStart: body.RowStart,
		RowEnd:   body.RowEnd,
		ColStart: body.ColStart,
		ColEnd:   body.ColEnd,
		Type:     body.Type,
		Price:    body.Price.Value,
	}, actorID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"generated": res.Generated,
		"skipped":   res.Skipped,
		"stats":     h.afterWrite(c, venueID),
	})
}

// ListSeats handles GET /v1/venues/:venue_id/seats and returns the active
// seats ordered by row then column
func (h *InventoryHandler) ListSeats(c echo.Context) error {
	venueID, ok := parseID(c, "venue_id")
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	seats, err := h.svc.ListVenueSeats(c.Request().Context(), venueID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue_id": venueID,
		"count":    len(seats),
		"items":    seats,
	})
}

// SeatMap handles GET /v1/venues/:venue_id/seats/map and returns the seats
// grouped per row
func (h *InventoryHandler) SeatMap(c echo.Context) error {
	venueID, ok := parseID(c, "venue_id")
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	rows, err := h.svc.SeatMap(c.Request().Context(), venueID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue_id": venueID,
		"rows":     rows,
	})
}

// ResolveSeat handles GET /v1/venues/:venue_id/seats/resolve?row=&column=
// and returns the canonical location when no active seat occupies it
func (h *InventoryHandler) ResolveSeat(c echo.Context) error {
	venueID, ok := parseID(c, "venue_id")
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	column, err := strconv.Atoi(c.QueryParam("column"))
	if err != nil {
		return badRequest(c, "invalid_identifier", "column must be an integer")
	}
	addr, err := h.svc.Resolve(c.Request().Context(), venueID, c.QueryParam("row"), column)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue_id": venueID,
		"row":      addr.Row,
		"column":   addr.Column,
		"location": addr.Location,
		"free":     true,
	})
}

// Stats handles GET /v1/venues/:venue_id/stats
func (h *InventoryHandler) Stats(c echo.Context) error {
	venueID, ok := parseID(c, "venue_id")
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	stats, err := h.svc.VenueStats(c.Request().Context(), venueID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// UpdateSeats handles PATCH /v1/venues/:venue_id/seats.  Omitted fields are
// left untouched; ids outside the venue are ignored.
func (h *InventoryHandler) UpdateSeats(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return unauthorized(c)
	}
	venueID, ok := parseID(c, "venue_id")
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	var body updateSeatsRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid_body", "invalid request body")
	}
	n, err := h.svc.UpdateSeats(c.Request().Context(), venueID, body.IDs, service.SeatChanges{
		Type:    body.Type.ptr(),
		Price:   body.Price.ptr(),
		Vacancy: body.Vacancy.ptr(),
	}, actorID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"updated": n,
		"stats":   h.afterWrite(c, venueID),
	})
}

// DeleteSeats handles DELETE /v1/venues/:venue_id/seats.  Seats are soft
// deleted so their locations can be reused.
func (h *InventoryHandler) DeleteSeats(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return unauthorized(c)
	}
	venueID, ok := parseID(c, "venue_id")
	if !ok {
		return badRequest(c, "invalid_venue_id", "invalid venue_id")
	}
	var body seatIDsRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid_body", "invalid request body")
	}
	n, err := h.svc.SoftDeleteSeats(c.Request().Context(), venueID, body.IDs, actorID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"deleted": n,
		"stats":   h.afterWrite(c, venueID),
	})
}
