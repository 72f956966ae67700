package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/seat-inventory/internal/handler"
	"github.com/iliyamo/seat-inventory/internal/middleware"
)

// RegisterInventory registers the venue inventory endpoints under /v1.  All
// routes require a valid JWT.  Reads are open to any authenticated role
// except the location check, which seat authors use before a create;
// writes need ADMIN or OWNER and are throttled by limiter.  The on-demand
// sweep is also open to INTERNAL callers such as a cron job.  seatMap caches
// the seat-map projection and is dropped by the handlers after every write.
func RegisterInventory(e *echo.Echo, h *handler.InventoryHandler, seatMap *middleware.SeatMapCache, limiter echo.MiddlewareFunc, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	admin := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleOwner)
	ops := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleOwner, middleware.RoleInternal)

	// ---- Reads ----
	g.GET("/venues/:venue_id/seats", h.ListSeats)
	g.GET("/venues/:venue_id/seats/map", h.SeatMap, seatMap.Middleware())
	g.GET("/venues/:venue_id/stats", h.Stats)
	g.GET("/venues/:venue_id/seats/resolve", h.ResolveSeat, admin)

	// ---- Writes ----
	g.POST("/venues/:venue_id/seats", h.CreateSeat, admin, limiter)
	g.POST("/venues/:venue_id/seats/bulk", h.CreateSeatsBulk, admin, limiter)
	g.PATCH("/venues/:venue_id/seats", h.UpdateSeats, admin, limiter)
	g.DELETE("/venues/:venue_id/seats", h.DeleteSeats, admin, limiter)

	// ---- Operations ----
	g.POST("/internal/holds/reclaim", h.ReclaimHolds, ops)
}
