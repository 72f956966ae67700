package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/seat-inventory/internal/handler"
	"github.com/iliyamo/seat-inventory/internal/middleware"
)

// RegisterHolds registers the seat hold endpoints under /v1.  Any
// authenticated role may hold seats; the JWT subject is the holder.
// limiter throttles acquisitions and releases per caller.
func RegisterHolds(e *echo.Echo, h *handler.InventoryHandler, limiter echo.MiddlewareFunc, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
	)
	g.POST("/seats/:id/hold", h.AcquireHold, limiter)
	g.DELETE("/seats/:id/hold", h.ReleaseHold, limiter)
	g.DELETE("/venues/:venue_id/holds/mine", h.ReleaseMyHolds)
}
