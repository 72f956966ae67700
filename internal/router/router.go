package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"                             // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp" // promhttp serves the collected metrics

	"github.com/iliyamo/seat-inventory/internal/handler" // import the handlers that implement the inventory API
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance: the health check, backed by a database ping, and
// the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo, db handler.Pinger) {
	// Load balancers and monitoring systems poll this endpoint.
	e.GET("/healthz", handler.Health(db))
	// Expose the default registry, which holds the inventory counters.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
