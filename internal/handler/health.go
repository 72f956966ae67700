package handler // declare the package name; contains HTTP handlers

import (
	"context"  // context bounds the readiness check
	"net/http" // net/http provides status codes and response helpers
	"time"     // time sets the readiness timeout

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health is the check endpoint used by load balancers and monitoring
// systems.  It returns "ok" with 200 when the database answers a ping
// within two seconds and 503 otherwise.  A nil db reports liveness only.
func Health(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if db == nil {
			return c.String(http.StatusOK, "ok")
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return c.String(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.String(http.StatusOK, "ok")
	}
}
