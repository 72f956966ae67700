package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const headerRequestID = "X-Request-ID"

// RequestLogger assigns every request an id (reusing an incoming
// X-Request-ID) and logs its completion with status and duration.  5xx
// responses are logged at error level, 4xx at warn.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(headerRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Set(ctxRequestIDKey, requestID)
			c.Response().Header().Set(headerRequestID, requestID)

			err := next(c)
			if err != nil {
				// Let echo's error handler write the response so the status is final.
				c.Error(err)
			}

			status := c.Response().Status
			attrs := []slog.Attr{
				slog.String("request_id", requestID),
				slog.String("method", req.Method),
				slog.String("path", c.Path()),
				slog.String("client_ip", c.RealIP()),
				slog.Int("status_code", status),
				slog.Duration("duration", time.Since(start)),
			}
			if actor, ok := ActorID(c); ok {
				attrs = append(attrs, slog.String("actor_id", actor))
			}
			if size := c.Response().Size; size > 0 {
				attrs = append(attrs, slog.Int64("response_size", size))
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			} else if status >= 400 {
				level = slog.LevelWarn
			}
			logger.LogAttrs(req.Context(), level, "request completed", attrs...)
			return nil
		}
	}
}
