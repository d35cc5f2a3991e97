package middleware

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
//
// Probe paths (/healthz, /readyz) log their first success only; every
// failed probe is logged at warn level.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var healthzSeen, readyzSeen atomic.Bool
	healthPaths := map[string]*atomic.Bool{
		"/healthz": &healthzSeen,
		"/readyz":  &readyzSeen,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			level := slog.LevelInfo

			if seen, ok := healthPaths[path]; ok {
				if status < http.StatusBadRequest {
					if seen.Swap(true) {
						return err
					}
				} else {
					level = slog.LevelWarn
				}
			} else if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}
