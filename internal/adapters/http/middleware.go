package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const headerRequestID = "X-Request-Id"

// RequestIDMiddleware ensures every request has a unique X-Request-Id.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(headerRequestID, id)
			c.Set("request_id", id)
			return next(c)
		}
	}
}

// LoggingMiddleware logs one line per request with the correlation ID set
// by RequestIDMiddleware plus caller identity fields.
func LoggingMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			req := c.Request()
			logger.Info("request",
				"request_id", c.Get("request_id"),
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
				"latency_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}
