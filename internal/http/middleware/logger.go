package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger logs each request through l as one "http_request" record.
// Fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path (no query string)
// - status
// - latency (in milliseconds, as float)
//
// Server errors are logged at level error, everything else at info.
func Logger(l *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}

		l.Log(c.UserContext(), level, "http_request",
			"request_id", RequestIDFromCtx(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", float64(time.Since(start).Microseconds())/1000,
		)

		return err
	}
}
