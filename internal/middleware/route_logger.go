package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RouteLogger writes one line per completed request with trace ID, status and
// duration. Handler errors are logged at warn before the error handler runs.
func RouteLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		evt := log.Info()
		if err != nil {
			evt = log.Warn().Err(err)
		}
		requestFields(evt, c).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
		return err
	}
}

func requestFields(evt *zerolog.Event, c *fiber.Ctx) *zerolog.Event {
	return evt.
		Str("trace_id", GetTraceID(c)).
		Str("method", c.Method()).
		Str("path", c.Path())
}
