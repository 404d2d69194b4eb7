package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/handwerkpro/handwerkpro-api/pkg/logger"
)

// RequestLogger logs one structured line per request. Runs after the error
// handler has produced the final status code.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		log.Info().
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")

		return err
	}
}
