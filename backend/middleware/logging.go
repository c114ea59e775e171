package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware logs one line per request after the handler chain ran.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		logger.Printf("%s %s -> %d (%s, %v)",
			c.Method(),
			c.Path(),
			c.Response().StatusCode(),
			c.IP(),
			time.Since(start),
		)

		return err
	}
}
