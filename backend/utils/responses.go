package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ValidationError reports field-level validation failures as a 400 with the
// offending fields listed under "details".
func ValidationError(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": fields,
	})
}
