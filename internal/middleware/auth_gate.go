package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"knowhive/internal/token"
)

// RequireOwner guards routes whose target owner arrives as ?email=.
// A verified token whose email differs from the requested owner is a 403;
// anything wrong with the token itself is a 401. On success the verified
// email is stored in Locals("email") for the downstream handler.
func RequireOwner(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parts := strings.Fields(c.Get("Authorization"))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized access"})
		}

		email, err := tokens.Verify(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized access"})
		}

		if c.Query("email") != email {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
		}

		c.Locals("email", email)
		return c.Next()
	}
}
