package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RequireRoles(allowed ...string) fiber.Handler {
	allowedSet := map[string]bool{}
	for _, r := range allowed {
		allowedSet[strings.ToLower(r)] = true
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" {
			return unauthorized(c, "Authentication credentials were not provided")
		}
		if !allowedSet[role] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Permission denied",
				"object":  nil,
				"errors":  []string{"Permission denied"},
			})
		}
		return c.Next()
	}
}
