package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerboard/careerboard-api/internal/utils"
)

// JWTProtected parses the Authorization bearer token and attaches the
// caller's id and role to c.Locals for downstream handlers.
func JWTProtected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, "Authentication credentials were not provided")
		}

		claims, err := utils.ParseJWT(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}
		if claims.Type == "refresh" {
			// Refresh tokens never grant API access.
			return unauthorized(c, "Invalid or expired token")
		}

		uid := strings.TrimSpace(claims.UserID)
		if uid == "" {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals("userId", uid)
		c.Locals("role", strings.ToLower(strings.TrimSpace(claims.Role)))
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
		"object":  nil,
		"errors":  []string{message},
	})
}
