// Package middleware provides authentication and request logging middleware.
package middleware

import (
	"strings"

	"agencybot/internal/auth"
	"agencybot/internal/cache"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired enforces authentication for protected routes. Valid requests
// get the session username and claims stored in the request locals.
func AuthRequired(tokens *auth.TokenManager, revoked *cache.RevocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		if revoked.IsRevoked(c.Context(), claims.ID) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Session has been logged out",
			})
		}

		c.Locals("username", claims.Username)
		c.Locals("claims", claims)

		return c.Next()
	}
}
