package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tradex-backend/internal/auth"
	"tradex-backend/internal/pkg/response"
)

const claimsLocal = "claims"

// RequireAuth verifies the signed token from the cookie or Authorization
// header and stores its claims in Locals. 401 with the standard error format
// if absent or invalid.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(auth.TokenCookieName)
		if tokenString == "" {
			header := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if tokenString == "" {
			return response.Unauthorized(c, "Not authenticated")
		}
		claims, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			return response.Unauthorized(c, "Not authenticated")
		}
		c.Locals(claimsLocal, claims)
		return c.Next()
	}
}

// GetClaims returns the token claims from Locals (nil if not authenticated).
func GetClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsLocal).(*auth.Claims)
	return claims
}
