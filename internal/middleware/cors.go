package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tradex-backend/internal/pkg/response"
)

// CORSConfig holds the cross-origin policy.
type CORSConfig struct {
	AllowedOrigins []string
	Env            string
}

// CORS returns a Fiber handler that allows the configured origins exactly,
// with credentials. An empty allow list permits any origin outside production
// (dev convenience); in production an empty list fails closed, so a missing
// ALLOWED_ORIGINS cannot reflect credentialed CORS to arbitrary origins.
func CORS(cfg CORSConfig) fiber.Handler {
	allowedSet := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowedSet[strings.ToLower(o)] = true
	}
	allowAny := len(allowedSet) == 0 && cfg.Env != "production"

	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		// No origin (same-origin requests, curl): allow
		if origin == "" {
			return c.Next()
		}
		if allowAny || allowedSet[strings.ToLower(origin)] {
			setCORSHeaders(c, origin)
			if c.Method() == fiber.MethodOptions {
				return c.SendStatus(fiber.StatusNoContent)
			}
			return c.Next()
		}
		return response.Error(c, "Not allowed by CORS", fiber.StatusForbidden, nil)
	}
}

func setCORSHeaders(c *fiber.Ctx, origin string) {
	c.Set("Access-Control-Allow-Origin", origin)
	c.Set("Access-Control-Allow-Credentials", "true")
	c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
}
