package middleware

import (
	"github.com/gofiber/fiber/v2"

	"tradex-backend/internal/pkg/response"
)

// ErrorHandler returns the global error handler. Raw error detail is exposed
// via details only outside production.
func ErrorHandler(env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		details := map[string]interface{}{}
		if env != "production" {
			details["error"] = err.Error()
		}
		return response.Error(c, message, code, details)
	}
}
