package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tradex-backend/internal/pkg/response"
)

// Handlers bundles auth handlers.
type Handlers struct {
	Service *Service
}

// Signup POST /auth/signup — validate, create user, return token in body and
// as an HTTP-only SameSite=Strict cookie capped at the token lifetime.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req SignupInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	user, token, err := h.Service.Signup(c.Context(), req)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			return response.Error(c, "Validation failed", fiber.StatusBadRequest, fiber.Map{
				"errors": ve.Violations,
			})
		case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrUsernameTaken):
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Strict",
	})

	return response.Created(c, "User registered successfully", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Me GET /auth/me — return the authenticated token claims.
func (h *Handlers) Me(c *fiber.Ctx) error {
	claims, _ := c.Locals("claims").(*Claims)
	if claims == nil {
		return response.Unauthorized(c, "Not authenticated")
	}
	return response.Success(c, "Authenticated", fiber.Map{
		"user": fiber.Map{
			"id":       claims.UserID,
			"email":    claims.Email,
			"username": claims.Username,
		},
	})
}
