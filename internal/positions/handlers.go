package positions

import (
	"github.com/gofiber/fiber/v2"

	"tradex-backend/internal/pkg/response"
)

// Handlers bundles position handlers.
type Handlers struct {
	Service *Service
}

// ListPositions GET /addpositions
func (h *Handlers) ListPositions(c *fiber.Ctx) error {
	data, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Positions fetched successfully", data)
}
