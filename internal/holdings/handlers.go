package holdings

import (
	"github.com/gofiber/fiber/v2"

	"tradex-backend/internal/pkg/response"
)

// Handlers bundles holdings handlers.
type Handlers struct {
	Service *Service
}

// ListHoldings GET /addholdings
func (h *Handlers) ListHoldings(c *fiber.Ctx) error {
	data, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Holdings fetched successfully", data)
}

// GetHolding GET /holding/:stockName — null data when the ticker is not held.
func (h *Handlers) GetHolding(c *fiber.Ctx) error {
	name := c.Params("stockName")
	holding, err := h.Service.GetByName(c.Context(), name)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Holding fetched successfully", holding)
}
