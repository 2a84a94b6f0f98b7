package orders

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tradex-backend/internal/pkg/response"
)

// Handlers bundles order handlers.
type Handlers struct {
	Service *Service
}

// NewOrder POST /newOrder — place an order and update the holdings ledger.
// Domain rejections (oversell, sell without position) keep the 500 status
// the original system reported; existing clients may key off it.
func (h *Handlers) NewOrder(c *fiber.Ctx) error {
	var req PlaceOrderInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	order, holding, err := h.Service.PlaceOrder(c.Context(), req)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			return response.Error(c, ve.Error(), fiber.StatusBadRequest, nil)
		case errors.Is(err, ErrOversell), errors.Is(err, ErrNotOwned):
			return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	return response.Created(c, "Order placed successfully", fiber.Map{
		"order":   order,
		"holding": holding,
	})
}

// ListOrders GET /addOrders and GET /getOrders
func (h *Handlers) ListOrders(c *fiber.Ctx) error {
	data, err := h.Service.ListOrders(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Orders fetched successfully", data)
}
