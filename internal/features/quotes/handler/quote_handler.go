package handler

import (
	"correios-rates/internal/core/logger"
	"correios-rates/internal/features/quotes/domain"
	"correios-rates/internal/features/quotes/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for shipping quote operations.
type QuoteHandler struct {
	quoteService ports.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ComputeShippingOptions godoc
// @Summary Compute shipping options for a cart
// @Description Validates the cart and destination, queries the Correios price/lead-time service and returns the available shipping options. Validation problems are reported in the response body, not as HTTP errors.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body domain.QuoteRequest true "Cart items and destination address"
// @Success 200 {object} domain.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipping/options [post]
func (h *QuoteHandler) ComputeShippingOptions(c *fiber.Ctx) error {
	var req domain.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	resp, err := h.quoteService.ComputeShippingOptions(c.Context(), &req)
	if err != nil {
		logger.Get().Error("Failed to compute shipping options", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(resp)
}
