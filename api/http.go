package api

import (
	"errors"

	"capi/forwarder/database"
	"capi/forwarder/domain"
	"capi/forwarder/services"
	"capi/forwarder/validations"

	"github.com/gofiber/fiber/v2"
)

var _ ForwardHandler = &forwardHandler{nil, nil}

type forwardHandler struct {
	forwardService domain.ForwardService
	stats          *database.StatsRedis
}

// PostEvent handles forwarding one event to the Conversions API
// @Summary Forward an analytics event
// @Description Map a normalized analytics event onto the Conversions API schema, hash PII fields, and deliver it to the configured pixel
// @Tags Events
// @Accept json
// @Produce json
// @Param event body domain.ForwardRequest true "Normalized event data"
// @Success 200 {object} domain.ForwardResponse "Event delivered"
// @Failure 400 {object} domain.ForwardResponse "Invalid request"
// @Failure 502 {object} domain.ForwardResponse "Delivery failed or rejected by the Conversions API"
// @Failure 500 {object} domain.ForwardResponse "Internal server error"
// @Router /events [post]
func (h forwardHandler) PostEvent(ctx *fiber.Ctx) error {
	// Parse request body
	var req domain.ForwardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(domain.ForwardResponse{
			Success: false,
			Message: "Invalid request body: " + err.Error(),
		})
	}

	// Validate request
	if err := validations.ValidateForwardRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(domain.ForwardResponse{
			Success: false,
			Message: "Validation failed: " + err.Error(),
		})
	}

	// The _fbp/_fbc fallback reads cookies from the inbound request.
	cookies := func(name string) []string {
		if value := ctx.Cookies(name); value != "" {
			return []string{value}
		}
		return nil
	}

	resp, err := h.forwardService.Forward(ctx.Context(), &req, cookies)
	if err != nil {
		// Transport failures and remote rejections both surface as 502
		if errors.Is(err, services.ErrDeliveryFailed) {
			return ctx.Status(fiber.StatusBadGateway).JSON(resp)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(domain.ForwardResponse{
			Success: false,
			Message: "Internal server error: " + err.Error(),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// GetStats retrieves the running delivery counters
// @Summary GET delivery stats
// @Description Read the delivered/failed counters kept in Redis
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.StatsResponse "Stats retrieved successfully"
// @Failure 500 {object} domain.StatsResponse "Internal server error"
// @Router /stats [get]
func (h forwardHandler) GetStats(ctx *fiber.Ctx) error {
	if h.stats == nil {
		return ctx.Status(fiber.StatusOK).JSON(domain.StatsResponse{
			Success: true,
			Message: "Delivery stats are disabled",
		})
	}

	stats, err := h.stats.GetDeliveryStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(domain.StatsResponse{
			Success: false,
			Message: "Failed to retrieve stats: " + err.Error(),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(domain.StatsResponse{
		Success: true,
		Message: "Stats retrieved successfully",
		Stats:   stats,
	})
}

// NewForwardHandler returns the HTTP handler for the forwarding endpoints.
// The stats client is optional; passing nil disables the stats endpoint.
func NewForwardHandler(forwardService domain.ForwardService, stats *database.StatsRedis) ForwardHandler {
	return &forwardHandler{forwardService: forwardService, stats: stats}
}
