package validations

import (
	"strings"
	"time"

	"capi/forwarder/domain"

	"github.com/gofiber/fiber/v2"
)

// eventTimeSlackSeconds accounts for clock differences between the
// clients and this service when rejecting future timestamps.
const eventTimeSlackSeconds = 60

// ValidateForwardRequest checks the structural minimum of an inbound
// event. Field-level mapping problems are not validation errors: the
// pipeline resolves what it can and omits the rest.
func ValidateForwardRequest(request *domain.ForwardRequest) error {
	if request == nil {
		return fiber.NewError(fiber.StatusBadRequest, "event is required")
	}
	if strings.TrimSpace(request.EventName) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "event_name is required")
	}
	if request.EventTime != nil {
		if *request.EventTime <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "event_time must be a positive integer")
		}
		if *request.EventTime > time.Now().UTC().Unix()+eventTimeSlackSeconds {
			return fiber.NewError(fiber.StatusBadRequest, "event_time cannot be in the future")
		}
	}
	if request.Value != nil && *request.Value < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "value cannot be negative")
	}
	for _, item := range request.Items {
		if item.Quantity != nil && *item.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "item quantity cannot be negative")
		}
	}
	return nil
}
