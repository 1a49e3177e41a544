package api

import (
	"context"
	"errors"
	"time"

	"capi/forwarder/buildinfo"
	"capi/forwarder/database"
	"capi/forwarder/domain"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck handles the /health endpoint
// @Summary Health check endpoint
// @Description Check the health status of the service and its optional sinks
// @Tags Health
// @Produce json
// @Success 200 {object} domain.HealthResponse "Service is healthy"
// @Success 503 {object} domain.HealthResponse "Service is unhealthy"
// @Router /health [get]
func HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	response := domain.HealthResponse{
		Timestamp: time.Now(),
		BuildInfo: buildinfo.GetInfo(),
		Services:  domain.ServiceHealthStatus{},
	}

	// Check ClickHouse health; a disabled sink does not fail the service
	clickhouseHealthy := true
	if err := database.ClickHouseHealthCheck(ctx); err != nil {
		if errors.Is(err, database.ErrClickHouseNotInitialized) {
			response.Services.ClickHouse = domain.ServiceStatus{
				Status: "disabled",
			}
		} else {
			clickhouseHealthy = false
			response.Services.ClickHouse = domain.ServiceStatus{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		}
	} else {
		response.Services.ClickHouse = domain.ServiceStatus{
			Status: "healthy",
		}
	}

	// Check Redis health; a disabled sink does not fail the service
	redisHealthy := true
	if err := database.RedisHealthCheck(ctx); err != nil {
		if errors.Is(err, database.ErrRedisNotInitialized) {
			response.Services.Redis = domain.ServiceStatus{
				Status: "disabled",
			}
		} else {
			redisHealthy = false
			response.Services.Redis = domain.ServiceStatus{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		}
	} else {
		response.Services.Redis = domain.ServiceStatus{
			Status: "healthy",
		}
	}

	// Determine overall status
	if clickhouseHealthy && redisHealthy {
		response.Status = "healthy"
		return c.Status(fiber.StatusOK).JSON(response)
	}

	response.Status = "unhealthy"
	return c.Status(fiber.StatusServiceUnavailable).JSON(response)
}
