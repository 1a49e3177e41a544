package domain

import (
	"capi/forwarder/buildinfo"
	"time"
)

// HealthResponse represents the health status of the service
type HealthResponse struct {
	Status    string              `json:"status" example:"healthy"`
	Timestamp time.Time           `json:"timestamp" example:"2025-11-22T10:00:00Z"`
	BuildInfo buildinfo.Info      `json:"buildInfo"`
	Services  ServiceHealthStatus `json:"services"`
}

// ServiceHealthStatus represents the health status of the optional sinks
type ServiceHealthStatus struct {
	ClickHouse ServiceStatus `json:"clickhouse"`
	Redis      ServiceStatus `json:"redis"`
}

// ServiceStatus represents the status of a single dependency
type ServiceStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:""`
}

// ForwardResponse represents the outcome of forwarding one event
type ForwardResponse struct {
	Success    bool   `json:"success" example:"true"`
	Message    string `json:"message" example:"Event delivered"`
	EventName  string `json:"event_name,omitempty" example:"Purchase"`
	StatusCode int    `json:"status_code,omitempty" example:"200"`
}

// DeliveryStats holds the running delivery counters
type DeliveryStats struct {
	Delivered uint64 `json:"delivered" example:"1042"`
	Failed    uint64 `json:"failed" example:"3"`
}

// StatsResponse represents the response of the stats endpoint
type StatsResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message" example:"Stats retrieved successfully"`
	Stats   *DeliveryStats `json:"stats,omitempty"`
}
