package handlers

import (
	"time"

	apperrors "portal-api/app/utils/errors"
)

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// statusFromError prefers the status a typed downstream error carries
// over the handler's fallback, so a broken provider reports 502 and a
// broken service 500 without string matching
func statusFromError(err error, fallback int) int {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.StatusCode
	}
	return fallback
}

// SuccessResponse is the standard acknowledgement body
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Checks    map[string]HealthStatus `json:"checks"`
}

// HealthStatus represents the status of an individual dependency
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
