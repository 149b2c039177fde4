package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// DependencyChecker reports whether an external dependency is reachable
type DependencyChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	checks map[string]DependencyChecker
	logger *slog.Logger
}

// NewHealthHandler creates a health handler over named dependency checks
func NewHealthHandler(checks map[string]DependencyChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// HealthCheck performs a basic health check
// @Summary Health check
// @Description Check if the service is healthy and running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "portal-api",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck verifies every dependency is reachable
// @Summary Readiness check
// @Description Check if the service is ready to serve traffic
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /v1/ready [get]
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ready := true
	checks := make(map[string]HealthStatus, len(h.checks))

	for name, checker := range h.checks {
		started := time.Now()
		if err := checker.HealthCheck(ctx); err != nil {
			h.logger.Warn("readiness check failed", "dependency", name, "error", err)
			checks[name] = HealthStatus{
				Status:  "unhealthy",
				Message: err.Error(),
				Latency: time.Since(started).String(),
			}
			ready = false
			continue
		}
		checks[name] = HealthStatus{
			Status:  "healthy",
			Latency: time.Since(started).String(),
		}
	}

	response := ReadinessResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Checks:    checks,
	}
	if !ready {
		response.Status = "not ready"
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	return c.JSON(http.StatusOK, response)
}

// LivenessCheck reports that the process is alive
// @Summary Liveness check
// @Description Check if the process is alive
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/live [get]
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "portal-api",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}
