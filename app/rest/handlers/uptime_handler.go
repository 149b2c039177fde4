package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-api/app/port"
)

// UptimeHandler proxies uptime monitor listings to the frontend
type UptimeHandler struct {
	uptimeUsecase port.UptimeUsecase
	logger        *slog.Logger
}

// NewUptimeHandler creates a new uptime handler
func NewUptimeHandler(uptimeUsecase port.UptimeUsecase, logger *slog.Logger) *UptimeHandler {
	return &UptimeHandler{
		uptimeUsecase: uptimeUsecase,
		logger:        logger,
	}
}

// ListMonitors lists uptime monitors
// @Summary List uptime monitors
// @Description List monitors with status and uptime ratios from the monitoring provider
// @Tags uptime
// @Produce json
// @Success 200 {array} domain.Monitor
// @Failure 502 {object} ErrorResponse
// @Router /v1/uptime/monitors [get]
func (h *UptimeHandler) ListMonitors(c echo.Context) error {
	monitors, err := h.uptimeUsecase.ListMonitors(c.Request().Context())
	if err != nil {
		h.logger.Error("monitor listing failed", "error", err)
		return c.JSON(statusFromError(err, http.StatusBadGateway), ErrorResponse{
			Error: "monitoring provider unavailable",
		})
	}
	return c.JSON(http.StatusOK, monitors)
}
