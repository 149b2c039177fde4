package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-api/app/port"
	"portal-api/app/rest/middleware"
)

// AnalyticsHandler handles dashboard analytics HTTP requests
type AnalyticsHandler struct {
	analyticsUsecase port.AnalyticsUsecase
	logger           *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUsecase port.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
		logger:           logger,
	}
}

// UserAnalytics returns the user dashboard aggregates
// @Summary User analytics
// @Description Totals, role distribution, six-month growth series and login recency buckets (admin access required)
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.UserAnalytics
// @Failure 500 {object} ErrorResponse
// @Router /v1/analytics/users [get]
func (h *AnalyticsHandler) UserAnalytics(c echo.Context) error {
	analytics, err := h.analyticsUsecase.UserAnalytics(c.Request().Context())
	if err != nil {
		h.logger.Error("user analytics failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to compute user analytics",
		})
	}
	return c.JSON(http.StatusOK, analytics)
}

// ContentAnalytics returns the content approval aggregates
// @Summary Content analytics
// @Description Approval counts by status and type (admin access required)
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.ContentAnalytics
// @Failure 500 {object} ErrorResponse
// @Router /v1/analytics/content [get]
func (h *AnalyticsHandler) ContentAnalytics(c echo.Context) error {
	analytics, err := h.analyticsUsecase.ContentAnalytics(c.Request().Context())
	if err != nil {
		h.logger.Error("content analytics failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to compute content analytics",
		})
	}
	return c.JSON(http.StatusOK, analytics)
}

// ProductAnalytics returns the product subscription aggregates
// @Summary Product analytics
// @Description Subscription counts by type and status (admin access required)
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.ProductAnalytics
// @Failure 500 {object} ErrorResponse
// @Router /v1/analytics/products [get]
func (h *AnalyticsHandler) ProductAnalytics(c echo.Context) error {
	analytics, err := h.analyticsUsecase.ProductAnalytics(c.Request().Context())
	if err != nil {
		h.logger.Error("product analytics failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to compute product analytics",
		})
	}
	return c.JSON(http.StatusOK, analytics)
}

// MyProducts lists the caller's product subscriptions
// @Summary List own products
// @Description List the authenticated user's product subscriptions
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/products [get]
func (h *AnalyticsHandler) MyProducts(c echo.Context) error {
	sessionCtx := middleware.SessionFromContext(c)
	if sessionCtx == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "not authenticated",
		})
	}

	products, err := h.analyticsUsecase.UserProducts(c.Request().Context(), sessionCtx.IdentityID)
	if err != nil {
		h.logger.Error("product lookup failed", "identity_id", sessionCtx.IdentityID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list products",
		})
	}

	return c.JSON(http.StatusOK, products)
}

// UserProducts lists a given user's product subscriptions
// @Summary List a user's products
// @Description List the product subscriptions of an arbitrary user (admin access required)
// @Tags products
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {array} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/{uid}/products [get]
func (h *AnalyticsHandler) UserProducts(c echo.Context) error {
	uid, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user ID",
		})
	}

	products, err := h.analyticsUsecase.UserProducts(c.Request().Context(), uid)
	if err != nil {
		h.logger.Error("product lookup failed", "identity_id", uid, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list products",
		})
	}

	return c.JSON(http.StatusOK, products)
}
