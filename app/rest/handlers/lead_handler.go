package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-api/app/domain"
	"portal-api/app/port"
	"portal-api/app/rest/middleware"
)

// LeadHandler handles lead-mining HTTP requests
type LeadHandler struct {
	leadUsecase port.LeadUsecase
	logger      *slog.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadUsecase port.LeadUsecase, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{
		leadUsecase: leadUsecase,
		logger:      logger,
	}
}

// ImportLeadsRequest carries the batch to import
type ImportLeadsRequest struct {
	Leads []*domain.Lead `json:"leads"`
}

// ReviewLeadRequest carries a review decision
type ReviewLeadRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// SearchLeads proxies a business search to the search provider
// @Summary Search businesses
// @Description Search the business directory for lead candidates (admin access required)
// @Tags leads
// @Produce json
// @Param term query string true "Search term"
// @Param location query string true "Location"
// @Param limit query int true "Max results"
// @Success 200 {array} domain.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/leads/search [get]
func (h *LeadHandler) SearchLeads(c echo.Context) error {
	ctx := c.Request().Context()

	term := c.QueryParam("term")
	location := c.QueryParam("location")
	rawLimit := c.QueryParam("limit")
	if term == "" || location == "" || rawLimit == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "term, location and limit are required",
		})
	}
	limit := queryInt(c, "limit", 0)
	if limit <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "limit must be a positive integer",
		})
	}

	leads, err := h.leadUsecase.Search(ctx, term, location, limit)
	if err != nil {
		h.logger.Error("lead search failed", "term", term, "location", location, "error", err)
		return c.JSON(statusFromError(err, http.StatusBadGateway), ErrorResponse{
			Error: "search provider unavailable",
		})
	}

	return c.JSON(http.StatusOK, leads)
}

// ImportLeads runs the bulk import pipeline
// @Summary Import leads
// @Description Import a batch of leads with per-record outcomes; failed records never roll back the rest of the batch
// @Tags leads
// @Accept json
// @Produce json
// @Param body body ImportLeadsRequest true "Batch of leads"
// @Success 200 {object} domain.ImportSummary
// @Failure 400 {object} ErrorResponse
// @Router /v1/leads/import [post]
func (h *LeadHandler) ImportLeads(c echo.Context) error {
	ctx := c.Request().Context()

	var req ImportLeadsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}
	if len(req.Leads) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "leads batch is empty",
		})
	}

	summary, err := h.leadUsecase.Import(ctx, req.Leads)
	if err != nil {
		h.logger.Error("lead import failed", "count", len(req.Leads), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "import failed",
		})
	}

	return c.JSON(http.StatusOK, summary)
}

// ListLeads lists stored leads by review status
// @Summary List leads
// @Description List imported leads filtered by review status (admin access required)
// @Tags leads
// @Produce json
// @Param status query string false "Review status filter" default(pending)
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Lead
// @Failure 400 {object} ErrorResponse
// @Router /v1/leads [get]
func (h *LeadHandler) ListLeads(c echo.Context) error {
	ctx := c.Request().Context()

	status := domain.ReviewStatus(c.QueryParam("status"))
	if status == "" {
		status = domain.ReviewStatusPending
	}

	leads, err := h.leadUsecase.ListByStatus(ctx, status, queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid status filter",
				Details: err.Error(),
			})
		}
		h.logger.Error("failed to list leads", "status", status, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list leads",
		})
	}

	return c.JSON(http.StatusOK, leads)
}

// ReviewLead records a review decision on a lead
// @Summary Review lead
// @Description Accept or reject a lead with an optional note
// @Tags leads
// @Accept json
// @Produce json
// @Param leadId path string true "Lead ID"
// @Param body body ReviewLeadRequest true "Review decision"
// @Success 200 {object} domain.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leads/{leadId}/review [patch]
func (h *LeadHandler) ReviewLead(c echo.Context) error {
	ctx := c.Request().Context()

	sessionCtx := middleware.SessionFromContext(c)
	if sessionCtx == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "not authenticated",
		})
	}

	leadID := c.Param("leadId")

	var req ReviewLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	lead, err := h.leadUsecase.Review(ctx, leadID, domain.ReviewStatus(req.Status), req.Note, sessionCtx.IdentityID)
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "lead not found",
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid review",
				Details: err.Error(),
			})
		}
		h.logger.Error("lead review failed", "lead_id", leadID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to review lead",
		})
	}

	return c.JSON(http.StatusOK, lead)
}
