package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-api/app/domain"
	"portal-api/app/port"
	"portal-api/app/rest/middleware"
)

// ApprovalHandler handles content approval HTTP requests
type ApprovalHandler struct {
	approvalUsecase port.ApprovalUsecase
	logger          *slog.Logger
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(approvalUsecase port.ApprovalUsecase, logger *slog.Logger) *ApprovalHandler {
	return &ApprovalHandler{
		approvalUsecase: approvalUsecase,
		logger:          logger,
	}
}

// CreateApprovalRequest carries a new content approval record
type CreateApprovalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	ClientID    string `json:"client_id"`
	ClientEmail string `json:"client_email"`
}

// UpdateApprovalStatusRequest carries an approval decision
type UpdateApprovalStatusRequest struct {
	Status string `json:"status"`
}

// SendApprovalRequestBody identifies the record to send a review request
// for; client_email and title override the stored record when set
type SendApprovalRequestBody struct {
	ApprovalID  string `json:"approval_id" validate:"required,uuid"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	Title       string `json:"title"`
}

// CreateApproval creates a content approval record
// @Summary Create content approval
// @Description Create a content record awaiting client approval (admin access required)
// @Tags approvals
// @Accept json
// @Produce json
// @Param body body CreateApprovalRequest true "Content record"
// @Success 201 {object} domain.ContentApproval
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/content/approvals [post]
func (h *ApprovalHandler) CreateApproval(c echo.Context) error {
	ctx := c.Request().Context()

	sessionCtx := middleware.SessionFromContext(c)
	if sessionCtx == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "not authenticated",
		})
	}

	var req CreateApprovalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid client ID",
		})
	}

	approval, err := domain.NewContentApproval(
		req.Title,
		req.Description,
		req.Content,
		domain.ContentType(req.Type),
		clientID,
		req.ClientEmail,
		sessionCtx.IdentityID,
	)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid content record",
			Details: err.Error(),
		})
	}

	if err := h.approvalUsecase.Create(ctx, approval); err != nil {
		h.logger.Error("failed to create approval", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create approval",
		})
	}

	return c.JSON(http.StatusCreated, approval)
}

// ListApprovals lists content approval records
// @Summary List content approvals
// @Description List content approval records, newest first (admin access required)
// @Tags approvals
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.ContentApproval
// @Failure 500 {object} ErrorResponse
// @Router /v1/content/approvals [get]
func (h *ApprovalHandler) ListApprovals(c echo.Context) error {
	ctx := c.Request().Context()

	approvals, err := h.approvalUsecase.List(ctx, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		h.logger.Error("failed to list approvals", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list approvals",
		})
	}

	return c.JSON(http.StatusOK, approvals)
}

// GetApproval gets a content approval record by ID
// @Summary Get content approval
// @Description Get a content approval record by ID (admin access required)
// @Tags approvals
// @Produce json
// @Param approvalId path string true "Approval ID"
// @Success 200 {object} domain.ContentApproval
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/content/approvals/{approvalId} [get]
func (h *ApprovalHandler) GetApproval(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("approvalId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid approval ID",
		})
	}

	approval, err := h.approvalUsecase.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrApprovalNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "approval not found",
			})
		}
		h.logger.Error("failed to get approval", "approval_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get approval",
		})
	}

	return c.JSON(http.StatusOK, approval)
}

// UpdateApprovalStatus records an approval decision
// @Summary Update approval status
// @Description Move a content approval record to pending, approved or rejected
// @Tags approvals
// @Accept json
// @Produce json
// @Param approvalId path string true "Approval ID"
// @Param body body UpdateApprovalStatusRequest true "New status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/content/approvals/{approvalId} [patch]
func (h *ApprovalHandler) UpdateApprovalStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("approvalId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid approval ID",
		})
	}

	var req UpdateApprovalStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	err = h.approvalUsecase.ChangeStatus(ctx, id, domain.ApprovalStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrApprovalNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "approval not found",
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid status",
				Details: err.Error(),
			})
		}
		h.logger.Error("failed to update approval status", "approval_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update status",
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "status updated",
	})
}

// SendApprovalRequest emails the client a review link
// @Summary Send approval request
// @Description Email the client a link to the review page and reset the record to pending
// @Tags approvals
// @Accept json
// @Produce json
// @Param body body SendApprovalRequestBody true "Record to send, with optional recipient overrides"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/content/approvals/send-request [post]
func (h *ApprovalHandler) SendApprovalRequest(c echo.Context) error {
	ctx := c.Request().Context()

	var req SendApprovalRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
	}

	id, err := uuid.Parse(req.ApprovalID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid approval ID",
		})
	}

	if err := h.approvalUsecase.SendRequest(ctx, id, req.ClientEmail, req.Title); err != nil {
		if errors.Is(err, domain.ErrApprovalNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "approval not found",
			})
		}
		h.logger.Error("failed to send approval request", "approval_id", id, "error", err)
		return c.JSON(statusFromError(err, http.StatusBadGateway), ErrorResponse{
			Error: "failed to send approval request",
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "approval request sent",
	})
}
