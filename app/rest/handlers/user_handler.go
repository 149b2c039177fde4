package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// UserHandler handles user and role management HTTP requests
type UserHandler struct {
	roleUsecase port.RoleUsecase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(roleUsecase port.RoleUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		roleUsecase: roleUsecase,
		logger:      logger,
	}
}

// UpdateRoleRequest carries the target user and the role to assign
type UpdateRoleRequest struct {
	UID  string `json:"uid" validate:"required,uuid"`
	Role string `json:"role" validate:"required,portal_role"`
}

// GetClaimsRequest identifies the user whose claims to read
type GetClaimsRequest struct {
	UID string `json:"uid" validate:"required,uuid"`
}

// ListUsers lists portal users merged with their login history
// @Summary List users
// @Description List provider identities merged with mirror rows (admin access required)
// @Tags user
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Identity
// @Failure 500 {object} ErrorResponse
// @Router /v1/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	users, err := h.roleUsecase.ListUsers(ctx, limit, offset)
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list users",
		})
	}

	return c.JSON(http.StatusOK, users)
}

// UpdateRole assigns a role to a user
// @Summary Update user role
// @Description Write the role claim to the identity provider, revoke the user's sessions and update the local mirror (admin access required)
// @Tags user
// @Accept json
// @Produce json
// @Param body body UpdateRoleRequest true "User and role to assign"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/role [post]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	ctx := c.Request().Context()

	var req UpdateRoleRequest
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

	uid, err := uuid.Parse(req.UID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user ID",
		})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid role",
			Details: err.Error(),
		})
	}

	if err := h.roleUsecase.UpdateRole(ctx, uid, role); err != nil {
		h.logger.Error("role update failed", "user_id", uid, "role", role.String(), "error", err)
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		}
		return c.JSON(statusFromError(err, http.StatusInternalServerError), ErrorResponse{
			Error: "failed to update role",
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "role updated",
	})
}

// GetClaims reads a user's claims from the identity provider
// @Summary Get user claims
// @Description Read the user's claims from the authoritative claim store (admin access required)
// @Tags user
// @Accept json
// @Produce json
// @Param body body GetClaimsRequest true "User to look up"
// @Success 200 {object} domain.IdentityClaims
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/claims [post]
func (h *UserHandler) GetClaims(c echo.Context) error {
	ctx := c.Request().Context()

	var req GetClaimsRequest
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

	uid, err := uuid.Parse(req.UID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user ID",
		})
	}

	claims, err := h.roleUsecase.GetClaims(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		}
		h.logger.Error("claims lookup failed", "user_id", uid, "error", err)
		return c.JSON(statusFromError(err, http.StatusInternalServerError), ErrorResponse{
			Error: "failed to read claims",
		})
	}

	return c.JSON(http.StatusOK, claims)
}

// queryInt parses an integer query parameter with a fallback
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
