package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portal-api/app/domain"
	"portal-api/app/port"
	"portal-api/app/rest/middleware"
)

// AuthHandler exchanges provider identity tokens for session artifacts
// and manages the session/role cookie pair
type AuthHandler struct {
	sessionUsecase port.SessionUsecase
	secureCookies  bool
	logger         *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionUsecase port.SessionUsecase, secureCookies bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessionUsecase: sessionUsecase,
		secureCookies:  secureCookies,
		logger:         logger,
	}
}

// CreateSessionRequest carries the provider identity token to exchange
type CreateSessionRequest struct {
	IdentityToken string `json:"identity_token" validate:"required"`
}

// CreateSession exchanges an identity-provider session token for a
// session artifact
// @Summary Create session
// @Description Exchange a provider session token for a session artifact; sets the session and role cookies with matching expiry
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body CreateSessionRequest true "Provider session token"
// @Success 201 {object} port.IssuedSession
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/session [post]
func (h *AuthHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "identity_token is required",
			Details: err.Error(),
		})
	}

	issued, err := h.sessionUsecase.IssueSession(ctx, req.IdentityToken)
	if err != nil {
		h.logger.Warn("session issuance failed", "error", err, "ip", c.RealIP())
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrIdentityNotFound) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "invalid identity token",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create session",
		})
	}

	// The two cookies expire together so the role mirror can never
	// outlive the session it mirrors.
	h.setSessionCookies(c, issued)

	return c.JSON(http.StatusCreated, issued)
}

// GetSession returns the verified session for the current request
// @Summary Get current session
// @Description Return the verified session context for the caller
// @Tags authentication
// @Produce json
// @Success 200 {object} domain.SessionContext
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/session [get]
func (h *AuthHandler) GetSession(c echo.Context) error {
	sessionCtx := middleware.SessionFromContext(c)
	if sessionCtx == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "not authenticated",
		})
	}
	return c.JSON(http.StatusOK, sessionCtx)
}

// DeleteSession logs the caller out
// @Summary Delete session
// @Description Revoke the session behind the artifact and clear both cookies
// @Tags authentication
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /v1/auth/session [delete]
func (h *AuthHandler) DeleteSession(c echo.Context) error {
	ctx := c.Request().Context()

	if artifact := h.artifactFromRequest(c); artifact != "" {
		if err := h.sessionUsecase.RevokeSession(ctx, artifact); err != nil {
			// The cookies are cleared regardless; a failed revocation
			// still leaves the client logged out.
			h.logger.Error("session revocation failed", "error", err)
		}
	}

	h.clearSessionCookies(c)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "logged out",
	})
}

func (h *AuthHandler) setSessionCookies(c echo.Context, issued *port.IssuedSession) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    issued.Artifact,
		Path:     "/",
		Expires:  issued.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	// Readable by frontend scripts for redirect decisions only; the
	// server never trusts it.
	c.SetCookie(&http.Cookie{
		Name:     middleware.RoleCookieName,
		Value:    issued.Role.String(),
		Path:     "/",
		Expires:  issued.ExpiresAt,
		HttpOnly: false,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookies(c echo.Context) {
	expired := time.Unix(0, 0)

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  expired,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     middleware.RoleCookieName,
		Value:    "",
		Path:     "/",
		Expires:  expired,
		MaxAge:   -1,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) artifactFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}
