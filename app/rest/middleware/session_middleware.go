package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// Context keys set by RequireAuth
const (
	ContextKeySession    = "session_ctx"
	ContextKeyIdentityID = "identity_id"
	ContextKeyEmail      = "user_email"
	ContextKeyRole       = "user_role"
)

// SessionCookieName is the cookie carrying the session artifact
const SessionCookieName = "session"

// RoleCookieName is the unverified role mirror cookie used only for
// redirect decisions; RequireAuth and RequireAdmin never read it
const RoleCookieName = "role"

// SessionMiddleware enforces authentication by verifying the session
// artifact server side. Cookies are treated as transport, not as proof.
type SessionMiddleware struct {
	sessionUsecase port.SessionUsecase
	logger         *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessionUsecase port.SessionUsecase, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUsecase: sessionUsecase,
		logger:         logger,
	}
}

// RequireAuth verifies the session artifact and populates the request
// context. Signature, issuer, expiry and revocation all checked; any
// failure is a 401.
func (m *SessionMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			artifact := m.extractArtifact(c)
			if artifact == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			sessionCtx, err := m.sessionUsecase.VerifySession(ctx, artifact)
			if err != nil {
				m.logger.Warn("session verification failed",
					"path", c.Request().URL.Path,
					"error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(ContextKeySession, sessionCtx)
			c.Set(ContextKeyIdentityID, sessionCtx.IdentityID.String())
			c.Set(ContextKeyEmail, sessionCtx.Email)
			c.Set(ContextKeyRole, sessionCtx.Role.String())

			return next(c)
		}
	}
}

// RequireRole requires the verified session to satisfy a role
func (m *SessionMiddleware) RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionCtx := SessionFromContext(c)
			if sessionCtx == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if !sessionCtx.Role.Satisfies(required) {
				m.logger.Warn("role check failed",
					"identity_id", sessionCtx.IdentityID,
					"role", sessionCtx.Role.String(),
					"required", required.String())
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrInsufficientRole.Error())
			}

			return next(c)
		}
	}
}

// RequireAdmin requires the admin role
func (m *SessionMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRole(domain.RoleAdmin)
}

// SessionFromContext returns the verified session set by RequireAuth
func SessionFromContext(c echo.Context) *domain.SessionContext {
	sessionCtx, _ := c.Get(ContextKeySession).(*domain.SessionContext)
	return sessionCtx
}

// extractArtifact reads the artifact from the session cookie, falling
// back to a bearer token for non-browser clients
func (m *SessionMiddleware) extractArtifact(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
