package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"portal-api/app/domain"
)

// Guard routes requests the way a frontend routing guard would: requests
// without a session cookie bounce to the login page, non-admins hitting
// an admin area bounce to the unauthorized page.
//
// The guard reads only cookie PRESENCE and the unverified role cookie,
// so it can answer instantly on every navigation. It is a routing
// convenience, not access control: every guarded handler sits behind
// RequireAuth, which verifies the artifact server side. Tampering with
// the role cookie changes which page you land on, never what you can do.
type Guard struct {
	loginPath        string
	unauthorizedPath string
	publicPaths      []string
	adminPrefixes    []string
	adminExempt      []string
	logger           *slog.Logger
}

// NewGuard creates a routing guard
func NewGuard(appURL string, logger *slog.Logger) *Guard {
	return &Guard{
		loginPath:        appURL + "/login",
		unauthorizedPath: appURL + "/unauthorized",
		publicPaths: []string{
			"/v1/health",
			"/v1/ready",
			"/v1/live",
			"/v1/auth/session",
		},
		adminPrefixes: []string{
			"/v1/users",
			"/v1/content/approvals",
			"/v1/leads",
			"/v1/analytics",
		},
		// send-request is open to any authenticated user even though it
		// lives under the admin approvals prefix.
		adminExempt: []string{
			"/v1/content/approvals/send-request",
		},
		logger: logger,
	}
}

// Middleware runs the guard state machine on every request
func (g *Guard) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if g.isPublic(path) {
				return next(c)
			}

			if !g.hasCredentials(c) {
				return g.deny(c, http.StatusUnauthorized, g.loginURL(c))
			}

			// Absent role cookie means a non-browser client; RequireAdmin
			// settles it from the verified artifact.
			if g.isAdminPath(path) {
				if role := g.roleCookie(c); role != "" && role != domain.RoleAdmin.String() {
					return g.deny(c, http.StatusForbidden, g.unauthorizedPath)
				}
			}

			return next(c)
		}
	}
}

// deny redirects browser navigations and returns a JSON status to API
// clients
func (g *Guard) deny(c echo.Context, status int, location string) error {
	if wantsHTML(c) {
		return c.Redirect(http.StatusFound, location)
	}

	message := "authentication required"
	if status == http.StatusForbidden {
		message = "insufficient privileges"
	}
	return echo.NewHTTPError(status, message)
}

// loginURL carries the original path so login can send the user back
func (g *Guard) loginURL(c echo.Context) string {
	callback := c.Request().URL.Path
	if q := c.Request().URL.RawQuery; q != "" {
		callback += "?" + q
	}
	return g.loginPath + "?callbackUrl=" + url.QueryEscape(callback)
}

func (g *Guard) isPublic(path string) bool {
	for _, public := range g.publicPaths {
		if path == public || strings.HasPrefix(path, public+"/") {
			return true
		}
	}
	return false
}

func (g *Guard) isAdminPath(path string) bool {
	for _, exempt := range g.adminExempt {
		if path == exempt {
			return false
		}
	}
	for _, prefix := range g.adminPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// hasCredentials reports cookie or bearer presence; verification is
// RequireAuth's job
func (g *Guard) hasCredentials(c echo.Context) bool {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return true
	}
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
}

func (g *Guard) roleCookie(c echo.Context) string {
	cookie, err := c.Cookie(RoleCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
