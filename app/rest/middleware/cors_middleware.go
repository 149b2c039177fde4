package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORSConfig holds the allowed browser origins for the portal frontend.
type CORSConfig struct {
	AllowOrigins []string
}

// DefaultCORS returns the CORS middleware configured for the portal.
// The Next.js frontend talks to this API with credentialed requests,
// so origins are listed explicitly and never wildcarded.
func DefaultCORS(appURL string) echo.MiddlewareFunc {
	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if appURL != "" {
		origins = append(origins, appURL)
	}
	return CORSWithConfig(CORSConfig{AllowOrigins: origins})
}

// CORSWithConfig returns CORS middleware for the given origins
func CORSWithConfig(cfg CORSConfig) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			echo.HeaderXRequestID,
		},
		AllowCredentials: true,
		MaxAge:           3600,
	})
}
