package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portal-api/app/port"
	"portal-api/app/rest/handlers"
	custommw "portal-api/app/rest/middleware"
	"portal-api/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger           *slog.Logger
	SessionUsecase   port.SessionUsecase
	RoleUsecase      port.RoleUsecase
	ApprovalUsecase  port.ApprovalUsecase
	LeadUsecase      port.LeadUsecase
	AnalyticsUsecase port.AnalyticsUsecase
	UptimeUsecase    port.UptimeUsecase
	HealthChecks     map[string]handlers.DependencyChecker
	AppURL           string
	SecureCookies    bool
	EnableDebug      bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.Validator = validator.New()

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.SessionUsecase, config.SecureCookies, config.Logger)
	userHandler := handlers.NewUserHandler(config.RoleUsecase, config.Logger)
	approvalHandler := handlers.NewApprovalHandler(config.ApprovalUsecase, config.Logger)
	leadHandler := handlers.NewLeadHandler(config.LeadUsecase, config.Logger)
	analyticsHandler := handlers.NewAnalyticsHandler(config.AnalyticsUsecase, config.Logger)
	uptimeHandler := handlers.NewUptimeHandler(config.UptimeUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecks, config.Logger)

	// Create middleware
	sessionMiddleware := custommw.NewSessionMiddleware(config.SessionUsecase, config.Logger)
	guard := custommw.NewGuard(config.AppURL, config.Logger)

	// Session issuance and lead search hit external providers, so they
	// get tighter buckets than the general API.
	apiLimiter := custommw.NewRateLimiter(20, 40)
	sessionLimiter := custommw.NewRateLimiter(1, 5)
	searchLimiter := custommw.NewRateLimiter(2, 5)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS(config.AppURL))
	e.Use(custommw.SecurityHeaders())
	e.Use(apiLimiter.Middleware())
	e.Use(guard.Middleware())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Session endpoints. Creation and deletion stay public: creation
	// authenticates via the provider token, deletion must work even
	// with a dead artifact.
	auth := v1.Group("/auth")
	auth.POST("/session", authHandler.CreateSession, sessionLimiter.Middleware())
	auth.DELETE("/session", authHandler.DeleteSession)
	auth.GET("/session", authHandler.GetSession, sessionMiddleware.RequireAuth())

	// Endpoints for any authenticated user
	authenticated := v1.Group("")
	authenticated.Use(sessionMiddleware.RequireAuth())
	authenticated.GET("/products", analyticsHandler.MyProducts)
	authenticated.POST("/content/approvals/send-request", approvalHandler.SendApprovalRequest)
	authenticated.GET("/uptime/monitors", uptimeHandler.ListMonitors)

	// Admin surface
	admin := v1.Group("")
	admin.Use(sessionMiddleware.RequireAuth())
	admin.Use(sessionMiddleware.RequireAdmin())

	admin.GET("/users", userHandler.ListUsers)
	admin.POST("/users/role", userHandler.UpdateRole)
	admin.POST("/users/claims", userHandler.GetClaims)
	admin.GET("/users/:uid/products", analyticsHandler.UserProducts)

	admin.POST("/content/approvals", approvalHandler.CreateApproval)
	admin.GET("/content/approvals", approvalHandler.ListApprovals)
	admin.GET("/content/approvals/:approvalId", approvalHandler.GetApproval)
	admin.PATCH("/content/approvals/:approvalId", approvalHandler.UpdateApprovalStatus)

	admin.GET("/leads/search", leadHandler.SearchLeads, searchLimiter.Middleware())
	admin.POST("/leads/import", leadHandler.ImportLeads)
	admin.GET("/leads", leadHandler.ListLeads)
	admin.PATCH("/leads/:leadId/review", leadHandler.ReviewLead)

	admin.GET("/analytics/users", analyticsHandler.UserAnalytics)
	admin.GET("/analytics/content", analyticsHandler.ContentAnalytics)
	admin.GET("/analytics/products", analyticsHandler.ProductAnalytics)

	return e
}
