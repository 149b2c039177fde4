package di

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"portal-api/app/config"
	"portal-api/app/driver/kratos"
	"portal-api/app/driver/postgres"
	"portal-api/app/driver/sendgrid"
	"portal-api/app/driver/uptimerobot"
	"portal-api/app/driver/yelp"
	"portal-api/app/gateway"
	"portal-api/app/port"
	"portal-api/app/rest"
	"portal-api/app/rest/handlers"
	"portal-api/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Usecases
	SessionUsecase   port.SessionUsecase
	RoleUsecase      port.RoleUsecase
	ApprovalUsecase  port.ApprovalUsecase
	LeadUsecase      port.LeadUsecase
	AnalyticsUsecase port.AnalyticsUsecase
	UptimeUsecase    port.UptimeUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Repositories
	pool := container.DB.Pool()
	sessionRepo := postgres.NewSessionRepository(pool, logger)
	identityRepo := postgres.NewIdentityRepository(pool, logger)
	approvalRepo := postgres.NewApprovalRepository(pool, logger)
	leadRepo := postgres.NewLeadRepository(pool, logger)
	productRepo := postgres.NewProductRepository(pool, logger)

	// Identity provider gateway
	kratosAdapter := kratos.NewAdapter(container.KratosClient, logger)
	identityGateway := gateway.NewIdentityGateway(kratosAdapter, logger)

	// External provider clients
	mailer, err := sendgrid.NewMailer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}
	searcher, err := yelp.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize search client: %w", err)
	}
	monitorClient, err := uptimerobot.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize monitoring client: %w", err)
	}

	// Usecases
	container.SessionUsecase = usecase.NewSessionUseCase(
		identityGateway, sessionRepo, identityRepo,
		cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionTTL, logger)
	container.RoleUsecase = usecase.NewRoleUseCase(
		identityGateway, identityRepo, sessionRepo, logger)
	container.ApprovalUsecase = usecase.NewApprovalUseCase(
		approvalRepo, mailer, cfg.AppURL, logger)
	container.LeadUsecase = usecase.NewLeadUseCase(
		leadRepo, searcher, cfg.ImportWorkers, logger)
	container.AnalyticsUsecase = usecase.NewAnalyticsUseCase(
		identityRepo, approvalRepo, productRepo, logger)
	container.UptimeUsecase = usecase.NewUptimeUseCase(monitorClient, logger)

	logger.Info("container initialized")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:           c.Logger,
		SessionUsecase:   c.SessionUsecase,
		RoleUsecase:      c.RoleUsecase,
		ApprovalUsecase:  c.ApprovalUsecase,
		LeadUsecase:      c.LeadUsecase,
		AnalyticsUsecase: c.AnalyticsUsecase,
		UptimeUsecase:    c.UptimeUsecase,
		HealthChecks: map[string]handlers.DependencyChecker{
			"database": c.DB,
			"kratos":   c.KratosClient,
		},
		AppURL:        c.Config.AppURL,
		SecureCookies: strings.HasPrefix(c.Config.AppURL, "https://"),
		EnableDebug:   c.Config.LogLevel == "debug",
	})
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	c.Logger.Info("container closed")
	return nil
}
