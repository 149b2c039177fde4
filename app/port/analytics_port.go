package port

//go:generate mockgen -source=analytics_port.go -destination=../mocks/mock_analytics_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"portal-api/app/domain"
)

// AnalyticsUsecase computes the dashboard aggregates
type AnalyticsUsecase interface {
	UserAnalytics(ctx context.Context) (*domain.UserAnalytics, error)
	ContentAnalytics(ctx context.Context) (*domain.ContentAnalytics, error)
	ProductAnalytics(ctx context.Context) (*domain.ProductAnalytics, error)
	UserProducts(ctx context.Context, identityID uuid.UUID) ([]*domain.Product, error)
}

// ProductRepository reads product subscription records
type ProductRepository interface {
	ListByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
}

// UptimeUsecase lists uptime monitors through the monitoring provider
type UptimeUsecase interface {
	ListMonitors(ctx context.Context) ([]*domain.Monitor, error)
}

// MonitorClient is the uptime-provider client
type MonitorClient interface {
	ListMonitors(ctx context.Context) ([]*domain.Monitor, error)
}
