package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// growthMonths is the window of the monthly growth series
const growthMonths = 12

// AnalyticsUseCase computes the dashboard aggregates from the identity
// mirror, approval records and product subscriptions. Aggregation happens
// in memory; the data sets are small enough that pushing it into SQL
// would only complicate the repositories.
type AnalyticsUseCase struct {
	identityRepo port.IdentityRepository
	approvalRepo port.ApprovalRepository
	productRepo  port.ProductRepository
	logger       *slog.Logger
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase instance
func NewAnalyticsUseCase(
	identityRepo port.IdentityRepository,
	approvalRepo port.ApprovalRepository,
	productRepo port.ProductRepository,
	logger *slog.Logger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		identityRepo: identityRepo,
		approvalRepo: approvalRepo,
		productRepo:  productRepo,
		logger:       logger.With("component", "analytics_usecase"),
	}
}

// UserAnalytics summarizes the identity mirror
func (uc *AnalyticsUseCase) UserAnalytics(ctx context.Context) (*domain.UserAnalytics, error) {
	identities, err := uc.identityRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	analytics := &domain.UserAnalytics{
		TotalUsers:  len(identities),
		UsersByRole: map[string]int{},
		UserGrowth:  newGrowthSeries(now),
	}

	for _, identity := range identities {
		// active means logged in within the last week
		if identity.LastLoginAt != nil && identity.LastLoginAt.After(weekAgo) {
			analytics.ActiveUsers++
		}
		if identity.CreatedAt.After(monthAgo) {
			analytics.NewUsers++
		}
		analytics.UsersByRole[identity.Role.String()]++
		addToSeries(&analytics.UserGrowth, identity.CreatedAt)
		bucketLogin(&analytics.LastLogin, now, identity.LastLoginAt)
	}

	return analytics, nil
}

// ContentAnalytics summarizes content approval records
func (uc *AnalyticsUseCase) ContentAnalytics(ctx context.Context) (*domain.ContentAnalytics, error) {
	approvals, err := uc.approvalRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	analytics := &domain.ContentAnalytics{
		Total:    len(approvals),
		ByStatus: map[string]int{},
		Created:  newGrowthSeries(now),
	}

	for _, approval := range approvals {
		analytics.ByStatus[string(approval.Status)]++
		addToSeries(&analytics.Created, approval.CreatedAt)
	}

	return analytics, nil
}

// ProductAnalytics summarizes product subscriptions
func (uc *AnalyticsUseCase) ProductAnalytics(ctx context.Context) (*domain.ProductAnalytics, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	analytics := &domain.ProductAnalytics{
		TotalProducts: len(products),
		ByType:        map[string]int{},
		ByStatus:      map[string]int{},
	}

	for _, product := range products {
		analytics.ByType[string(product.Type)]++
		analytics.ByStatus[string(product.Status)]++
	}

	return analytics, nil
}

// UserProducts lists the product subscriptions owned by one identity
func (uc *AnalyticsUseCase) UserProducts(ctx context.Context, identityID uuid.UUID) ([]*domain.Product, error) {
	if identityID == uuid.Nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.productRepo.ListByIdentity(ctx, identityID)
}

// newGrowthSeries builds an empty monthly series ending at the current
// month, oldest first
func newGrowthSeries(now time.Time) domain.GrowthSeries {
	series := domain.GrowthSeries{
		Months: make([]string, growthMonths),
		Counts: make([]int, growthMonths),
	}
	for i := 0; i < growthMonths; i++ {
		month := now.AddDate(0, i-growthMonths+1, 0)
		series.Months[i] = month.Format("2006-01")
	}
	return series
}

func addToSeries(series *domain.GrowthSeries, at time.Time) {
	key := at.Format("2006-01")
	for i, month := range series.Months {
		if month == key {
			series.Counts[i]++
			return
		}
	}
}

func bucketLogin(buckets *domain.LoginBuckets, now time.Time, lastLogin *time.Time) {
	if lastLogin == nil {
		buckets.Older++
		return
	}

	since := now.Sub(*lastLogin)
	switch {
	case since <= 24*time.Hour:
		buckets.Last24h++
	case since <= 7*24*time.Hour:
		buckets.Last7d++
	case since <= 30*24*time.Hour:
		buckets.Last30d++
	default:
		buckets.Older++
	}
}

// UptimeUseCase lists uptime monitors through the monitoring provider
type UptimeUseCase struct {
	monitorClient port.MonitorClient
	logger        *slog.Logger
}

// NewUptimeUseCase creates a new UptimeUseCase instance
func NewUptimeUseCase(monitorClient port.MonitorClient, logger *slog.Logger) *UptimeUseCase {
	return &UptimeUseCase{
		monitorClient: monitorClient,
		logger:        logger.With("component", "uptime_usecase"),
	}
}

// ListMonitors returns all monitors from the monitoring provider
func (uc *UptimeUseCase) ListMonitors(ctx context.Context) ([]*domain.Monitor, error) {
	return uc.monitorClient.ListMonitors(ctx)
}
