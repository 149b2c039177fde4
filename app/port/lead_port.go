package port

//go:generate mockgen -source=lead_port.go -destination=../mocks/mock_lead_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"portal-api/app/domain"
)

// LeadUsecase drives the lead-mining tool
type LeadUsecase interface {
	// Search proxies a business search to the search provider
	Search(ctx context.Context, term, location string, limit int) ([]*domain.Lead, error)

	// Import runs the bounded-concurrency import pipeline with per-item
	// result reporting. A failed record does not roll back the others.
	Import(ctx context.Context, leads []*domain.Lead) (*domain.ImportSummary, error)

	ListByStatus(ctx context.Context, status domain.ReviewStatus, limit, offset int) ([]*domain.Lead, error)
	Review(ctx context.Context, id string, status domain.ReviewStatus, note string, reviewerID uuid.UUID) (*domain.Lead, error)
}

// LeadRepository persists lead records
type LeadRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, lead *domain.Lead) error
	Update(ctx context.Context, lead *domain.Lead) error
	UpdateReview(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	ListByStatus(ctx context.Context, status domain.ReviewStatus, limit, offset int) ([]*domain.Lead, error)
}

// BusinessSearcher is the search-provider client
type BusinessSearcher interface {
	Search(ctx context.Context, term, location string, limit int) ([]*domain.Lead, error)
}
