package port

//go:generate mockgen -source=approval_port.go -destination=../mocks/mock_approval_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"portal-api/app/domain"
)

// ApprovalUsecase drives the content approval workflow
type ApprovalUsecase interface {
	Create(ctx context.Context, approval *domain.ContentApproval) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentApproval, error)
	List(ctx context.Context, limit, offset int) ([]*domain.ContentApproval, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus) error

	// SendRequest emails the client a review link and resets the record
	// to pending
	SendRequest(ctx context.Context, approvalID uuid.UUID, clientEmail, title string) error
}

// ApprovalRepository persists content approval records
type ApprovalRepository interface {
	Create(ctx context.Context, approval *domain.ContentApproval) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentApproval, error)
	List(ctx context.Context, limit, offset int) ([]*domain.ContentApproval, error)
	ListAll(ctx context.Context) ([]*domain.ContentApproval, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus) error
}

// Mailer delivers transactional email through the email provider
type Mailer interface {
	SendApprovalRequest(ctx context.Context, to, title, reviewURL string) error
}
