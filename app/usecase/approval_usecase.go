package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// ApprovalUseCase implements the content approval workflow
type ApprovalUseCase struct {
	approvalRepo port.ApprovalRepository
	mailer       port.Mailer
	appURL       string
	logger       *slog.Logger
}

// NewApprovalUseCase creates a new ApprovalUseCase instance
func NewApprovalUseCase(
	approvalRepo port.ApprovalRepository,
	mailer port.Mailer,
	appURL string,
	logger *slog.Logger,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		approvalRepo: approvalRepo,
		mailer:       mailer,
		appURL:       appURL,
		logger:       logger.With("component", "approval_usecase"),
	}
}

// Create persists a new approval record
func (uc *ApprovalUseCase) Create(ctx context.Context, approval *domain.ContentApproval) error {
	if err := uc.approvalRepo.Create(ctx, approval); err != nil {
		return err
	}

	uc.logger.Info("content approval created",
		"approval_id", approval.ID,
		"client_id", approval.ClientID,
		"type", approval.Type)

	return nil
}

// GetByID fetches one approval record
func (uc *ApprovalUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentApproval, error) {
	return uc.approvalRepo.GetByID(ctx, id)
}

// List returns a page of approval records
func (uc *ApprovalUseCase) List(ctx context.Context, limit, offset int) ([]*domain.ContentApproval, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.approvalRepo.List(ctx, limit, offset)
}

// ChangeStatus transitions an approval record. Transitions are validated
// by the domain model; records are never deleted.
func (uc *ApprovalUseCase) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus) error {
	approval, err := uc.approvalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := approval.ChangeStatus(status); err != nil {
		return err
	}

	if err := uc.approvalRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	uc.logger.Info("approval status changed",
		"approval_id", id,
		"status", status)

	return nil
}

// SendRequest emails the client a review link for the approval record
// and resets it to pending so a re-request restarts the review.
func (uc *ApprovalUseCase) SendRequest(ctx context.Context, approvalID uuid.UUID, clientEmail, title string) error {
	approval, err := uc.approvalRepo.GetByID(ctx, approvalID)
	if err != nil {
		return err
	}

	if clientEmail == "" {
		clientEmail = approval.ClientEmail
	}
	if title == "" {
		title = approval.Title
	}

	reviewURL := uc.appURL + "/client-portal/approvals/" + url.PathEscape(approvalID.String())
	if err := uc.mailer.SendApprovalRequest(ctx, clientEmail, title, reviewURL); err != nil {
		return fmt.Errorf("failed to send approval request: %w", err)
	}

	if !approval.IsPending() {
		if err := uc.approvalRepo.UpdateStatus(ctx, approvalID, domain.ApprovalStatusPending); err != nil {
			uc.logger.Error("failed to reset approval to pending after send",
				"approval_id", approvalID, "error", err)
		}
	}

	uc.logger.Info("approval request sent",
		"approval_id", approvalID,
		"to", clientEmail)

	return nil
}
