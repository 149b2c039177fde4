package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// ApprovalRepository implements port.ApprovalRepository for PostgreSQL
type ApprovalRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewApprovalRepository creates a new PostgreSQL approval repository
func NewApprovalRepository(db Querier, logger *slog.Logger) port.ApprovalRepository {
	return &ApprovalRepository{
		db:     db,
		logger: logger.With("component", "approval_repository"),
	}
}

const approvalColumns = `id, title, description, content, content_type, client_id, client_email, status, created_by, created_at, updated_at`

// Create persists a new content approval record
func (r *ApprovalRepository) Create(ctx context.Context, approval *domain.ContentApproval) error {
	query := `
		INSERT INTO content_approvals (` + approvalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		approval.ID,
		approval.Title,
		approval.Description,
		approval.Content,
		string(approval.Type),
		approval.ClientID,
		approval.ClientEmail,
		string(approval.Status),
		approval.CreatedBy,
		approval.CreatedAt,
		approval.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create content approval", "approval_id", approval.ID, "error", err)
		return fmt.Errorf("failed to create content approval: %w", err)
	}

	return nil
}

// GetByID fetches one approval record
func (r *ApprovalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentApproval, error) {
	query := `
		SELECT ` + approvalColumns + `
		FROM content_approvals
		WHERE id = $1`

	approval, err := scanApproval(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrApprovalNotFound
		}
		r.logger.Error("failed to get content approval", "approval_id", id, "error", err)
		return nil, fmt.Errorf("failed to get content approval: %w", err)
	}

	return approval, nil
}

// List returns a page of approval records, newest first
func (r *ApprovalRepository) List(ctx context.Context, limit, offset int) ([]*domain.ContentApproval, error) {
	query := `
		SELECT ` + approvalColumns + `
		FROM content_approvals
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("failed to list content approvals", "error", err)
		return nil, fmt.Errorf("failed to list content approvals: %w", err)
	}
	defer rows.Close()

	return scanApprovals(rows)
}

// ListAll returns every approval record; used by analytics aggregation
func (r *ApprovalRepository) ListAll(ctx context.Context) ([]*domain.ContentApproval, error) {
	query := `
		SELECT ` + approvalColumns + `
		FROM content_approvals
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list all content approvals", "error", err)
		return nil, fmt.Errorf("failed to list all content approvals: %w", err)
	}
	defer rows.Close()

	return scanApprovals(rows)
}

// UpdateStatus transitions an approval record to a new status
func (r *ApprovalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus) error {
	query := `
		UPDATE content_approvals
		SET status = $2, updated_at = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, string(status), time.Now())
	if err != nil {
		r.logger.Error("failed to update approval status", "approval_id", id, "error", err)
		return fmt.Errorf("failed to update approval status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApprovalNotFound
	}

	return nil
}

func scanApproval(row pgx.Row) (*domain.ContentApproval, error) {
	approval := &domain.ContentApproval{}
	var contentType, status string

	err := row.Scan(
		&approval.ID,
		&approval.Title,
		&approval.Description,
		&approval.Content,
		&contentType,
		&approval.ClientID,
		&approval.ClientEmail,
		&status,
		&approval.CreatedBy,
		&approval.CreatedAt,
		&approval.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	approval.Type = domain.ContentType(contentType)
	approval.Status = domain.ApprovalStatus(status)
	return approval, nil
}

func scanApprovals(rows pgx.Rows) ([]*domain.ContentApproval, error) {
	approvals := []*domain.ContentApproval{}
	for rows.Next() {
		approval, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval row: %w", err)
		}
		approvals = append(approvals, approval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approval rows: %w", err)
	}

	return approvals, nil
}
