package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// LeadRepository implements port.LeadRepository for PostgreSQL
type LeadRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewLeadRepository creates a new PostgreSQL lead repository
func NewLeadRepository(db Querier, logger *slog.Logger) port.LeadRepository {
	return &LeadRepository{
		db:     db,
		logger: logger.With("component", "lead_repository"),
	}
}

const leadColumns = `id, name, category, rating, review_count, phone, website_url,
		address, city, state, zip_code, search_term, search_location,
		registrar, domain_expiration, ssl_issuer, ssl_expiration, is_wordpress, copyright_year,
		review_status, review_note, reviewer_id, reviewed_at, created_at, updated_at`

// Exists reports whether a lead with the provider ID is already stored
func (r *LeadRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM leads WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error("failed to check lead existence", "lead_id", id, "error", err)
		return false, fmt.Errorf("failed to check lead existence: %w", err)
	}

	return exists, nil
}

// Insert persists a new lead record
func (r *LeadRepository) Insert(ctx context.Context, lead *domain.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`

	_, err := r.db.Exec(ctx, query, leadArgs(lead)...)
	if err != nil {
		r.logger.Error("failed to insert lead", "lead_id", lead.ID, "error", err)
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	return nil
}

// Update refreshes business and intelligence fields of an existing lead.
// Review state is preserved so a re-import cannot erase a reviewer's work.
func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	query := `
		UPDATE leads SET
			name = $2, category = $3, rating = $4, review_count = $5, phone = $6,
			website_url = $7, address = $8, city = $9, state = $10, zip_code = $11,
			search_term = $12, search_location = $13,
			registrar = $14, domain_expiration = $15, ssl_issuer = $16,
			ssl_expiration = $17, is_wordpress = $18, copyright_year = $19,
			updated_at = $20
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		lead.ID,
		lead.Name,
		lead.Category,
		lead.Rating,
		lead.ReviewCount,
		lead.Phone,
		lead.WebsiteURL,
		lead.Address,
		lead.City,
		lead.State,
		lead.ZipCode,
		lead.SearchTerm,
		lead.SearchLocation,
		lead.Registrar,
		lead.DomainExpiration,
		lead.SSLIssuer,
		lead.SSLExpiration,
		lead.IsWordPress,
		lead.CopyrightYear,
		lead.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to update lead", "lead_id", lead.ID, "error", err)
		return fmt.Errorf("failed to update lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLeadNotFound
	}

	return nil
}

// GetByID fetches one lead record
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE id = $1`

	lead, err := scanLead(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLeadNotFound
		}
		r.logger.Error("failed to get lead", "lead_id", id, "error", err)
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

// ListByStatus returns a page of leads in the given review status
func (r *LeadRepository) ListByStatus(ctx context.Context, status domain.ReviewStatus, limit, offset int) ([]*domain.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE review_status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		r.logger.Error("failed to list leads", "status", status, "error", err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []*domain.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lead rows: %w", err)
	}

	return leads, nil
}

// UpdateReview writes the review decision on a lead
func (r *LeadRepository) UpdateReview(ctx context.Context, lead *domain.Lead) error {
	query := `
		UPDATE leads SET
			review_status = $2, review_note = $3, reviewer_id = $4,
			reviewed_at = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		lead.ID,
		string(lead.ReviewStatus),
		lead.ReviewNote,
		lead.ReviewerID,
		lead.ReviewedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to update lead review", "lead_id", lead.ID, "error", err)
		return fmt.Errorf("failed to update lead review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLeadNotFound
	}

	return nil
}

func leadArgs(lead *domain.Lead) []interface{} {
	return []interface{}{
		lead.ID,
		lead.Name,
		lead.Category,
		lead.Rating,
		lead.ReviewCount,
		lead.Phone,
		lead.WebsiteURL,
		lead.Address,
		lead.City,
		lead.State,
		lead.ZipCode,
		lead.SearchTerm,
		lead.SearchLocation,
		lead.Registrar,
		lead.DomainExpiration,
		lead.SSLIssuer,
		lead.SSLExpiration,
		lead.IsWordPress,
		lead.CopyrightYear,
		string(lead.ReviewStatus),
		lead.ReviewNote,
		lead.ReviewerID,
		lead.ReviewedAt,
		lead.CreatedAt,
		lead.UpdatedAt,
	}
}

func scanLead(row pgx.Row) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var reviewStatus string

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Category,
		&lead.Rating,
		&lead.ReviewCount,
		&lead.Phone,
		&lead.WebsiteURL,
		&lead.Address,
		&lead.City,
		&lead.State,
		&lead.ZipCode,
		&lead.SearchTerm,
		&lead.SearchLocation,
		&lead.Registrar,
		&lead.DomainExpiration,
		&lead.SSLIssuer,
		&lead.SSLExpiration,
		&lead.IsWordPress,
		&lead.CopyrightYear,
		&reviewStatus,
		&lead.ReviewNote,
		&lead.ReviewerID,
		&lead.ReviewedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.ReviewStatus = domain.ReviewStatus(reviewStatus)
	return lead, nil
}
