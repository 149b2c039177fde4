package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// IdentityRepository implements port.IdentityRepository for PostgreSQL.
// It mirrors provider identities for listings and analytics; the claim
// store stays authoritative for authorization.
type IdentityRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewIdentityRepository creates a new PostgreSQL identity repository
func NewIdentityRepository(db Querier, logger *slog.Logger) port.IdentityRepository {
	return &IdentityRepository{
		db:     db,
		logger: logger.With("component", "identity_repository"),
	}
}

// Upsert inserts or refreshes a mirror row for an identity
func (r *IdentityRepository) Upsert(ctx context.Context, identity *domain.Identity) error {
	query := `
		INSERT INTO identities (
			id, email, name, role, disabled, created_at, last_login_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			disabled = EXCLUDED.disabled,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		identity.ID,
		identity.Email,
		identity.Name,
		identity.Role.String(),
		identity.Disabled,
		identity.CreatedAt,
		identity.LastLoginAt,
		time.Now(),
	)
	if err != nil {
		r.logger.Error("failed to upsert identity", "identity_id", identity.ID, "error", err)
		return fmt.Errorf("failed to upsert identity: %w", err)
	}

	return nil
}

// UpdateRole updates the mirrored role. The mirror is advisory, so a
// missing row is not an error here.
func (r *IdentityRepository) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	query := `
		UPDATE identities
		SET role = $2, updated_at = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, role.String(), time.Now())
	if err != nil {
		r.logger.Error("failed to update identity role", "identity_id", id, "error", err)
		return fmt.Errorf("failed to update identity role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Warn("identity not mirrored yet, role update skipped", "identity_id", id)
	}

	return nil
}

// RecordLogin stamps last_login_at for the identity
func (r *IdentityRepository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE identities
		SET last_login_at = $2, updated_at = $2
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		r.logger.Error("failed to record login", "identity_id", id, "error", err)
		return fmt.Errorf("failed to record login: %w", err)
	}

	return nil
}

// List returns a page of mirror rows ordered by creation time
func (r *IdentityRepository) List(ctx context.Context, limit, offset int) ([]*domain.Identity, error) {
	query := `
		SELECT id, email, name, role, disabled, created_at, last_login_at
		FROM identities
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("failed to list identities", "error", err)
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}
	defer rows.Close()

	return scanIdentities(rows)
}

// ListAll returns every mirror row; used by analytics aggregation
func (r *IdentityRepository) ListAll(ctx context.Context) ([]*domain.Identity, error) {
	query := `
		SELECT id, email, name, role, disabled, created_at, last_login_at
		FROM identities
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list all identities", "error", err)
		return nil, fmt.Errorf("failed to list all identities: %w", err)
	}
	defer rows.Close()

	return scanIdentities(rows)
}

func scanIdentities(rows pgx.Rows) ([]*domain.Identity, error) {
	identities := []*domain.Identity{}
	for rows.Next() {
		identity := &domain.Identity{}
		var role string

		err := rows.Scan(
			&identity.ID,
			&identity.Email,
			&identity.Name,
			&role,
			&identity.Disabled,
			&identity.CreatedAt,
			&identity.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan identity row: %w", err)
		}

		identity.Role = parseStoredRole(role)
		identities = append(identities, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate identity rows: %w", err)
	}

	return identities, nil
}
