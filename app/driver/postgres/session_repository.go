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

// SessionRepository implements port.SessionRepository for PostgreSQL
type SessionRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db Querier, logger *slog.Logger) port.SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger.With("component", "session_repository"),
	}
}

// parseStoredRole decodes a role column value, falling back to client for
// anything a schema migration might have left behind
func parseStoredRole(value string) domain.Role {
	role, err := domain.ParseRole(value)
	if err != nil {
		return domain.RoleClient
	}
	return role
}

// Create persists a new session row
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (
			id, identity_id, role, active, created_at, expires_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.IdentityID,
		session.Role.String(),
		session.Active,
		session.CreatedAt,
		session.ExpiresAt,
		session.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create session", "session_id", session.ID, "error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetByID fetches one session row
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	query := `
		SELECT id, identity_id, role, active, created_at, expires_at, updated_at
		FROM sessions
		WHERE id = $1`

	session := &domain.Session{}
	var role string

	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.IdentityID,
		&role,
		&session.Active,
		&session.CreatedAt,
		&session.ExpiresAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		r.logger.Error("failed to get session", "session_id", id, "error", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.Role = parseStoredRole(role)
	return session, nil
}

// Deactivate marks a single session row inactive
func (r *SessionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE sessions
		SET active = false, updated_at = $2
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		r.logger.Error("failed to deactivate session", "session_id", id, "error", err)
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// DeactivateByIdentity revokes every active session for an identity and
// returns how many rows were touched
func (r *SessionRepository) DeactivateByIdentity(ctx context.Context, identityID uuid.UUID) (int64, error) {
	query := `
		UPDATE sessions
		SET active = false, updated_at = $2
		WHERE identity_id = $1 AND active = true`

	tag, err := r.db.Exec(ctx, query, identityID, time.Now())
	if err != nil {
		r.logger.Error("failed to deactivate identity sessions", "identity_id", identityID, "error", err)
		return 0, fmt.Errorf("failed to deactivate identity sessions: %w", err)
	}

	r.logger.Info("identity sessions deactivated",
		"identity_id", identityID,
		"count", tag.RowsAffected())

	return tag.RowsAffected(), nil
}
