package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portal-api/app/domain"
)

// IssuedSession is the result of exchanging an identity token for a
// session artifact. The caller persists the artifact and the role mirror
// as two cookies with matching expiry.
type IssuedSession struct {
	Artifact  string      `json:"session_cookie"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SessionUsecase issues and verifies session artifacts
type SessionUsecase interface {
	// IssueSession exchanges a valid identity token for an artifact bound
	// to the configured issuer with a fixed TTL
	IssueSession(ctx context.Context, identityToken string) (*IssuedSession, error)

	// VerifySession checks signature, issuer, expiry and revocation.
	// Verification against any issuer other than the one the artifact was
	// bound to fails closed.
	VerifySession(ctx context.Context, artifact string) (*domain.SessionContext, error)

	// RevokeSession deactivates the session behind an artifact (logout)
	RevokeSession(ctx context.Context, artifact string) error
}

// SessionRepository persists the session rows backing issued artifacts
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateByIdentity revokes every outstanding session for an
	// identity; used by the role-assignment saga
	DeactivateByIdentity(ctx context.Context, identityID uuid.UUID) (int64, error)
}
