package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the fixed lifetime of a session artifact and its cookies.
const SessionTTL = 7 * 24 * time.Hour

// Session is the server-side record backing an issued session artifact.
// The artifact itself is a signed token held by the client; this row exists
// so outstanding artifacts can be revoked when a role changes.
type Session struct {
	ID         uuid.UUID `json:"id"`
	IdentityID uuid.UUID `json:"identity_id"`
	Role       Role      `json:"role"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SessionContext is the verified view of a session artifact, populated by
// the session usecase after signature, issuer, expiry and revocation checks.
// Handlers take identity and role from here, never from cookies.
type SessionContext struct {
	IdentityID uuid.UUID `json:"identity_id"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	SessionID  uuid.UUID `json:"session_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// NewSession creates a new session record with validation
func NewSession(identityID uuid.UUID, role Role, duration time.Duration) (*Session, error) {
	if identityID == uuid.Nil {
		return nil, fmt.Errorf("identity ID is required")
	}

	if duration <= 0 {
		return nil, fmt.Errorf("session duration must be positive")
	}

	now := time.Now()

	return &Session{
		ID:         uuid.New(),
		IdentityID: identityID,
		Role:       role,
		Active:     true,
		CreatedAt:  now,
		ExpiresAt:  now.Add(duration),
		UpdatedAt:  now,
	}, nil
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session is active and not expired
func (s *Session) IsValid() bool {
	return s.Active && !s.IsExpired()
}

// Deactivate marks the session as inactive
func (s *Session) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
}
