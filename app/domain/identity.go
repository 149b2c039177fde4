package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Identity represents a user record owned by the managed identity provider.
// The portal never creates or deletes identities; it reads them and mutates
// the role claim.
type Identity struct {
	ID          uuid.UUID  `json:"uid"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        Role       `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	Disabled    bool       `json:"disabled"`
}

// IdentityClaims is the claims view returned by the claims-lookup endpoint.
type IdentityClaims struct {
	UID    uuid.UUID              `json:"uid"`
	Email  string                 `json:"email"`
	Claims map[string]interface{} `json:"claims"`
}

// NewIdentity builds an Identity with validation, used by the gateway when
// decoding provider records.
func NewIdentity(id uuid.UUID, email string, role Role) (*Identity, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("identity ID is required")
	}

	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
	}

	return &Identity{
		ID:    id,
		Email: email,
		Role:  role,
	}, nil
}

// RecordLogin records the last login time
func (i *Identity) RecordLogin(loginTime time.Time) {
	i.LastLoginAt = &loginTime
}
