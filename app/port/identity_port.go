package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"portal-api/app/domain"
)

// IdentityGateway is the anti-corruption layer in front of the managed
// identity provider. The provider owns identity records; the portal reads
// them and mutates the role claim.
type IdentityGateway interface {
	// GetIdentity fetches one identity with its decoded role claim
	GetIdentity(ctx context.Context, id uuid.UUID) (*domain.Identity, error)

	// GetClaims returns the raw claim blob for the claims-lookup endpoint
	GetClaims(ctx context.Context, id uuid.UUID) (*domain.IdentityClaims, error)

	// SetRoleClaim writes the role claim. This is the authoritative write
	// of the role-assignment saga.
	SetRoleClaim(ctx context.Context, id uuid.UUID, role domain.Role) error

	// RevokeProviderSessions invalidates the provider's own sessions for
	// the identity so freshly minted identity tokens carry the new claim
	RevokeProviderSessions(ctx context.Context, id uuid.UUID) error

	// ListIdentities pages through provider identities
	ListIdentities(ctx context.Context, pageSize int64, pageToken string) ([]*domain.Identity, string, error)

	// ValidateIdentityToken resolves an identity token (the provider's
	// short-lived session token) to the identity it belongs to
	ValidateIdentityToken(ctx context.Context, token string) (*domain.Identity, error)
}

// KratosIdentityClient is the driver-level surface of the Kratos APIs the
// gateway builds on. Implemented by driver/kratos.Adapter.
type KratosIdentityClient interface {
	GetIdentity(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
	GetClaims(ctx context.Context, id uuid.UUID) (*domain.IdentityClaims, error)
	SetRoleClaim(ctx context.Context, id uuid.UUID, role domain.Role) error
	RevokeProviderSessions(ctx context.Context, id uuid.UUID) error
	ListIdentities(ctx context.Context, pageSize int64, pageToken string) ([]*domain.Identity, string, error)
	ValidateIdentityToken(ctx context.Context, token string) (*domain.Identity, error)
}

// IdentityRepository is the portal-side mirror of identities and their
// roles, used by listings and analytics. The mirror is advisory: the claim
// store stays authoritative for authorization.
type IdentityRepository interface {
	Upsert(ctx context.Context, identity *domain.Identity) error
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	RecordLogin(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*domain.Identity, error)
	ListAll(ctx context.Context) ([]*domain.Identity, error)
}

// RoleUsecase drives role assignment and claims lookup
type RoleUsecase interface {
	// UpdateRole runs the role-assignment saga: authoritative claim write,
	// then best-effort session invalidation and mirror update
	UpdateRole(ctx context.Context, uid uuid.UUID, role domain.Role) error

	// GetClaims reads claims from the authoritative claim store
	GetClaims(ctx context.Context, uid uuid.UUID) (*domain.IdentityClaims, error)

	// ListUsers merges provider identities with mirror rows
	ListUsers(ctx context.Context, limit, offset int) ([]*domain.Identity, error)
}
