package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"portal-api/app/domain"
	"portal-api/app/port"
	apperrors "portal-api/app/utils/errors"
)

// IdentityGateway implements port.IdentityGateway.
// It acts as an anti-corruption layer between the domain and the managed
// identity provider.
type IdentityGateway struct {
	kratosClient port.KratosIdentityClient
	logger       *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(kratosClient port.KratosIdentityClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "identity_gateway"),
	}
}

// GetIdentity fetches one identity with its decoded role claim
func (g *IdentityGateway) GetIdentity(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	identity, err := g.kratosClient.GetIdentity(ctx, id)
	if err != nil {
		g.logger.Error("failed to get identity", "identity_id", id.String(), "error", err)
		return nil, err
	}
	return identity, nil
}

// GetClaims returns the raw claim blob for an identity
func (g *IdentityGateway) GetClaims(ctx context.Context, id uuid.UUID) (*domain.IdentityClaims, error) {
	claims, err := g.kratosClient.GetClaims(ctx, id)
	if err != nil {
		g.logger.Error("failed to get claims", "identity_id", id.String(), "error", err)
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeClaimStore, "failed to read claims", err)
	}
	return claims, nil
}

// SetRoleClaim writes the role claim to the provider. This is the
// authoritative write of role assignment: callers must abort on failure.
func (g *IdentityGateway) SetRoleClaim(ctx context.Context, id uuid.UUID, role domain.Role) error {
	g.logger.Info("setting role claim", "identity_id", id.String(), "role", role.String())

	if err := g.kratosClient.SetRoleClaim(ctx, id, role); err != nil {
		g.logger.Error("failed to set role claim", "identity_id", id.String(), "error", err)
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return err
		}
		return apperrors.Wrap(apperrors.ErrCodeClaimStore, "failed to set role claim", err)
	}
	return nil
}

// RevokeProviderSessions invalidates the provider's own sessions for the
// identity
func (g *IdentityGateway) RevokeProviderSessions(ctx context.Context, id uuid.UUID) error {
	if err := g.kratosClient.RevokeProviderSessions(ctx, id); err != nil {
		g.logger.Error("failed to revoke provider sessions", "identity_id", id.String(), "error", err)
		return fmt.Errorf("failed to revoke provider sessions: %w", err)
	}

	g.logger.Info("provider sessions revoked", "identity_id", id.String())
	return nil
}

// ListIdentities pages through provider identities
func (g *IdentityGateway) ListIdentities(ctx context.Context, pageSize int64, pageToken string) ([]*domain.Identity, string, error) {
	identities, nextToken, err := g.kratosClient.ListIdentities(ctx, pageSize, pageToken)
	if err != nil {
		g.logger.Error("failed to list identities", "error", err)
		return nil, "", fmt.Errorf("failed to list identities: %w", err)
	}
	return identities, nextToken, nil
}

// ValidateIdentityToken resolves an identity token to the identity it
// belongs to
func (g *IdentityGateway) ValidateIdentityToken(ctx context.Context, token string) (*domain.Identity, error) {
	identity, err := g.kratosClient.ValidateIdentityToken(ctx, token)
	if err != nil {
		g.logger.Warn("identity token validation failed", "error", err)
		return nil, err
	}
	return identity, nil
}
