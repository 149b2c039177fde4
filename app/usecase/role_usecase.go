package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// RoleUseCase drives role assignment and claims lookup.
//
// Role assignment is a three-step sequence with one authoritative write:
//
//  1. write the role claim to the identity provider; abort on failure
//  2. revoke provider sessions and outstanding portal sessions, best
//     effort: a failure is logged and swallowed
//  3. update the mirror row, best effort as well
//
// After step 1 the assignment has happened. Steps 2 and 3 only shorten
// the window in which stale sessions or listings show the old role.
type RoleUseCase struct {
	identityGateway port.IdentityGateway
	identityRepo    port.IdentityRepository
	sessionRepo     port.SessionRepository
	logger          *slog.Logger
}

// NewRoleUseCase creates a new RoleUseCase instance
func NewRoleUseCase(
	identityGateway port.IdentityGateway,
	identityRepo port.IdentityRepository,
	sessionRepo port.SessionRepository,
	logger *slog.Logger,
) *RoleUseCase {
	return &RoleUseCase{
		identityGateway: identityGateway,
		identityRepo:    identityRepo,
		sessionRepo:     sessionRepo,
		logger:          logger.With("component", "role_usecase"),
	}
}

// UpdateRole runs the role-assignment sequence for an identity
func (uc *RoleUseCase) UpdateRole(ctx context.Context, uid uuid.UUID, role domain.Role) error {
	if uid == uuid.Nil {
		return domain.ErrInvalidInput
	}

	// Authoritative write. If this fails nothing has changed.
	if err := uc.identityGateway.SetRoleClaim(ctx, uid, role); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	// Force re-authentication so no outstanding credential keeps the old
	// role. Failures here leave stale sessions that expire on their own.
	if err := uc.identityGateway.RevokeProviderSessions(ctx, uid); err != nil {
		uc.logger.Error("failed to revoke provider sessions after role change",
			"identity_id", uid, "error", err)
	}
	if count, err := uc.sessionRepo.DeactivateByIdentity(ctx, uid); err != nil {
		uc.logger.Error("failed to revoke portal sessions after role change",
			"identity_id", uid, "error", err)
	} else if count > 0 {
		uc.logger.Info("portal sessions revoked after role change",
			"identity_id", uid, "count", count)
	}

	// Advisory mirror for listings; the claim store stays authoritative
	if err := uc.identityRepo.UpdateRole(ctx, uid, role); err != nil {
		uc.logger.Error("failed to update role mirror",
			"identity_id", uid, "error", err)
	}

	uc.logger.Info("role updated", "identity_id", uid, "role", role.String())
	return nil
}

// GetClaims reads the raw claim blob from the authoritative claim store
func (uc *RoleUseCase) GetClaims(ctx context.Context, uid uuid.UUID) (*domain.IdentityClaims, error) {
	if uid == uuid.Nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.identityGateway.GetClaims(ctx, uid)
}

// ListUsers returns identities from the provider enriched with mirror
// data the provider does not track (last login). Provider paging is
// token-based; the offset maps onto pages of the requested size.
func (uc *RoleUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*domain.Identity, error) {
	if limit <= 0 {
		limit = 50
	}

	identities, _, err := uc.identityGateway.ListIdentities(ctx, int64(limit+offset), "")
	if err != nil {
		return nil, err
	}
	if offset >= len(identities) {
		return []*domain.Identity{}, nil
	}
	identities = identities[offset:]

	mirror, err := uc.identityRepo.List(ctx, limit+offset, 0)
	if err != nil {
		uc.logger.Warn("mirror lookup failed, listing without login data", "error", err)
		return identities, nil
	}

	lastLogins := make(map[uuid.UUID]*domain.Identity, len(mirror))
	for _, m := range mirror {
		lastLogins[m.ID] = m
	}
	for _, identity := range identities {
		if m, ok := lastLogins[identity.ID]; ok {
			identity.LastLoginAt = m.LastLoginAt
		}
	}

	return identities, nil
}
