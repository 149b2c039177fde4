package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"portal-api/app/domain"
)

// Adapter wraps the Kratos identity APIs used by the portal: identity
// lookup, role-claim writes to admin metadata, provider-side session
// revocation and identity-token validation.
type Adapter struct {
	client *Client
	logger *slog.Logger
}

// NewAdapter creates a new Kratos adapter
func NewAdapter(client *Client, logger *slog.Logger) *Adapter {
	return &Adapter{
		client: client,
		logger: logger,
	}
}

// GetIdentity fetches a single identity from the admin API
func (a *Adapter) GetIdentity(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	identity, response, err := a.client.AdminAPI().IdentityAPI.
		GetIdentity(ctx, id.String()).
		Execute()
	if err != nil {
		return nil, mapKratosError("get identity", response, err)
	}

	return identityToDomain(identity), nil
}

// GetClaims returns the raw admin metadata blob for an identity together
// with its email. Callers that need a typed role go through GetIdentity.
func (a *Adapter) GetClaims(ctx context.Context, id uuid.UUID) (*domain.IdentityClaims, error) {
	identity, response, err := a.client.AdminAPI().IdentityAPI.
		GetIdentity(ctx, id.String()).
		Execute()
	if err != nil {
		return nil, mapKratosError("get identity claims", response, err)
	}

	claims := map[string]interface{}{}
	if m, ok := identity.GetMetadataAdmin().(map[string]interface{}); ok {
		claims = m
	}

	return &domain.IdentityClaims{
		UID:    id,
		Email:  traitsEmail(identity.GetTraits()),
		Claims: claims,
	}, nil
}

// SetRoleClaim writes the role claim into the identity's admin metadata.
// Admin metadata is only readable through the admin API, so the claim
// cannot be tampered with by the identity owner.
func (a *Adapter) SetRoleClaim(ctx context.Context, id uuid.UUID, role domain.Role) error {
	patch := []kratosclient.JsonPatch{
		{
			Op:    "replace",
			Path:  "/metadata_admin",
			Value: role.Claims(),
		},
	}

	_, response, err := a.client.AdminAPI().IdentityAPI.
		PatchIdentity(ctx, id.String()).
		JsonPatch(patch).
		Execute()
	if err != nil {
		return mapKratosError("patch identity metadata", response, err)
	}

	a.logger.Info("role claim written",
		"identity_id", id.String(),
		"role", role.String())

	return nil
}

// RevokeProviderSessions invalidates every Kratos session for the
// identity, forcing re-authentication before a new identity token exists
func (a *Adapter) RevokeProviderSessions(ctx context.Context, id uuid.UUID) error {
	response, err := a.client.AdminAPI().IdentityAPI.
		DeleteIdentitySessions(ctx, id.String()).
		Execute()
	if err != nil {
		// No sessions to delete is not a failure
		if response != nil && response.StatusCode == http.StatusNotFound {
			return nil
		}
		return mapKratosError("delete identity sessions", response, err)
	}

	return nil
}

// ListIdentities pages through provider identities. The next page token
// comes from the Link response header and is empty on the last page.
func (a *Adapter) ListIdentities(ctx context.Context, pageSize int64, pageToken string) ([]*domain.Identity, string, error) {
	request := a.client.AdminAPI().IdentityAPI.
		ListIdentities(ctx).
		PageSize(pageSize)
	if pageToken != "" {
		request = request.PageToken(pageToken)
	}

	identities, response, err := request.Execute()
	if err != nil {
		return nil, "", mapKratosError("list identities", response, err)
	}

	result := make([]*domain.Identity, 0, len(identities))
	for i := range identities {
		result = append(result, identityToDomain(&identities[i]))
	}

	return result, nextPageToken(response), nil
}

// ValidateIdentityToken resolves a Kratos session token to its identity.
// An invalid or expired token fails with ErrUnauthorized.
func (a *Adapter) ValidateIdentityToken(ctx context.Context, token string) (*domain.Identity, error) {
	session, response, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		if response != nil && (response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden) {
			return nil, domain.ErrUnauthorized
		}
		return nil, mapKratosError("validate identity token", response, err)
	}

	if session.Identity == nil {
		return nil, domain.ErrUnauthorized
	}
	if active, ok := session.GetActiveOk(); ok && !*active {
		return nil, domain.ErrUnauthorized
	}

	return identityToDomain(session.Identity), nil
}

// mapKratosError folds transport and API errors into domain errors
func mapKratosError(operation string, response *http.Response, err error) error {
	if response != nil {
		switch response.StatusCode {
		case http.StatusNotFound:
			return domain.ErrIdentityNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.ErrUnauthorized
		}
	}
	return fmt.Errorf("kratos %s: %w", operation, err)
}

// nextPageToken extracts the page_token of the rel="next" link, if any
func nextPageToken(response *http.Response) string {
	if response == nil {
		return ""
	}
	for _, link := range response.Header.Values("Link") {
		for _, part := range strings.Split(link, ",") {
			if !strings.Contains(part, `rel="next"`) {
				continue
			}
			start := strings.Index(part, "<")
			end := strings.Index(part, ">")
			if start < 0 || end < 0 || end <= start {
				continue
			}
			target := part[start+1 : end]
			if idx := strings.Index(target, "page_token="); idx >= 0 {
				token := target[idx+len("page_token="):]
				if amp := strings.Index(token, "&"); amp >= 0 {
					token = token[:amp]
				}
				return token
			}
		}
	}
	return ""
}
