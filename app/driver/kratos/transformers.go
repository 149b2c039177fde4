package kratos

import (
	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"portal-api/app/domain"
)

// identityToDomain converts a Kratos identity into the portal's domain
// shape. The role comes from admin metadata and defaults to client when
// the claim is missing or malformed.
func identityToDomain(identity *kratosclient.Identity) *domain.Identity {
	id, err := uuid.Parse(identity.GetId())
	if err != nil {
		id = uuid.Nil
	}

	claims, _ := identity.GetMetadataAdmin().(map[string]interface{})

	result := &domain.Identity{
		ID:       id,
		Email:    traitsEmail(identity.GetTraits()),
		Name:     traitsName(identity.GetTraits()),
		Role:     domain.DecodeRole(claims),
		Disabled: identity.GetState() != "active",
	}
	if createdAt, ok := identity.GetCreatedAtOk(); ok {
		result.CreatedAt = *createdAt
	}

	return result
}

// traitsEmail reads the email trait from the untyped traits blob
func traitsEmail(traits interface{}) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}
	email, _ := m["email"].(string)
	return email
}

// traitsName reads the name trait, accepting either a plain string or
// the {first, last} object shape used by common identity schemas
func traitsName(traits interface{}) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}

	switch name := m["name"].(type) {
	case string:
		return name
	case map[string]interface{}:
		first, _ := name["first"].(string)
		last, _ := name["last"].(string)
		if first == "" {
			return last
		}
		if last == "" {
			return first
		}
		return first + " " + last
	default:
		return ""
	}
}
