package domain

import "fmt"

// Role is the portal's closed role set, stored as a custom claim on the
// identity in the claim store.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// roleRank orders roles for hierarchy checks: admin satisfies client paths.
var roleRank = map[Role]int{
	RoleClient: 1,
	RoleAdmin:  2,
}

// ParseRole converts a string into a Role, rejecting anything outside the
// closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleClient:
		return RoleClient, nil
	}
	return "", fmt.Errorf("invalid role: %q", s)
}

// DecodeRole decodes the untyped claim blob returned by the claim store.
// This is the single boundary where the duck-typed claim shape becomes the
// closed enum: a missing, empty or unrecognized role decodes to client.
func DecodeRole(claims map[string]interface{}) Role {
	if claims == nil {
		return RoleClient
	}

	raw, ok := claims["role"]
	if !ok {
		return RoleClient
	}

	s, ok := raw.(string)
	if !ok {
		return RoleClient
	}

	role, err := ParseRole(s)
	if err != nil {
		return RoleClient
	}
	return role
}

// String returns the role's string value.
func (r Role) String() string {
	return string(r)
}

// Satisfies returns true if the role meets or exceeds the required role.
func (r Role) Satisfies(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// IsAdmin returns true if the role is admin
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Claims returns the claim blob persisted to the claim store for this role.
func (r Role) Claims() map[string]interface{} {
	return map[string]interface{}{"role": string(r)}
}
