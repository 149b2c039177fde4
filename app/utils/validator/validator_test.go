package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test struct for validation
type TestRoleUpdate struct {
	UID  string `json:"uid" validate:"required,uuid4"`
	Role string `json:"role" validate:"required,portal_role"`
}

type TestSendRequest struct {
	ApprovalID  string `json:"approval_id" validate:"required,uuid4"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		wantField string
	}{
		{
			name: "valid role update",
			input: TestRoleUpdate{
				UID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
				Role: "admin",
			},
			wantError: false,
		},
		{
			name: "client role accepted",
			input: TestRoleUpdate{
				UID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
				Role: "client",
			},
			wantError: false,
		},
		{
			name: "unknown role rejected",
			input: TestRoleUpdate{
				UID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
				Role: "superuser",
			},
			wantError: true,
			wantField: "role",
		},
		{
			name: "missing uid",
			input: TestRoleUpdate{
				Role: "admin",
			},
			wantError: true,
			wantField: "uid",
		},
		{
			name: "empty recipient override allowed",
			input: TestSendRequest{
				ApprovalID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			},
			wantError: false,
		},
		{
			name: "malformed recipient rejected",
			input: TestSendRequest{
				ApprovalID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
				ClientEmail: "not-an-address",
			},
			wantError: true,
			wantField: "client_email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantError {
				require.Error(t, err)
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, tt.wantField)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("client@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("7c9e6679-7425-40de-944b-e07fc1f90ae7"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}
