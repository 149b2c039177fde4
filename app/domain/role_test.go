package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-api/app/domain"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Role
		wantErr bool
	}{
		{
			name:  "admin",
			input: "admin",
			want:  domain.RoleAdmin,
		},
		{
			name:  "client",
			input: "client",
			want:  domain.RoleClient,
		},
		{
			name:    "unknown role",
			input:   "superuser",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "case sensitive",
			input:   "Admin",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseRole(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeRole(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
		want   domain.Role
	}{
		{
			name:   "admin claim",
			claims: map[string]interface{}{"role": "admin"},
			want:   domain.RoleAdmin,
		},
		{
			name:   "client claim",
			claims: map[string]interface{}{"role": "client"},
			want:   domain.RoleClient,
		},
		{
			name:   "nil claims default to client",
			claims: nil,
			want:   domain.RoleClient,
		},
		{
			name:   "missing role key defaults to client",
			claims: map[string]interface{}{"theme": "dark"},
			want:   domain.RoleClient,
		},
		{
			name:   "non-string role defaults to client",
			claims: map[string]interface{}{"role": 42},
			want:   domain.RoleClient,
		},
		{
			name:   "unknown role value defaults to client",
			claims: map[string]interface{}{"role": "superuser"},
			want:   domain.RoleClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DecodeRole(tt.claims))
		})
	}
}

func TestRole_Satisfies(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Satisfies(domain.RoleClient))
	assert.True(t, domain.RoleAdmin.Satisfies(domain.RoleAdmin))
	assert.True(t, domain.RoleClient.Satisfies(domain.RoleClient))
	assert.False(t, domain.RoleClient.Satisfies(domain.RoleAdmin))
}

func TestRole_Claims(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"role": "admin"}, domain.RoleAdmin.Claims())

	// Round-trip through the claim blob
	assert.Equal(t, domain.RoleAdmin, domain.DecodeRole(domain.RoleAdmin.Claims()))
	assert.Equal(t, domain.RoleClient, domain.DecodeRole(domain.RoleClient.Claims()))
}
