package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal-api/app/domain"
	mock_port "portal-api/app/mocks"
	"portal-api/app/utils/logger"
)

func newTestRoleUseCase(t *testing.T, ctrl *gomock.Controller) (*RoleUseCase, *mock_port.MockIdentityGateway, *mock_port.MockIdentityRepository, *mock_port.MockSessionRepository) {
	t.Helper()

	gateway := mock_port.NewMockIdentityGateway(ctrl)
	identityRepo := mock_port.NewMockIdentityRepository(ctrl)
	sessionRepo := mock_port.NewMockSessionRepository(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewRoleUseCase(gateway, identityRepo, sessionRepo, testLogger)
	return uc, gateway, identityRepo, sessionRepo
}

func TestRoleUseCase_UpdateRole(t *testing.T) {
	uid := uuid.New()

	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockIdentityGateway, *mock_port.MockIdentityRepository, *mock_port.MockSessionRepository)
		expectErr  bool
	}{
		{
			name: "all steps succeed",
			setupMocks: func(gateway *mock_port.MockIdentityGateway, identityRepo *mock_port.MockIdentityRepository, sessionRepo *mock_port.MockSessionRepository) {
				gateway.EXPECT().SetRoleClaim(gomock.Any(), uid, domain.RoleAdmin).Return(nil)
				gateway.EXPECT().RevokeProviderSessions(gomock.Any(), uid).Return(nil)
				sessionRepo.EXPECT().DeactivateByIdentity(gomock.Any(), uid).Return(int64(2), nil)
				identityRepo.EXPECT().UpdateRole(gomock.Any(), uid, domain.RoleAdmin).Return(nil)
			},
		},
		{
			name: "claim write fails, nothing else runs",
			setupMocks: func(gateway *mock_port.MockIdentityGateway, identityRepo *mock_port.MockIdentityRepository, sessionRepo *mock_port.MockSessionRepository) {
				gateway.EXPECT().SetRoleClaim(gomock.Any(), uid, domain.RoleAdmin).Return(assert.AnError)
			},
			expectErr: true,
		},
		{
			name: "session revocation fails, update still succeeds",
			setupMocks: func(gateway *mock_port.MockIdentityGateway, identityRepo *mock_port.MockIdentityRepository, sessionRepo *mock_port.MockSessionRepository) {
				gateway.EXPECT().SetRoleClaim(gomock.Any(), uid, domain.RoleAdmin).Return(nil)
				gateway.EXPECT().RevokeProviderSessions(gomock.Any(), uid).Return(assert.AnError)
				sessionRepo.EXPECT().DeactivateByIdentity(gomock.Any(), uid).Return(int64(0), assert.AnError)
				identityRepo.EXPECT().UpdateRole(gomock.Any(), uid, domain.RoleAdmin).Return(nil)
			},
		},
		{
			name: "mirror update fails, update still succeeds",
			setupMocks: func(gateway *mock_port.MockIdentityGateway, identityRepo *mock_port.MockIdentityRepository, sessionRepo *mock_port.MockSessionRepository) {
				gateway.EXPECT().SetRoleClaim(gomock.Any(), uid, domain.RoleAdmin).Return(nil)
				gateway.EXPECT().RevokeProviderSessions(gomock.Any(), uid).Return(nil)
				sessionRepo.EXPECT().DeactivateByIdentity(gomock.Any(), uid).Return(int64(1), nil)
				identityRepo.EXPECT().UpdateRole(gomock.Any(), uid, domain.RoleAdmin).Return(assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, gateway, identityRepo, sessionRepo := newTestRoleUseCase(t, ctrl)
			tt.setupMocks(gateway, identityRepo, sessionRepo)

			err := uc.UpdateRole(context.Background(), uid, domain.RoleAdmin)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleUseCase_UpdateRole_NilUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestRoleUseCase(t, ctrl)

	err := uc.UpdateRole(context.Background(), uuid.Nil, domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoleUseCase_GetClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, _, _ := newTestRoleUseCase(t, ctrl)

	uid := uuid.New()
	claims := &domain.IdentityClaims{
		UID:    uid,
		Email:  "admin@example.com",
		Claims: map[string]interface{}{"role": "admin"},
	}
	gateway.EXPECT().GetClaims(gomock.Any(), uid).Return(claims, nil)

	got, err := uc.GetClaims(context.Background(), uid)

	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestRoleUseCase_ListUsers_MergesLastLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, identityRepo, _ := newTestRoleUseCase(t, ctrl)

	id := uuid.New()
	lastLogin := time.Now().Add(-2 * time.Hour)

	gateway.EXPECT().ListIdentities(gomock.Any(), int64(10), "").Return(
		[]*domain.Identity{{ID: id, Email: "user@example.com", Role: domain.RoleClient}}, "", nil)
	identityRepo.EXPECT().List(gomock.Any(), 10, 0).Return(
		[]*domain.Identity{{ID: id, LastLoginAt: &lastLogin}}, nil)

	users, err := uc.ListUsers(context.Background(), 10, 0)

	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NotNil(t, users[0].LastLoginAt)
	assert.Equal(t, lastLogin, *users[0].LastLoginAt)
}

func TestRoleUseCase_ListUsers_MirrorFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, identityRepo, _ := newTestRoleUseCase(t, ctrl)

	gateway.EXPECT().ListIdentities(gomock.Any(), int64(10), "").Return(
		[]*domain.Identity{{ID: uuid.New(), Role: domain.RoleClient}}, "", nil)
	identityRepo.EXPECT().List(gomock.Any(), 10, 0).Return(nil, assert.AnError)

	users, err := uc.ListUsers(context.Background(), 10, 0)

	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Nil(t, users[0].LastLoginAt)
}
