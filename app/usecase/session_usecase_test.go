package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal-api/app/domain"
	mock_port "portal-api/app/mocks"
	"portal-api/app/utils/logger"
)

const testSecret = "test-secret-key-at-least-32-bytes-long"
const testIssuer = "portal-api"

func newTestSessionUseCase(t *testing.T, ctrl *gomock.Controller, issuer string) (*SessionUseCase, *mock_port.MockIdentityGateway, *mock_port.MockSessionRepository, *mock_port.MockIdentityRepository) {
	t.Helper()

	gateway := mock_port.NewMockIdentityGateway(ctrl)
	sessionRepo := mock_port.NewMockSessionRepository(ctrl)
	identityRepo := mock_port.NewMockIdentityRepository(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewSessionUseCase(gateway, sessionRepo, identityRepo, testSecret, issuer, domain.SessionTTL, testLogger)
	return uc, gateway, sessionRepo, identityRepo
}

func issueTestSession(t *testing.T, ctrl *gomock.Controller, uc *SessionUseCase, gateway *mock_port.MockIdentityGateway, sessionRepo *mock_port.MockSessionRepository, identityRepo *mock_port.MockIdentityRepository, role domain.Role) (string, *domain.Session) {
	t.Helper()

	identity := &domain.Identity{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  role,
	}

	var created *domain.Session
	gateway.EXPECT().ValidateIdentityToken(gomock.Any(), "identity-token").Return(identity, nil)
	sessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *domain.Session) error {
			created = s
			return nil
		})
	identityRepo.EXPECT().Upsert(gomock.Any(), identity).Return(nil)
	identityRepo.EXPECT().RecordLogin(gomock.Any(), identity.ID).Return(nil)

	issued, err := uc.IssueSession(context.Background(), "identity-token")
	require.NoError(t, err)
	require.NotNil(t, created)

	return issued.Artifact, created
}

func TestSessionUseCase_IssueSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, sessionRepo, identityRepo := newTestSessionUseCase(t, ctrl, testIssuer)

	artifact, session := issueTestSession(t, ctrl, uc, gateway, sessionRepo, identityRepo, domain.RoleAdmin)

	assert.NotEmpty(t, artifact)
	assert.Equal(t, domain.RoleAdmin, session.Role)
	assert.True(t, session.Active)
	assert.WithinDuration(t, time.Now().Add(domain.SessionTTL), session.ExpiresAt, 5*time.Second)
}

func TestSessionUseCase_IssueSession_InvalidIdentityToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, _, _ := newTestSessionUseCase(t, ctrl, testIssuer)

	gateway.EXPECT().ValidateIdentityToken(gomock.Any(), "bad-token").Return(nil, domain.ErrUnauthorized)

	issued, err := uc.IssueSession(context.Background(), "bad-token")

	assert.Nil(t, issued)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionUseCase_VerifySession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, sessionRepo, identityRepo := newTestSessionUseCase(t, ctrl, testIssuer)
	artifact, session := issueTestSession(t, ctrl, uc, gateway, sessionRepo, identityRepo, domain.RoleAdmin)

	sessionRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

	sessionCtx, err := uc.VerifySession(context.Background(), artifact)

	require.NoError(t, err)
	assert.Equal(t, session.IdentityID, sessionCtx.IdentityID)
	assert.Equal(t, "user@example.com", sessionCtx.Email)
	assert.Equal(t, domain.RoleAdmin, sessionCtx.Role)
	assert.Equal(t, session.ID, sessionCtx.SessionID)
}

// An artifact minted under one issuer must never verify under another.
func TestSessionUseCase_VerifySession_IssuerMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issuerA, gatewayA, sessionRepoA, identityRepoA := newTestSessionUseCase(t, ctrl, "portal-api")
	artifact, _ := issueTestSession(t, ctrl, issuerA, gatewayA, sessionRepoA, identityRepoA, domain.RoleAdmin)

	issuerB, _, _, _ := newTestSessionUseCase(t, ctrl, "other-project")

	sessionCtx, err := issuerB.VerifySession(context.Background(), artifact)

	assert.Nil(t, sessionCtx)
	assert.ErrorIs(t, err, domain.ErrIssuerMismatch)
}

func TestSessionUseCase_VerifySession_TamperedSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, sessionRepo, identityRepo := newTestSessionUseCase(t, ctrl, testIssuer)
	artifact, _ := issueTestSession(t, ctrl, uc, gateway, sessionRepo, identityRepo, domain.RoleClient)

	tampered := artifact[:len(artifact)-4] + "xxxx"

	sessionCtx, err := uc.VerifySession(context.Background(), tampered)

	assert.Nil(t, sessionCtx)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

// A role change deactivates the session row, so an artifact that is
// still cryptographically valid fails the revocation check.
func TestSessionUseCase_VerifySession_RevokedAfterRoleChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, sessionRepo, identityRepo := newTestSessionUseCase(t, ctrl, testIssuer)
	artifact, session := issueTestSession(t, ctrl, uc, gateway, sessionRepo, identityRepo, domain.RoleAdmin)

	session.Deactivate()
	sessionRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

	sessionCtx, err := uc.VerifySession(context.Background(), artifact)

	assert.Nil(t, sessionCtx)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)
}

func TestSessionUseCase_VerifySession_RowMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, sessionRepo, identityRepo := newTestSessionUseCase(t, ctrl, testIssuer)
	artifact, session := issueTestSession(t, ctrl, uc, gateway, sessionRepo, identityRepo, domain.RoleClient)

	sessionRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(nil, domain.ErrSessionNotFound)

	_, err := uc.VerifySession(context.Background(), artifact)

	assert.ErrorIs(t, err, domain.ErrSessionRevoked)
}

func TestSessionUseCase_VerifySession_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestSessionUseCase(t, ctrl, testIssuer)

	_, err := uc.VerifySession(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

// A correctly signed artifact without an expiry claim must not verify;
// the parse options require exp so the expiry check can never be skipped.
func TestSessionUseCase_VerifySession_MissingExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestSessionUseCase(t, ctrl, testIssuer)

	claims := sessionClaims{
		Role:      domain.RoleAdmin.String(),
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  uuid.NewString(),
			Issuer:   testIssuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	artifact, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	sessionCtx, err := uc.VerifySession(context.Background(), artifact)

	assert.Nil(t, sessionCtx)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionUseCase_RevokeSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, sessionRepo, identityRepo := newTestSessionUseCase(t, ctrl, testIssuer)
	artifact, session := issueTestSession(t, ctrl, uc, gateway, sessionRepo, identityRepo, domain.RoleClient)

	sessionRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
	sessionRepo.EXPECT().Deactivate(gomock.Any(), session.ID).Return(nil)

	assert.NoError(t, uc.RevokeSession(context.Background(), artifact))
}

func TestSessionUseCase_RevokeSession_AlreadyRevoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, sessionRepo, identityRepo := newTestSessionUseCase(t, ctrl, testIssuer)
	artifact, session := issueTestSession(t, ctrl, uc, gateway, sessionRepo, identityRepo, domain.RoleClient)

	session.Deactivate()
	sessionRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

	// Logging out twice is not an error
	assert.NoError(t, uc.RevokeSession(context.Background(), artifact))
}

// Mirror failures must not block session issuance
func TestSessionUseCase_IssueSession_MirrorFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, gateway, sessionRepo, identityRepo := newTestSessionUseCase(t, ctrl, testIssuer)

	identity := &domain.Identity{ID: uuid.New(), Email: "user@example.com", Role: domain.RoleClient}
	gateway.EXPECT().ValidateIdentityToken(gomock.Any(), "identity-token").Return(identity, nil)
	sessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	identityRepo.EXPECT().Upsert(gomock.Any(), identity).Return(assert.AnError)

	issued, err := uc.IssueSession(context.Background(), "identity-token")

	require.NoError(t, err)
	assert.NotEmpty(t, issued.Artifact)
	assert.Equal(t, domain.RoleClient, issued.Role)
}
