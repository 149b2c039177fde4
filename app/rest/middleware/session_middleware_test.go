package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal-api/app/domain"
	mock_port "portal-api/app/mocks"
	"portal-api/app/utils/logger"
)

func newTestSessionMiddleware(t *testing.T, ctrl *gomock.Controller) (*SessionMiddleware, *mock_port.MockSessionUsecase) {
	t.Helper()

	log, err := logger.New("debug")
	require.NoError(t, err)

	mockUsecase := mock_port.NewMockSessionUsecase(ctrl)
	return NewSessionMiddleware(mockUsecase, log), mockUsecase
}

func testSessionContext(role domain.Role) *domain.SessionContext {
	return &domain.SessionContext{
		IdentityID: uuid.New(),
		Email:      "user@example.com",
		Role:       role,
		SessionID:  uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func invoke(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestRequireAuth_ValidCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mw, mockUsecase := newTestSessionMiddleware(t, ctrl)
	sessionCtx := testSessionContext(domain.RoleAdmin)

	mockUsecase.EXPECT().
		VerifySession(gomock.Any(), "artifact-value").
		Return(sessionCtx, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "artifact-value"})

	_, c, err := invoke(mw.RequireAuth(), req)
	require.NoError(t, err)

	assert.Equal(t, sessionCtx, SessionFromContext(c))
	assert.Equal(t, sessionCtx.IdentityID.String(), c.Get(ContextKeyIdentityID))
	assert.Equal(t, "admin", c.Get(ContextKeyRole))
}

func TestRequireAuth_BearerFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mw, mockUsecase := newTestSessionMiddleware(t, ctrl)

	mockUsecase.EXPECT().
		VerifySession(gomock.Any(), "bearer-artifact").
		Return(testSessionContext(domain.RoleClient), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/content/approvals", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bearer-artifact")

	_, _, err := invoke(mw.RequireAuth(), req)
	assert.NoError(t, err)
}

func TestRequireAuth_MissingArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mw, _ := newTestSessionMiddleware(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)

	_, _, err := invoke(mw.RequireAuth(), req)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAuth_VerificationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "expired", err: domain.ErrSessionExpired},
		{name: "revoked", err: domain.ErrSessionRevoked},
		{name: "issuer mismatch", err: domain.ErrIssuerMismatch},
		{name: "garbage", err: domain.ErrInvalidSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mw, mockUsecase := newTestSessionMiddleware(t, ctrl)
			mockUsecase.EXPECT().
				VerifySession(gomock.Any(), "bad").
				Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bad"})

			_, _, err := invoke(mw.RequireAuth(), req)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		})
	}
}

func TestRequireAdmin_RoleEnforcement(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		wantCode int
	}{
		{name: "admin allowed", role: domain.RoleAdmin, wantCode: http.StatusOK},
		{name: "client forbidden", role: domain.RoleClient, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mw, mockUsecase := newTestSessionMiddleware(t, ctrl)
			mockUsecase.EXPECT().
				VerifySession(gomock.Any(), "artifact").
				Return(testSessionContext(tt.role), nil)

			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "artifact"})
			// forged role cookie must not matter
			req.AddCookie(&http.Cookie{Name: RoleCookieName, Value: "admin"})

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			chain := mw.RequireAuth()(mw.RequireAdmin()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}))
			err := chain(c)

			if tt.wantCode == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestRequireRole_WithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mw, _ := newTestSessionMiddleware(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	_, _, err := invoke(mw.RequireRole(domain.RoleAdmin), req)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
