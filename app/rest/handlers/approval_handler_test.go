package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal-api/app/domain"
	mock_port "portal-api/app/mocks"
	"portal-api/app/rest/middleware"
	"portal-api/app/utils/logger"
	appvalidator "portal-api/app/utils/validator"
)

func newTestApprovalHandler(t *testing.T, ctrl *gomock.Controller) (*ApprovalHandler, *mock_port.MockApprovalUsecase) {
	t.Helper()

	log, err := logger.New("debug")
	require.NoError(t, err)

	mockUsecase := mock_port.NewMockApprovalUsecase(ctrl)
	return NewApprovalHandler(mockUsecase, log), mockUsecase
}

func adminContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeySession, &domain.SessionContext{
		IdentityID: uuid.New(),
		Email:      "admin@example.com",
		Role:       domain.RoleAdmin,
		SessionID:  uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	})
	return c
}

func TestCreateApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockUsecase := newTestApprovalHandler(t, ctrl)
	clientID := uuid.New()

	mockUsecase.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, approval *domain.ContentApproval) error {
			assert.Equal(t, "March newsletter", approval.Title)
			assert.Equal(t, domain.ContentTypeEmail, approval.Type)
			assert.Equal(t, clientID, approval.ClientID)
			assert.Equal(t, domain.ApprovalStatusPending, approval.Status)
			return nil
		})

	body := fmt.Sprintf(`{
		"title": "March newsletter",
		"description": "Monthly mailing",
		"content": "<p>Hello</p>",
		"type": "email",
		"client_id": %q,
		"client_email": "client@example.com"
	}`, clientID)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/content/approvals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.CreateApproval(adminContext(e, req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateApproval_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestApprovalHandler(t, ctrl)

	body := fmt.Sprintf(`{
		"title": "t",
		"description": "d",
		"content": "c",
		"type": "billboard",
		"client_id": %q,
		"client_email": "client@example.com"
	}`, uuid.New())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/content/approvals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.CreateApproval(adminContext(e, req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApprovalStatus(t *testing.T) {
	approvalID := uuid.New()

	tests := []struct {
		name       string
		status     string
		usecaseErr error
		wantCode   int
	}{
		{name: "approve", status: "approved", wantCode: http.StatusOK},
		{name: "invalid status", status: "archived",
			usecaseErr: fmt.Errorf("%w: invalid approval status %q", domain.ErrInvalidInput, "archived"),
			wantCode:   http.StatusBadRequest},
		{name: "not found", status: "approved",
			usecaseErr: domain.ErrApprovalNotFound,
			wantCode:   http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler, mockUsecase := newTestApprovalHandler(t, ctrl)
			mockUsecase.EXPECT().
				ChangeStatus(gomock.Any(), approvalID, domain.ApprovalStatus(tt.status)).
				Return(tt.usecaseErr)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPatch, "/",
				strings.NewReader(fmt.Sprintf(`{"status":%q}`, tt.status)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/v1/content/approvals/:approvalId")
			c.SetParamNames("approvalId")
			c.SetParamValues(approvalID.String())

			require.NoError(t, handler.UpdateApprovalStatus(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSendApprovalRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockUsecase := newTestApprovalHandler(t, ctrl)
	approvalID := uuid.New()

	mockUsecase.EXPECT().
		SendRequest(gomock.Any(), approvalID, "override@example.com", "").
		Return(nil)

	e := echo.New()
	e.Validator = appvalidator.New()
	body := fmt.Sprintf(`{"approval_id":%q,"client_email":"override@example.com"}`, approvalID)
	req := httptest.NewRequest(http.MethodPost, "/v1/content/approvals/send-request",
		strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.SendApprovalRequest(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendApprovalRequest_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestApprovalHandler(t, ctrl)

	e := echo.New()
	e.Validator = appvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/content/approvals/send-request",
		strings.NewReader(`{"approval_id":"not-a-uuid"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.SendApprovalRequest(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendApprovalRequest_BadEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestApprovalHandler(t, ctrl)

	e := echo.New()
	e.Validator = appvalidator.New()
	body := fmt.Sprintf(`{"approval_id":%q,"client_email":"not-an-address"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/v1/content/approvals/send-request",
		strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.SendApprovalRequest(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListApprovals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockUsecase := newTestApprovalHandler(t, ctrl)

	mockUsecase.EXPECT().
		List(gomock.Any(), 5, 10).
		Return([]*domain.ContentApproval{{Title: "A"}, {Title: "B"}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/content/approvals?limit=5&offset=10", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.ListApprovals(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var approvals []*domain.ContentApproval
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approvals))
	assert.Len(t, approvals, 2)
}
