package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal-api/app/domain"
	mock_port "portal-api/app/mocks"
	"portal-api/app/utils/logger"
)

func newTestAnalyticsHandler(t *testing.T, ctrl *gomock.Controller) (*AnalyticsHandler, *mock_port.MockAnalyticsUsecase) {
	t.Helper()

	log, err := logger.New("debug")
	require.NoError(t, err)

	mockUsecase := mock_port.NewMockAnalyticsUsecase(ctrl)
	return NewAnalyticsHandler(mockUsecase, log), mockUsecase
}

func TestUserAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockUsecase := newTestAnalyticsHandler(t, ctrl)

	mockUsecase.EXPECT().
		UserAnalytics(gomock.Any()).
		Return(&domain.UserAnalytics{TotalUsers: 42, ActiveUsers: 40}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/users", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.UserAnalytics(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var analytics domain.UserAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analytics))
	assert.Equal(t, 42, analytics.TotalUsers)
}

func TestUserAnalytics_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockUsecase := newTestAnalyticsHandler(t, ctrl)

	mockUsecase.EXPECT().
		UserAnalytics(gomock.Any()).
		Return(nil, errors.New("mirror unavailable"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/users", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.UserAnalytics(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMyProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockUsecase := newTestAnalyticsHandler(t, ctrl)

	mockUsecase.EXPECT().
		UserProducts(gomock.Any(), gomock.Any()).
		Return([]*domain.Product{
			{Name: "example.com", Type: domain.ProductTypeDomain, Status: domain.ProductStatusActive},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.MyProducts(adminContext(e, req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var products []*domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, domain.ProductTypeDomain, products[0].Type)
}

func TestMyProducts_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestAnalyticsHandler(t, ctrl)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.MyProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockUsecase := newTestAnalyticsHandler(t, ctrl)
	uid := uuid.New()

	mockUsecase.EXPECT().
		UserProducts(gomock.Any(), uid).
		Return([]*domain.Product{
			{Name: "client.example", Type: domain.ProductTypeHosting, Status: domain.ProductStatusActive},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/users/:uid/products")
	c.SetParamNames("uid")
	c.SetParamValues(uid.String())

	require.NoError(t, handler.UserProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserProducts_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestAnalyticsHandler(t, ctrl)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/users/:uid/products")
	c.SetParamNames("uid")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.UserProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMonitors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log, err := logger.New("debug")
	require.NoError(t, err)

	mockUsecase := mock_port.NewMockUptimeUsecase(ctrl)
	handler := NewUptimeHandler(mockUsecase, log)

	mockUsecase.EXPECT().
		ListMonitors(gomock.Any()).
		Return([]*domain.Monitor{
			{ID: 1, Name: "portal", Status: domain.MonitorStatusUp, UptimeRatio: "99.98"},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/uptime/monitors", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.ListMonitors(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "99.98")
}
