package uptimerobot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-api/app/config"
	"portal-api/app/domain"
	"portal-api/app/utils/logger"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	client, err := NewClient(&config.Config{UptimeRobotAPIKey: "ur-key"}, testLogger)
	require.NoError(t, err)
	client.baseURL = server.URL

	return client
}

func TestClient_ListMonitors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/getMonitors", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ur-key", r.PostForm.Get("api_key"))
		assert.Equal(t, "json", r.PostForm.Get("format"))
		assert.Equal(t, "1-7-30", r.PostForm.Get("custom_uptime_ratios"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"stat": "ok",
			"monitors": [
				{"id": 1, "friendly_name": "Marketing site", "url": "https://example.com", "type": 1, "status": 2, "custom_uptime_ratio": "99.98"},
				{"id": 2, "friendly_name": "Client portal", "url": "https://portal.example.com", "type": 1, "status": 9, "all_time_uptime_ratio": "97.20"}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	monitors, err := client.ListMonitors(context.Background())

	require.NoError(t, err)
	require.Len(t, monitors, 2)

	assert.Equal(t, int64(1), monitors[0].ID)
	assert.Equal(t, "Marketing site", monitors[0].Name)
	assert.Equal(t, domain.MonitorStatusUp, monitors[0].Status)
	assert.Equal(t, "99.98", monitors[0].UptimeRatio)
	assert.True(t, monitors[0].IsUp())

	assert.Equal(t, domain.MonitorStatusDown, monitors[1].Status)
	assert.Equal(t, "97.20", monitors[1].UptimeRatio, "falls back to all-time ratio")
	assert.False(t, monitors[1].IsUp())
}

func TestClient_ListMonitors_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stat": "fail", "error": {"type": "invalid_parameter", "message": "api_key is wrong"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.ListMonitors(context.Background())
	assert.ErrorContains(t, err, "invalid_parameter")
}
