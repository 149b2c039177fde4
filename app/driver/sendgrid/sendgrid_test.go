package sendgrid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-api/app/config"
	"portal-api/app/utils/logger"
)

func newTestMailer(t *testing.T, server *httptest.Server) *Mailer {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	mailer, err := NewMailer(&config.Config{
		SendGridAPIKey:    "sg-key",
		SendGridFromEmail: "noreply@agency.example",
	}, testLogger)
	require.NoError(t, err)
	mailer.baseURL = server.URL

	return mailer
}

func TestMailer_SendApprovalRequest(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	mailer := newTestMailer(t, server)

	err := mailer.SendApprovalRequest(
		context.Background(),
		"client@example.com",
		"May newsletter",
		"https://portal.example.com/client-portal/approvals/123",
	)

	require.NoError(t, err)
	require.Len(t, got.Personalizations, 1)
	assert.Equal(t, "client@example.com", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "noreply@agency.example", got.From.Email)
	assert.Contains(t, got.Subject, "May newsletter")
	require.Len(t, got.Content, 1)
	assert.Contains(t, got.Content[0].Value, "https://portal.example.com/client-portal/approvals/123")
}

func TestMailer_SendApprovalRequest_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	mailer := newTestMailer(t, server)

	err := mailer.SendApprovalRequest(context.Background(), "client@example.com", "x", "https://example.com")
	assert.ErrorContains(t, err, "status 401")
}

func TestMailer_TitleEscaped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.NotContains(t, got.Content[0].Value, "<script>")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	mailer := newTestMailer(t, server)

	err := mailer.SendApprovalRequest(context.Background(), "client@example.com", "<script>x</script>", "https://example.com")
	assert.NoError(t, err)
}

func TestNewMailer_MissingKey(t *testing.T) {
	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	_, err = NewMailer(&config.Config{}, testLogger)
	assert.Error(t, err)
}
