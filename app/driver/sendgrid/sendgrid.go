package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"time"

	"portal-api/app/config"
	apperrors "portal-api/app/utils/errors"
)

// Mailer sends transactional mail through the SendGrid v3 API.
// Implements port.Mailer.
type Mailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewMailer creates a SendGrid mailer from configuration
func NewMailer(cfg *config.Config, logger *slog.Logger) (*Mailer, error) {
	if cfg.SendGridAPIKey == "" {
		return nil, errors.New("SendGrid API key not configured")
	}

	return &Mailer{
		apiKey: cfg.SendGridAPIKey,
		from:   cfg.SendGridFromEmail,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://api.sendgrid.com",
		logger:  logger.With("component", "sendgrid_mailer"),
	}, nil
}

type mailAddress struct {
	Email string `json:"email"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type personalization struct {
	To []mailAddress `json:"to"`
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             mailAddress       `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

var approvalRequestTemplate = template.Must(template.New("approval_request").Parse(`
<p>Hi,</p>
<p>New content is ready for your review: <strong>{{.Title}}</strong></p>
<p><a href="{{.ReviewURL}}">Review and approve</a></p>
<p>If the link does not work, copy this address into your browser:<br>{{.ReviewURL}}</p>
`))

// SendApprovalRequest emails the client a link to the approval page
func (m *Mailer) SendApprovalRequest(ctx context.Context, to, title, reviewURL string) error {
	var html bytes.Buffer
	err := approvalRequestTemplate.Execute(&html, struct {
		Title     string
		ReviewURL string
	}{Title: title, ReviewURL: reviewURL})
	if err != nil {
		return fmt.Errorf("failed to render approval email: %w", err)
	}

	body := sendRequest{
		Personalizations: []personalization{
			{To: []mailAddress{{Email: to}}},
		},
		From:    mailAddress{Email: m.from},
		Subject: "Content ready for review: " + title,
		Content: []mailContent{
			{Type: "text/html", Value: html.String()},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/v3/mail/send",
		bytes.NewBuffer(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMail, "failed to send mail", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		m.logger.Error("mail provider rejected request",
			"status", resp.StatusCode,
			"detail", string(detail))
		return apperrors.New(apperrors.ErrCodeMail,
			fmt.Sprintf("mail provider returned status %d", resp.StatusCode))
	}

	m.logger.Info("approval request email sent", "to", to)
	return nil
}
