package uptimerobot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portal-api/app/config"
	"portal-api/app/domain"
	apperrors "portal-api/app/utils/errors"
)

const defaultBaseURL = "https://api.uptimerobot.com"

// Client proxies the UptimeRobot v2 API so the provider API key never
// reaches a browser. Implements port.MonitorClient.
type Client struct {
	apiKey  string
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewClient creates an UptimeRobot client from configuration
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.UptimeRobotAPIKey == "" {
		return nil, errors.New("UptimeRobot API key not configured")
	}

	return &Client{
		apiKey: cfg.UptimeRobotAPIKey,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: defaultBaseURL,
		logger:  logger.With("component", "uptimerobot_client"),
	}, nil
}

type getMonitorsResponse struct {
	Stat  string `json:"stat"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
	Monitors []monitor `json:"monitors"`
}

type monitor struct {
	ID                 int64  `json:"id"`
	FriendlyName       string `json:"friendly_name"`
	URL                string `json:"url"`
	Type               int    `json:"type"`
	Status             int    `json:"status"`
	CustomUptimeRatio  string `json:"custom_uptime_ratio"`
	AllTimeUptimeRatio string `json:"all_time_uptime_ratio"`
}

// ListMonitors fetches all monitors with their 1, 7 and 30-day uptime
// ratios
func (c *Client) ListMonitors(ctx context.Context) ([]*domain.Monitor, error) {
	form := url.Values{}
	form.Set("api_key", c.apiKey)
	form.Set("format", "json")
	form.Set("logs", "0")
	form.Set("custom_uptime_ratios", "1-7-30")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v2/getMonitors",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build monitors request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMonitor, "monitoring provider request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.ErrCodeMonitor,
			fmt.Sprintf("monitoring provider returned status %d", resp.StatusCode))
	}

	var result getMonitorsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMonitor, "failed to decode monitors response", err)
	}

	// The API reports errors with HTTP 200 and stat=fail
	if result.Stat != "ok" {
		c.logger.Error("monitoring provider returned error",
			"type", result.Error.Type,
			"message", result.Error.Message)
		return nil, apperrors.New(apperrors.ErrCodeMonitor,
			fmt.Sprintf("monitoring provider error: %s", result.Error.Type))
	}

	monitors := make([]*domain.Monitor, 0, len(result.Monitors))
	for _, m := range result.Monitors {
		ratio := m.CustomUptimeRatio
		if ratio == "" {
			ratio = m.AllTimeUptimeRatio
		}
		monitors = append(monitors, &domain.Monitor{
			ID:          m.ID,
			Name:        m.FriendlyName,
			URL:         m.URL,
			Status:      domain.MonitorStatus(m.Status),
			Type:        m.Type,
			UptimeRatio: ratio,
		})
	}

	c.logger.Info("monitors fetched", "count", len(monitors))
	return monitors, nil
}
