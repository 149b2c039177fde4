package yelp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"portal-api/app/config"
	"portal-api/app/domain"
	apperrors "portal-api/app/utils/errors"
)

const (
	defaultBaseURL = "https://api.yelp.com"
	maxSearchLimit = 50
)

// Client searches businesses through the Yelp Fusion API.
// Implements port.BusinessSearcher.
type Client struct {
	apiKey  string
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a Yelp Fusion client from configuration. Requests
// are rate limited to stay inside the daily API quota.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.YelpAPIKey == "" {
		return nil, errors.New("Yelp API key not configured")
	}

	return &Client{
		apiKey: cfg.YelpAPIKey,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: defaultBaseURL,
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		logger:  logger.With("component", "yelp_client"),
	}, nil
}

type searchResponse struct {
	Businesses []business `json:"businesses"`
	Total      int        `json:"total"`
}

type business struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Phone       string  `json:"phone"`
	URL         string  `json:"url"`
	Categories  []struct {
		Title string `json:"title"`
	} `json:"categories"`
	Location struct {
		Address1 string `json:"address1"`
		City     string `json:"city"`
		State    string `json:"state"`
		ZipCode  string `json:"zip_code"`
	} `json:"location"`
	Attributes struct {
		BusinessURL string `json:"business_url"`
	} `json:"attributes"`
}

// Search runs a business search and maps results into lead records
func (c *Client) Search(ctx context.Context, term, location string, limit int) ([]*domain.Lead, error) {
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}

	endpoint, _ := url.Parse(c.baseURL + "/v3/businesses/search")
	q := endpoint.Query()
	q.Set("term", term)
	q.Set("location", location)
	q.Set("limit", strconv.Itoa(limit))
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeSearch, "business search failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, apperrors.New(apperrors.ErrCodeSearch, "search provider quota exhausted")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.ErrCodeSearch,
			fmt.Sprintf("search provider returned status %d", resp.StatusCode))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeSearch, "failed to decode search response", err)
	}

	c.logger.Info("business search completed",
		"term", term,
		"location", location,
		"results", len(result.Businesses),
		"total", result.Total)

	leads := make([]*domain.Lead, 0, len(result.Businesses))
	for i := range result.Businesses {
		lead, err := businessToLead(&result.Businesses[i], term, location)
		if err != nil {
			c.logger.Warn("skipping malformed search result", "error", err)
			continue
		}
		leads = append(leads, lead)
	}

	return leads, nil
}

// businessToLead maps one search result onto a lead record. The website
// URL comes from business attributes when present; the Yelp listing URL
// is not a lead's website.
func businessToLead(b *business, term, location string) (*domain.Lead, error) {
	lead, err := domain.NewLead(b.ID, b.Name)
	if err != nil {
		return nil, err
	}

	if len(b.Categories) > 0 {
		lead.Category = b.Categories[0].Title
	}
	lead.Rating = b.Rating
	lead.ReviewCount = b.ReviewCount
	lead.Phone = b.Phone
	lead.WebsiteURL = b.Attributes.BusinessURL
	lead.Address = b.Location.Address1
	lead.City = b.Location.City
	lead.State = b.Location.State
	lead.ZipCode = b.Location.ZipCode
	lead.SearchTerm = term
	lead.SearchLocation = location

	return lead, nil
}
