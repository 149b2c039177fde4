package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the tri-state review flag on a lead record
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusAccepted ReviewStatus = "accepted"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Lead represents a business record produced by the lead-mining tool,
// either from a search or a bulk import.
type Lead struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category,omitempty"`
	Rating         float64 `json:"rating,omitempty"`
	ReviewCount    int     `json:"review_count,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	WebsiteURL     string  `json:"website_url,omitempty"`
	Address        string  `json:"address,omitempty"`
	City           string  `json:"city,omitempty"`
	State          string  `json:"state,omitempty"`
	ZipCode        string  `json:"zip_code,omitempty"`
	SearchTerm     string  `json:"search_term,omitempty"`
	SearchLocation string  `json:"search_location,omitempty"`

	// Domain and SSL intelligence gathered by the miner
	Registrar        string `json:"registrar,omitempty"`
	DomainExpiration string `json:"domain_expiration,omitempty"`
	SSLIssuer        string `json:"ssl_issuer,omitempty"`
	SSLExpiration    string `json:"ssl_expiration,omitempty"`
	IsWordPress      bool   `json:"is_wordpress,omitempty"`
	CopyrightYear    string `json:"copyright_year,omitempty"`

	// Review state
	ReviewStatus ReviewStatus `json:"review_status"`
	ReviewNote   string       `json:"review_note,omitempty"`
	ReviewerID   *uuid.UUID   `json:"reviewer_id,omitempty"`
	ReviewedAt   *time.Time   `json:"reviewed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLead creates a lead with validation
func NewLead(id, name string) (*Lead, error) {
	if id == "" {
		return nil, fmt.Errorf("lead ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("lead name is required")
	}

	now := time.Now()

	return &Lead{
		ID:           id,
		Name:         name,
		ReviewStatus: ReviewStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Review applies a review decision to the lead
func (l *Lead) Review(status ReviewStatus, note string, reviewerID uuid.UUID) error {
	switch status {
	case ReviewStatusPending, ReviewStatusAccepted, ReviewStatusRejected:
	default:
		return fmt.Errorf("%w: invalid review status %q", ErrInvalidInput, status)
	}

	now := time.Now()
	l.ReviewStatus = status
	l.ReviewNote = note
	l.ReviewerID = &reviewerID
	l.ReviewedAt = &now
	l.UpdatedAt = now
	return nil
}

// ImportOutcome is the per-record result of a bulk import
type ImportOutcome string

const (
	ImportOutcomeImported ImportOutcome = "imported"
	ImportOutcomeUpdated  ImportOutcome = "updated"
	ImportOutcomeFailed   ImportOutcome = "failed"
)

// ImportResult reports the outcome for a single record in a bulk import
type ImportResult struct {
	LeadID  string        `json:"lead_id"`
	Outcome ImportOutcome `json:"outcome"`
	Error   string        `json:"error,omitempty"`
}

// ImportSummary aggregates per-record results for a bulk import. There is
// no rollback: a failed record leaves the committed ones committed.
type ImportSummary struct {
	Imported int            `json:"imported"`
	Updated  int            `json:"updated"`
	Failed   int            `json:"failed"`
	Results  []ImportResult `json:"results"`
}

// Add records one outcome in the summary
func (s *ImportSummary) Add(result ImportResult) {
	switch result.Outcome {
	case ImportOutcomeImported:
		s.Imported++
	case ImportOutcomeUpdated:
		s.Updated++
	case ImportOutcomeFailed:
		s.Failed++
	}
	s.Results = append(s.Results, result)
}
