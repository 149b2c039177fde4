package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-api/app/domain"
)

func TestNewLead(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		bizName string
		wantErr bool
	}{
		{
			name:    "valid lead",
			id:      "yelp-abc123",
			bizName: "Blue Oak Plumbing",
			wantErr: false,
		},
		{
			name:    "missing ID",
			bizName: "Blue Oak Plumbing",
			wantErr: true,
		},
		{
			name:    "missing name",
			id:      "yelp-abc123",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, err := domain.NewLead(tt.id, tt.bizName)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, lead)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.ReviewStatusPending, lead.ReviewStatus)
				assert.Nil(t, lead.ReviewerID)
			}
		})
	}
}

func TestLead_Review(t *testing.T) {
	reviewer := uuid.New()

	lead, err := domain.NewLead("yelp-abc123", "Blue Oak Plumbing")
	require.NoError(t, err)

	require.NoError(t, lead.Review(domain.ReviewStatusAccepted, "good fit", reviewer))
	assert.Equal(t, domain.ReviewStatusAccepted, lead.ReviewStatus)
	assert.Equal(t, "good fit", lead.ReviewNote)
	require.NotNil(t, lead.ReviewerID)
	assert.Equal(t, reviewer, *lead.ReviewerID)
	assert.NotNil(t, lead.ReviewedAt)

	err = lead.Review(domain.ReviewStatus("approved"), "", reviewer)
	assert.Error(t, err)
	assert.Equal(t, domain.ReviewStatusAccepted, lead.ReviewStatus)
}

func TestImportSummary_Add(t *testing.T) {
	var summary domain.ImportSummary

	summary.Add(domain.ImportResult{LeadID: "a", Outcome: domain.ImportOutcomeImported})
	summary.Add(domain.ImportResult{LeadID: "b", Outcome: domain.ImportOutcomeFailed, Error: "write failed"})
	summary.Add(domain.ImportResult{LeadID: "c", Outcome: domain.ImportOutcomeUpdated})

	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Results, 3)
}
