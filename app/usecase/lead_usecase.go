package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// LeadUseCase implements the lead-mining tool: proxied business search,
// bulk import with per-item results, and review.
type LeadUseCase struct {
	leadRepo port.LeadRepository
	searcher port.BusinessSearcher
	workers  int
	logger   *slog.Logger
}

// NewLeadUseCase creates a new LeadUseCase instance
func NewLeadUseCase(
	leadRepo port.LeadRepository,
	searcher port.BusinessSearcher,
	workers int,
	logger *slog.Logger,
) *LeadUseCase {
	if workers <= 0 {
		workers = 4
	}
	return &LeadUseCase{
		leadRepo: leadRepo,
		searcher: searcher,
		workers:  workers,
		logger:   logger.With("component", "lead_usecase"),
	}
}

// Search proxies a business search to the search provider. Nothing is
// persisted until an explicit import.
func (uc *LeadUseCase) Search(ctx context.Context, term, location string, limit int) ([]*domain.Lead, error) {
	if term == "" || location == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.searcher.Search(ctx, term, location, limit)
}

// Import persists a batch of leads with bounded concurrency. Each record
// is imported independently: an existing record is refreshed, a new one
// inserted, and a failure is reported per item without rolling back the
// rest of the batch.
func (uc *LeadUseCase) Import(ctx context.Context, leads []*domain.Lead) (*domain.ImportSummary, error) {
	if len(leads) == 0 {
		return nil, domain.ErrInvalidInput
	}

	summary := &domain.ImportSummary{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for _, lead := range leads {
		lead := lead
		g.Go(func() error {
			result := uc.importOne(ctx, lead)

			mu.Lock()
			summary.Add(result)
			mu.Unlock()

			// Individual failures are carried in the summary, never
			// returned: one bad record must not cancel the group.
			return nil
		})
	}

	// Only a context cancellation can surface here
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.logger.Info("lead import finished",
		"total", len(leads),
		"imported", summary.Imported,
		"updated", summary.Updated,
		"failed", summary.Failed)

	return summary, nil
}

func (uc *LeadUseCase) importOne(ctx context.Context, lead *domain.Lead) domain.ImportResult {
	if lead == nil || lead.ID == "" {
		return domain.ImportResult{
			Outcome: domain.ImportOutcomeFailed,
			Error:   "lead is missing a provider ID",
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.ImportResult{
			LeadID:  lead.ID,
			Outcome: domain.ImportOutcomeFailed,
			Error:   err.Error(),
		}
	}

	lead.UpdatedAt = time.Now()

	exists, err := uc.leadRepo.Exists(ctx, lead.ID)
	if err != nil {
		return domain.ImportResult{
			LeadID:  lead.ID,
			Outcome: domain.ImportOutcomeFailed,
			Error:   err.Error(),
		}
	}

	if exists {
		if err := uc.leadRepo.Update(ctx, lead); err != nil {
			uc.logger.Warn("lead update failed", "lead_id", lead.ID, "error", err)
			return domain.ImportResult{
				LeadID:  lead.ID,
				Outcome: domain.ImportOutcomeFailed,
				Error:   err.Error(),
			}
		}
		return domain.ImportResult{LeadID: lead.ID, Outcome: domain.ImportOutcomeUpdated}
	}

	if err := uc.leadRepo.Insert(ctx, lead); err != nil {
		uc.logger.Warn("lead insert failed", "lead_id", lead.ID, "error", err)
		return domain.ImportResult{
			LeadID:  lead.ID,
			Outcome: domain.ImportOutcomeFailed,
			Error:   err.Error(),
		}
	}
	return domain.ImportResult{LeadID: lead.ID, Outcome: domain.ImportOutcomeImported}
}

// ListByStatus returns a page of leads in the given review status
func (uc *LeadUseCase) ListByStatus(ctx context.Context, status domain.ReviewStatus, limit, offset int) ([]*domain.Lead, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.leadRepo.ListByStatus(ctx, status, limit, offset)
}

// Review records a review decision on a lead
func (uc *LeadUseCase) Review(ctx context.Context, id string, status domain.ReviewStatus, note string, reviewerID uuid.UUID) (*domain.Lead, error) {
	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := lead.Review(status, note, reviewerID); err != nil {
		return nil, err
	}

	if err := uc.leadRepo.UpdateReview(ctx, lead); err != nil {
		return nil, err
	}

	uc.logger.Info("lead reviewed",
		"lead_id", id,
		"status", status,
		"reviewer_id", reviewerID)

	return lead, nil
}
