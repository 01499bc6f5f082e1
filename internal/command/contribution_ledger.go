package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// ContributionLedger tracks which users have unlocked full insights for which company records.
// A user unlocks a company record the first time one of their reviews for it is approved.
type ContributionLedger struct {
	Now func() time.Time
}

// NewContributionLedger creates a ledger stamping records with now.
func NewContributionLedger(now func() time.Time) *ContributionLedger {
	return &ContributionLedger{Now: now}
}

// Record adds a ledger entry for (userID, companyID) through recorder, which is normally the
// transaction-bound store of the approval. Recording twice is a no-op, and an empty userID
// (a guest review) records nothing.
func (l *ContributionLedger) Record(
	ctx context.Context,
	recorder datasources.ContributionRecorder,
	userID string,
	companyID, reviewID int64,
) error {
	logger := domain.LoggerFromContext(ctx)

	if userID == "" {
		logger.DebugContext(ctx, "skipping contribution for guest review", "reviewID", reviewID)
		return nil
	}

	inserted, err := recorder.RecordContribution(ctx, domain.ContributionRecord{
		UserIdentifier: userID,
		CompanyID:      companyID,
		ReviewID:       reviewID,
		UnlockedAt:     clockNow(l.Now),
	})
	if err != nil {
		return fmt.Errorf("recording contribution: %w", err)
	}

	if inserted {
		logger.InfoContext(ctx, "recorded contribution",
			"userID", userID, "companyID", companyID, "reviewID", reviewID)
	} else {
		logger.DebugContext(ctx, "contribution already recorded",
			"userID", userID, "companyID", companyID)
	}
	return nil
}

// HasUnlocked reports whether userID has a ledger entry for companyID.
func (l *ContributionLedger) HasUnlocked(
	ctx context.Context,
	checker datasources.ContributionChecker,
	userID string,
	companyID int64,
) (bool, error) {
	if userID == "" {
		return false, nil
	}

	ok, err := checker.HasContribution(ctx, userID, companyID)
	if err != nil {
		return false, fmt.Errorf("checking contribution: %w", err)
	}
	return ok, nil
}
