package datasources

import (
	"context"

	"github.com/jbeshir/interview-insights/internal/domain"
)

// ContributionRecorder inserts a ledger record unless one already exists for the
// (user, company) pair. inserted is false when the record already existed.
type ContributionRecorder interface {
	RecordContribution(ctx context.Context, record domain.ContributionRecord) (inserted bool, err error)
}

// ContributionChecker reports whether a ledger record exists for the (user, company) pair.
type ContributionChecker interface {
	HasContribution(ctx context.Context, userID string, companyID int64) (bool, error)
}

// ContributionLister returns a user's ledger records, oldest first.
type ContributionLister interface {
	ListContributions(ctx context.Context, userID string) ([]domain.ContributionRecord, error)
}
