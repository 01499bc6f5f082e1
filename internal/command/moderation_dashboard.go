package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

const (
	DefaultModerationQueueLimit = 50
	MaxModerationQueueLimit     = 200
)

// ListModerationQueueRequest is the request for the ListModerationQueue command.
type ListModerationQueueRequest struct {
	Caller domain.Caller
	Limit  int
}

// ListModerationQueue returns PENDING reviews, oldest first, for moderators.
type ListModerationQueue struct {
	Lister datasources.PendingReviewLister
}

func (c *ListModerationQueue) Execute(ctx context.Context, req ListModerationQueueRequest) ([]domain.Review, error) {
	if !req.Caller.Moderator {
		return nil, domain.ErrNotModerator
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultModerationQueueLimit
	}
	limit = min(limit, MaxModerationQueueLimit)

	reviews, err := c.Lister.ListPendingReviews(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing pending reviews: %w", err)
	}
	return reviews, nil
}

// GetModerationStatsRequest is the request for the GetModerationStats command.
type GetModerationStatsRequest struct {
	Caller domain.Caller
}

// GetModerationStats summarises the review pipeline for moderators.
type GetModerationStats struct {
	Counts datasources.ModerationCountsGetter
	Now    func() time.Time
}

func (c *GetModerationStats) Execute(ctx context.Context, req GetModerationStatsRequest) (domain.ModerationStats, error) {
	if !req.Caller.Moderator {
		return domain.ModerationStats{}, domain.ErrNotModerator
	}

	counts, err := c.Counts.GetModerationCounts(ctx)
	if err != nil {
		return domain.ModerationStats{}, fmt.Errorf("getting moderation counts: %w", err)
	}
	return domain.BuildModerationStats(counts, clockNow(c.Now)), nil
}
