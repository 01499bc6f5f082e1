package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// EditReviewRequest is the request for the EditReview command.
type EditReviewRequest struct {
	Caller   domain.Caller
	ReviewID int64
	Content  domain.ReviewContent
}

// EditReview replaces the content of the caller's own PENDING review and re-runs moderation.
type EditReview struct {
	Screener   ContentScreener
	Reviews    datasources.ReviewFetcher
	Tags       datasources.TagResolver
	Transactor datasources.ReviewTransactor
	Ledger     *ContributionLedger
	Policy     domain.ModerationPolicy
	Now        func() time.Time
}

// Execute applies the edit. A review approved or rejected after it was loaded fails with
// domain.ErrInvalidState and is left untouched.
func (c *EditReview) Execute(ctx context.Context, req EditReviewRequest) (domain.Review, error) {
	review, err := c.Reviews.FetchReview(ctx, req.ReviewID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("fetching review: %w", err)
	}
	if err := review.CheckEditableBy(req.Caller); err != nil {
		return domain.Review{}, err
	}

	if err := c.Screener.ScreenReview(req.Content); err != nil {
		return domain.Review{}, err
	}
	content, err := req.Content.Normalize()
	if err != nil {
		return domain.Review{}, err
	}
	tags, err := resolveTags(ctx, c.Tags, content.TagKeys)
	if err != nil {
		return domain.Review{}, err
	}

	applyContent(&review, content, tags)
	review.ResetModeration()

	err = c.Transactor.InReviewTx(ctx, func(store datasources.ReviewStore) error {
		if err := store.UpdatePendingReviewContent(ctx, review); err != nil {
			return fmt.Errorf("updating review content: %w", err)
		}
		return evaluateAndPublish(ctx, store, c.Ledger, c.Policy, &review, clockNow(c.Now))
	})
	if err != nil {
		return domain.Review{}, err
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "review edited",
		"reviewID", review.ID, "status", review.Status)
	return review, nil
}
