package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// DeleteReviewRequest is the request for the DeleteReview command.
type DeleteReviewRequest struct {
	Caller   domain.Caller
	ReviewID int64
}

// DeleteReview removes the caller's own review unless it has been approved.
type DeleteReview struct {
	Reviews datasources.ReviewFetcher
	Deleter datasources.UnapprovedReviewDeleter
}

// NewDeleteReview creates a properly initialized DeleteReview command.
func NewDeleteReview(reviews datasources.ReviewFetcher, deleter datasources.UnapprovedReviewDeleter) *DeleteReview {
	return &DeleteReview{
		Reviews: reviews,
		Deleter: deleter,
	}
}

// Execute deletes the review.
func (c *DeleteReview) Execute(ctx context.Context, req DeleteReviewRequest) (Empty, error) {
	review, err := c.Reviews.FetchReview(ctx, req.ReviewID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching review: %w", err)
	}
	if err := review.CheckDeletableBy(req.Caller); err != nil {
		return Empty{}, err
	}

	// The delete re-checks the status, so an approval racing this call wins.
	if err := c.Deleter.DeleteUnapprovedReview(ctx, req.ReviewID); err != nil {
		return Empty{}, fmt.Errorf("deleting review: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "review deleted", "reviewID", req.ReviewID)
	return Empty{}, nil
}
