package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// ModerateReviewRequest is the request for the ModerateReview command.
type ModerateReviewRequest struct {
	Caller   domain.Caller
	ReviewID int64
	Action   domain.ModerationAction
	Reason   string
}

// ModerateReview applies a moderator's approve or reject decision to a PENDING review.
type ModerateReview struct {
	Reviews    datasources.ReviewFetcher
	Transactor datasources.ReviewTransactor
	Ledger     *ContributionLedger
	Now        func() time.Time
}

// Execute applies the decision. Of two concurrent decisions on the same review exactly one
// succeeds; the other fails with domain.ErrInvalidState.
func (c *ModerateReview) Execute(ctx context.Context, req ModerateReviewRequest) (domain.Review, error) {
	if !req.Caller.Moderator || !req.Caller.IsAuthenticated() {
		return domain.Review{}, domain.ErrNotModerator
	}

	review, err := c.Reviews.FetchReview(ctx, req.ReviewID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("fetching review: %w", err)
	}
	if err := review.CheckModeratable(); err != nil {
		return domain.Review{}, err
	}

	transition := domain.ReviewTransition{
		ReviewID:    review.ID,
		At:          clockNow(c.Now),
		ModeratorID: req.Caller.UserID,
	}
	switch req.Action {
	case domain.ModerationApprove:
		transition.To = domain.ReviewStatusApproved
	case domain.ModerationReject:
		transition.To = domain.ReviewStatusRejected
		transition.Reason = strings.TrimSpace(req.Reason)
	default:
		return domain.Review{}, domain.InvalidArgumentError("unknown moderation decision [%s]", req.Action)
	}

	err = c.Transactor.InReviewTx(ctx, func(store datasources.ReviewStore) error {
		if transition.To == domain.ReviewStatusApproved {
			return approveInTx(ctx, store, c.Ledger, &review, transition)
		}
		if err := store.TransitionReview(ctx, transition); err != nil {
			return fmt.Errorf("rejecting review: %w", err)
		}
		review.ApplyTransition(transition)
		return nil
	})
	if err != nil {
		return domain.Review{}, err
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "review moderated",
		"reviewID", review.ID, "status", review.Status, "moderator", req.Caller.UserID)
	return review, nil
}
