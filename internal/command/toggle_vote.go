package command

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/oklog/ulid/v2"
)

// ToggleVoteRequest is the request for the ToggleVote command.
type ToggleVoteRequest struct {
	Caller   domain.Caller
	ReviewID int64
}

// ToggleVote marks an approved review helpful for the caller, or removes the mark if present.
type ToggleVote struct {
	Reviews datasources.ReviewFetcher
	Votes   datasources.VoteToggler
	Now     func() time.Time
}

func (c *ToggleVote) Execute(ctx context.Context, req ToggleVoteRequest) (domain.VoteResult, error) {
	if !req.Caller.IsAuthenticated() {
		return domain.VoteResult{}, domain.ErrUnauthenticated
	}

	review, err := c.Reviews.FetchReview(ctx, req.ReviewID)
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("fetching review: %w", err)
	}
	// Unpublished reviews are invisible to voters.
	if review.Status != domain.ReviewStatusApproved {
		return domain.VoteResult{}, domain.NotFoundError("review", req.ReviewID)
	}
	if review.IsAuthoredBy(req.Caller) {
		return domain.VoteResult{}, domain.InvalidStateError("authors cannot vote on their own review")
	}

	at := clockNow(c.Now)
	res, err := c.Votes.ToggleVote(ctx, domain.Vote{
		ID:             newVoteID(at),
		ReviewID:       review.ID,
		UserIdentifier: req.Caller.UserID,
		VoteType:       domain.VoteTypeHelpful,
		CreatedAt:      at,
	})
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("toggling vote: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "toggled vote",
		"reviewID", review.ID, "voted", res.Voted, "helpfulCount", res.HelpfulCount)
	return res, nil
}

func newVoteID(at time.Time) string {
	return ulid.MustNew(ulid.Timestamp(at), rand.Reader).String()
}
