package datasources

import (
	"context"

	"github.com/jbeshir/interview-insights/internal/domain"
)

// VoteToggler adds the vote if the user has none on the review, otherwise removes it,
// and returns the helpful count recomputed from the vote set.
type VoteToggler interface {
	ToggleVote(ctx context.Context, vote domain.Vote) (domain.VoteResult, error)
}
