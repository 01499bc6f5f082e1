package sqlrepo

import (
	"context"
	"fmt"

	"github.com/jbeshir/interview-insights/internal/domain"
)

// ToggleVote removes the user's vote if present, otherwise adds it. The helpful count is
// read back from the vote set in the same transaction.
func (r *Repository) ToggleVote(ctx context.Context, vote domain.Vote) (domain.VoteResult, error) {
	result := domain.VoteResult{ReviewID: vote.ReviewID}

	err := r.inTx(ctx, func(s *store) error {
		res, err := s.q.ExecContext(ctx,
			"DELETE FROM review_votes WHERE review_id = ? AND user_identifier = ?",
			vote.ReviewID, vote.UserIdentifier,
		)
		if err != nil {
			return fmt.Errorf("removing vote: %w", err)
		}
		removed, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading affected rows: %w", err)
		}

		if removed == 0 {
			ib := s.dialect.Flavor.NewInsertBuilder()
			ib.InsertInto("review_votes")
			ib.Cols("id", "review_id", "user_identifier", "vote_type", "created_at")
			ib.Values(vote.ID, vote.ReviewID, vote.UserIdentifier, string(vote.VoteType), vote.CreatedAt.UTC())

			query, args := s.dialect.buildInsertIgnoringDuplicate(ib)
			if _, err := s.q.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("adding vote: %w", err)
			}
			result.Voted = true
		}

		err = s.q.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM review_votes WHERE review_id = ? AND vote_type = ?",
			vote.ReviewID, string(domain.VoteTypeHelpful),
		).Scan(&result.HelpfulCount)
		if err != nil {
			return fmt.Errorf("counting votes: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.VoteResult{}, err
	}
	return result, nil
}
