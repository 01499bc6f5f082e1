package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// approveInTx publishes a PENDING review and records its author's contribution.
// store must be the store of the enclosing review transaction so both writes commit together.
func approveInTx(
	ctx context.Context,
	store datasources.ReviewStore,
	ledger *ContributionLedger,
	review *domain.Review,
	transition domain.ReviewTransition,
) error {
	if err := store.TransitionReview(ctx, transition); err != nil {
		return fmt.Errorf("approving review: %w", err)
	}
	review.ApplyTransition(transition)

	if review.AuthorKind != domain.AuthorKindUser {
		return nil
	}
	return ledger.Record(ctx, store, review.AuthorUserID, review.CompanyID, review.ID)
}

// evaluateAndPublish runs the moderation policy over review and approves it when eligible.
func evaluateAndPublish(
	ctx context.Context,
	store datasources.ReviewStore,
	ledger *ContributionLedger,
	policy domain.ModerationPolicy,
	review *domain.Review,
	at time.Time,
) error {
	logger := domain.LoggerFromContext(ctx)

	decision := policy.Evaluate(*review)
	if !decision.AutoApprove() {
		logger.InfoContext(ctx, "review flagged for moderation",
			"reviewID", review.ID, "reasons", decision.Reasons)
		return nil
	}

	transition := domain.ReviewTransition{ReviewID: review.ID, To: domain.ReviewStatusApproved, At: at}
	if err := approveInTx(ctx, store, ledger, review, transition); err != nil {
		return err
	}
	logger.InfoContext(ctx, "review auto-approved", "reviewID", review.ID)
	return nil
}
