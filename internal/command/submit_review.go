package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// ContentScreener rejects review content that identifies people or links elsewhere.
type ContentScreener interface {
	ScreenReview(content domain.ReviewContent) error
}

// SubmitReviewRequest is the request for the SubmitReview command.
type SubmitReviewRequest struct {
	Caller domain.Caller
	Draft  domain.ReviewDraft
}

// SubmitReview creates a PENDING review and publishes it immediately when the moderation
// policy allows. Guests may submit; their reviews never unlock insights.
type SubmitReview struct {
	Screener   ContentScreener
	Companies  datasources.CompanyFetcher
	Tags       datasources.TagResolver
	Transactor datasources.ReviewTransactor
	Ledger     *ContributionLedger
	Policy     domain.ModerationPolicy
	Now        func() time.Time
}

// Execute validates the draft and stores it, auto-approving where eligible.
// Nothing is written when validation fails.
func (c *SubmitReview) Execute(ctx context.Context, req SubmitReviewRequest) (domain.Review, error) {
	if err := c.Screener.ScreenReview(req.Draft.ReviewContent); err != nil {
		return domain.Review{}, err
	}

	content, err := req.Draft.Normalize()
	if err != nil {
		return domain.Review{}, err
	}

	company, err := c.Companies.FetchCompany(ctx, req.Draft.CompanyID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("fetching company: %w", err)
	}

	tags, err := resolveTags(ctx, c.Tags, content.TagKeys)
	if err != nil {
		return domain.Review{}, err
	}

	at := clockNow(c.Now)
	review := domain.Review{
		CompanyID:  company.ID,
		Status:     domain.ReviewStatusPending,
		AuthorKind: domain.AuthorKindGuest,
		CreatedAt:  at,
	}
	if req.Caller.IsAuthenticated() {
		review.AuthorKind = domain.AuthorKindUser
		review.AuthorUserID = req.Caller.UserID
	}
	applyContent(&review, content, tags)

	err = c.Transactor.InReviewTx(ctx, func(store datasources.ReviewStore) error {
		created, err := store.CreateReview(ctx, review)
		if err != nil {
			return fmt.Errorf("creating review: %w", err)
		}
		review = created

		return evaluateAndPublish(ctx, store, c.Ledger, c.Policy, &review, at)
	})
	if err != nil {
		return domain.Review{}, err
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "review submitted",
		"reviewID", review.ID, "companyID", review.CompanyID, "status", review.Status)
	return review, nil
}

func resolveTags(ctx context.Context, resolver datasources.TagResolver, keys []string) ([]domain.Tag, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	tags, err := resolver.ResolveTags(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("resolving tags: %w", err)
	}
	return tags, nil
}

func applyContent(review *domain.Review, content domain.NormalizedContent, tags []domain.Tag) {
	review.Rating = content.Rating
	review.Comment = content.Comment
	review.ReviewerName = content.ReviewerName
	review.Tags = tags
	review.RoundType = content.RoundType
	review.InterviewerInitials = content.InterviewerInitials
	review.Outcome = content.Outcome
}
