package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// ListCompanyReviewsRequest is the request for the ListCompanyReviews command.
type ListCompanyReviewsRequest struct {
	CompanyID int64
	Options   domain.ReviewListOptions
}

// ListCompanyReviews pages through a company record's approved reviews.
type ListCompanyReviews struct {
	Companies datasources.CompanyFetcher
	Reviews   datasources.CompanyReviewLister
}

func (c *ListCompanyReviews) Execute(ctx context.Context, req ListCompanyReviewsRequest) ([]domain.Review, error) {
	if _, err := c.Companies.FetchCompany(ctx, req.CompanyID); err != nil {
		return nil, fmt.Errorf("fetching company: %w", err)
	}

	reviews, err := c.Reviews.ListCompanyReviews(ctx, req.CompanyID, req.Options)
	if err != nil {
		return nil, fmt.Errorf("listing company reviews: %w", err)
	}
	return reviews, nil
}

// ListMyReviewsRequest is the request for the ListMyReviews command.
type ListMyReviewsRequest struct {
	Caller domain.Caller
}

// ListMyReviews returns every review the caller wrote, including pending and rejected ones.
type ListMyReviews struct {
	Reviews datasources.AuthorReviewLister
}

func (c *ListMyReviews) Execute(ctx context.Context, req ListMyReviewsRequest) ([]domain.Review, error) {
	if !req.Caller.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}

	reviews, err := c.Reviews.ListAuthorReviews(ctx, req.Caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing author reviews: %w", err)
	}
	return reviews, nil
}

// ListMyContributionsRequest is the request for the ListMyContributions command.
type ListMyContributionsRequest struct {
	Caller domain.Caller
}

// ListMyContributions returns the company records the caller has unlocked.
type ListMyContributions struct {
	Contributions datasources.ContributionLister
}

func (c *ListMyContributions) Execute(
	ctx context.Context,
	req ListMyContributionsRequest,
) ([]domain.ContributionRecord, error) {
	if !req.Caller.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}

	records, err := c.Contributions.ListContributions(ctx, req.Caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing contributions: %w", err)
	}
	return records, nil
}
