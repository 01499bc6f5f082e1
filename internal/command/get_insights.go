package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
	"golang.org/x/sync/errgroup"
)

// GetInsightsRequest is the request for the GetInsights command.
type GetInsightsRequest struct {
	Caller    domain.Caller
	CompanyID int64
}

// GetInsights returns full insights to contributors of a company record and a teaser to everyone else.
type GetInsights struct {
	Companies     datasources.CompanyFetcher
	Reviews       datasources.ApprovedReviewLister
	Contributions datasources.ContributionChecker
	Ledger        *ContributionLedger
	Config        domain.InsightsConfig
	Now           func() time.Time
}

// Execute builds the insights payload for the caller.
func (c *GetInsights) Execute(ctx context.Context, req GetInsightsRequest) (domain.Insights, error) {
	company, err := c.Companies.FetchCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("fetching company: %w", err)
	}

	var (
		reviews  []domain.Review
		unlocked bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviews, err = c.Reviews.ListApprovedReviews(gctx, company.ID)
		if err != nil {
			return fmt.Errorf("listing approved reviews: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		unlocked, err = c.Ledger.HasUnlocked(gctx, c.Contributions, req.Caller.UserID, company.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !unlocked {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "serving insights teaser",
			"companyID", company.ID, "authenticated", req.Caller.IsAuthenticated())
		return domain.BuildTeaserInsights(company, reviews), nil
	}
	return domain.BuildFullInsights(company, reviews, clockNow(c.Now), c.Config), nil
}

// GetWeightedRatingRequest is the request for the GetWeightedRating command.
type GetWeightedRatingRequest struct {
	CompanyID int64
}

// WeightedRating is the weighted average rating of a company record's approved reviews.
// Rating is nil when there are none.
type WeightedRating struct {
	CompanyID   int64    `json:"company_id"`
	Rating      *float64 `json:"weighted_rating"`
	ReviewCount int      `json:"review_count"`
}

// GetWeightedRating computes a company record's weighted average rating.
type GetWeightedRating struct {
	Companies datasources.CompanyFetcher
	Reviews   datasources.ApprovedReviewLister
	Now       func() time.Time
}

// Execute computes the rating. The value is not rounded.
func (c *GetWeightedRating) Execute(ctx context.Context, req GetWeightedRatingRequest) (WeightedRating, error) {
	if _, err := c.Companies.FetchCompany(ctx, req.CompanyID); err != nil {
		return WeightedRating{}, fmt.Errorf("fetching company: %w", err)
	}

	reviews, err := c.Reviews.ListApprovedReviews(ctx, req.CompanyID)
	if err != nil {
		return WeightedRating{}, fmt.Errorf("listing approved reviews: %w", err)
	}

	res := WeightedRating{CompanyID: req.CompanyID, ReviewCount: len(domain.ApprovedOnly(reviews))}
	if avg, ok := domain.WeightedAverageRating(reviews, clockNow(c.Now)); ok {
		res.Rating = &avg
	}
	return res, nil
}

// GetCompanySummaryRequest is the request for the GetCompanySummary command.
type GetCompanySummaryRequest struct {
	CompanyID int64
}

// GetCompanySummary returns the public headline view of a company record.
type GetCompanySummary struct {
	Companies datasources.CompanyFetcher
	Reviews   datasources.ApprovedReviewLister
	Now       func() time.Time
}

func (c *GetCompanySummary) Execute(ctx context.Context, req GetCompanySummaryRequest) (domain.CompanySummary, error) {
	company, err := c.Companies.FetchCompany(ctx, req.CompanyID)
	if err != nil {
		return domain.CompanySummary{}, fmt.Errorf("fetching company: %w", err)
	}

	reviews, err := c.Reviews.ListApprovedReviews(ctx, company.ID)
	if err != nil {
		return domain.CompanySummary{}, fmt.Errorf("listing approved reviews: %w", err)
	}

	return domain.BuildCompanySummary(company, reviews, clockNow(c.Now)), nil
}
