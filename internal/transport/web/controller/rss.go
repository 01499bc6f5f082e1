package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/domain"
)

const rssFeedSize = 20

// CompanyRSS serves a feed of a company record's most recent approved reviews.
type CompanyRSS struct {
	FeedHostname    string
	FeedAuthorName  string
	FeedAuthorEmail string
	SummaryCmd      command.Command[command.GetCompanySummaryRequest, domain.CompanySummary]
	ListCmd         command.Command[command.ListCompanyReviewsRequest, []domain.Review]
	CacheMaxAge     time.Duration
	Now             func() time.Time
}

func (c CompanyRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	companyID, err := idFromVars(r, "company_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid company id", err)
		return
	}

	summary, err := c.SummaryCmd.Execute(ctx, command.GetCompanySummaryRequest{CompanyID: companyID})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch company for feed", err)
		return
	}

	reviews, err := c.ListCmd.Execute(ctx, command.ListCompanyReviewsRequest{
		CompanyID: companyID,
		Options:   domain.ReviewListOptions{Sort: domain.ReviewSortRecent, Page: 1, PageSize: rssFeedSize},
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch reviews for feed", err)
		return
	}

	company := summary.Company
	created := time.Now()
	if c.Now != nil {
		created = c.Now()
	}
	companyPath := fmt.Sprintf("/v1/companies/%d", company.ID)
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Interview reviews: %s, %s", company.Company, company.Role),
		Link:        &feeds.Link{Href: c.FeedHostname + companyPath},
		Description: fmt.Sprintf("Approved interview reviews for %s (%s)", company.Company, company.Role),
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     created,
	}

	for _, review := range reviews {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(review.ID, 10),
			IsPermaLink: "false",
			Title:       fmt.Sprintf("%d/5 from %s", review.Rating, review.ReviewerName),
			Link:        &feeds.Link{Href: c.FeedHostname + companyPath + "/reviews"},
			Description: reviewFeedDescription(review),
			Author:      &feeds.Author{Name: review.ReviewerName},
			Created:     review.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	setCacheMaxAge(w, c.CacheMaxAge)

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func reviewFeedDescription(review domain.Review) string {
	var b strings.Builder
	b.WriteString(review.Comment)
	if review.RoundType != "" {
		fmt.Fprintf(&b, "\n\nRound: %s", review.RoundType)
	}
	if len(review.Tags) > 0 {
		labels := make([]string, 0, len(review.Tags))
		for _, t := range review.Tags {
			labels = append(labels, t.Label)
		}
		fmt.Fprintf(&b, "\nTags: %s", strings.Join(labels, ", "))
	}
	return b.String()
}
