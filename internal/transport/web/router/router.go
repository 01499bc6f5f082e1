package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/jbeshir/interview-insights/internal/transport/web/controller"
)

// Commands holds every operation the HTTP surface exposes.
type Commands struct {
	ListTags            command.Command[command.Empty, []domain.Tag]
	ListCompanies       command.Command[command.ListCompaniesRequest, []domain.Company]
	CreateCompany       command.Command[command.CreateCompanyRequest, domain.Company]
	GetCompanySummary   command.Command[command.GetCompanySummaryRequest, domain.CompanySummary]
	GetWeightedRating   command.Command[command.GetWeightedRatingRequest, command.WeightedRating]
	GetInsights         command.Command[command.GetInsightsRequest, domain.Insights]
	ListCompanyReviews  command.Command[command.ListCompanyReviewsRequest, []domain.Review]
	SubmitReview        command.Command[command.SubmitReviewRequest, domain.Review]
	EditReview          command.Command[command.EditReviewRequest, domain.Review]
	DeleteReview        command.Command[command.DeleteReviewRequest, command.Empty]
	ToggleVote          command.Command[command.ToggleVoteRequest, domain.VoteResult]
	ListMyReviews       command.Command[command.ListMyReviewsRequest, []domain.Review]
	ListMyContributions command.Command[command.ListMyContributionsRequest, []domain.ContributionRecord]
	ListModerationQueue command.Command[command.ListModerationQueueRequest, []domain.Review]
	GetModerationStats  command.Command[command.GetModerationStatsRequest, domain.ModerationStats]
	ModerateReview      command.Command[command.ModerateReviewRequest, domain.Review]
}

type FeedConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
}

func MakeRouter(
	cmds Commands,
	feed FeedConfig,
	publicCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestLoggingMiddleware)
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/tags", controller.TagsList{
		ListCmd:     cmds.ListTags,
		CacheMaxAge: publicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/companies", controller.CompaniesList{
		ListCmd:     cmds.ListCompanies,
		CacheMaxAge: publicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/companies", requireAuthMiddleware(controller.CompanyCreate{
		CreateCmd: cmds.CreateCompany,
	})).Methods(http.MethodPost)

	r.Handle("/v1/companies/{company_id}", controller.CompanyGet{
		SummaryCmd:  cmds.GetCompanySummary,
		CacheMaxAge: publicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/companies/{company_id}/rating", controller.CompanyRatingGet{
		RatingCmd:   cmds.GetWeightedRating,
		CacheMaxAge: publicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/companies/{company_id}/reviews", controller.CompanyReviewsList{
		ListCmd:     cmds.ListCompanyReviews,
		CacheMaxAge: publicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/companies/{company_id}/insights", controller.CompanyInsightsGet{
		InsightsCmd: cmds.GetInsights,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/companies/{company_id}/rss", controller.CompanyRSS{
		FeedHostname:    feed.BaseURL,
		FeedAuthorName:  feed.AuthorName,
		FeedAuthorEmail: feed.AuthorEmail,
		SummaryCmd:      cmds.GetCompanySummary,
		ListCmd:         cmds.ListCompanyReviews,
		CacheMaxAge:     publicCacheMaxAge,
	}).Methods(http.MethodGet)

	r.Handle("/v1/reviews", controller.ReviewSubmit{
		SubmitCmd: cmds.SubmitReview,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/reviews/{review_id}", requireAuthMiddleware(controller.ReviewEdit{
		EditCmd: cmds.EditReview,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/reviews/{review_id}", requireAuthMiddleware(controller.ReviewDelete{
		DeleteCmd: cmds.DeleteReview,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/reviews/{review_id}/vote", requireAuthMiddleware(controller.ReviewVote{
		VoteCmd: cmds.ToggleVote,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/me/reviews", requireAuthMiddleware(controller.MyReviewsList{
		ListCmd: cmds.ListMyReviews,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/me/contributions", requireAuthMiddleware(controller.MyContributionsList{
		ListCmd: cmds.ListMyContributions,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/moderation/pending", requireModeratorMiddleware(controller.ModerationQueueList{
		ListCmd: cmds.ListModerationQueue,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/moderation/stats", requireModeratorMiddleware(controller.ModerationStatsGet{
		StatsCmd: cmds.GetModerationStats,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/moderation/reviews/{review_id}/{decision}", requireModeratorMiddleware(controller.ReviewModerate{
		ModerateCmd: cmds.ModerateReview,
	})).Methods(http.MethodPost, http.MethodOptions)

	return r, nil
}
