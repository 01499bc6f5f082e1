package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// ReviewContentRequest is the author-controlled part of a review request body.
type ReviewContentRequest struct {
	Rating              int      `json:"rating"`
	Comment             string   `json:"comment"`
	ReviewerName        string   `json:"reviewer_name"`
	Tags                []string `json:"tags,omitempty"`
	RoundType           string   `json:"round_type,omitempty"`
	InterviewerInitials string   `json:"interviewer_initials,omitempty"`
	Outcome             string   `json:"outcome,omitempty"`
}

func (b ReviewContentRequest) content() domain.ReviewContent {
	return domain.ReviewContent{
		Rating:              b.Rating,
		Comment:             b.Comment,
		ReviewerName:        b.ReviewerName,
		TagKeys:             b.Tags,
		RoundType:           b.RoundType,
		InterviewerInitials: b.InterviewerInitials,
		Outcome:             b.Outcome,
	}
}

// ReviewSubmitRequest is the JSON request body for a new review.
type ReviewSubmitRequest struct {
	CompanyID int64 `json:"company_id"`
	ReviewContentRequest
}

type ReviewSubmit struct {
	SubmitCmd command.Command[command.SubmitReviewRequest, domain.Review]
}

func (c ReviewSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body ReviewSubmitRequest
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(ctx, w, "unable to parse review", err)
		return
	}

	review, err := c.SubmitCmd.Execute(ctx, command.SubmitReviewRequest{
		Caller: domain.CallerFromContext(ctx),
		Draft: domain.ReviewDraft{
			CompanyID:     body.CompanyID,
			ReviewContent: body.content(),
		},
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to submit review", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, review)
}

type ReviewEdit struct {
	EditCmd command.Command[command.EditReviewRequest, domain.Review]
}

func (c ReviewEdit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviewID, err := idFromVars(r, "review_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid review id", err)
		return
	}
	logger := domain.LoggerFromContext(ctx)
	ctx = domain.ContextWithLogger(ctx, logger.With("review_id", reviewID))

	var body ReviewContentRequest
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(ctx, w, "unable to parse review", err)
		return
	}

	review, err := c.EditCmd.Execute(ctx, command.EditReviewRequest{
		Caller:   domain.CallerFromContext(ctx),
		ReviewID: reviewID,
		Content:  body.content(),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to edit review", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, review)
}

type ReviewDelete struct {
	DeleteCmd command.Command[command.DeleteReviewRequest, command.Empty]
}

func (c ReviewDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviewID, err := idFromVars(r, "review_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid review id", err)
		return
	}

	if _, err := c.DeleteCmd.Execute(ctx, command.DeleteReviewRequest{
		Caller:   domain.CallerFromContext(ctx),
		ReviewID: reviewID,
	}); err != nil {
		writeCommandError(ctx, w, "unable to delete review", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ReviewVote struct {
	VoteCmd command.Command[command.ToggleVoteRequest, domain.VoteResult]
}

func (c ReviewVote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviewID, err := idFromVars(r, "review_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid review id", err)
		return
	}

	res, err := c.VoteCmd.Execute(ctx, command.ToggleVoteRequest{
		Caller:   domain.CallerFromContext(ctx),
		ReviewID: reviewID,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to toggle vote", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, res)
}

type CompanyReviewsList struct {
	ListCmd     command.Command[command.ListCompanyReviewsRequest, []domain.Review]
	CacheMaxAge time.Duration
}

func (c CompanyReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := idFromVars(r, "company_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid company id", err)
		return
	}

	q := r.URL.Query()
	page, pageSize, err := parsePagination(q)
	if err != nil {
		writeBadRequest(ctx, w, "unable to parse pagination in query string", err)
		return
	}
	sort, err := domain.ParseReviewSort(q.Get("sort"))
	if err != nil {
		writeBadRequest(ctx, w, "unable to parse sort in query string", err)
		return
	}

	reviews, err := c.ListCmd.Execute(ctx, command.ListCompanyReviewsRequest{
		CompanyID: companyID,
		Options:   domain.ReviewListOptions{Sort: sort, Page: page, PageSize: pageSize},
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list company reviews", err)
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, ListResponse[domain.Review]{
		Data:     reviews,
		Metadata: ListMetadata{Page: page, PageSize: pageSize},
	})
}

type MyReviewsList struct {
	ListCmd command.Command[command.ListMyReviewsRequest, []domain.Review]
}

func (c MyReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviews, err := c.ListCmd.Execute(ctx, command.ListMyReviewsRequest{Caller: domain.CallerFromContext(ctx)})
	if err != nil {
		writeCommandError(ctx, w, "unable to list own reviews", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ListResponse[domain.Review]{Data: reviews})
}

type MyContributionsList struct {
	ListCmd command.Command[command.ListMyContributionsRequest, []domain.ContributionRecord]
}

func (c MyContributionsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := c.ListCmd.Execute(ctx, command.ListMyContributionsRequest{Caller: domain.CallerFromContext(ctx)})
	if err != nil {
		writeCommandError(ctx, w, "unable to list contributions", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ListResponse[domain.ContributionRecord]{Data: records})
}
