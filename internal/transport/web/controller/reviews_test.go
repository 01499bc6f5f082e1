package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/interview-insights/internal/command"
	cmdmocks "github.com/jbeshir/interview-insights/internal/command/mocks"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewSubmit_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	user := domain.Caller{UserID: "user456", Method: domain.AuthMethodAuth0}
	body := `{"company_id":3,"rating":4,"comment":"fine","reviewer_name":"anon","tags":["GHOST_JOB"],"outcome":"offer"}`

	wantReq := command.SubmitReviewRequest{
		Caller: user,
		Draft: domain.ReviewDraft{
			CompanyID: 3,
			ReviewContent: domain.ReviewContent{
				Rating:       4,
				Comment:      "fine",
				ReviewerName: "anon",
				TagKeys:      []string{"GHOST_JOB"},
				Outcome:      "offer",
			},
		},
	}

	cases := []struct {
		name       string
		body       string
		review     domain.Review
		cmdErr     error
		skipCmd    bool
		wantStatus int
		wantField  string
	}{
		{
			name:       "created",
			body:       body,
			review:     domain.Review{ID: 10, CompanyID: 3, Status: domain.ReviewStatusPending, CreatedAt: testTime},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed_body",
			body:       `{"company_id":`,
			skipCmd:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_field",
			body:       `{"company_id":3,"approved":true}`,
			skipCmd:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "content_rejected",
			body:       body,
			cmdErr:     &domain.ContentRejectedError{Field: "comment", Reason: "Please do not include URLs."},
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "comment",
		},
		{
			name:       "invalid_argument",
			body:       body,
			cmdErr:     domain.InvalidArgumentError("rating must be between 1 and 5, got 9"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_company",
			body:       body,
			cmdErr:     domain.NotFoundError("company", 3),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage_failure",
			body:       body,
			cmdErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			submitCmd := cmdmocks.NewMockCommand[command.SubmitReviewRequest, domain.Review](t)
			if !tc.skipCmd {
				submitCmd.EXPECT().Execute(mock.Anything, wantReq).Return(tc.review, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/reviews", strings.NewReader(tc.body))
			req = testContextWithCaller(user)(req)
			rec := httptest.NewRecorder()

			ReviewSubmit{SubmitCmd: submitCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantField != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantField, resp.Field)
				assert.Equal(t, "Please do not include URLs.", resp.Error)
			}
			if tc.wantStatus == http.StatusCreated {
				var resp domain.Review
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, int64(10), resp.ID)
				assert.Equal(t, domain.ReviewStatusPending, resp.Status)
			}
		})
	}
}

func TestReviewEdit_ServeHTTP(t *testing.T) {
	user := domain.Caller{UserID: "user456"}
	body := `{"rating":5,"comment":"better","reviewer_name":"anon"}`

	cases := []struct {
		name       string
		reviewID   string
		cmdErr     error
		skipCmd    bool
		wantStatus int
	}{
		{name: "edited", reviewID: "7", wantStatus: http.StatusOK},
		{name: "bad_id", reviewID: "abc", skipCmd: true, wantStatus: http.StatusBadRequest},
		{name: "not_author", reviewID: "7", cmdErr: domain.ErrNotAuthor, wantStatus: http.StatusForbidden},
		{
			name:       "no_longer_pending",
			reviewID:   "7",
			cmdErr:     domain.InvalidStateError("review 7 is APPROVED, only pending reviews can be edited"),
			wantStatus: http.StatusConflict,
		},
		{name: "missing", reviewID: "7", cmdErr: domain.NotFoundError("review", 7), wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			editCmd := cmdmocks.NewMockCommand[command.EditReviewRequest, domain.Review](t)
			if !tc.skipCmd {
				editCmd.EXPECT().
					Execute(mock.Anything, command.EditReviewRequest{
						Caller:   user,
						ReviewID: 7,
						Content:  domain.ReviewContent{Rating: 5, Comment: "better", ReviewerName: "anon"},
					}).
					Return(domain.Review{ID: 7}, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodPut, "/v1/reviews/"+tc.reviewID, strings.NewReader(body))
			req = testContextWithCaller(user)(req)
			req = mux.SetURLVars(req, map[string]string{"review_id": tc.reviewID})
			rec := httptest.NewRecorder()

			ReviewEdit{EditCmd: editCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestReviewDelete_ServeHTTP(t *testing.T) {
	user := domain.Caller{UserID: "user456"}

	cases := []struct {
		name       string
		cmdErr     error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "approved", cmdErr: domain.InvalidStateError("approved"), wantStatus: http.StatusConflict},
		{name: "not_author", cmdErr: domain.ErrNotAuthor, wantStatus: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleteCmd := cmdmocks.NewMockCommand[command.DeleteReviewRequest, command.Empty](t)
			deleteCmd.EXPECT().
				Execute(mock.Anything, command.DeleteReviewRequest{Caller: user, ReviewID: 7}).
				Return(command.Empty{}, tc.cmdErr)

			req := httptest.NewRequest(http.MethodDelete, "/v1/reviews/7", nil)
			req = testContextWithCaller(user)(req)
			req = mux.SetURLVars(req, map[string]string{"review_id": "7"})
			rec := httptest.NewRecorder()

			ReviewDelete{DeleteCmd: deleteCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestReviewVote_ServeHTTP(t *testing.T) {
	user := domain.Caller{UserID: "user456"}
	voteCmd := cmdmocks.NewMockCommand[command.ToggleVoteRequest, domain.VoteResult](t)
	voteCmd.EXPECT().
		Execute(mock.Anything, command.ToggleVoteRequest{Caller: user, ReviewID: 7}).
		Return(domain.VoteResult{ReviewID: 7, Voted: true, HelpfulCount: 2}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/reviews/7/vote", nil)
	req = testContextWithCaller(user)(req)
	req = mux.SetURLVars(req, map[string]string{"review_id": "7"})
	rec := httptest.NewRecorder()

	ReviewVote{VoteCmd: voteCmd}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"review_id":7,"voted":true,"helpful_count":2}`, rec.Body.String())
}

func TestCompanyReviewsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantReq    *command.ListCompanyReviewsRequest
		wantStatus int
	}{
		{
			name:  "defaults",
			query: "",
			wantReq: &command.ListCompanyReviewsRequest{
				CompanyID: 3,
				Options:   domain.ReviewListOptions{Sort: domain.ReviewSortRecent, Page: 1, PageSize: 50},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "sorted_and_paged",
			query: "?sort=Helpful&page=2&page_size=10",
			wantReq: &command.ListCompanyReviewsRequest{
				CompanyID: 3,
				Options:   domain.ReviewListOptions{Sort: domain.ReviewSortHelpful, Page: 2, PageSize: 10},
			},
			wantStatus: http.StatusOK,
		},
		{name: "unknown_sort", query: "?sort=random", wantStatus: http.StatusBadRequest},
		{name: "page_size_over_limit", query: "?page_size=500", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			listCmd := cmdmocks.NewMockCommand[command.ListCompanyReviewsRequest, []domain.Review](t)
			if tc.wantReq != nil {
				listCmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return([]domain.Review{{ID: 1}}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/companies/3/reviews"+tc.query, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"company_id": "3"})
			rec := httptest.NewRecorder()

			CompanyReviewsList{ListCmd: listCmd, CacheMaxAge: time.Hour}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))
			}
		})
	}
}
