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

func TestCompanyInsightsGet_ServeHTTP(t *testing.T) {
	contributor := domain.Caller{UserID: "user456"}
	rating := 4.2

	cases := []struct {
		name       string
		caller     domain.Caller
		insights   domain.Insights
		cmdErr     error
		wantStatus int
		wantLocked bool
	}{
		{
			name:   "full_for_contributor",
			caller: contributor,
			insights: domain.FullInsights{
				CompanyID: 3, TotalReviews: 2, WeightedRating: &rating,
				TagDistribution: map[string]float64{"GHOST_JOB": 50}, CommonFeedback: []string{"GHOST_JOB"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "teaser_for_anonymous",
			insights: domain.TeaserInsights{
				CompanyID: 3, Locked: true, TotalReviews: 2, UnlockMessage: domain.UnlockMessage,
			},
			wantStatus: http.StatusOK,
			wantLocked: true,
		},
		{
			name:       "unknown_company",
			cmdErr:     domain.NotFoundError("company", 3),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage_failure",
			cmdErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			insightsCmd := cmdmocks.NewMockCommand[command.GetInsightsRequest, domain.Insights](t)
			insightsCmd.EXPECT().
				Execute(mock.Anything, command.GetInsightsRequest{Caller: tc.caller, CompanyID: 3}).
				Return(tc.insights, tc.cmdErr)

			req := httptest.NewRequest(http.MethodGet, "/v1/companies/3/insights", nil)
			req = testContextWithCaller(tc.caller)(req)
			req = mux.SetURLVars(req, map[string]string{"company_id": "3"})
			rec := httptest.NewRecorder()

			CompanyInsightsGet{InsightsCmd: insightsCmd}.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, "private, no-store", rec.Header().Get("Cache-Control"))

			var resp map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.wantLocked, resp["locked"])
			if tc.wantLocked {
				assert.NotContains(t, resp, "tag_distribution")
			} else {
				assert.Equal(t, 4.2, resp["weighted_rating"])
			}
		})
	}
}

func TestCompaniesList_ServeHTTP(t *testing.T) {
	listCmd := cmdmocks.NewMockCommand[command.ListCompaniesRequest, []domain.Company](t)
	listCmd.EXPECT().
		Execute(mock.Anything, command.ListCompaniesRequest{
			Filters:  domain.CompanyFilters{Query: "acme", Level: "L4"},
			Page:     1,
			PageSize: 20,
		}).
		Return([]domain.Company{{ID: 1, Company: "Acme", Role: "SRE"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/companies?q=acme&level=L4&page_size=20", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	CompaniesList{ListCmd: listCmd, CacheMaxAge: time.Minute}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListResponse[domain.Company]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Acme", resp.Data[0].Company)
	assert.Equal(t, 20, resp.Metadata.PageSize)
}

func TestCompanyCreate_ServeHTTP(t *testing.T) {
	user := domain.Caller{UserID: "user456"}

	cases := []struct {
		name       string
		caller     domain.Caller
		cmdErr     error
		wantStatus int
	}{
		{name: "created", caller: user, wantStatus: http.StatusCreated},
		{name: "anonymous", cmdErr: domain.ErrUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "missing_role", caller: user, cmdErr: domain.InvalidArgumentError("role is required"), wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			createCmd := cmdmocks.NewMockCommand[command.CreateCompanyRequest, domain.Company](t)
			createCmd.EXPECT().
				Execute(mock.Anything, command.CreateCompanyRequest{
					Caller:  tc.caller,
					Company: domain.Company{Company: "Acme", Role: "SRE"},
				}).
				Return(domain.Company{ID: 5, Company: "Acme", Role: "SRE"}, tc.cmdErr)

			req := httptest.NewRequest(http.MethodPost, "/v1/companies",
				strings.NewReader(`{"company":"Acme","role":"SRE"}`))
			req = testContextWithCaller(tc.caller)(req)
			rec := httptest.NewRecorder()

			CompanyCreate{CreateCmd: createCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestCompanyRatingGet_ServeHTTP(t *testing.T) {
	ratingCmd := cmdmocks.NewMockCommand[command.GetWeightedRatingRequest, command.WeightedRating](t)
	ratingCmd.EXPECT().
		Execute(mock.Anything, command.GetWeightedRatingRequest{CompanyID: 3}).
		Return(command.WeightedRating{CompanyID: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/companies/3/rating", nil)
	req = testContext()(req)
	req = mux.SetURLVars(req, map[string]string{"company_id": "3"})
	rec := httptest.NewRecorder()

	CompanyRatingGet{RatingCmd: ratingCmd}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"company_id":3,"weighted_rating":null,"review_count":0}`, rec.Body.String())
}
