package controller

import (
	"net/http"
	"net/url"
	"time"

	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/domain"
)

type CompaniesList struct {
	ListCmd     command.Command[command.ListCompaniesRequest, []domain.Company]
	CacheMaxAge time.Duration
}

func (c CompaniesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		writeBadRequest(ctx, w, "unable to parse pagination in query string", err)
		return
	}

	companies, err := c.ListCmd.Execute(ctx, command.ListCompaniesRequest{
		Filters:  companyFiltersFromQuery(r.URL.Query()),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list companies", err)
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, ListResponse[domain.Company]{
		Data:     companies,
		Metadata: ListMetadata{Page: page, PageSize: pageSize},
	})
}

func companyFiltersFromQuery(q url.Values) domain.CompanyFilters {
	return domain.CompanyFilters{
		Query:    q.Get("q"),
		Company:  q.Get("company"),
		Role:     q.Get("role"),
		Level:    q.Get("level"),
		Stage:    q.Get("stage"),
		Location: q.Get("location"),
	}
}

// CompanyCreateRequest is the JSON request body for adding a company record.
type CompanyCreateRequest struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Level    string `json:"level,omitempty"`
	Stage    string `json:"stage,omitempty"`
	Location string `json:"location,omitempty"`
}

type CompanyCreate struct {
	CreateCmd command.Command[command.CreateCompanyRequest, domain.Company]
}

func (c CompanyCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CompanyCreateRequest
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(ctx, w, "unable to parse company", err)
		return
	}

	company, err := c.CreateCmd.Execute(ctx, command.CreateCompanyRequest{
		Caller: domain.CallerFromContext(ctx),
		Company: domain.Company{
			Company:  body.Company,
			Role:     body.Role,
			Level:    body.Level,
			Stage:    body.Stage,
			Location: body.Location,
		},
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to create company", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, company)
}

// CompanyGet serves the public summary of a company record.
type CompanyGet struct {
	SummaryCmd  command.Command[command.GetCompanySummaryRequest, domain.CompanySummary]
	CacheMaxAge time.Duration
}

func (c CompanyGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := idFromVars(r, "company_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid company id", err)
		return
	}

	summary, err := c.SummaryCmd.Execute(ctx, command.GetCompanySummaryRequest{CompanyID: companyID})
	if err != nil {
		writeCommandError(ctx, w, "unable to get company summary", err)
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, summary)
}

type CompanyRatingGet struct {
	RatingCmd   command.Command[command.GetWeightedRatingRequest, command.WeightedRating]
	CacheMaxAge time.Duration
}

func (c CompanyRatingGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := idFromVars(r, "company_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid company id", err)
		return
	}

	rating, err := c.RatingCmd.Execute(ctx, command.GetWeightedRatingRequest{CompanyID: companyID})
	if err != nil {
		writeCommandError(ctx, w, "unable to compute weighted rating", err)
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, rating)
}

// CompanyInsightsGet serves full insights to contributors and a teaser to everyone else.
// The payload depends on the caller, so it is never publicly cached.
type CompanyInsightsGet struct {
	InsightsCmd command.Command[command.GetInsightsRequest, domain.Insights]
}

func (c CompanyInsightsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := idFromVars(r, "company_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid company id", err)
		return
	}
	logger := domain.LoggerFromContext(ctx)
	ctx = domain.ContextWithLogger(ctx, logger.With("company_id", companyID))

	insights, err := c.InsightsCmd.Execute(ctx, command.GetInsightsRequest{
		Caller:    domain.CallerFromContext(ctx),
		CompanyID: companyID,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to build insights", err)
		return
	}

	w.Header().Set("Cache-Control", "private, no-store")
	writeJSON(ctx, w, http.StatusOK, insights)
}

type TagsList struct {
	ListCmd     command.Command[command.Empty, []domain.Tag]
	CacheMaxAge time.Duration
}

func (c TagsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tags, err := c.ListCmd.Execute(ctx, command.Empty{})
	if err != nil {
		writeCommandError(ctx, w, "unable to list tags", err)
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, ListResponse[domain.Tag]{Data: tags})
}
