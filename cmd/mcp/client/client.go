// Package client provides an HTTP client for the Interview Insights API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/interview-insights/internal/domain"
)

// ListResponse mirrors the paginated list envelope of the API.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

// CompanySearch contains search parameters for listing company records.
type CompanySearch struct {
	Query    string
	Company  string
	Role     string
	Page     int
	PageSize int
}

// ReviewInput is the body of a review submission.
type ReviewInput struct {
	CompanyID           int64    `json:"company_id"`
	Rating              int      `json:"rating"`
	Comment             string   `json:"comment"`
	ReviewerName        string   `json:"reviewer_name"`
	Tags                []string `json:"tags,omitempty"`
	RoundType           string   `json:"round_type,omitempty"`
	InterviewerInitials string   `json:"interviewer_initials,omitempty"`
	Outcome             string   `json:"outcome,omitempty"`
}

// Client is an HTTP client for the Interview Insights API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client. An empty apiToken sends anonymous requests.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.doRequestWithBody(ctx, method, path, body)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, out)
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (s CompanySearch) queryParams() url.Values {
	params := url.Values{}
	if s.Query != "" {
		params.Set("q", s.Query)
	}
	if s.Company != "" {
		params.Set("company", s.Company)
	}
	if s.Role != "" {
		params.Set("role", s.Role)
	}
	if s.Page > 0 {
		params.Set("page", strconv.Itoa(s.Page))
	}
	if s.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(s.PageSize))
	}
	return params
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

func companyPath(companyID int64) string {
	return "/v1/companies/" + strconv.FormatInt(companyID, 10)
}

// SearchCompanies lists company records matching the search.
func (c *Client) SearchCompanies(ctx context.Context, search CompanySearch) ([]domain.Company, error) {
	var result ListResponse[domain.Company]
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/companies", search.queryParams()), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetCompanySummary retrieves the public summary of a company record.
func (c *Client) GetCompanySummary(ctx context.Context, companyID int64) (*domain.CompanySummary, error) {
	var summary domain.CompanySummary
	if err := c.doJSON(ctx, http.MethodGet, companyPath(companyID), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetInsights returns the raw insights payload, which is either full or a teaser
// depending on the caller.
func (c *Client) GetInsights(ctx context.Context, companyID int64) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, companyPath(companyID)+"/insights", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ListCompanyReviews pages through a company record's approved reviews.
func (c *Client) ListCompanyReviews(
	ctx context.Context,
	companyID int64,
	sort string,
	page, pageSize int,
) ([]domain.Review, error) {
	params := url.Values{}
	if sort != "" {
		params.Set("sort", sort)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}

	var result ListResponse[domain.Review]
	if err := c.doJSON(ctx, http.MethodGet, withQuery(companyPath(companyID)+"/reviews", params), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ListTags returns the tag catalog.
func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var result ListResponse[domain.Tag]
	if err := c.doJSON(ctx, http.MethodGet, "/v1/tags", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// SubmitReview creates a review and returns it with its moderation status.
func (c *Client) SubmitReview(ctx context.Context, input ReviewInput) (*domain.Review, error) {
	var review domain.Review
	if err := c.doJSON(ctx, http.MethodPost, "/v1/reviews", input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListModerationQueue returns PENDING reviews, oldest first. Requires a moderator token.
func (c *Client) ListModerationQueue(ctx context.Context, limit int) ([]domain.Review, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result ListResponse[domain.Review]
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/moderation/pending", params), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ModerateReview approves or rejects a PENDING review. Requires a moderator token.
func (c *Client) ModerateReview(ctx context.Context, reviewID int64, decision, reason string) (*domain.Review, error) {
	path := "/v1/moderation/reviews/" + strconv.FormatInt(reviewID, 10) + "/" + url.PathEscape(decision)

	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}

	var review domain.Review
	if err := c.doJSON(ctx, http.MethodPost, path, body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// GetModerationStats summarises the review pipeline. Requires a moderator token.
func (c *Client) GetModerationStats(ctx context.Context) (*domain.ModerationStats, error) {
	var stats domain.ModerationStats
	if err := c.doJSON(ctx, http.MethodGet, "/v1/moderation/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
