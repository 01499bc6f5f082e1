package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jbeshir/interview-insights/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleSearchCompanies(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	page, pageSize := parsePagination(request)

	companies, err := s.client.SearchCompanies(ctx, client.CompanySearch{
		Query:    request.GetString("query", ""),
		Company:  request.GetString("company", ""),
		Role:     request.GetString("role", ""),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search companies: %v", err)), nil
	}
	if len(companies) == 0 {
		return mcp.NewToolResultText("No company records found."), nil
	}

	return formatJSONResult(fmt.Sprintf("Found %d company record(s):", len(companies)), companies)
}

func (s *Server) handleGetCompany(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	companyID, errResult := requireID(request, "company_id")
	if errResult != nil {
		return errResult, nil
	}

	summary, err := s.client.GetCompanySummary(ctx, companyID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get company: %v", err)), nil
	}

	return formatJSONResult("", summary)
}

func (s *Server) handleGetInsights(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	companyID, errResult := requireID(request, "company_id")
	if errResult != nil {
		return errResult, nil
	}

	raw, err := s.client.GetInsights(ctx, companyID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get insights: %v", err)), nil
	}

	return formatJSONResult("", raw)
}

func (s *Server) handleListReviews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	companyID, errResult := requireID(request, "company_id")
	if errResult != nil {
		return errResult, nil
	}
	page, pageSize := parsePagination(request)

	reviews, err := s.client.ListCompanyReviews(ctx, companyID, request.GetString("sort", ""), page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list reviews: %v", err)), nil
	}
	if len(reviews) == 0 {
		return mcp.NewToolResultText("No approved reviews found."), nil
	}

	return formatJSONResult(fmt.Sprintf("Found %d review(s):", len(reviews)), reviews)
}

func (s *Server) handleListTags(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	tags, err := s.client.ListTags(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list tags: %v", err)), nil
	}

	return formatJSONResult("", tags)
}

func (s *Server) handleSubmitReview(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	input, err := parseReviewInput(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	review, err := s.client.SubmitReview(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to submit review: %v", err)), nil
	}

	return formatJSONResult(fmt.Sprintf("Submitted review %d with status %s:", review.ID, review.Status), review)
}

func parseReviewInput(request mcp.CallToolRequest) (client.ReviewInput, error) {
	companyID, err := request.RequireFloat("company_id")
	if err != nil || companyID < 1 {
		return client.ReviewInput{}, fmt.Errorf("company_id is required")
	}
	rating, err := request.RequireFloat("rating")
	if err != nil {
		return client.ReviewInput{}, fmt.Errorf("rating is required")
	}
	comment, err := request.RequireString("comment")
	if err != nil {
		return client.ReviewInput{}, fmt.Errorf("comment is required")
	}
	reviewerName, err := request.RequireString("reviewer_name")
	if err != nil {
		return client.ReviewInput{}, fmt.Errorf("reviewer_name is required")
	}

	input := client.ReviewInput{
		CompanyID:    int64(companyID),
		Rating:       int(rating),
		Comment:      comment,
		ReviewerName: reviewerName,
		RoundType:    request.GetString("round_type", ""),
		Outcome:      request.GetString("outcome", ""),
	}
	if tags := request.GetString("tags", ""); tags != "" {
		input.Tags = splitAndTrim(tags)
	}
	return input, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func (s *Server) handleListModerationQueue(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	limit := min(request.GetInt("limit", 0), 200)

	reviews, err := s.client.ListModerationQueue(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list moderation queue: %v", err)), nil
	}
	if len(reviews) == 0 {
		return mcp.NewToolResultText("The moderation queue is empty."), nil
	}

	return formatJSONResult(fmt.Sprintf("%d review(s) awaiting moderation:", len(reviews)), reviews)
}

func (s *Server) handleModerateReview(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	reviewID, errResult := requireID(request, "review_id")
	if errResult != nil {
		return errResult, nil
	}

	decision, err := request.RequireString("decision")
	if err != nil {
		return mcp.NewToolResultError("decision is required (must be 'approve' or 'reject')"), nil
	}
	switch decision = strings.ToLower(strings.TrimSpace(decision)); decision {
	case "approve", "reject":
	default:
		return mcp.NewToolResultError("decision must be 'approve' or 'reject'"), nil
	}

	review, err := s.client.ModerateReview(ctx, reviewID, decision, request.GetString("reason", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to moderate review: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Review %d is now %s", review.ID, review.Status)), nil
}

func (s *Server) handleGetModerationStats(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	stats, err := s.client.GetModerationStats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get moderation stats: %v", err)), nil
	}

	return formatJSONResult("", stats)
}

func requireID(request mcp.CallToolRequest, name string) (int64, *mcp.CallToolResult) {
	id, err := request.RequireFloat(name)
	if err != nil || id < 1 {
		return 0, mcp.NewToolResultError(name + " is required")
	}
	return int64(id), nil
}

func parsePagination(request mcp.CallToolRequest) (page, pageSize int) {
	page = max(request.GetInt("page", 1), 1)
	pageSize = request.GetInt("page_size", 50)
	if pageSize < 1 {
		pageSize = 50
	}
	return page, min(pageSize, 200)
}

func formatJSONResult(heading string, v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}

	if heading == "" {
		return mcp.NewToolResultText(string(data)), nil
	}
	return mcp.NewToolResultText(heading + "\n\n" + string(data)), nil
}
