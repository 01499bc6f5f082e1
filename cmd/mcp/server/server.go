// Package server provides the MCP server implementation.
package server

import (
	"context"
	"os"

	"github.com/jbeshir/interview-insights/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the MCP server for Interview Insights.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"interview-insights",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run serves MCP over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return server.NewStdioServer(s.mcpServer).Listen(ctx, os.Stdin, os.Stdout)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("search_companies",
		mcp.WithDescription(
			"Search company/interview records by company name or role. "+
				"Returns matching records with their ids, which other tools take as company_id."),
		mcp.WithString("query",
			mcp.Description("Substring to match against company name or role"),
		),
		mcp.WithString("company",
			mcp.Description("Exact company name, case-insensitive"),
		),
		mcp.WithString("role",
			mcp.Description("Exact role, case-insensitive"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Records per page (default: 50, max: 200)"),
		),
	), s.handleSearchCompanies)

	s.mcpServer.AddTool(mcp.NewTool("get_company",
		mcp.WithDescription("Get the public summary of a company record: review count, weighted rating and rating breakdown."),
		mcp.WithNumber("company_id",
			mcp.Required(),
			mcp.Description("The id of the company record"),
		),
	), s.handleGetCompany)

	s.mcpServer.AddTool(mcp.NewTool("get_insights",
		mcp.WithDescription(
			"Get aggregated interview insights for a company record. "+
				"Full insights are returned only after you have an approved review for the record; "+
				"otherwise a locked teaser is returned."),
		mcp.WithNumber("company_id",
			mcp.Required(),
			mcp.Description("The id of the company record"),
		),
	), s.handleGetInsights)

	s.mcpServer.AddTool(mcp.NewTool("list_reviews",
		mcp.WithDescription("List approved reviews for a company record."),
		mcp.WithNumber("company_id",
			mcp.Required(),
			mcp.Description("The id of the company record"),
		),
		mcp.WithString("sort",
			mcp.Description("One of 'recent' (default), 'highest', 'lowest', 'helpful'"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Reviews per page (default: 50, max: 200)"),
		),
	), s.handleListReviews)

	s.mcpServer.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List the tag catalog that reviews may reference."),
	), s.handleListTags)

	s.mcpServer.AddTool(mcp.NewTool("submit_review",
		mcp.WithDescription(
			"Submit an interview review. Reviews with tags, a round type and a substantial comment "+
				"are published immediately; others wait for a moderator."),
		mcp.WithNumber("company_id",
			mcp.Required(),
			mcp.Description("The id of the company record"),
		),
		mcp.WithNumber("rating",
			mcp.Required(),
			mcp.Description("Overall rating from 1 to 5"),
		),
		mcp.WithString("comment",
			mcp.Required(),
			mcp.Description("Review text; at least 50 characters for immediate publication"),
		),
		mcp.WithString("reviewer_name",
			mcp.Required(),
			mcp.Description("Display name of the reviewer"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tag keys from list_tags (e.g. 'WELL_ORGANIZED,PROMPT_FEEDBACK')"),
		),
		mcp.WithString("round_type",
			mcp.Description("Interview round, e.g. 'phone screen' or 'onsite'"),
		),
		mcp.WithString("outcome",
			mcp.Description("One of 'OFFER', 'REJECTED', 'WITHDREW'"),
		),
	), s.handleSubmitReview)

	s.mcpServer.AddTool(mcp.NewTool("list_moderation_queue",
		mcp.WithDescription("List PENDING reviews awaiting a moderator, oldest first. Requires a moderator token."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of reviews to return (default: 50, max: 200)"),
		),
	), s.handleListModerationQueue)

	s.mcpServer.AddTool(mcp.NewTool("moderate_review",
		mcp.WithDescription("Approve or reject a PENDING review. Requires a moderator token."),
		mcp.WithNumber("review_id",
			mcp.Required(),
			mcp.Description("The id of the review"),
		),
		mcp.WithString("decision",
			mcp.Required(),
			mcp.Description("'approve' or 'reject'"),
		),
		mcp.WithString("reason",
			mcp.Description("Reason recorded with a rejection"),
		),
	), s.handleModerateReview)

	s.mcpServer.AddTool(mcp.NewTool("get_moderation_stats",
		mcp.WithDescription("Summarise the review pipeline: status counts and time to approval. Requires a moderator token."),
	), s.handleGetModerationStats)
}
