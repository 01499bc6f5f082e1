package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const companyURIPrefix = "company://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			companyURIPrefix+"{company_id}",
			"Company/interview record summary",
			mcp.WithTemplateDescription(
				"Fetch the public summary of a company record by id: company, role, "+
					"review count, weighted rating and rating breakdown."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleCompanyResource,
	)
}

func (s *Server) handleCompanyResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, companyURIPrefix) {
		return nil, fmt.Errorf("invalid company URI format: %s", uri)
	}

	companyID, err := strconv.ParseInt(strings.TrimPrefix(uri, companyURIPrefix), 10, 64)
	if err != nil || companyID < 1 {
		return nil, fmt.Errorf("invalid company id in URI: %s", uri)
	}

	summary, err := s.client.GetCompanySummary(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company %d: %w", companyID, err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal company: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
