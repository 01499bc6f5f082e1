// Package main provides the entry point for the Interview Insights MCP server.
//
// The server lets AI agents search company records, read insights and reviews,
// submit reviews, and (with a moderator token) work the moderation queue.
//
// Configuration:
//
//	INTERVIEW_INSIGHTS_API_URL   - Base URL of the API (default: http://localhost:8080)
//	INTERVIEW_INSIGHTS_API_TOKEN - Optional Auth0 token, format: auth0|<jwt>
//
// Without a token requests are anonymous: insights come back as teasers and
// submitted reviews are guest reviews.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/jbeshir/interview-insights/cmd/mcp/client"
	"github.com/jbeshir/interview-insights/cmd/mcp/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	apiURL := os.Getenv("INTERVIEW_INSIGHTS_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL, os.Getenv("INTERVIEW_INSIGHTS_API_TOKEN"))
	srv := server.NewServer(apiClient)

	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
