package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show moderation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsRun(commandContext(cmd))
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tag catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagsRun(commandContext(cmd))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tagsCmd)
}

func statsRun(ctx context.Context) error {
	caller, err := moderator()
	if err != nil {
		return err
	}
	c, err := getCommands(ctx)
	if err != nil {
		return err
	}

	stats, err := c.GetModerationStats.Execute(ctx, command.GetModerationStatsRequest{Caller: caller})
	if err != nil {
		return err
	}

	table := ui.Table([]string{"Metric", "Value"})
	for _, status := range []domain.ReviewStatus{
		domain.ReviewStatusPending,
		domain.ReviewStatusApproved,
		domain.ReviewStatusRejected,
	} {
		_ = table.Append([]string{statusColor(status), strconv.Itoa(stats.StatusCounts[status])})
	}
	_ = table.Append([]string{"Total reviews", strconv.Itoa(stats.TotalReviews)})
	_ = table.Append([]string{"Companies", strconv.Itoa(stats.TotalCompanies)})
	_ = table.Append([]string{"Quality reviews", fmt.Sprintf("%.1f%%", stats.QualityReviewPercentage)})

	approval := "n/a"
	if stats.AverageTimeToApprovalSeconds != nil {
		approval = (time.Duration(*stats.AverageTimeToApprovalSeconds) * time.Second).String()
	}
	_ = table.Append([]string{"Avg. time to approval", approval})
	_ = table.Render()
	return nil
}

func tagsRun(ctx context.Context) error {
	c, err := getCommands(ctx)
	if err != nil {
		return err
	}

	tags, err := c.ListTags.Execute(ctx, command.Empty{})
	if err != nil {
		return err
	}

	table := ui.Table([]string{"Key", "Label", "Category"})
	for _, t := range tags {
		_ = table.Append([]string{cyan(t.Key), t.Label, string(t.Category)})
	}
	_ = table.Render()
	return nil
}
