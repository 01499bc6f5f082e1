package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/spf13/cobra"
)

var rejectReason string

var approveCmd = &cobra.Command{
	Use:   "approve <review-id>",
	Short: "Approve a pending review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderateRun(commandContext(cmd), args[0], domain.ModerationApprove, "")
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject <review-id>",
	Short: "Reject a pending review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderateRun(commandContext(cmd), args[0], domain.ModerationReject, rejectReason)
	},
}

func init() {
	rejectCmd.Flags().StringVarP(&rejectReason, "reason", "r", "", "Reason recorded with the rejection")
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
}

func moderateRun(ctx context.Context, rawID string, action domain.ModerationAction, reason string) error {
	reviewID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || reviewID < 1 {
		return fmt.Errorf("invalid review id [%s]", rawID)
	}

	caller, err := moderator()
	if err != nil {
		return err
	}
	c, err := getCommands(ctx)
	if err != nil {
		return err
	}

	review, err := c.ModerateReview.Execute(ctx, command.ModerateReviewRequest{
		Caller:   caller,
		ReviewID: reviewID,
		Action:   action,
		Reason:   reason,
	})
	if err != nil {
		return err
	}

	ui.Success("%s", reviewSummary(review))
	if action == domain.ModerationApprove && review.AuthorKind == domain.AuthorKindUser {
		ui.Info("Insights for company %d unlocked for %s", review.CompanyID, review.AuthorUserID)
	}
	return nil
}
