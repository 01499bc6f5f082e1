package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/spf13/cobra"
)

var queueLimit int

var queueCmd = &cobra.Command{
	Use:     "queue",
	Aliases: []string{"pending"},
	Short:   "List reviews awaiting moderation, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return queueRun(commandContext(cmd), queueLimit)
	},
}

func init() {
	queueCmd.Flags().IntVarP(&queueLimit, "limit", "l", command.DefaultModerationQueueLimit, "Maximum reviews to list")
	rootCmd.AddCommand(queueCmd)
}

func queueRun(ctx context.Context, limit int) error {
	caller, err := moderator()
	if err != nil {
		return err
	}
	c, err := getCommands(ctx)
	if err != nil {
		return err
	}

	reviews, err := c.ListModerationQueue.Execute(ctx, command.ListModerationQueueRequest{
		Caller: caller,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		ui.Info("The moderation queue is empty.")
		return nil
	}

	table := ui.Table([]string{"ID", "Company", "Rating", "Author", "Tags", "Submitted", "Comment"})
	for _, r := range reviews {
		_ = table.Append([]string{
			cyan(strconv.FormatInt(r.ID, 10)),
			strconv.FormatInt(r.CompanyID, 10),
			strconv.Itoa(r.Rating),
			string(r.AuthorKind),
			strings.Join(r.TagKeys(), ","),
			r.CreatedAt.Format("2006-01-02 15:04"),
			truncate(r.Comment, 60),
		})
	}
	_ = table.Render()
	return nil
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// reviewSummary is a one-line description of a review for confirmations.
func reviewSummary(r domain.Review) string {
	return "review " + strconv.FormatInt(r.ID, 10) + " is now " + statusColor(r.Status)
}
