package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/interview-insights/internal/command"
	"github.com/jbeshir/interview-insights/internal/domain"
)

type ModerationQueueList struct {
	ListCmd command.Command[command.ListModerationQueueRequest, []domain.Review]
}

func (c ModerationQueueList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Zero lets the command apply its default.
	limit, err := positiveQueryInt(r.URL.Query(), "limit", 0)
	if err != nil {
		writeBadRequest(ctx, w, "unable to parse limit in query string", err)
		return
	}

	reviews, err := c.ListCmd.Execute(ctx, command.ListModerationQueueRequest{
		Caller: domain.CallerFromContext(ctx),
		Limit:  limit,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list moderation queue", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ListResponse[domain.Review]{Data: reviews})
}

type ModerationStatsGet struct {
	StatsCmd command.Command[command.GetModerationStatsRequest, domain.ModerationStats]
}

func (c ModerationStatsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := c.StatsCmd.Execute(ctx, command.GetModerationStatsRequest{Caller: domain.CallerFromContext(ctx)})
	if err != nil {
		writeCommandError(ctx, w, "unable to compute moderation stats", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}

// ReviewModerateRequest is the optional JSON request body of a moderation decision.
type ReviewModerateRequest struct {
	Reason string `json:"reason,omitempty"`
}

type ReviewModerate struct {
	ModerateCmd command.Command[command.ModerateReviewRequest, domain.Review]
}

func (c ReviewModerate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviewID, err := idFromVars(r, "review_id")
	if err != nil {
		writeBadRequest(ctx, w, "invalid review id", err)
		return
	}
	action, err := domain.ParseModerationAction(mux.Vars(r)["decision"])
	if err != nil {
		writeBadRequest(ctx, w, "invalid moderation decision", err)
		return
	}
	logger := domain.LoggerFromContext(ctx)
	ctx = domain.ContextWithLogger(ctx, logger.With("review_id", reviewID, "decision", action))

	var body ReviewModerateRequest
	if r.ContentLength > 0 {
		if err := decodeBody(r, &body); err != nil {
			writeBadRequest(ctx, w, "unable to parse moderation decision", err)
			return
		}
	}

	review, err := c.ModerateCmd.Execute(ctx, command.ModerateReviewRequest{
		Caller:   domain.CallerFromContext(ctx),
		ReviewID: reviewID,
		Action:   action,
		Reason:   body.Reason,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to moderate review", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, review)
}
