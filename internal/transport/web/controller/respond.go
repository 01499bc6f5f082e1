package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// ListResponse wraps list payloads.
type ListResponse[T any] struct {
	Data     []T          `json:"data"`
	Metadata ListMetadata `json:"metadata"`
}

type ListMetadata struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

// ErrorResponse is the body of every 4xx response that carries detail.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func setCacheMaxAge(w http.ResponseWriter, maxAge time.Duration) {
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(maxAge.Seconds())))
}

// writeCommandError maps command errors onto status codes. The author and moderator
// checks come first because both also match domain.ErrInvalidState.
func writeCommandError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)

	var rejected *domain.ContentRejectedError
	switch {
	case errors.As(err, &rejected):
		logger.InfoContext(ctx, msg, "error", err)
		writeJSON(ctx, w, http.StatusUnprocessableEntity, ErrorResponse{Error: rejected.Reason, Field: rejected.Field})
	case errors.Is(err, domain.ErrUnauthenticated):
		logger.InfoContext(ctx, msg, "error", err)
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, domain.ErrNotAuthor), errors.Is(err, domain.ErrNotModerator):
		logger.WarnContext(ctx, msg, "error", err)
		writeJSON(ctx, w, http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		logger.InfoContext(ctx, msg, "error", err)
		writeJSON(ctx, w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidArgument):
		logger.InfoContext(ctx, msg, "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidState):
		logger.InfoContext(ctx, msg, "error", err)
		writeJSON(ctx, w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(ctx, msg, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func writeBadRequest(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, msg, "error", err)
	writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func idFromVars(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s [%s]", name, raw)
	}
	return id, nil
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("unable to parse request body: %w", err)
	}
	return nil
}
