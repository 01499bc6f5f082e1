package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by commands. Callers match them with errors.Is / errors.As.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotAuthor is returned when a caller acts on a review they did not write.
	ErrNotAuthor = fmt.Errorf("%w: caller is not the review author", ErrInvalidState)
	// ErrNotModerator is returned when a non-moderator attempts a moderation decision.
	ErrNotModerator = fmt.Errorf("%w: caller is not a moderator", ErrInvalidState)
	// ErrUnauthenticated is returned when an operation needs a signed-in caller.
	ErrUnauthenticated = fmt.Errorf("%w: caller is not authenticated", ErrInvalidState)
)

// ContentRejectedError reports that a free-text field failed content screening.
type ContentRejectedError struct {
	Field  string
	Reason string
}

func (e *ContentRejectedError) Error() string {
	return fmt.Sprintf("content rejected in field %s: %s", e.Field, e.Reason)
}

// NotFoundError builds an ErrNotFound naming the missing entity.
func NotFoundError(entity string, id any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, entity, id)
}

// InvalidArgumentError builds an ErrInvalidArgument with a description of the bad input.
func InvalidArgumentError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// InvalidStateError builds an ErrInvalidState with a description of the refused transition.
func InvalidStateError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}
