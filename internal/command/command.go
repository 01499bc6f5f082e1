package command

import (
	"context"
	"time"
)

// Command is the generic interface for all commands.
// Req is the request type and Res is the result type.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Empty is used as the request or result type of commands that carry no data.
type Empty struct{}

// clockNow reads the command's clock; a nil clock is the UTC wall clock.
func clockNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock()
}
