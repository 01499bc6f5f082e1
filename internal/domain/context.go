package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const callerContextKey contextKey = "caller"

// ContextWithCaller attaches the authenticated caller to a request context.
// Only the transport layer reads it back; commands take the caller as an explicit argument.
func ContextWithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

// CallerFromContext returns the caller attached by the auth middleware, or an anonymous caller.
func CallerFromContext(ctx context.Context) Caller {
	caller, ok := ctx.Value(callerContextKey).(Caller)
	if !ok {
		return Caller{}
	}
	return caller
}
