package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/interview-insights/internal/domain"
)

// GetEnvAsString returns the variable's value, or "" when it is unset.
// Used for settings only some drivers need.
func GetEnvAsString(name string) string {
	return os.Getenv(name)
}

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// mustParseEnv reads a required variable and parses it, panicking with a logged
// explanation when the value does not parse as kind.
func mustParseEnv[T any](ctx context.Context, name, kind string, parse func(string) (T, error)) T {
	s := MustGetEnvAsString(ctx, name)

	v, err := parse(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as "+kind,
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as %s [%s]: %s", kind, name, s))
	}

	return v
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return mustParseEnv(ctx, name, "integer", strconv.Atoi)
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return mustParseEnv(ctx, name, "boolean ('true'/'false')", func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return false, fmt.Errorf("not a boolean")
		}
	})
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	return mustParseEnv(ctx, name, "duration", time.ParseDuration)
}

// MustGetEnvAsStrings splits a comma-separated variable, trimming whitespace around each entry.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	parts := strings.Split(MustGetEnvAsString(ctx, name), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
