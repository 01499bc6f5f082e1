package datasources

import (
	"context"

	"github.com/jbeshir/interview-insights/internal/domain"
)

type ModerationCountsGetter interface {
	GetModerationCounts(ctx context.Context) (domain.ModerationCounts, error)
}
