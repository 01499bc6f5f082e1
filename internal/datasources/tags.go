package datasources

import (
	"context"

	"github.com/jbeshir/interview-insights/internal/domain"
)

type TagLister interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
}

// TagResolver maps tag keys to catalog entries, preserving the order of keys.
// An unknown key yields domain.ErrInvalidArgument.
type TagResolver interface {
	ResolveTags(ctx context.Context, keys []string) ([]domain.Tag, error)
}
