package sqlrepo

import (
	"context"
	"fmt"

	"github.com/jbeshir/interview-insights/internal/domain"
)

func (s *store) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := s.q.QueryContext(ctx, "SELECT id, tag_key, label, category FROM tags ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer closeRows(rows)

	tags := []domain.Tag{}
	for rows.Next() {
		var (
			t        domain.Tag
			category string
		)
		if err := rows.Scan(&t.ID, &t.Key, &t.Label, &category); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		t.Category = domain.TagCategory(category)
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return tags, nil
}

func (s *store) ResolveTags(ctx context.Context, keys []string) ([]domain.Tag, error) {
	if len(keys) == 0 {
		return []domain.Tag{}, nil
	}

	catalog, err := s.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]domain.Tag, len(catalog))
	for _, t := range catalog {
		byKey[t.Key] = t
	}

	tags := make([]domain.Tag, 0, len(keys))
	for _, k := range keys {
		t, ok := byKey[k]
		if !ok {
			return nil, domain.InvalidArgumentError("unknown tag key [%s]", k)
		}
		tags = append(tags, t)
	}
	return tags, nil
}
