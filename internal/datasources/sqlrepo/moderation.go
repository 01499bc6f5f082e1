package sqlrepo

import (
	"context"
	"fmt"

	"github.com/jbeshir/interview-insights/internal/domain"
)

func (s *store) GetModerationCounts(ctx context.Context) (domain.ModerationCounts, error) {
	counts := domain.ModerationCounts{StatusCounts: map[domain.ReviewStatus]int{}}

	rows, err := s.q.QueryContext(ctx, "SELECT status, COUNT(*) FROM reviews GROUP BY status")
	if err != nil {
		return domain.ModerationCounts{}, fmt.Errorf("counting reviews by status: %w", err)
	}
	defer closeRows(rows)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return domain.ModerationCounts{}, fmt.Errorf("scanning status count: %w", err)
		}
		counts.StatusCounts[domain.ReviewStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return domain.ModerationCounts{}, fmt.Errorf("iterating rows: %w", err)
	}
	closeRows(rows)

	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM companies").Scan(&counts.TotalCompanies); err != nil {
		return domain.ModerationCounts{}, fmt.Errorf("counting companies: %w", err)
	}

	// Approved reviews whose domain.DetailCount is domain.FullDetailCount.
	qualityQuery := fmt.Sprintf(`SELECT COUNT(*) FROM reviews r
		WHERE r.status = ? AND TRIM(r.round_type) <> '' AND %s(r.comment) >= ?
		AND EXISTS (SELECT 1 FROM review_tags rt WHERE rt.review_id = r.id)`, s.dialect.CharLength)
	if err := s.q.QueryRowContext(ctx, qualityQuery,
		string(domain.ReviewStatusApproved), domain.DetailedCommentLength,
	).Scan(&counts.QualityCount); err != nil {
		return domain.ModerationCounts{}, fmt.Errorf("counting quality reviews: %w", err)
	}

	timings, err := s.q.QueryContext(ctx,
		"SELECT created_at, approved_at FROM reviews WHERE status = ? AND approved_at IS NOT NULL",
		string(domain.ReviewStatusApproved),
	)
	if err != nil {
		return domain.ModerationCounts{}, fmt.Errorf("loading approval timings: %w", err)
	}
	defer closeRows(timings)
	for timings.Next() {
		var a domain.ApprovalTiming
		if err := timings.Scan(&a.CreatedAt, &a.ApprovedAt); err != nil {
			return domain.ModerationCounts{}, fmt.Errorf("scanning approval timing: %w", err)
		}
		counts.Approvals = append(counts.Approvals, a)
	}
	if err := timings.Err(); err != nil {
		return domain.ModerationCounts{}, fmt.Errorf("iterating rows: %w", err)
	}

	return counts, nil
}
