package sqlrepo

import (
	"context"
	"fmt"

	"github.com/jbeshir/interview-insights/internal/domain"
)

// RecordContribution relies on the unique (user_identifier, company_id) index, so concurrent
// callers insert at most one row between them. An unknown company is an error.
func (s *store) RecordContribution(ctx context.Context, record domain.ContributionRecord) (bool, error) {
	ib := s.dialect.Flavor.NewInsertBuilder()
	ib.InsertInto("contributions")
	ib.Cols("user_identifier", "company_id", "review_id", "unlocked_at")
	ib.Values(record.UserIdentifier, record.CompanyID, record.ReviewID, record.UnlockedAt.UTC())

	query, args := s.dialect.buildInsertIgnoringDuplicate(ib)
	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("inserting contribution: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return affected > 0, nil
}

func (s *store) HasContribution(ctx context.Context, userID string, companyID int64) (bool, error) {
	var count int64
	err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contributions WHERE user_identifier = ? AND company_id = ?",
		userID, companyID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking contribution: %w", err)
	}
	return count > 0, nil
}

func (s *store) ListContributions(ctx context.Context, userID string) ([]domain.ContributionRecord, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT id, user_identifier, company_id, review_id, unlocked_at
		FROM contributions WHERE user_identifier = ? ORDER BY unlocked_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing contributions: %w", err)
	}
	defer closeRows(rows)

	records := []domain.ContributionRecord{}
	for rows.Next() {
		var rec domain.ContributionRecord
		if err := rows.Scan(&rec.ID, &rec.UserIdentifier, &rec.CompanyID, &rec.ReviewID, &rec.UnlockedAt); err != nil {
			return nil, fmt.Errorf("scanning contribution: %w", err)
		}
		rec.UnlockedAt = rec.UnlockedAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return records, nil
}
