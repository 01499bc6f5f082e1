package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/interview-insights/internal/domain"
)

var reviewColumns = []string{
	"r.id",
	"r.company_id",
	"r.rating",
	"r.comment",
	"r.reviewer_name",
	"r.round_type",
	"r.interviewer_initials",
	"r.outcome",
	"r.status",
	"r.author_kind",
	"r.author_user_id",
	"r.created_at",
	"r.approved_at",
	"r.moderated_by",
	"r.moderated_at",
	"r.rejection_reason",
	"(SELECT COUNT(*) FROM review_votes v WHERE v.review_id = r.id AND v.vote_type = 'HELPFUL') AS helpful_count",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (domain.Review, error) {
	var (
		r               domain.Review
		outcome         string
		status          string
		authorKind      string
		authorUserID    sql.NullString
		approvedAt      sql.NullTime
		moderatedBy     sql.NullString
		moderatedAt     sql.NullTime
		rejectionReason sql.NullString
	)
	if err := row.Scan(
		&r.ID,
		&r.CompanyID,
		&r.Rating,
		&r.Comment,
		&r.ReviewerName,
		&r.RoundType,
		&r.InterviewerInitials,
		&outcome,
		&status,
		&authorKind,
		&authorUserID,
		&r.CreatedAt,
		&approvedAt,
		&moderatedBy,
		&moderatedAt,
		&rejectionReason,
		&r.HelpfulCount,
	); err != nil {
		return domain.Review{}, err
	}

	r.Outcome = domain.Outcome(outcome)
	r.Status = domain.ReviewStatus(status)
	r.AuthorKind = domain.AuthorKind(authorKind)
	r.AuthorUserID = authorUserID.String
	r.CreatedAt = r.CreatedAt.UTC()
	if approvedAt.Valid {
		t := approvedAt.Time.UTC()
		r.ApprovedAt = &t
	}
	r.ModeratedBy = moderatedBy.String
	if moderatedAt.Valid {
		t := moderatedAt.Time.UTC()
		r.ModeratedAt = &t
	}
	r.RejectionReason = rejectionReason.String
	r.Tags = []domain.Tag{}
	return r, nil
}

func (s *store) CreateReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	ib := s.dialect.Flavor.NewInsertBuilder()
	ib.InsertInto("reviews")
	ib.Cols(
		"company_id", "rating", "comment", "reviewer_name", "round_type", "interviewer_initials",
		"outcome", "status", "author_kind", "author_user_id", "created_at",
	)
	ib.Values(
		review.CompanyID, review.Rating, review.Comment, review.ReviewerName, review.RoundType,
		review.InterviewerInitials, string(review.Outcome), string(domain.ReviewStatusPending),
		string(review.AuthorKind), nullString(review.AuthorUserID), review.CreatedAt.UTC(),
	)

	query, args := ib.Build()
	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Review{}, fmt.Errorf("inserting review: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Review{}, fmt.Errorf("reading inserted review id: %w", err)
	}

	if err := s.insertReviewTags(ctx, id, review.Tags); err != nil {
		return domain.Review{}, err
	}

	review.ID = id
	review.Status = domain.ReviewStatusPending
	review.ResetModeration()
	return review, nil
}

func (s *store) insertReviewTags(ctx context.Context, reviewID int64, tags []domain.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	ib := s.dialect.Flavor.NewInsertBuilder()
	ib.InsertInto("review_tags")
	ib.Cols("review_id", "tag_id")
	for _, t := range tags {
		ib.Values(reviewID, t.ID)
	}

	query, args := ib.Build()
	if _, err := s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting review tags: %w", err)
	}
	return nil
}

func (s *store) FetchReview(ctx context.Context, reviewID int64) (domain.Review, error) {
	sb := s.dialect.Flavor.NewSelectBuilder()
	sb.Select(reviewColumns...)
	sb.From("reviews r")
	sb.Where(sb.Equal("r.id", reviewID))

	query, args := sb.Build()
	review, err := scanReview(s.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Review{}, domain.NotFoundError("review", reviewID)
	}
	if err != nil {
		return domain.Review{}, fmt.Errorf("fetching review: %w", err)
	}

	reviews := []domain.Review{review}
	if err := s.attachTags(ctx, reviews); err != nil {
		return domain.Review{}, err
	}
	return reviews[0], nil
}

func (s *store) UpdatePendingReviewContent(ctx context.Context, review domain.Review) error {
	ub := s.dialect.Flavor.NewUpdateBuilder()
	ub.Update("reviews")
	ub.Set(
		ub.Assign("rating", review.Rating),
		ub.Assign("comment", review.Comment),
		ub.Assign("reviewer_name", review.ReviewerName),
		ub.Assign("round_type", review.RoundType),
		ub.Assign("interviewer_initials", review.InterviewerInitials),
		ub.Assign("outcome", string(review.Outcome)),
		ub.Assign("approved_at", sql.NullTime{}),
		ub.Assign("moderated_by", sql.NullString{}),
		ub.Assign("moderated_at", sql.NullTime{}),
		ub.Assign("rejection_reason", sql.NullString{}),
	)
	ub.Where(
		ub.Equal("id", review.ID),
		ub.Equal("status", string(domain.ReviewStatusPending)),
	)

	query, args := ub.Build()
	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating review content: %w", err)
	}
	if err := s.checkCompareAndSet(ctx, res, review.ID, "edited"); err != nil {
		return err
	}

	if _, err := s.q.ExecContext(ctx, "DELETE FROM review_tags WHERE review_id = ?", review.ID); err != nil {
		return fmt.Errorf("clearing review tags: %w", err)
	}
	return s.insertReviewTags(ctx, review.ID, review.Tags)
}

func (s *store) TransitionReview(ctx context.Context, t domain.ReviewTransition) error {
	var review domain.Review
	review.ApplyTransition(t)

	var approvedAt, moderatedAt sql.NullTime
	if review.ApprovedAt != nil {
		approvedAt = sql.NullTime{Time: review.ApprovedAt.UTC(), Valid: true}
	}
	if review.ModeratedAt != nil {
		moderatedAt = sql.NullTime{Time: review.ModeratedAt.UTC(), Valid: true}
	}

	ub := s.dialect.Flavor.NewUpdateBuilder()
	ub.Update("reviews")
	ub.Set(
		ub.Assign("status", string(t.To)),
		ub.Assign("approved_at", approvedAt),
		ub.Assign("moderated_by", nullString(review.ModeratedBy)),
		ub.Assign("moderated_at", moderatedAt),
		ub.Assign("rejection_reason", nullString(review.RejectionReason)),
	)
	ub.Where(
		ub.Equal("id", t.ReviewID),
		ub.Equal("status", string(domain.ReviewStatusPending)),
	)

	query, args := ub.Build()
	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("transitioning review: %w", err)
	}
	return s.checkCompareAndSet(ctx, res, t.ReviewID, "moderated")
}

// checkCompareAndSet turns a conditional write that matched no row into NotFound or InvalidState.
func (s *store) checkCompareAndSet(ctx context.Context, res sql.Result, reviewID int64, action string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var status string
	err = s.q.QueryRowContext(ctx, "SELECT status FROM reviews WHERE id = ?", reviewID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError("review", reviewID)
	}
	if err != nil {
		return fmt.Errorf("checking review status: %w", err)
	}
	return domain.InvalidStateError("review %d is %s and cannot be %s", reviewID, status, action)
}

func (r *Repository) DeleteUnapprovedReview(ctx context.Context, reviewID int64) error {
	return r.inTx(ctx, func(s *store) error {
		dlb := s.dialect.Flavor.NewDeleteBuilder()
		dlb.DeleteFrom("reviews")
		dlb.Where(
			dlb.Equal("id", reviewID),
			dlb.NotEqual("status", string(domain.ReviewStatusApproved)),
		)

		query, args := dlb.Build()
		res, err := s.q.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("deleting review: %w", err)
		}
		return s.checkCompareAndSet(ctx, res, reviewID, "deleted")
	})
}

func (s *store) ListApprovedReviews(ctx context.Context, companyID int64) ([]domain.Review, error) {
	sb := s.dialect.Flavor.NewSelectBuilder()
	sb.Select(reviewColumns...)
	sb.From("reviews r")
	sb.Where(
		sb.Equal("r.company_id", companyID),
		sb.Equal("r.status", string(domain.ReviewStatusApproved)),
	)
	sb.OrderBy("r.created_at DESC", "r.id DESC")

	return s.queryReviews(ctx, sb)
}

func (s *store) ListCompanyReviews(
	ctx context.Context,
	companyID int64,
	options domain.ReviewListOptions,
) ([]domain.Review, error) {
	sb := s.dialect.Flavor.NewSelectBuilder()
	sb.Select(reviewColumns...)
	sb.From("reviews r")
	sb.Where(
		sb.Equal("r.company_id", companyID),
		sb.Equal("r.status", string(domain.ReviewStatusApproved)),
	)

	switch options.Sort {
	case domain.ReviewSortHighest:
		sb.OrderBy("r.rating DESC", "r.created_at DESC", "r.id DESC")
	case domain.ReviewSortLowest:
		sb.OrderBy("r.rating ASC", "r.created_at DESC", "r.id DESC")
	case domain.ReviewSortHelpful:
		sb.OrderBy("helpful_count DESC", "r.created_at DESC", "r.id DESC")
	default:
		sb.OrderBy("r.created_at DESC", "r.id DESC")
	}

	if options.PageSize > 0 {
		page := max(options.Page, 1)
		sb.Limit(options.PageSize)
		sb.Offset((page - 1) * options.PageSize)
	}

	return s.queryReviews(ctx, sb)
}

func (s *store) ListAuthorReviews(ctx context.Context, userID string) ([]domain.Review, error) {
	sb := s.dialect.Flavor.NewSelectBuilder()
	sb.Select(reviewColumns...)
	sb.From("reviews r")
	sb.Where(
		sb.Equal("r.author_kind", string(domain.AuthorKindUser)),
		sb.Equal("r.author_user_id", userID),
	)
	sb.OrderBy("r.created_at DESC", "r.id DESC")

	return s.queryReviews(ctx, sb)
}

func (s *store) ListPendingReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	sb := s.dialect.Flavor.NewSelectBuilder()
	sb.Select(reviewColumns...)
	sb.From("reviews r")
	sb.Where(sb.Equal("r.status", string(domain.ReviewStatusPending)))
	sb.OrderBy("r.created_at ASC", "r.id ASC")
	if limit > 0 {
		sb.Limit(limit)
	}

	return s.queryReviews(ctx, sb)
}

func (s *store) queryReviews(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Review, error) {
	query, args := sb.Build()
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running reviews query: %w", err)
	}
	defer closeRows(rows)

	reviews := []domain.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	if err := s.attachTags(ctx, reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// attachTags loads the tags of every review in one query, in catalog order.
func (s *store) attachTags(ctx context.Context, reviews []domain.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	ids := make([]any, 0, len(reviews))
	byID := make(map[int64]int, len(reviews))
	for i, r := range reviews {
		ids = append(ids, r.ID)
		byID[r.ID] = i
	}

	sb := s.dialect.Flavor.NewSelectBuilder()
	sb.Select("rt.review_id", "t.id", "t.tag_key", "t.label", "t.category")
	sb.From("review_tags rt")
	sb.Join("tags t", "t.id = rt.tag_id")
	sb.Where(sb.In("rt.review_id", ids...))
	sb.OrderBy("rt.review_id", "t.id")

	query, args := sb.Build()
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading review tags: %w", err)
	}
	defer closeRows(rows)

	for rows.Next() {
		var (
			reviewID int64
			tag      domain.Tag
			category string
		)
		if err := rows.Scan(&reviewID, &tag.ID, &tag.Key, &tag.Label, &category); err != nil {
			return fmt.Errorf("scanning review tag: %w", err)
		}
		tag.Category = domain.TagCategory(category)
		if i, ok := byID[reviewID]; ok {
			reviews[i].Tags = append(reviews[i].Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating review tags: %w", err)
	}
	return nil
}

