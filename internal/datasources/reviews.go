package datasources

import (
	"context"

	"github.com/jbeshir/interview-insights/internal/domain"
)

// ReviewCreator inserts a new PENDING review with its tags and returns it with its ID.
type ReviewCreator interface {
	CreateReview(ctx context.Context, review domain.Review) (domain.Review, error)
}

// ReviewFetcher loads one review in any status. Missing reviews yield domain.ErrNotFound.
type ReviewFetcher interface {
	FetchReview(ctx context.Context, reviewID int64) (domain.Review, error)
}

// PendingReviewContentUpdater replaces the content and tags of a review that is still PENDING,
// clearing its moderation metadata. A review that is no longer PENDING yields domain.ErrInvalidState.
type PendingReviewContentUpdater interface {
	UpdatePendingReviewContent(ctx context.Context, review domain.Review) error
}

// ReviewTransitioner moves a PENDING review to a terminal status. The status check and the write
// are a single compare-and-set; a review that is no longer PENDING yields domain.ErrInvalidState.
type ReviewTransitioner interface {
	TransitionReview(ctx context.Context, transition domain.ReviewTransition) error
}

// UnapprovedReviewDeleter deletes a review unless it is APPROVED.
type UnapprovedReviewDeleter interface {
	DeleteUnapprovedReview(ctx context.Context, reviewID int64) error
}

// ApprovedReviewLister returns every APPROVED review of a company record, with tags.
type ApprovedReviewLister interface {
	ListApprovedReviews(ctx context.Context, companyID int64) ([]domain.Review, error)
}

// CompanyReviewLister pages through the APPROVED reviews of a company record with helpful counts.
type CompanyReviewLister interface {
	ListCompanyReviews(ctx context.Context, companyID int64, options domain.ReviewListOptions) ([]domain.Review, error)
}

// AuthorReviewLister returns all reviews written by a user, in any status, newest first.
type AuthorReviewLister interface {
	ListAuthorReviews(ctx context.Context, userID string) ([]domain.Review, error)
}

// PendingReviewLister returns PENDING reviews, oldest first.
type PendingReviewLister interface {
	ListPendingReviews(ctx context.Context, limit int) ([]domain.Review, error)
}

// ReviewStore is the set of operations available inside a review transaction.
type ReviewStore interface {
	ReviewCreator
	ReviewFetcher
	PendingReviewContentUpdater
	ReviewTransitioner
	ContributionRecorder
}

// ReviewTransactor runs fn inside one transaction. fn must only use the store it is given.
// The transaction commits when fn returns nil and rolls back otherwise.
type ReviewTransactor interface {
	InReviewTx(ctx context.Context, fn func(store ReviewStore) error) error
}
