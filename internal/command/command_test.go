package command

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/datasources/mocks"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

const goodComment = "The loop was structured, the recruiter replied within two days and the rubric was shared."

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func testClock() time.Time {
	return testNow
}

func testTags(t *testing.T, keys ...string) []domain.Tag {
	t.Helper()
	tags := make([]domain.Tag, 0, len(keys))
	for _, k := range keys {
		tag, ok := domain.CatalogTag(k)
		require.True(t, ok, k)
		tags = append(tags, tag)
	}
	return tags
}

// transactorFor runs every transaction against store.
func transactorFor(t *testing.T, store *mocks.MockReviewStore) *mocks.MockReviewTransactor {
	tx := mocks.NewMockReviewTransactor(t)
	tx.EXPECT().
		InReviewTx(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(datasources.ReviewStore) error) error {
			return fn(store)
		})
	return tx
}

func pendingReview(t *testing.T) domain.Review {
	return domain.Review{
		ID:           7,
		CompanyID:    3,
		Rating:       4,
		Comment:      goodComment,
		ReviewerName: "anon",
		Tags:         testTags(t, "WELL_ORGANIZED"),
		RoundType:    "onsite",
		Status:       domain.ReviewStatusPending,
		AuthorKind:   domain.AuthorKindUser,
		AuthorUserID: "user-1",
		CreatedAt:    testNow.Add(-time.Hour),
	}
}
