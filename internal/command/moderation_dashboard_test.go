package command

import (
	"testing"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources/mocks"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListModerationQueue_Execute(t *testing.T) {
	moderator := domain.Caller{UserID: "mod-1", Moderator: true}

	cases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default_limit", limit: 0, wantLimit: DefaultModerationQueueLimit},
		{name: "explicit_limit", limit: 10, wantLimit: 10},
		{name: "capped_limit", limit: 5000, wantLimit: MaxModerationQueueLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockPendingReviewLister(t)
			lister.EXPECT().
				ListPendingReviews(mock.Anything, tc.wantLimit).
				Return([]domain.Review{pendingReview(t)}, nil)

			cmd := &ListModerationQueue{Lister: lister}
			reviews, err := cmd.Execute(testContext(), ListModerationQueueRequest{Caller: moderator, Limit: tc.limit})
			require.NoError(t, err)
			assert.Len(t, reviews, 1)
		})
	}

	t.Run("requires_moderator", func(t *testing.T) {
		cmd := &ListModerationQueue{Lister: mocks.NewMockPendingReviewLister(t)}
		_, err := cmd.Execute(testContext(), ListModerationQueueRequest{Caller: domain.Caller{UserID: "user-1"}})
		assert.ErrorIs(t, err, domain.ErrNotModerator)
	})
}

func TestGetModerationStats_Execute(t *testing.T) {
	counts := mocks.NewMockModerationCountsGetter(t)
	counts.EXPECT().GetModerationCounts(mock.Anything).Return(domain.ModerationCounts{
		StatusCounts: map[domain.ReviewStatus]int{
			domain.ReviewStatusPending:  2,
			domain.ReviewStatusApproved: 4,
		},
		TotalCompanies: 3,
		QualityCount:   1,
		Approvals: []domain.ApprovalTiming{
			{CreatedAt: testNow.Add(-time.Hour), ApprovedAt: testNow},
		},
	}, nil)

	cmd := &GetModerationStats{Counts: counts, Now: testClock}
	stats, err := cmd.Execute(testContext(), GetModerationStatsRequest{Caller: domain.Caller{UserID: "mod-1", Moderator: true}})
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalReviews)
	assert.Equal(t, 0, stats.StatusCounts[domain.ReviewStatusRejected])
	assert.Equal(t, 25.0, stats.QualityReviewPercentage)
	require.NotNil(t, stats.AverageTimeToApprovalSeconds)
	assert.Equal(t, 3600.0, *stats.AverageTimeToApprovalSeconds)
	assert.Equal(t, testNow, stats.GeneratedAt)

	t.Run("requires_moderator", func(t *testing.T) {
		cmd := &GetModerationStats{Counts: mocks.NewMockModerationCountsGetter(t)}
		_, err := cmd.Execute(testContext(), GetModerationStatsRequest{})
		assert.ErrorIs(t, err, domain.ErrNotModerator)
	})
}
