package command

import (
	"testing"

	"github.com/jbeshir/interview-insights/internal/datasources/mocks"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestModerateReview_Execute(t *testing.T) {
	moderator := domain.Caller{UserID: "mod-1", Moderator: true}

	guest := pendingReview(t)
	guest.AuthorKind = domain.AuthorKindGuest
	guest.AuthorUserID = ""

	cases := []struct {
		name             string
		review           domain.Review
		action           domain.ModerationAction
		reason           string
		wantTransition   domain.ReviewTransition
		wantContribution bool
		wantStatus       domain.ReviewStatus
	}{
		{
			name:   "approve_user_review_records_contribution",
			review: pendingReview(t),
			action: domain.ModerationApprove,
			wantTransition: domain.ReviewTransition{
				ReviewID: 7, To: domain.ReviewStatusApproved, At: testNow, ModeratorID: "mod-1",
			},
			wantContribution: true,
			wantStatus:       domain.ReviewStatusApproved,
		},
		{
			name:   "approve_guest_review",
			review: guest,
			action: domain.ModerationApprove,
			wantTransition: domain.ReviewTransition{
				ReviewID: 7, To: domain.ReviewStatusApproved, At: testNow, ModeratorID: "mod-1",
			},
			wantStatus: domain.ReviewStatusApproved,
		},
		{
			name:   "reject_keeps_reason",
			review: pendingReview(t),
			action: domain.ModerationReject,
			reason: "  names a recruiter  ",
			wantTransition: domain.ReviewTransition{
				ReviewID: 7, To: domain.ReviewStatusRejected, At: testNow, ModeratorID: "mod-1",
				Reason: "names a recruiter",
			},
			wantStatus: domain.ReviewStatusRejected,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviews := mocks.NewMockReviewFetcher(t)
			store := mocks.NewMockReviewStore(t)

			reviews.EXPECT().FetchReview(mock.Anything, int64(7)).Return(tc.review, nil)
			store.EXPECT().TransitionReview(mock.Anything, tc.wantTransition).Return(nil)
			if tc.wantContribution {
				store.EXPECT().
					RecordContribution(mock.Anything, domain.ContributionRecord{
						UserIdentifier: "user-1",
						CompanyID:      3,
						ReviewID:       7,
						UnlockedAt:     testNow,
					}).
					Return(true, nil)
			}

			cmd := &ModerateReview{
				Reviews:    reviews,
				Transactor: transactorFor(t, store),
				Ledger:     NewContributionLedger(testClock),
				Now:        testClock,
			}

			review, err := cmd.Execute(testContext(), ModerateReviewRequest{
				Caller:   moderator,
				ReviewID: 7,
				Action:   tc.action,
				Reason:   tc.reason,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, review.Status)
			assert.Equal(t, "mod-1", review.ModeratedBy)
			require.NotNil(t, review.ModeratedAt)
			assert.Equal(t, testNow, *review.ModeratedAt)
			assert.Equal(t, tc.wantTransition.Reason, review.RejectionReason)
		})
	}
}

func TestModerateReview_Execute_Refusals(t *testing.T) {
	t.Run("non_moderator", func(t *testing.T) {
		cmd := &ModerateReview{
			Reviews:    mocks.NewMockReviewFetcher(t),
			Transactor: mocks.NewMockReviewTransactor(t),
		}

		_, err := cmd.Execute(testContext(), ModerateReviewRequest{
			Caller:   domain.Caller{UserID: "user-1"},
			ReviewID: 7,
			Action:   domain.ModerationApprove,
		})
		assert.ErrorIs(t, err, domain.ErrNotModerator)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("already_decided", func(t *testing.T) {
		rejected := pendingReview(t)
		rejected.Status = domain.ReviewStatusRejected

		reviews := mocks.NewMockReviewFetcher(t)
		reviews.EXPECT().FetchReview(mock.Anything, int64(7)).Return(rejected, nil)

		cmd := &ModerateReview{
			Reviews:    reviews,
			Transactor: mocks.NewMockReviewTransactor(t),
		}

		_, err := cmd.Execute(testContext(), ModerateReviewRequest{
			Caller:   domain.Caller{UserID: "mod-1", Moderator: true},
			ReviewID: 7,
			Action:   domain.ModerationApprove,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		assert.NotErrorIs(t, err, domain.ErrNotModerator)
	})

	t.Run("lost_race_writes_no_contribution", func(t *testing.T) {
		reviews := mocks.NewMockReviewFetcher(t)
		reviews.EXPECT().FetchReview(mock.Anything, int64(7)).Return(pendingReview(t), nil)
		store := mocks.NewMockReviewStore(t)
		store.EXPECT().
			TransitionReview(mock.Anything, mock.Anything).
			Return(domain.InvalidStateError("review 7 is APPROVED and cannot be moderated"))

		cmd := &ModerateReview{
			Reviews:    reviews,
			Transactor: transactorFor(t, store),
			Ledger:     NewContributionLedger(testClock),
			Now:        testClock,
		}

		_, err := cmd.Execute(testContext(), ModerateReviewRequest{
			Caller:   domain.Caller{UserID: "mod-1", Moderator: true},
			ReviewID: 7,
			Action:   domain.ModerationApprove,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}
