package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/interview-insights/internal/datasources/mocks"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContributionLedger_Record(t *testing.T) {
	cases := []struct {
		name       string
		userID     string
		inserted   bool
		recordErr  error
		wantRecord bool
		wantErr    bool
	}{
		{
			name:       "records_first_contribution",
			userID:     "user-1",
			inserted:   true,
			wantRecord: true,
		},
		{
			name:       "already_recorded_is_not_an_error",
			userID:     "user-1",
			inserted:   false,
			wantRecord: true,
		},
		{
			name:   "guest_records_nothing",
			userID: "",
		},
		{
			name:       "storage_error",
			userID:     "user-1",
			recordErr:  errors.New("db down"),
			wantRecord: true,
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := mocks.NewMockContributionRecorder(t)
			if tc.wantRecord {
				recorder.EXPECT().
					RecordContribution(mock.Anything, domain.ContributionRecord{
						UserIdentifier: tc.userID,
						CompanyID:      3,
						ReviewID:       7,
						UnlockedAt:     testNow,
					}).
					Return(tc.inserted, tc.recordErr)
			}

			ledger := NewContributionLedger(testClock)
			err := ledger.Record(testContext(), recorder, tc.userID, 3, 7)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestContributionLedger_HasUnlocked(t *testing.T) {
	t.Run("anonymous_caller_is_locked_without_lookup", func(t *testing.T) {
		checker := mocks.NewMockContributionChecker(t)

		ok, err := NewContributionLedger(testClock).HasUnlocked(testContext(), checker, "", 3)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("contributor_is_unlocked", func(t *testing.T) {
		checker := mocks.NewMockContributionChecker(t)
		checker.EXPECT().HasContribution(mock.Anything, "user-1", int64(3)).Return(true, nil)

		ok, err := NewContributionLedger(testClock).HasUnlocked(testContext(), checker, "user-1", 3)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lookup_error", func(t *testing.T) {
		checker := mocks.NewMockContributionChecker(t)
		checker.EXPECT().HasContribution(mock.Anything, "user-1", int64(3)).Return(false, errors.New("db down"))

		_, err := NewContributionLedger(testClock).HasUnlocked(testContext(), checker, "user-1", 3)
		require.Error(t, err)
	})
}
