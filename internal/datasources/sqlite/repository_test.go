package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/datasources/sqlrepo"
	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) *sqlrepo.Repository {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))
	return New(db)
}

func createCompany(t *testing.T, repo *sqlrepo.Repository, name, role string) domain.Company {
	t.Helper()
	c, err := repo.CreateCompany(context.Background(), domain.Company{
		Company:   name,
		Role:      role,
		CreatedAt: testTime,
	})
	require.NoError(t, err)
	return c
}

func createReview(t *testing.T, repo *sqlrepo.Repository, r domain.Review) domain.Review {
	t.Helper()
	if r.Rating == 0 {
		r.Rating = 4
	}
	if r.Comment == "" {
		r.Comment = "a fair process overall"
	}
	if r.ReviewerName == "" {
		r.ReviewerName = "anon"
	}
	if r.AuthorKind == "" {
		r.AuthorKind = domain.AuthorKindGuest
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = testTime
	}
	created, err := repo.CreateReview(context.Background(), r)
	require.NoError(t, err)
	return created
}

func approve(t *testing.T, repo *sqlrepo.Repository, reviewID int64, at time.Time) {
	t.Helper()
	require.NoError(t, repo.TransitionReview(context.Background(), domain.ReviewTransition{
		ReviewID: reviewID,
		To:       domain.ReviewStatusApproved,
		At:       at,
	}))
}

func catalogTags(t *testing.T, keys ...string) []domain.Tag {
	t.Helper()
	tags := make([]domain.Tag, 0, len(keys))
	for _, k := range keys {
		tag, ok := domain.CatalogTag(k)
		require.True(t, ok)
		tags = append(tags, tag)
	}
	return tags
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db))
	assert.NoError(t, Migrate(ctx, db))
}

func TestRepository_ListTags_SeededCatalog(t *testing.T) {
	repo := newTestRepo(t)

	tags, err := repo.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TagCatalog, tags)
}

func TestRepository_ResolveTags(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tags, err := repo.ResolveTags(ctx, []string{"LONG_PROCESS", "GHOST_JOB"})
	require.NoError(t, err)
	assert.Equal(t, catalogTags(t, "LONG_PROCESS", "GHOST_JOB"), tags)

	_, err = repo.ResolveTags(ctx, []string{"GHOST_JOB", "NOT_A_TAG"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRepository_CreateAndFetchReview(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "Backend Engineer")

	created := createReview(t, repo, domain.Review{
		CompanyID:           company.ID,
		Rating:              3,
		Comment:             "two technical rounds and a take-home",
		ReviewerName:        "candidate",
		Tags:                catalogTags(t, "PROMPT_FEEDBACK", "WELL_ORGANIZED"),
		RoundType:           "Technical",
		InterviewerInitials: "JD",
		Outcome:             domain.OutcomeOffer,
		AuthorKind:          domain.AuthorKindUser,
		AuthorUserID:        "user-1",
	})
	require.NotZero(t, created.ID)
	assert.Equal(t, domain.ReviewStatusPending, created.Status)

	got, err := repo.FetchReview(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, company.ID, got.CompanyID)
	assert.Equal(t, 3, got.Rating)
	assert.Equal(t, "two technical rounds and a take-home", got.Comment)
	assert.Equal(t, "Technical", got.RoundType)
	assert.Equal(t, "JD", got.InterviewerInitials)
	assert.Equal(t, domain.OutcomeOffer, got.Outcome)
	assert.Equal(t, domain.ReviewStatusPending, got.Status)
	assert.Equal(t, domain.AuthorKindUser, got.AuthorKind)
	assert.Equal(t, "user-1", got.AuthorUserID)
	assert.True(t, testTime.Equal(got.CreatedAt))
	assert.Nil(t, got.ApprovedAt)
	assert.Equal(t, []string{"PROMPT_FEEDBACK", "WELL_ORGANIZED"}, got.TagKeys())

	_, err = repo.FetchReview(ctx, created.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_TransitionReview(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")

	t.Run("approve_sets_approved_at", func(t *testing.T) {
		r := createReview(t, repo, domain.Review{CompanyID: company.ID})
		approvedAt := testTime.Add(time.Hour)

		require.NoError(t, repo.TransitionReview(ctx, domain.ReviewTransition{
			ReviewID:    r.ID,
			To:          domain.ReviewStatusApproved,
			At:          approvedAt,
			ModeratorID: "mod-1",
		}))

		got, err := repo.FetchReview(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusApproved, got.Status)
		require.NotNil(t, got.ApprovedAt)
		assert.True(t, approvedAt.Equal(*got.ApprovedAt))
		assert.Equal(t, "mod-1", got.ModeratedBy)
		require.NotNil(t, got.ModeratedAt)
	})

	t.Run("second_transition_is_invalid_state", func(t *testing.T) {
		r := createReview(t, repo, domain.Review{CompanyID: company.ID})
		approve(t, repo, r.ID, testTime)

		err := repo.TransitionReview(ctx, domain.ReviewTransition{
			ReviewID:    r.ID,
			To:          domain.ReviewStatusRejected,
			At:          testTime,
			ModeratorID: "mod-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		got, err := repo.FetchReview(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusApproved, got.Status)
	})

	t.Run("reject_records_reason", func(t *testing.T) {
		r := createReview(t, repo, domain.Review{CompanyID: company.ID})

		require.NoError(t, repo.TransitionReview(ctx, domain.ReviewTransition{
			ReviewID:    r.ID,
			To:          domain.ReviewStatusRejected,
			At:          testTime,
			ModeratorID: "mod-1",
			Reason:      "off topic",
		}))

		got, err := repo.FetchReview(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusRejected, got.Status)
		assert.Nil(t, got.ApprovedAt)
		assert.Equal(t, "off topic", got.RejectionReason)
	})

	t.Run("missing_review_is_not_found", func(t *testing.T) {
		err := repo.TransitionReview(ctx, domain.ReviewTransition{
			ReviewID: 9999,
			To:       domain.ReviewStatusApproved,
			At:       testTime,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRepository_UpdatePendingReviewContent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")

	r := createReview(t, repo, domain.Review{
		CompanyID: company.ID,
		Tags:      catalogTags(t, "GHOST_JOB"),
	})

	r.Rating = 2
	r.Comment = "updated comment"
	r.Tags = catalogTags(t, "LONG_PROCESS", "NO_FEEDBACK")
	r.Outcome = domain.OutcomeWithdrew
	require.NoError(t, repo.UpdatePendingReviewContent(ctx, r))

	got, err := repo.FetchReview(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rating)
	assert.Equal(t, "updated comment", got.Comment)
	assert.Equal(t, domain.OutcomeWithdrew, got.Outcome)
	assert.Equal(t, []string{"NO_FEEDBACK", "LONG_PROCESS"}, got.TagKeys())

	approve(t, repo, r.ID, testTime)
	r.Comment = "too late"
	err = repo.UpdatePendingReviewContent(ctx, r)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	got, err = repo.FetchReview(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated comment", got.Comment)
}

func TestRepository_DeleteUnapprovedReview(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")

	pending := createReview(t, repo, domain.Review{CompanyID: company.ID, Tags: catalogTags(t, "GHOST_JOB")})
	require.NoError(t, repo.DeleteUnapprovedReview(ctx, pending.ID))
	_, err := repo.FetchReview(ctx, pending.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	approved := createReview(t, repo, domain.Review{CompanyID: company.ID})
	approve(t, repo, approved.ID, testTime)
	err = repo.DeleteUnapprovedReview(ctx, approved.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	err = repo.DeleteUnapprovedReview(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_RecordContribution_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")
	record := domain.ContributionRecord{
		UserIdentifier: "user-1",
		CompanyID:      company.ID,
		ReviewID:       1,
		UnlockedAt:     testTime,
	}

	unlocked, err := repo.HasContribution(ctx, "user-1", company.ID)
	require.NoError(t, err)
	assert.False(t, unlocked)

	inserted, err := repo.RecordContribution(ctx, record)
	require.NoError(t, err)
	assert.True(t, inserted)

	record.ReviewID = 2
	inserted, err = repo.RecordContribution(ctx, record)
	require.NoError(t, err)
	assert.False(t, inserted)

	unlocked, err = repo.HasContribution(ctx, "user-1", company.ID)
	require.NoError(t, err)
	assert.True(t, unlocked)

	records, err := repo.ListContributions(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ReviewID)
}

func TestRepository_InReviewTx_RollsBackOnError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")
	errBoom := errors.New("boom")

	var createdID int64
	err := repo.InReviewTx(ctx, func(store datasources.ReviewStore) error {
		r, err := store.CreateReview(ctx, domain.Review{
			CompanyID:    company.ID,
			Rating:       4,
			Comment:      "rolled back",
			ReviewerName: "anon",
			AuthorKind:   domain.AuthorKindGuest,
			CreatedAt:    testTime,
		})
		require.NoError(t, err)
		createdID = r.ID
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = repo.FetchReview(ctx, createdID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_ListApprovedReviews(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")
	other := createCompany(t, repo, "Globex", "SRE")

	older := createReview(t, repo, domain.Review{CompanyID: company.ID, CreatedAt: testTime.Add(-time.Hour)})
	newer := createReview(t, repo, domain.Review{CompanyID: company.ID, Tags: catalogTags(t, "GHOST_JOB")})
	createReview(t, repo, domain.Review{CompanyID: company.ID})
	elsewhere := createReview(t, repo, domain.Review{CompanyID: other.ID})
	approve(t, repo, older.ID, testTime)
	approve(t, repo, newer.ID, testTime)
	approve(t, repo, elsewhere.ID, testTime)

	reviews, err := repo.ListApprovedReviews(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, newer.ID, reviews[0].ID)
	assert.Equal(t, older.ID, reviews[1].ID)
	assert.Equal(t, []string{"GHOST_JOB"}, reviews[0].TagKeys())
	assert.Empty(t, reviews[1].Tags)
	for _, r := range reviews {
		assert.Equal(t, domain.ReviewStatusApproved, r.Status)
	}
}

func TestRepository_ListCompanyReviews(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")

	low := createReview(t, repo, domain.Review{CompanyID: company.ID, Rating: 1, CreatedAt: testTime.Add(-2 * time.Hour)})
	high := createReview(t, repo, domain.Review{CompanyID: company.ID, Rating: 5, CreatedAt: testTime.Add(-time.Hour)})
	mid := createReview(t, repo, domain.Review{CompanyID: company.ID, Rating: 3, CreatedAt: testTime})
	for _, r := range []domain.Review{low, high, mid} {
		approve(t, repo, r.ID, testTime)
	}

	for _, voter := range []string{"a", "b"} {
		_, err := repo.ToggleVote(ctx, domain.Vote{
			ID: "vote-" + voter, ReviewID: low.ID, UserIdentifier: voter,
			VoteType: domain.VoteTypeHelpful, CreatedAt: testTime,
		})
		require.NoError(t, err)
	}

	cases := []struct {
		name string
		opts domain.ReviewListOptions
		want []int64
	}{
		{name: "recent", opts: domain.ReviewListOptions{Sort: domain.ReviewSortRecent}, want: []int64{mid.ID, high.ID, low.ID}},
		{name: "highest", opts: domain.ReviewListOptions{Sort: domain.ReviewSortHighest}, want: []int64{high.ID, mid.ID, low.ID}},
		{name: "lowest", opts: domain.ReviewListOptions{Sort: domain.ReviewSortLowest}, want: []int64{low.ID, mid.ID, high.ID}},
		{name: "helpful", opts: domain.ReviewListOptions{Sort: domain.ReviewSortHelpful}, want: []int64{low.ID, mid.ID, high.ID}},
		{
			name: "second_page",
			opts: domain.ReviewListOptions{Sort: domain.ReviewSortRecent, Page: 2, PageSize: 2},
			want: []int64{low.ID},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviews, err := repo.ListCompanyReviews(ctx, company.ID, tc.opts)
			require.NoError(t, err)

			ids := make([]int64, 0, len(reviews))
			for _, r := range reviews {
				ids = append(ids, r.ID)
				if r.ID == low.ID {
					assert.Equal(t, 2, r.HelpfulCount)
				}
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestRepository_ToggleVote(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")
	r := createReview(t, repo, domain.Review{CompanyID: company.ID})
	approve(t, repo, r.ID, testTime)

	vote := domain.Vote{
		ID: "01HZX0000000000000000000AA", ReviewID: r.ID, UserIdentifier: "user-1",
		VoteType: domain.VoteTypeHelpful, CreatedAt: testTime,
	}

	res, err := repo.ToggleVote(ctx, vote)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteResult{ReviewID: r.ID, Voted: true, HelpfulCount: 1}, res)

	vote.ID = "01HZX0000000000000000000AB"
	res, err = repo.ToggleVote(ctx, vote)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteResult{ReviewID: r.ID, Voted: false, HelpfulCount: 0}, res)
}

func TestRepository_ToggleVote_UnknownReviewFails(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.ToggleVote(context.Background(), domain.Vote{
		ID: "01HZX0000000000000000000AC", ReviewID: 404, UserIdentifier: "user-1",
		VoteType: domain.VoteTypeHelpful, CreatedAt: testTime,
	})
	assert.Error(t, err)
}

func TestRepository_RecordContribution_UnknownCompanyFails(t *testing.T) {
	repo := newTestRepo(t)

	inserted, err := repo.RecordContribution(context.Background(), domain.ContributionRecord{
		UserIdentifier: "user-1",
		CompanyID:      404,
		ReviewID:       1,
		UnlockedAt:     testTime,
	})
	assert.Error(t, err)
	assert.False(t, inserted)
}

func TestRepository_ListCompanies(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	acme := createCompany(t, repo, "Acme", "Backend Engineer")
	acmeData := createCompany(t, repo, "Acme", "Data Scientist")
	globex := createCompany(t, repo, "Globex", "Backend Engineer")

	cases := []struct {
		name    string
		filters domain.CompanyFilters
		want    []int64
	}{
		{name: "no_filters", want: []int64{acme.ID, acmeData.ID, globex.ID}},
		{name: "substring_query", filters: domain.CompanyFilters{Query: "backend"}, want: []int64{acme.ID, globex.ID}},
		{name: "exact_company_ignores_case", filters: domain.CompanyFilters{Company: "acme"}, want: []int64{acme.ID, acmeData.ID}},
		{name: "company_and_role", filters: domain.CompanyFilters{Company: "Acme", Role: "data scientist"}, want: []int64{acmeData.ID}},
		{name: "wildcards_are_ignored", filters: domain.CompanyFilters{Query: "%"}, want: []int64{acme.ID, acmeData.ID, globex.ID}},
		{name: "no_match", filters: domain.CompanyFilters{Query: "initech"}, want: []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			companies, err := repo.ListCompanies(ctx, tc.filters, 1, 50)
			require.NoError(t, err)

			ids := make([]int64, 0, len(companies))
			for _, c := range companies {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}

	_, err := repo.FetchCompany(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_ListPendingReviews_OldestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")

	newer := createReview(t, repo, domain.Review{CompanyID: company.ID, CreatedAt: testTime})
	older := createReview(t, repo, domain.Review{CompanyID: company.ID, CreatedAt: testTime.Add(-time.Hour)})
	done := createReview(t, repo, domain.Review{CompanyID: company.ID, CreatedAt: testTime.Add(-2 * time.Hour)})
	approve(t, repo, done.ID, testTime)

	reviews, err := repo.ListPendingReviews(ctx, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, older.ID, reviews[0].ID)
	assert.Equal(t, newer.ID, reviews[1].ID)

	reviews, err = repo.ListPendingReviews(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestRepository_ListAuthorReviews(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")

	mine := createReview(t, repo, domain.Review{
		CompanyID: company.ID, AuthorKind: domain.AuthorKindUser, AuthorUserID: "user-1",
	})
	createReview(t, repo, domain.Review{
		CompanyID: company.ID, AuthorKind: domain.AuthorKindUser, AuthorUserID: "user-2",
	})
	createReview(t, repo, domain.Review{CompanyID: company.ID})

	reviews, err := repo.ListAuthorReviews(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, mine.ID, reviews[0].ID)
}

func TestRepository_GetModerationCounts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	company := createCompany(t, repo, "Acme", "SRE")
	long := "the interview loop had four rounds covering systems design, coding, behavioural questions " +
		"and a final conversation with the hiring manager about team fit and expectations for the role"

	quality := createReview(t, repo, domain.Review{
		CompanyID: company.ID, Comment: long, RoundType: "Onsite", Tags: catalogTags(t, "WELL_ORGANIZED"),
	})
	plain := createReview(t, repo, domain.Review{CompanyID: company.ID, Comment: long})
	rejected := createReview(t, repo, domain.Review{CompanyID: company.ID})
	createReview(t, repo, domain.Review{CompanyID: company.ID})

	approve(t, repo, quality.ID, testTime.Add(time.Minute))
	approve(t, repo, plain.ID, testTime.Add(3*time.Minute))
	require.NoError(t, repo.TransitionReview(ctx, domain.ReviewTransition{
		ReviewID: rejected.ID, To: domain.ReviewStatusRejected, At: testTime, ModeratorID: "mod",
	}))

	counts, err := repo.GetModerationCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.ReviewStatus]int{
		domain.ReviewStatusPending:  1,
		domain.ReviewStatusApproved: 2,
		domain.ReviewStatusRejected: 1,
	}, counts.StatusCounts)
	assert.Equal(t, 1, counts.TotalCompanies)
	assert.Equal(t, 1, counts.QualityCount)
	require.Len(t, counts.Approvals, 2)

	stats := domain.BuildModerationStats(counts, testTime)
	assert.InDelta(t, 50.0, stats.QualityReviewPercentage, 0.0001)
	require.NotNil(t, stats.AverageTimeToApprovalSeconds)
	assert.InDelta(t, 120.0, *stats.AverageTimeToApprovalSeconds, 0.0001)
}
