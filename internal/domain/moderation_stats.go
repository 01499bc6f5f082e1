package domain

import "time"

// ModerationStats summarises the review pipeline for moderators.
type ModerationStats struct {
	StatusCounts                 map[ReviewStatus]int `json:"status_counts"`
	TotalReviews                 int                  `json:"total_reviews"`
	TotalCompanies               int                  `json:"total_companies"`
	QualityReviewPercentage      float64              `json:"quality_review_percentage"`
	AverageTimeToApprovalSeconds *float64             `json:"average_time_to_approval_seconds,omitempty"`
	GeneratedAt                  time.Time            `json:"generated_at"`
}

// ApprovalTiming is the creation and approval time of one approved review.
type ApprovalTiming struct {
	CreatedAt  time.Time
	ApprovedAt time.Time
}

// ModerationCounts is the raw material for ModerationStats.
type ModerationCounts struct {
	StatusCounts   map[ReviewStatus]int
	TotalCompanies int
	QualityCount   int
	Approvals      []ApprovalTiming
}

// BuildModerationStats derives percentages and averages from raw counts.
func BuildModerationStats(counts ModerationCounts, now time.Time) ModerationStats {
	stats := ModerationStats{
		StatusCounts:   make(map[ReviewStatus]int, len(ValidReviewStatuses)),
		TotalCompanies: counts.TotalCompanies,
		GeneratedAt:    now,
	}
	for _, s := range ValidReviewStatuses {
		stats.StatusCounts[s] = counts.StatusCounts[s]
		stats.TotalReviews += counts.StatusCounts[s]
	}

	stats.QualityReviewPercentage = percentage(counts.QualityCount, stats.StatusCounts[ReviewStatusApproved])

	if len(counts.Approvals) > 0 {
		var total float64
		for _, a := range counts.Approvals {
			total += a.ApprovedAt.Sub(a.CreatedAt).Seconds()
		}
		avg := round1(total / float64(len(counts.Approvals)))
		stats.AverageTimeToApprovalSeconds = &avg
	}
	return stats
}
