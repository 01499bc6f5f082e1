package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// InsightsConfig holds the thresholds used when aggregating insights.
type InsightsConfig struct {
	// StableTrendThreshold is the absolute rating change below which a trend is "stable".
	StableTrendThreshold float64

	// FastFeedbackRating and AverageFeedbackRating are the mean-rating floors of the
	// feedback speed labels.
	FastFeedbackRating    float64
	AverageFeedbackRating float64

	// CommonFeedbackCount is how many tag keys are reported as common feedback.
	CommonFeedbackCount int
}

// DefaultInsightsConfig returns the default aggregation thresholds.
func DefaultInsightsConfig() InsightsConfig {
	return InsightsConfig{
		StableTrendThreshold:  0.3,
		FastFeedbackRating:    4.0,
		AverageFeedbackRating: 2.5,
		CommonFeedbackCount:   5,
	}
}

const (
	FeedbackSpeedFast    = "Fast"
	FeedbackSpeedAverage = "Average"
	FeedbackSpeedSlow    = "Slow"

	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"

	// UnlockMessage is the call to action shown to callers who have not contributed.
	UnlockMessage = "Share your interview experience to unlock detailed insights"
)

// Insights is either FullInsights or TeaserInsights.
type Insights interface {
	IsLocked() bool
}

// FullInsights is the analytics payload shown to contributors.
type FullInsights struct {
	CompanyID           int64              `json:"company_id"`
	Company             string             `json:"company"`
	Role                string             `json:"role"`
	Locked              bool               `json:"locked"`
	TotalReviews        int                `json:"total_reviews"`
	WeightedRating      *float64           `json:"weighted_rating,omitempty"`
	TagDistribution     map[string]float64 `json:"tag_distribution"`
	AverageDifficulty   float64            `json:"average_difficulty"`
	OutcomeDistribution map[string]float64 `json:"outcome_distribution"`
	FeedbackSpeed       string             `json:"feedback_speed,omitempty"`
	RecentTrend         *Trend             `json:"recent_trend,omitempty"`
	CommonFeedback      []string           `json:"common_feedback"`
}

func (FullInsights) IsLocked() bool { return false }

// Trend compares recent reviews with older ones.
type Trend struct {
	RecentAverageRating float64 `json:"recent_average_rating"`
	OlderAverageRating  float64 `json:"older_average_rating"`
	RatingChange        float64 `json:"rating_change"`
	Direction           string  `json:"direction"`
	RecentReviewCount   int     `json:"recent_review_count"`
	OlderReviewCount    int     `json:"older_review_count"`
}

// TeaserInsights is the locked payload. It never carries tag names, percentages or review text.
type TeaserInsights struct {
	CompanyID              int64    `json:"company_id"`
	Company                string   `json:"company"`
	Role                   string   `json:"role"`
	Locked                 bool     `json:"locked"`
	TotalReviews           int      `json:"total_reviews"`
	AvailableInsightsCount int      `json:"available_insights_count"`
	UnlockMessage          string   `json:"unlock_message"`
	BlurredHints           []string `json:"blurred_hints"`
}

func (TeaserInsights) IsLocked() bool { return true }

// BuildFullInsights aggregates the approved reviews of one company record.
// Reviews that are not approved are ignored.
func BuildFullInsights(c Company, reviews []Review, now time.Time, cfg InsightsConfig) FullInsights {
	approved := ApprovedOnly(reviews)
	insights := FullInsights{
		CompanyID:           c.ID,
		Company:             c.Company,
		Role:                c.Role,
		TotalReviews:        len(approved),
		TagDistribution:     map[string]float64{},
		OutcomeDistribution: map[string]float64{},
		CommonFeedback:      []string{},
	}
	if len(approved) == 0 {
		return insights
	}

	if avg, ok := WeightedAverageRating(approved, now); ok {
		rounded := round1(avg)
		insights.WeightedRating = &rounded
	}

	tagCounts := countTags(approved)
	for _, tc := range tagCounts {
		insights.TagDistribution[tc.tag.Key] = percentage(tc.count, len(approved))
	}

	mean := meanRating(approved)
	insights.AverageDifficulty = round1(mean)
	insights.FeedbackSpeed = cfg.feedbackSpeed(mean)
	insights.OutcomeDistribution = outcomeDistribution(approved)
	insights.RecentTrend = cfg.trend(approved, now)

	for i := 0; i < len(tagCounts) && i < cfg.CommonFeedbackCount; i++ {
		insights.CommonFeedback = append(insights.CommonFeedback, tagCounts[i].tag.Key)
	}

	return insights
}

// BuildTeaserInsights summarises the approved reviews without revealing their content.
func BuildTeaserInsights(c Company, reviews []Review) TeaserInsights {
	approved := ApprovedOnly(reviews)
	uniqueTags := len(countTags(approved))

	teaser := TeaserInsights{
		CompanyID:              c.ID,
		Company:                c.Company,
		Role:                   c.Role,
		Locked:                 true,
		TotalReviews:           len(approved),
		AvailableInsightsCount: uniqueTags,
		UnlockMessage:          UnlockMessage,
		BlurredHints:           []string{},
	}
	if uniqueTags > 0 {
		teaser.BlurredHints = append(teaser.BlurredHints,
			fmt.Sprintf("Interview feedback includes %d insights", uniqueTags),
			"Common patterns: "+strings.Repeat("•", 8),
			"Success factors: "+strings.Repeat("•", 6),
		)
	}
	return teaser
}

// ApprovedOnly returns the approved reviews, preserving order.
func ApprovedOnly(reviews []Review) []Review {
	approved := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Status == ReviewStatusApproved {
			approved = append(approved, r)
		}
	}
	return approved
}

type tagCount struct {
	tag   Tag
	count int
}

// countTags counts reviews per tag, most frequent first with ties in catalog order.
func countTags(reviews []Review) []tagCount {
	byKey := map[string]*tagCount{}
	for _, r := range reviews {
		seen := map[string]bool{}
		for _, t := range r.Tags {
			if seen[t.Key] {
				continue
			}
			seen[t.Key] = true
			if tc, ok := byKey[t.Key]; ok {
				tc.count++
			} else {
				byKey[t.Key] = &tagCount{tag: t, count: 1}
			}
		}
	}

	counts := make([]tagCount, 0, len(byKey))
	for _, tc := range byKey {
		counts = append(counts, *tc)
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		if counts[i].tag.ID != counts[j].tag.ID {
			return counts[i].tag.ID < counts[j].tag.ID
		}
		return counts[i].tag.Key < counts[j].tag.Key
	})
	return counts
}

func outcomeDistribution(reviews []Review) map[string]float64 {
	counts := map[Outcome]int{}
	withOutcome := 0
	for _, r := range reviews {
		if r.Outcome == OutcomeNone {
			continue
		}
		counts[r.Outcome]++
		withOutcome++
	}

	dist := make(map[string]float64, len(counts))
	for o, n := range counts {
		dist[string(o)] = percentage(n, withOutcome)
	}
	return dist
}

func (cfg InsightsConfig) feedbackSpeed(meanRating float64) string {
	switch {
	case meanRating >= cfg.FastFeedbackRating:
		return FeedbackSpeedFast
	case meanRating >= cfg.AverageFeedbackRating:
		return FeedbackSpeedAverage
	default:
		return FeedbackSpeedSlow
	}
}

func (cfg InsightsConfig) trend(reviews []Review, now time.Time) *Trend {
	cutoff := RecentCutoff(now)
	var recent, older []Review
	for _, r := range reviews {
		if r.CreatedAt.After(cutoff) {
			recent = append(recent, r)
		} else {
			older = append(older, r)
		}
	}

	recentAvg := meanRating(recent)
	olderAvg := meanRating(older)
	change := recentAvg - olderAvg

	direction := TrendStable
	if math.Abs(change) >= cfg.StableTrendThreshold {
		direction = TrendDeclining
		if change > 0 {
			direction = TrendImproving
		}
	}

	return &Trend{
		RecentAverageRating: round1(recentAvg),
		OlderAverageRating:  round1(olderAvg),
		RatingChange:        round1(change),
		Direction:           direction,
		RecentReviewCount:   len(recent),
		OlderReviewCount:    len(older),
	}
}

// meanRating is 0 for an empty set.
func meanRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

// round1 rounds to one decimal place, halves toward positive infinity.
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
