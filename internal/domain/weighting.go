package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DetailedCommentLength is the comment length, in characters, that earns a review extra weight.
	DetailedCommentLength = 150

	// RecentWindowMonths is how far back a review still counts as recent.
	RecentWindowMonths = 6
)

// RecentCutoff returns the instant before which reviews stop counting as recent.
func RecentCutoff(now time.Time) time.Time {
	return now.AddDate(0, -RecentWindowMonths, 0)
}

// FullDetailCount is the DetailCount of a quality review.
const FullDetailCount = 3

// DetailCount counts the optional details a review carries: tags, a round type and a
// detailed comment. An approved review with all of them is a quality review.
func DetailCount(r Review) int {
	n := 0
	if len(r.Tags) > 0 {
		n++
	}
	if strings.TrimSpace(r.RoundType) != "" {
		n++
	}
	if utf8.RuneCountInString(r.Comment) >= DetailedCommentLength {
		n++
	}
	return n
}

// ReviewWeight is the internal weight of one review in the headline rating.
// Base 1.0, plus 1.0 for each detail and 1.0 for recency.
func ReviewWeight(r Review, now time.Time) float64 {
	weight := 1.0 + float64(DetailCount(r))
	if r.CreatedAt.After(RecentCutoff(now)) {
		weight++
	}
	return weight
}

// WeightedAverageRating computes Σ(rating·weight)/Σweight over the approved reviews.
// ok is false when there is nothing to average.
func WeightedAverageRating(reviews []Review, now time.Time) (avg float64, ok bool) {
	var sum, totalWeight float64
	for _, r := range reviews {
		if r.Status != ReviewStatusApproved {
			continue
		}
		w := ReviewWeight(r, now)
		sum += float64(r.Rating) * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0, false
	}
	return sum / totalWeight, true
}

// RatingBreakdown tallies approved reviews per star value. Every star from 1 to 5 is present.
func RatingBreakdown(reviews []Review) map[int]int {
	breakdown := make(map[int]int, MaxRating)
	for star := MinRating; star <= MaxRating; star++ {
		breakdown[star] = 0
	}
	for _, r := range reviews {
		if r.Status != ReviewStatusApproved {
			continue
		}
		if r.Rating >= MinRating && r.Rating <= MaxRating {
			breakdown[r.Rating]++
		}
	}
	return breakdown
}
