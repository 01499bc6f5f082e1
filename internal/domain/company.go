package domain

import (
	"strings"
	"time"
)

// Company is the company/interview record reviews attach to.
type Company struct {
	ID        int64     `json:"id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Level     string    `json:"level,omitempty"`
	Stage     string    `json:"stage,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Normalize trims the record's fields and checks the required ones.
func (c Company) Normalize() (Company, error) {
	c.Company = strings.TrimSpace(c.Company)
	c.Role = strings.TrimSpace(c.Role)
	c.Level = strings.TrimSpace(c.Level)
	c.Stage = strings.TrimSpace(c.Stage)
	c.Location = strings.TrimSpace(c.Location)
	if c.Company == "" {
		return Company{}, InvalidArgumentError("company name is required")
	}
	if c.Role == "" {
		return Company{}, InvalidArgumentError("role is required")
	}
	return c, nil
}

// CompanyFilters narrows a company listing. Query matches company or role as a substring;
// Company and Role are exact, case-insensitive matches.
type CompanyFilters struct {
	Query    string
	Company  string
	Role     string
	Level    string
	Stage    string
	Location string
}

// CompanySummary is the public headline view of one company record.
type CompanySummary struct {
	Company         Company     `json:"company"`
	ReviewCount     int         `json:"review_count"`
	WeightedRating  *float64    `json:"weighted_rating,omitempty"`
	RatingBreakdown map[int]int `json:"rating_breakdown"`
	LastReviewedAt  *time.Time  `json:"last_reviewed_at,omitempty"`
}

// BuildCompanySummary summarises the approved reviews of a company record.
func BuildCompanySummary(c Company, reviews []Review, now time.Time) CompanySummary {
	approved := ApprovedOnly(reviews)
	summary := CompanySummary{
		Company:         c,
		ReviewCount:     len(approved),
		RatingBreakdown: RatingBreakdown(approved),
	}
	if avg, ok := WeightedAverageRating(approved, now); ok {
		rounded := round1(avg)
		summary.WeightedRating = &rounded
	}
	for _, r := range approved {
		if summary.LastReviewedAt == nil || r.CreatedAt.After(*summary.LastReviewedAt) {
			created := r.CreatedAt
			summary.LastReviewedAt = &created
		}
	}
	return summary
}
