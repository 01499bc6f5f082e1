package domain

import "time"

// ContributionRecord marks that a user's review for a company record was approved.
// At most one exists per (UserIdentifier, CompanyID).
type ContributionRecord struct {
	ID             int64     `json:"id"`
	UserIdentifier string    `json:"user_identifier"`
	CompanyID      int64     `json:"company_id"`
	ReviewID       int64     `json:"review_id"`
	UnlockedAt     time.Time `json:"unlocked_at"`
}
