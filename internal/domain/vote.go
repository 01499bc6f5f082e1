package domain

import "time"

// VoteType is the kind of vote a user cast on a review.
type VoteType string

const VoteTypeHelpful VoteType = "HELPFUL"

// Vote is one user's vote on a review, unique per (ReviewID, UserIdentifier).
type Vote struct {
	ID             string    `json:"id"`
	ReviewID       int64     `json:"review_id"`
	UserIdentifier string    `json:"user_identifier"`
	VoteType       VoteType  `json:"vote_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// VoteResult reports the caller's vote state after a toggle and the recomputed count.
type VoteResult struct {
	ReviewID     int64 `json:"review_id"`
	Voted        bool  `json:"voted"`
	HelpfulCount int   `json:"helpful_count"`
}
