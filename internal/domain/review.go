package domain

import (
	"slices"
	"strings"
	"time"
	"unicode"
)

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

// ValidReviewStatuses lists every status in display order.
var ValidReviewStatuses = []ReviewStatus{
	ReviewStatusPending,
	ReviewStatusApproved,
	ReviewStatusRejected,
}

// Outcome is how the interview process ended for the reviewer. The empty value means unknown.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeOffer    Outcome = "OFFER"
	OutcomeRejected Outcome = "REJECTED"
	OutcomeWithdrew Outcome = "WITHDREW"
)

var validOutcomes = []Outcome{OutcomeOffer, OutcomeRejected, OutcomeWithdrew}

// ParseOutcome accepts an outcome name in any case; blank input yields OutcomeNone.
func ParseOutcome(s string) (Outcome, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return OutcomeNone, nil
	}
	if o := Outcome(s); slices.Contains(validOutcomes, o) {
		return o, nil
	}
	return OutcomeNone, InvalidArgumentError("unknown outcome [%s]", s)
}

// AuthorKind distinguishes guest submissions from authenticated ones.
type AuthorKind string

const (
	AuthorKindGuest AuthorKind = "GUEST"
	AuthorKindUser  AuthorKind = "USER"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is one interview-experience review attached to a company record.
type Review struct {
	ID                  int64        `json:"id"`
	CompanyID           int64        `json:"company_id"`
	Rating              int          `json:"rating"`
	Comment             string       `json:"comment"`
	ReviewerName        string       `json:"reviewer_name"`
	Tags                []Tag        `json:"tags"`
	RoundType           string       `json:"round_type,omitempty"`
	InterviewerInitials string       `json:"interviewer_initials,omitempty"`
	Outcome             Outcome      `json:"outcome,omitempty"`
	Status              ReviewStatus `json:"status"`
	AuthorKind          AuthorKind   `json:"author_kind"`
	AuthorUserID        string       `json:"-"`
	CreatedAt           time.Time    `json:"created_at"`
	ApprovedAt          *time.Time   `json:"approved_at,omitempty"`
	ModeratedBy         string       `json:"-"`
	ModeratedAt         *time.Time   `json:"moderated_at,omitempty"`
	RejectionReason     string       `json:"rejection_reason,omitempty"`
	HelpfulCount        int          `json:"helpful_count"`
}

// TagKeys returns the keys of the review's tags in the order they are held.
func (r Review) TagKeys() []string {
	keys := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		keys = append(keys, t.Key)
	}
	return keys
}

// IsAuthoredBy reports whether an authenticated caller wrote this review.
// Guest reviews have no author and match nobody.
func (r Review) IsAuthoredBy(caller Caller) bool {
	return r.AuthorKind == AuthorKindUser &&
		r.AuthorUserID != "" &&
		caller.IsAuthenticated() &&
		r.AuthorUserID == caller.UserID
}

// CheckEditableBy returns nil when caller may replace this review's content.
func (r Review) CheckEditableBy(caller Caller) error {
	if !r.IsAuthoredBy(caller) {
		return ErrNotAuthor
	}
	if r.Status != ReviewStatusPending {
		return InvalidStateError("review %d is %s, only pending reviews can be edited", r.ID, r.Status)
	}
	return nil
}

// CheckDeletableBy returns nil when caller may delete this review.
func (r Review) CheckDeletableBy(caller Caller) error {
	if !r.IsAuthoredBy(caller) {
		return ErrNotAuthor
	}
	if r.Status == ReviewStatusApproved {
		return InvalidStateError("review %d is approved and cannot be deleted", r.ID)
	}
	return nil
}

// CheckModeratable returns nil when a moderator decision may be applied.
func (r Review) CheckModeratable() error {
	if r.Status != ReviewStatusPending {
		return InvalidStateError("review %d is %s, only pending reviews can be moderated", r.ID, r.Status)
	}
	return nil
}

// ApplyTransition mirrors a committed transition onto the in-memory review.
func (r *Review) ApplyTransition(t ReviewTransition) {
	r.Status = t.To
	r.ModeratedBy = t.ModeratorID
	r.RejectionReason = ""
	r.ApprovedAt = nil
	r.ModeratedAt = nil

	at := t.At
	if t.To == ReviewStatusApproved {
		r.ApprovedAt = &at
	}
	if t.ModeratorID != "" {
		r.ModeratedAt = &at
	}
	if t.To == ReviewStatusRejected {
		r.RejectionReason = t.Reason
		r.ModeratedAt = &at
	}
}

// ResetModeration returns the review to PENDING with all moderation metadata cleared.
func (r *Review) ResetModeration() {
	r.Status = ReviewStatusPending
	r.ApprovedAt = nil
	r.ModeratedBy = ""
	r.ModeratedAt = nil
	r.RejectionReason = ""
}

// ReviewTransition moves a PENDING review to a terminal status.
// ModeratorID is empty for automatic approvals.
type ReviewTransition struct {
	ReviewID    int64
	To          ReviewStatus
	At          time.Time
	ModeratorID string
	Reason      string
}

// ReviewContent is the author-controlled part of a review.
type ReviewContent struct {
	Rating              int
	Comment             string
	ReviewerName        string
	TagKeys             []string
	RoundType           string
	InterviewerInitials string
	Outcome             string
}

// ReviewDraft is a new submission for a company record.
type ReviewDraft struct {
	CompanyID int64
	ReviewContent
}

// NormalizedContent is ReviewContent after validation.
type NormalizedContent struct {
	Rating              int
	Comment             string
	ReviewerName        string
	TagKeys             []string
	RoundType           string
	InterviewerInitials string
	Outcome             Outcome
}

// Normalize validates the content and returns its canonical form.
// Tag keys are upper-cased and de-duplicated preserving first occurrence.
func (c ReviewContent) Normalize() (NormalizedContent, error) {
	if c.Rating < MinRating || c.Rating > MaxRating {
		return NormalizedContent{}, InvalidArgumentError("rating must be between %d and %d, got %d",
			MinRating, MaxRating, c.Rating)
	}

	comment := strings.TrimSpace(c.Comment)
	if comment == "" {
		return NormalizedContent{}, InvalidArgumentError("comment is required")
	}

	reviewerName := strings.TrimSpace(c.ReviewerName)
	if reviewerName == "" {
		return NormalizedContent{}, InvalidArgumentError("reviewer name is required")
	}

	outcome, err := ParseOutcome(c.Outcome)
	if err != nil {
		return NormalizedContent{}, err
	}

	var tagKeys []string
	for _, k := range c.TagKeys {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k == "" || slices.Contains(tagKeys, k) {
			continue
		}
		tagKeys = append(tagKeys, k)
	}
	if len(tagKeys) > MaxTagsPerReview {
		return NormalizedContent{}, InvalidArgumentError("at most %d tags allowed, got %d",
			MaxTagsPerReview, len(tagKeys))
	}

	return NormalizedContent{
		Rating:              c.Rating,
		Comment:             comment,
		ReviewerName:        reviewerName,
		TagKeys:             tagKeys,
		RoundType:           strings.TrimSpace(c.RoundType),
		InterviewerInitials: NormalizeInitials(c.InterviewerInitials),
		Outcome:             outcome,
	}, nil
}

// NormalizeInitials keeps letters only, upper-cases them and truncates to four.
// Fewer than two letters yields the empty string.
func NormalizeInitials(initials string) string {
	var b strings.Builder
	for _, r := range initials {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		if b.Len() == 4 {
			break
		}
	}
	if b.Len() < 2 {
		return ""
	}
	return b.String()
}
