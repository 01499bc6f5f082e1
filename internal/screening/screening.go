// Package screening rejects free text that identifies people or carries contact details.
package screening

import (
	"regexp"

	"github.com/jbeshir/interview-insights/internal/domain"
)

const (
	FieldComment             = "comment"
	FieldInterviewerInitials = "interviewer_initials"

	ReasonFullName = "Please do not include full names. Use initials instead."
	ReasonContact  = "Please do not include contact information."
	ReasonURL      = "Please do not include URLs."
)

var (
	fullNamePattern = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	emailPattern    = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	phonePattern    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	urlPattern      = regexp.MustCompile(`(?i)(https?://|www\.)`)
)

// Screener checks review content before it is validated or stored.
type Screener struct{}

func New() *Screener {
	return &Screener{}
}

// ScreenReview returns a *domain.ContentRejectedError for the first offending field.
func (s *Screener) ScreenReview(content domain.ReviewContent) error {
	if fullNamePattern.MatchString(content.Comment) {
		return reject(FieldComment, ReasonFullName)
	}
	if fullNamePattern.MatchString(content.InterviewerInitials) {
		return reject(FieldInterviewerInitials, ReasonFullName)
	}
	if emailPattern.MatchString(content.Comment) || phonePattern.MatchString(content.Comment) {
		return reject(FieldComment, ReasonContact)
	}
	if urlPattern.MatchString(content.Comment) {
		return reject(FieldComment, ReasonURL)
	}
	return nil
}

func reject(field, reason string) error {
	return &domain.ContentRejectedError{Field: field, Reason: reason}
}
