package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ModerationPolicy decides whether a review is published automatically or waits for a moderator.
type ModerationPolicy struct {
	// MinCommentLength is the minimum comment length, in characters, for auto-approval.
	MinCommentLength int

	// TargetedRatingThreshold is the highest rating that, combined with interviewer
	// initials, always requires a moderator.
	TargetedRatingThreshold int

	denylist           *regexp.Regexp
	denylistExceptions []string
}

// Stems match the word and anything following it, so "racist" also matches "racists"
// and "ass" matches "asshole".
var denylistStems = []string{
	"terrible", "worst", "horrible", "awful", "disgusting", "incompetent",
	"racist", "sexist", "discriminat", "harass", "unprofessional", "hostile",
	"rude", "abusive", "fuck", "shit", "bitch", "bastard", "idiot", "stupid", "moron",
	"ass", "hell", "damn", "crap", "dumb",
}

// Ordinary words that start with a stem. A match beginning with one of these is not flagged.
var denylistExceptions = []string{
	"assault", "assembl", "assert", "assess", "asset", "assign", "assist", "assoc", "assort",
	"assum", "assur", "hellen", "hello",
}

// DefaultModerationPolicy returns the production moderation policy.
func DefaultModerationPolicy() ModerationPolicy {
	return ModerationPolicy{
		MinCommentLength:        50,
		TargetedRatingThreshold: 2,
		denylist:                compileDenylist(denylistStems),
		denylistExceptions:      denylistExceptions,
	}
}

func compileDenylist(stems []string) *regexp.Regexp {
	quoted := make([]string, len(stems))
	for i, s := range stems {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\w*\b`)
}

// ModerationDecision is the outcome of evaluating a review against the policy.
// The two checks are independent; flagging always wins.
type ModerationDecision struct {
	Eligible       bool
	RequiresReview bool
	Reasons        []string
}

// AutoApprove reports whether the review should be published without a moderator.
func (d ModerationDecision) AutoApprove() bool {
	return d.Eligible && !d.RequiresReview
}

// Evaluate applies the policy to the review's current attributes.
func (p ModerationPolicy) Evaluate(r Review) ModerationDecision {
	d := ModerationDecision{Eligible: true}

	if len(r.Tags) == 0 {
		d.Eligible = false
		d.Reasons = append(d.Reasons, "no tags")
	}
	if strings.TrimSpace(r.RoundType) == "" {
		d.Eligible = false
		d.Reasons = append(d.Reasons, "no round type")
	}
	if utf8.RuneCountInString(r.Comment) < p.MinCommentLength {
		d.Eligible = false
		d.Reasons = append(d.Reasons, "comment too short")
	}

	if strings.TrimSpace(r.InterviewerInitials) != "" && r.Rating <= p.TargetedRatingThreshold {
		d.RequiresReview = true
		d.Reasons = append(d.Reasons, "low rating names an interviewer")
	}
	if p.ContainsDenylisted(r.Comment) {
		d.RequiresReview = true
		d.Reasons = append(d.Reasons, "strong negative language")
	}

	return d
}

// ContainsDenylisted reports whether text contains a denylisted word or one of its inflections.
func (p ModerationPolicy) ContainsDenylisted(text string) bool {
	if p.denylist == nil || text == "" {
		return false
	}
	for _, word := range p.denylist.FindAllString(text, -1) {
		if !p.isDenylistException(strings.ToLower(word)) {
			return true
		}
	}
	return false
}

func (p ModerationPolicy) isDenylistException(word string) bool {
	for _, prefix := range p.denylistExceptions {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return false
}

// ModerationAction is a moderator's decision on a PENDING review.
type ModerationAction string

const (
	ModerationApprove ModerationAction = "APPROVE"
	ModerationReject  ModerationAction = "REJECT"
)

// ParseModerationAction accepts "approve" or "reject" in any case.
func ParseModerationAction(s string) (ModerationAction, error) {
	switch a := ModerationAction(strings.ToUpper(strings.TrimSpace(s))); a {
	case ModerationApprove, ModerationReject:
		return a, nil
	default:
		return "", InvalidArgumentError("unknown moderation decision [%s]", s)
	}
}
