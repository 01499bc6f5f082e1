package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func eligibleReview() Review {
	tag, _ := CatalogTag("WELL_ORGANIZED")
	return Review{
		Rating:    4,
		Comment:   "The process was clear and every stage was explained ahead of time.",
		Tags:      []Tag{tag},
		RoundType: "Technical",
	}
}

func TestModerationPolicy_Evaluate(t *testing.T) {
	policy := DefaultModerationPolicy()

	cases := []struct {
		name           string
		mutate         func(r *Review)
		eligible       bool
		requiresReview bool
		autoApprove    bool
	}{
		{
			name:        "complete_review_auto_approves",
			mutate:      func(r *Review) {},
			eligible:    true,
			autoApprove: true,
		},
		{
			name: "bare_review_stays_pending",
			mutate: func(r *Review) {
				r.Tags = nil
				r.RoundType = ""
				r.Comment = "short"
			},
		},
		{
			name:   "blank_round_type_is_ineligible",
			mutate: func(r *Review) { r.RoundType = "   " },
		},
		{
			name:        "comment_exactly_minimum_length",
			mutate:      func(r *Review) { r.Comment = strings.Repeat("a", 50) },
			eligible:    true,
			autoApprove: true,
		},
		{
			name:   "comment_one_short_of_minimum",
			mutate: func(r *Review) { r.Comment = strings.Repeat("a", 49) },
		},
		{
			name: "low_rating_with_initials_is_flagged",
			mutate: func(r *Review) {
				r.Rating = 2
				r.InterviewerInitials = "JD"
			},
			eligible:       true,
			requiresReview: true,
		},
		{
			name: "higher_rating_with_initials_auto_approves",
			mutate: func(r *Review) {
				r.Rating = 3
				r.InterviewerInitials = "JD"
			},
			eligible:    true,
			autoApprove: true,
		},
		{
			name:           "denylisted_inflection_is_flagged",
			mutate:         func(r *Review) { r.Comment += " The panel were racists." },
			eligible:       true,
			requiresReview: true,
		},
		{
			name:           "denylist_is_case_insensitive",
			mutate:         func(r *Review) { r.Comment += " Very RUDE recruiter." },
			eligible:       true,
			requiresReview: true,
		},
		{
			name:           "flag_applies_to_ineligible_review",
			mutate:         func(r *Review) { r.Comment = "stupid" },
			requiresReview: true,
		},
		{
			name:        "short_words_do_not_match_longer_words",
			mutate:      func(r *Review) { r.Comment += " Hello, the assessment was fair." },
			eligible:    true,
			autoApprove: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := eligibleReview()
			tc.mutate(&r)

			d := policy.Evaluate(r)
			assert.Equal(t, tc.eligible, d.Eligible, "eligible, reasons %v", d.Reasons)
			assert.Equal(t, tc.requiresReview, d.RequiresReview, "requires review, reasons %v", d.Reasons)
			assert.Equal(t, tc.autoApprove, d.AutoApprove())
		})
	}
}

func TestModerationPolicy_ContainsDenylisted(t *testing.T) {
	policy := DefaultModerationPolicy()

	cases := []struct {
		text string
		want bool
	}{
		{text: "", want: false},
		{text: "a pleasant conversation", want: false},
		{text: "felt discriminated against", want: true},
		{text: "constant harassment", want: true},
		{text: "what the hell", want: true},
		{text: "hello there", want: false},
		{text: "the assessment", want: false},
		{text: "asses", want: true},
		{text: "a crappy process", want: true},
		{text: "unprofessionally handled", want: true},
		{text: "worst interview ever", want: true},
		{text: "the recruiter was an asshole", want: true},
		{text: "damnit they ghosted me", want: true},
		{text: "the dumbest questions", want: true},
		{text: "a hellish loop", want: true},
		{text: "crapping on my resume", want: true},
		{text: "a dumbass take-home", want: true},
		{text: "a world class team", want: false},
		{text: "the assistant recruiter", want: false},
		{text: "we discussed assumptions", want: false},
		{text: "Hello, and welcome", want: false},
		{text: "a fair assessment, then a hellish final round", want: true},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.ContainsDenylisted(tc.text))
		})
	}
}
