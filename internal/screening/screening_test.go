package screening

import (
	"errors"
	"testing"

	"github.com/jbeshir/interview-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreener_ScreenReview(t *testing.T) {
	cases := []struct {
		name      string
		content   domain.ReviewContent
		wantField string
		wantMsg   string
	}{
		{
			name:    "clean_content_passes",
			content: domain.ReviewContent{Comment: "the recruiter was friendly and the loop took two weeks", InterviewerInitials: "JD"},
		},
		{
			name:    "single_capitalised_word_passes",
			content: domain.ReviewContent{Comment: "Onsite was fine, lunch with the team was nice"},
		},
		{
			name:      "full_name_in_comment",
			content:   domain.ReviewContent{Comment: "my interviewer was John Smith and he was late"},
			wantField: FieldComment,
			wantMsg:   ReasonFullName,
		},
		{
			name:      "full_name_in_initials",
			content:   domain.ReviewContent{Comment: "fine", InterviewerInitials: "Jane Doe"},
			wantField: FieldInterviewerInitials,
			wantMsg:   ReasonFullName,
		},
		{
			name:      "email_address",
			content:   domain.ReviewContent{Comment: "reach me at someone@example.com for details"},
			wantField: FieldComment,
			wantMsg:   ReasonContact,
		},
		{
			name:      "phone_number",
			content:   domain.ReviewContent{Comment: "call 555-123-4567 to ask"},
			wantField: FieldComment,
			wantMsg:   ReasonContact,
		},
		{
			name:      "url",
			content:   domain.ReviewContent{Comment: "see WWW.example.com for the prep guide"},
			wantField: FieldComment,
			wantMsg:   ReasonURL,
		},
		{
			name:      "http_url",
			content:   domain.ReviewContent{Comment: "prep guide at https://example.com/guide"},
			wantField: FieldComment,
			wantMsg:   ReasonURL,
		},
	}

	s := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.ScreenReview(tc.content)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var rejected *domain.ContentRejectedError
			require.True(t, errors.As(err, &rejected), "got %v", err)
			assert.Equal(t, tc.wantField, rejected.Field)
			assert.Equal(t, tc.wantMsg, rejected.Reason)
		})
	}
}
