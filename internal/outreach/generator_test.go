package outreach_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wcagrep/internal/outreach"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/llm"
	mockllm "wcagrep/pkg/llm/mock"
)

func sampleInput() outreach.EmailInput {
	return outreach.EmailInput{
		Company:        "Acme",
		Website:        "https://www.acme.example/",
		WCAGScore:      62,
		CriticalIssues: 3,
		LegalRisk:      domain.LegalRiskMedium,
		SenderName:     "Dana",
		SenderTitle:    "Accessibility Lead",
		RecipientName:  "Sam",
	}
}

func TestColdEmail(t *testing.T) {
	g := outreach.NewGenerator(nil)

	email, err := g.ColdEmail(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Equal(t, "Acme: 3 critical accessibility issues on acme.example", email.Subject)
	require.True(t, strings.HasPrefix(email.Body, "Hi Sam,\n\n"))
	require.Contains(t, email.Body, "scored 62/100")
	require.Contains(t, email.Body, "3 critical issues")
	require.True(t, strings.HasSuffix(email.Body, "Dana\nAccessibility Lead"))
	require.NotEmpty(t, email.PreviewText)
	require.NotEmpty(t, email.CallToAction)
}

func TestColdEmail_NoCriticalIssues(t *testing.T) {
	in := sampleInput()
	in.CriticalIssues = 0
	in.RecipientName = ""
	in.SenderTitle = ""
	in.PersonalNote = "Loved your recent launch."

	email, err := outreach.NewGenerator(nil).ColdEmail(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "Acme: your website accessibility audit (62/100)", email.Subject)
	require.True(t, strings.HasPrefix(email.Body, "Hi there,"))
	require.NotContains(t, email.Body, "critical")
	require.Contains(t, email.Body, "Loved your recent launch.")
	require.True(t, strings.HasSuffix(email.Body, "Best,\nDana"))
}

func TestFollowUp(t *testing.T) {
	g := outreach.NewGenerator(nil)

	first, err := g.FollowUp(context.Background(), sampleInput(), 1)
	require.NoError(t, err)
	cold, err := g.ColdEmail(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Equal(t, cold, first)

	second, err := g.FollowUp(context.Background(), sampleInput(), 2)
	require.NoError(t, err)
	require.Equal(t, "Re: Acme accessibility audit", second.Subject)
	require.Contains(t, second.Body, "Following up")
}

func TestColdEmail_Polish(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mockllm.NewMockCompleter(ctrl)
	model.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.Request) (*llm.Response, error) {
			require.Contains(t, req.Prompt, "scored 62/100")

			return &llm.Response{Text: `"Your site scored 62/100, and three fixes would change that."`}, nil
		})

	email, err := outreach.NewGenerator(model).ColdEmail(context.Background(), sampleInput())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(email.Body,
		"Hi Sam,\n\nYour site scored 62/100, and three fixes would change that.\n\n"))
}

func TestColdEmail_PolishFailureKeepsTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mockllm.NewMockCompleter(ctrl)
	model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil, errors.New("overloaded"))

	polished, err := outreach.NewGenerator(model).ColdEmail(context.Background(), sampleInput())
	require.NoError(t, err)
	plain, err := outreach.NewGenerator(nil).ColdEmail(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Equal(t, plain, polished)
}

func TestSummary(t *testing.T) {
	s := outreach.NewGenerator(nil).Summary(sampleInput())
	require.Equal(t, "Cold email to Acme (acme.example)", s.Headline)
	require.Equal(t, 62, s.WCAGScore)
	require.Equal(t, []string{"WCAG score 62/100", "3 critical issues", "medium legal risk", "Signed by Dana"}, s.KeyPoints)
}
