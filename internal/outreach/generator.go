package outreach

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"go.uber.org/zap"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/llm"
	"wcagrep/pkg/logger"
)

// polishTimeout bounds the model call that rewrites an opening paragraph.
const polishTimeout = 20 * time.Second

// EmailInput is what an outreach email is written from.
type EmailInput struct {
	Company        string
	Website        string
	Industry       string
	WCAGScore      int
	CriticalIssues int
	LegalRisk      domain.LegalRisk
	SenderName     string
	SenderTitle    string
	RecipientName  string
	PersonalNote   string
}

// Email is a generated outreach email.
type Email struct {
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	PreviewText  string `json:"previewText"`
	CallToAction string `json:"callToAction"`
}

// Summary condenses an email for the operator reviewing it.
type Summary struct {
	Headline       string           `json:"headline"`
	WCAGScore      int              `json:"wcagScore"`
	CriticalIssues int              `json:"criticalIssues"`
	LegalRisk      domain.LegalRisk `json:"legalRisk"`
	KeyPoints      []string         `json:"keyPoints"`
}

// The templates follow AIDA: attention, interest, desire, action. Paragraphs
// are separated by blank lines; the first one is the attention paragraph.
var (
	coldEmailTemplate = template.Must(template.New("cold").Parse(
		`Hi {{ .Recipient }},

I ran an accessibility audit of {{ .Website }} and it scored {{ .In.WCAGScore }}/100 against WCAG 2.1 AA{{ if gt .In.CriticalIssues 0 }}, with {{ .In.CriticalIssues }} critical {{ if eq .In.CriticalIssues 1 }}issue{{ else }}issues{{ end }} that block visitors using screen readers or keyboards{{ end }}.

{{ .RiskLine }}

The good news is that most of these are quick wins. I put together a short report listing each issue, where it appears on the page and how to fix it{{ if .In.PersonalNote }}.

{{ .In.PersonalNote }}{{ else }}.{{ end }}

Would you be open to a 15 minute call this week to walk through the findings? The report is yours to keep either way.

Best,
{{ .In.SenderName }}{{ if .In.SenderTitle }}
{{ .In.SenderTitle }}{{ end }}`))

	followUpTemplate = template.Must(template.New("follow-up").Parse(
		`Hi {{ .Recipient }},

Following up on the accessibility audit of {{ .Website }}. The site still scores {{ .In.WCAGScore }}/100{{ if gt .In.CriticalIssues 0 }} with {{ .In.CriticalIssues }} critical {{ if eq .In.CriticalIssues 1 }}issue{{ else }}issues{{ end }} open{{ end }}.

{{ .RiskLine }}

If now is not the right time, just reply and I will not follow up again.

Best,
{{ .In.SenderName }}{{ if .In.SenderTitle }}
{{ .In.SenderTitle }}{{ end }}`))
)

// Generator writes outreach emails from templates and, when a model is
// configured, polishes their opening paragraph.
type Generator struct {
	llm llm.Completer
}

// NewGenerator creates a generator. c may be nil.
func NewGenerator(c llm.Completer) *Generator {
	return &Generator{llm: c}
}

// ColdEmail writes the first email to a prospect.
func (g *Generator) ColdEmail(ctx context.Context, in EmailInput) (Email, error) {
	body, err := render(coldEmailTemplate, in)
	if err != nil {
		return Email{}, err
	}

	subject := fmt.Sprintf("%s: your website accessibility audit (%d/100)", in.Company, in.WCAGScore)
	if in.CriticalIssues > 0 {
		subject = fmt.Sprintf("%s: %d critical accessibility issues on %s",
			in.Company, in.CriticalIssues, domain.HostOf(in.Website))
	}

	return Email{
		Subject:      subject,
		Body:         g.polish(ctx, in, body),
		PreviewText:  fmt.Sprintf("Your website scored %d/100 on our WCAG audit", in.WCAGScore),
		CallToAction: "Book a 15 minute walkthrough of the audit",
	}, nil
}

// FollowUp writes the touch-th email to a prospect. touch is one based.
func (g *Generator) FollowUp(ctx context.Context, in EmailInput, touch int) (Email, error) {
	if touch <= 1 {
		return g.ColdEmail(ctx, in)
	}

	body, err := render(followUpTemplate, in)
	if err != nil {
		return Email{}, err
	}

	return Email{
		Subject:      fmt.Sprintf("Re: %s accessibility audit", in.Company),
		Body:         body,
		PreviewText:  fmt.Sprintf("Follow up #%d on the accessibility audit of %s", touch-1, in.Company),
		CallToAction: "Reply to schedule a call",
	}, nil
}

// Summary condenses in for review.
func (g *Generator) Summary(in EmailInput) Summary {
	points := []string{
		fmt.Sprintf("WCAG score %d/100", in.WCAGScore),
	}
	if in.CriticalIssues > 0 {
		points = append(points, fmt.Sprintf("%d critical issues", in.CriticalIssues))
	}
	points = append(points, fmt.Sprintf("%s legal risk", in.LegalRisk))
	if in.SenderName != "" {
		points = append(points, "Signed by "+in.SenderName)
	}

	return Summary{
		Headline:       fmt.Sprintf("Cold email to %s (%s)", in.Company, domain.HostOf(in.Website)),
		WCAGScore:      in.WCAGScore,
		CriticalIssues: in.CriticalIssues,
		LegalRisk:      in.LegalRisk,
		KeyPoints:      points,
	}
}

func (g *Generator) polish(ctx context.Context, in EmailInput, body string) string {
	if g.llm == nil {
		return body
	}

	opening, rest, ok := strings.Cut(body, "\n\n")
	if !ok {
		return body
	}
	first, rest, ok := strings.Cut(rest, "\n\n")
	if !ok {
		return body
	}

	recipient := in.Company
	if in.Industry != "" {
		recipient += ", a company in the " + in.Industry + " industry,"
	}

	ctx, cancel := context.WithTimeout(ctx, polishTimeout)
	defer cancel()

	resp, err := g.llm.Complete(ctx, llm.Request{
		System: "You edit B2B sales emails. Answer with the rewritten paragraph only.",
		Prompt: fmt.Sprintf("Rewrite this opening paragraph of a cold email to %s so it is warm, specific "+
			"and under 60 words. Keep every number unchanged.\n\n%s", recipient, first),
		MaxTokens: 200,
	})
	if err != nil {
		logger.Warn(ctx, "could not polish email, keeping template text", zap.Error(err))

		return body
	}
	polished := llm.CleanText(resp.Text)
	if polished == "" {
		return body
	}

	return opening + "\n\n" + polished + "\n\n" + rest
}

func render(tmpl *template.Template, in EmailInput) (string, error) {
	recipient := in.RecipientName
	if recipient == "" {
		recipient = "there"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"In":        in,
		"Recipient": recipient,
		"Website":   domain.HostOf(in.Website),
		"RiskLine":  riskLine(in.LegalRisk),
	}); err != nil {
		return "", fmt.Errorf("could not render %s email: %w", tmpl.Name(), err)
	}

	return buf.String(), nil
}

func riskLine(r domain.LegalRisk) string {
	switch r {
	case domain.LegalRiskHigh:
		return "Issues like these are the ones cited most often in ADA demand letters, " +
			"so they are worth fixing before anyone else notices them."
	case domain.LegalRiskMedium:
		return "None of this is urgent on its own, but together these issues carry some legal exposure under the ADA."
	default:
		return "Your legal exposure looks low, and fixing the remaining issues will make the site easier for everyone to use."
	}
}
