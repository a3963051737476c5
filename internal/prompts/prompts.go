// Package prompts builds the meta-prompts operators feed to a language model
// to analyze prospects, draft outreach and brief the agents.
package prompts

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/llm"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/wcag"
)

// maxListed caps the violations quoted in a prompt.
const maxListed = 15

// ProspectInput describes a prospect to analyze. Unknown scores are nil.
type ProspectInput struct {
	Company    string             `json:"company"`
	Website    string             `json:"website"`
	Industry   string             `json:"industry"`
	ICP        *int               `json:"icp"`
	WCAGScore  *int               `json:"wcagScore"`
	Violations []domain.Violation `json:"violations"`
}

// OutreachInput describes the recipient of an outreach email. TouchNumber
// above one asks for a follow-up.
type OutreachInput struct {
	Company     string `json:"company"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	TouchNumber int    `json:"touchNumber"`
}

var funcs = template.FuncMap{ //nolint: gochecknoglobals
	"orUnknown": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "unknown"
		}

		return s
	},
	"score": func(v *int) string {
		if v == nil {
			return "not yet measured"
		}

		return fmt.Sprintf("%d/100", *v)
	},
	"listed": func(vs []domain.Violation) []domain.Violation {
		if len(vs) > maxListed {
			return vs[:maxListed]
		}

		return vs
	},
	"more": func(vs []domain.Violation) int {
		return max(0, len(vs)-maxListed)
	},
	"summary": wcag.Summarize,
}

var (
	prospectAnalysis = template.Must(template.New("prospect").Funcs(funcs).Parse(
		`You are an accessibility consultant qualifying sales leads for WCAG 2.1 AA remediation services.

Prospect
- Company: {{ .Company | orUnknown }}
- Website: {{ .Website | orUnknown }}
- Industry: {{ .Industry | orUnknown }}
- ICP score: {{ score .ICP }}
- WCAG score: {{ score .WCAGScore }}
{{ with .Violations }}
Violations found by the automated audit ({{ len . }} total):
{{ range listed . }}- [{{ .Severity }}] {{ .Type }}{{ with .WCAGCriterion }} (WCAG {{ . }}){{ end }}{{ with .Element }}: {{ . }}{{ end }}
{{ end }}{{ with more . }}- and {{ . }} more
{{ end }}{{ else }}
No audit results are available yet.
{{ end }}
Answer with:
1. A fit assessment (strong, moderate or weak) with a one sentence reason.
2. The legal exposure of the company under the ADA and similar laws.
3. The three findings most likely to resonate with a decision maker.
4. A suggested angle for the first email.
`))

	outreach = template.Must(template.New("outreach").Funcs(funcs).Parse(
		`Write a personalized cold email to {{ .Company | orUnknown }} ({{ .Website | orUnknown }}), a company in the {{ .Industry | orUnknown }} industry, offering a free WCAG 2.1 AA accessibility audit.

Rules:
- Stay under 150 words and follow the AIDA structure.
- Lead with a concrete observation about their website, not with our services.
- Mention the legal risk without fear mongering.
- End with one low friction call to action.
- Include a line telling the recipient how to opt out.
`))

	followUp = template.Must(template.New("follow-up").Funcs(funcs).Parse(
		`Write follow-up email number {{ .TouchNumber }} to {{ .Company | orUnknown }} ({{ .Website | orUnknown }}), a company in the {{ .Industry | orUnknown }} industry, that has not answered our offer of a free WCAG 2.1 AA accessibility audit.

Rules:
- Stay under 100 words and do not repeat the first email.
{{- if ge .TouchNumber 3 }}
- This is the last touch: say so politely and make it easy to say no.
{{- else }}
- Add one new piece of value, such as a quick win they can fix today.
{{- end }}
- Keep the subject line as a reply to the previous email.
- Include a line telling the recipient how to opt out.
`))

	violationAnalysis = template.Must(template.New("violations").Funcs(funcs).Parse(
		`Analyze the accessibility audit of a website that scored {{ .Score }}/100 against WCAG 2.1 AA.
{{ with summary .Violations }}
Totals: {{ .TotalViolations }} violations, {{ .BySeverity.Critical }} critical, {{ .BySeverity.Serious }} serious, {{ .BySeverity.Moderate }} moderate, {{ .BySeverity.Minor }} minor. Legal risk: {{ .LegalRisk }}.{{ with .TopIssue }} Top issue: {{ . }}.{{ end }}
{{ end }}
{{ range listed .Violations }}- [{{ .Severity }}] {{ .Type }}{{ with .WCAGCriterion }} (WCAG {{ . }}){{ end }}{{ with .Element }}: {{ . }}{{ end }}
{{ end }}{{ with more .Violations }}- and {{ . }} more
{{ end }}
Answer with:
1. The user groups most affected and how.
2. A prioritized remediation plan split into quick wins and structural fixes.
3. A rough effort estimate for each item.
4. A two sentence summary suitable for a non technical executive.
`))
)

var agentInstructions = map[string]string{ //nolint: gochecknoglobals
	"planner": `You are the planner agent of an accessibility prospecting pipeline.
Every run, pick the oldest queued prospects up to the batch size, request a WCAG scan of each website and mark the prospect as scanning.
Never queue a prospect that is on the Do Not Contact list or has been rejected.
Report how many scans were queued and which prospects failed to queue.`,
	"executor": `You are the executor agent of an accessibility prospecting pipeline.
Every run, inspect the prospects that are being scanned. When the latest scan completed, mark the prospect as scanned and generate the compact audit report.
When the scan failed, put the prospect back in the queue. Leave running scans alone.
Report how many prospects were scanned, requeued or still pending.`,
	"outreach": `You are the outreach agent of an accessibility prospecting pipeline.
For scanned prospects, draft an email that leads with the audit findings, attach the compact report and respect the ethical rules:
no contact with opted out recipients, at most three touches per prospect and at least three days between touches.
Every email must contain an unsubscribe link.`,
	"monitor": `You are the monitor agent of an accessibility prospecting pipeline.
Watch the health of the scanning backends, the quota usage and the engagement of sent emails.
Flag backends that are down or exhausted, scans stuck for more than an hour and prospects that replied or booked a demo.`,
}

// ProspectAnalysis builds the prompt qualifying a prospect.
func ProspectAnalysis(in ProspectInput) (string, error) {
	return execute(prospectAnalysis, in)
}

// Outreach builds the prompt drafting the first email, or a follow-up when
// the touch number is above one.
func Outreach(in OutreachInput) (string, error) {
	if in.TouchNumber > 1 {
		return execute(followUp, in)
	}

	return execute(outreach, in)
}

func ViolationAnalysis(violations []domain.Violation, score int) (string, error) {
	return execute(violationAnalysis, struct {
		Violations []domain.Violation
		Score      int
	}{violations, score})
}

// AgentInstructions returns the standing instructions of an agent.
func AgentInstructions(agent string) (string, error) {
	p, ok := agentInstructions[agent]
	if !ok {
		return "", serrors.With(serrors.ErrBadRequest, "Unknown agent type: %s", agent)
	}

	return p, nil
}

func execute(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("could not render %s prompt: %w", t.Name(), err)
	}

	return b.String(), nil
}

// Runner executes prompts on the configured model.
type Runner struct {
	llm llm.Completer
}

// NewRunner creates a runner. c may be nil, in which case Execute fails with
// UNAVAILABLE.
func NewRunner(c llm.Completer) *Runner {
	return &Runner{llm: c}
}

// Enabled reports whether a model is configured.
func (r *Runner) Enabled() bool {
	return r.llm != nil
}

// Execute runs prompt on the model.
func (r *Runner) Execute(ctx context.Context, prompt string) (*llm.Response, error) {
	if r.llm == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "No language model is configured")
	}

	resp, err := r.llm.Complete(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("could not execute prompt: %w", err)
	}

	return resp, nil
}
