package wcag_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/wcag"
)

func violation(typ string, sev domain.Severity) domain.Violation {
	return domain.Violation{Type: typ, Severity: sev, Recommendation: "specific advice"}
}

func TestSuggest(t *testing.T) {
	vs := []domain.Violation{
		violation("image-alt", domain.SeveritySerious),
		violation("duplicate-id", domain.SeverityMinor),
		violation("image-alt", domain.SeveritySerious),
		violation("color-contrast", domain.SeverityCritical),
		violation("duplicate-id", domain.SeverityMinor),
		violation("landmark-main", domain.SeverityModerate),
		violation("duplicate-id", domain.SeverityMinor),
		violation("custom-check", domain.SeverityMinor),
	}

	got := wcag.Suggest(vs)

	order := func(ss []wcag.Suggestion) []string {
		out := make([]string, 0, len(ss))
		for _, s := range ss {
			out = append(out, s.Type)
		}

		return out
	}
	if diff := cmp.Diff(
		[]string{"color-contrast", "image-alt", "duplicate-id", "landmark-main", "custom-check"},
		order(got.Prioritized)); diff != "" {
		t.Fatalf("prioritized mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"image-alt", "duplicate-id"}, order(got.QuickWins))
	require.Equal(t, []string{"color-contrast", "landmark-main", "custom-check"}, order(got.Structural))

	want := wcag.Suggestion{
		Type:           "image-alt",
		Severity:       domain.SeveritySerious,
		WCAGCriterion:  "1.1.1",
		Recommendation: "Add descriptive alt text to all images",
		Occurrences:    2,
		Priority:       10,
		Effort:         wcag.EffortLow,
		Impact:         wcag.ImpactHigh,
	}
	if diff := cmp.Diff(want, got.Prioritized[1]); diff != "" {
		t.Fatalf("suggestion mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "specific advice", got.Prioritized[4].Recommendation)
	require.Equal(t, wcag.ImpactLow, got.Prioritized[4].Impact)
}

func TestSummarize(t *testing.T) {
	s := wcag.Summarize(nil)
	require.Equal(t, wcag.Summary{Score: 100, LegalRisk: domain.LegalRiskLow}, s)

	s = wcag.Summarize([]domain.Violation{
		violation("image-alt", domain.SeveritySerious),
		violation("button-name", domain.SeverityCritical),
	})
	require.Equal(t, wcag.Summary{
		TotalViolations: 2,
		BySeverity:      domain.SeverityCounts{Critical: 1, Serious: 1},
		Score:           85,
		LegalRisk:       domain.LegalRiskMedium,
		TopIssue:        "button-name",
	}, s)
}
