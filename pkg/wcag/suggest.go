package wcag

import (
	"cmp"
	"slices"

	"wcagrep/pkg/domain"
)

// Effort estimates the work needed to fix a group of violations.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Impact estimates how much fixing a group of violations helps users.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

func impactOf(s domain.Severity) Impact {
	switch s {
	case domain.SeverityCritical, domain.SeveritySerious:
		return ImpactHigh
	case domain.SeverityModerate:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// Suggestion is one fix covering every violation of a type.
type Suggestion struct {
	Type           string          `json:"type"`
	Severity       domain.Severity `json:"severity"`
	WCAGCriterion  string          `json:"wcagCriterion"`
	Recommendation string          `json:"recommendation"`
	Occurrences    int             `json:"occurrences"`
	// Priority is the severity weight times the occurrences.
	Priority int    `json:"priority"`
	Effort   Effort `json:"effort"`
	Impact   Impact `json:"impact"`
}

// Suggestions groups fixes by priority and effort.
type Suggestions struct {
	// Prioritized holds every suggestion, highest priority first.
	Prioritized []Suggestion `json:"prioritized"`
	// QuickWins are the low effort suggestions.
	QuickWins []Suggestion `json:"quickWins"`
	// Structural are the suggestions that need design or content work.
	Structural []Suggestion `json:"structural"`
}

// Suggest groups violations by type and orders the groups by severity weight
// times occurrences. Ties are broken by type name.
func Suggest(violations []domain.Violation) Suggestions {
	byType := make(map[string]*Suggestion)
	for _, v := range violations {
		s, ok := byType[v.Type]
		if !ok {
			s = &Suggestion{
				Type:           v.Type,
				Severity:       v.Severity,
				WCAGCriterion:  v.WCAGCriterion,
				Recommendation: v.Recommendation,
				Effort:         EffortMedium,
			}
			if r, ok := ruleByID(v.Type); ok {
				// the rule text is generic while a violation may be specific
				s.Recommendation = r.recommendation
				s.WCAGCriterion = r.criterion
				s.Effort = r.effort
			}
			byType[v.Type] = s
		}
		if v.Severity.Weight() > s.Severity.Weight() {
			s.Severity = v.Severity
		}
		s.Occurrences++
	}

	out := Suggestions{
		Prioritized: make([]Suggestion, 0, len(byType)),
		QuickWins:   []Suggestion{},
		Structural:  []Suggestion{},
	}
	for _, s := range byType {
		s.Priority = s.Severity.Weight() * s.Occurrences
		s.Impact = impactOf(s.Severity)
		out.Prioritized = append(out.Prioritized, *s)
	}
	slices.SortFunc(out.Prioritized, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}

		return cmp.Compare(a.Type, b.Type)
	})
	for _, s := range out.Prioritized {
		if s.Effort == EffortLow {
			out.QuickWins = append(out.QuickWins, s)
		} else {
			out.Structural = append(out.Structural, s)
		}
	}

	return out
}

// Summary condenses a set of violations.
type Summary struct {
	TotalViolations int                   `json:"totalViolations"`
	BySeverity      domain.SeverityCounts `json:"bySeverity"`
	Score           int                   `json:"score"`
	LegalRisk       domain.LegalRisk      `json:"legalRisk"`
	// TopIssue is the type of the highest priority suggestion.
	TopIssue string `json:"topIssue,omitempty"`
}

func Summarize(violations []domain.Violation) Summary {
	counts := domain.CountViolations(violations)
	s := Summary{
		TotalViolations: counts.Total(),
		BySeverity:      counts,
		Score:           counts.Score(),
		LegalRisk:       counts.LegalRisk(),
	}
	if p := Suggest(violations).Prioritized; len(p) > 0 {
		s.TopIssue = p[0].Type
	}

	return s
}
