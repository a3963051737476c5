package discovery

import (
	"strings"
	"unicode"

	"wcagrep/pkg/domain"
)

const (
	baseICPScore = 50
	// longHost is the host length above which a site looks less established.
	longHost = 30
)

var (
	highRiskIndustries = []string{ //nolint: gochecknoglobals
		"health", "medical", "hospital", "clinic", "pharma",
		"financ", "bank", "insurance", "credit",
		"education", "school", "university", "college",
		"government", "public sector", "municipal",
		"retail", "store", "shop",
		"hospitality", "hotel", "restaurant", "travel",
	}
	mediumRiskIndustries = []string{ //nolint: gochecknoglobals
		"ecommerce", "e-commerce", "technology", "tech", "software", "saas",
	}
)

// LegalRisk estimates the accessibility litigation exposure of an industry.
func LegalRisk(industry string) domain.LegalRisk {
	i := strings.ToLower(industry)
	switch {
	case i == "":
		return domain.LegalRiskLow
	case containsAny(i, highRiskIndustries):
		return domain.LegalRiskHigh
	case containsAny(i, mediumRiskIndustries):
		return domain.LegalRiskMedium
	default:
		return domain.LegalRiskLow
	}
}

// ICPScore rates how well a search hit matches the ideal customer profile.
func ICPScore(r Result, keywords []string, industry string) int {
	score := baseICPScore

	haystack := strings.ToLower(r.Title + " " + r.URL)
	for _, w := range strings.Fields(strings.ToLower(industry)) {
		if len(w) >= 4 && strings.Contains(haystack, w) {
			score += 15

			break
		}
	}
	if strings.HasPrefix(r.URL, "https://") {
		score += 10
	}
	title := strings.ToLower(r.Title)
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" && strings.Contains(title, k) {
			score += 10

			break
		}
	}
	if len(domain.HostOf(r.URL)) > longHost {
		score -= 10
	}

	return max(0, min(domain.MaxICPScore, score))
}

// CompanyName derives a company name from a result title, falling back to
// the host name.
func CompanyName(r Result) string {
	title := r.Title
	for _, sep := range []string{" | ", " - ", " – ", " — ", ": "} {
		if before, _, ok := strings.Cut(title, sep); ok {
			title = before
		}
	}
	if title = strings.TrimSpace(title); title != "" && len(title) <= 80 {
		return title
	}

	host := domain.HostOf(r.URL)
	name, _, _ := strings.Cut(host, ".")
	runes := []rune(name)
	if len(runes) == 0 {
		return host
	}
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}

	return false
}
