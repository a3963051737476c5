package wcag

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wcagrep/pkg/domain"
)

// Rule identifiers, stored as the violation type.
const (
	RuleImageAlt      = "image-alt"
	RuleFormLabel     = "form-label"
	RuleColorContrast = "color-contrast"
	RuleHTMLLang      = "html-lang"
	RuleDocumentTitle = "document-title"
	RuleLinkName      = "link-name"
	RuleButtonName    = "button-name"
	RuleEmptyHeading  = "empty-heading"
	RuleHeadingOrder  = "heading-order"
	RuleDuplicateID   = "duplicate-id"
	RuleMetaViewport  = "meta-viewport"
	RuleFrameTitle    = "frame-title"
	RuleLandmarkMain  = "landmark-main"
	RuleAutoplayMedia = "autoplay-media"
)

type rule struct {
	id             string
	severity       domain.Severity
	criterion      string
	recommendation string
	// effort is the estimated work to fix one page worth of occurrences.
	effort Effort
	check  func(d *document) []domain.Violation
}

var rules = []rule{ //nolint: gochecknoglobals
	{
		id:             RuleImageAlt,
		severity:       domain.SeveritySerious,
		criterion:      "1.1.1",
		recommendation: "Add descriptive alt text to all images",
		effort:         EffortLow,
		check:          checkImageAlt,
	},
	{
		id:             RuleFormLabel,
		severity:       domain.SeveritySerious,
		criterion:      "3.3.2",
		recommendation: "Associate labels with form controls",
		effort:         EffortLow,
		check:          checkFormLabel,
	},
	{
		id:             RuleColorContrast,
		severity:       domain.SeverityCritical,
		criterion:      "1.4.3",
		recommendation: "Ensure text color contrast ratio is at least 4.5:1",
		effort:         EffortMedium,
		check:          checkColorContrast,
	},
	{
		id:             RuleHTMLLang,
		severity:       domain.SeveritySerious,
		criterion:      "3.1.1",
		recommendation: "Declare the page language with a lang attribute on the html element",
		effort:         EffortLow,
		check:          checkHTMLLang,
	},
	{
		id:             RuleDocumentTitle,
		severity:       domain.SeveritySerious,
		criterion:      "2.4.2",
		recommendation: "Give the page a descriptive, non-empty title",
		effort:         EffortLow,
		check:          checkDocumentTitle,
	},
	{
		id:             RuleLinkName,
		severity:       domain.SeveritySerious,
		criterion:      "2.4.4",
		recommendation: "Give every link text or an aria-label describing its destination",
		effort:         EffortLow,
		check:          checkLinkName,
	},
	{
		id:             RuleButtonName,
		severity:       domain.SeverityCritical,
		criterion:      "4.1.2",
		recommendation: "Give every button visible text, an aria-label or a title",
		effort:         EffortLow,
		check:          checkButtonName,
	},
	{
		id:             RuleEmptyHeading,
		severity:       domain.SeverityModerate,
		criterion:      "1.3.1",
		recommendation: "Remove empty headings or give them text content",
		effort:         EffortLow,
		check:          checkEmptyHeading,
	},
	{
		id:             RuleHeadingOrder,
		severity:       domain.SeverityModerate,
		criterion:      "1.3.1",
		recommendation: "Heading levels should only increase by one",
		effort:         EffortMedium,
		check:          checkHeadingOrder,
	},
	{
		id:             RuleDuplicateID,
		severity:       domain.SeverityMinor,
		criterion:      "4.1.1",
		recommendation: "Make every id attribute value unique",
		effort:         EffortLow,
		check:          checkDuplicateID,
	},
	{
		id:             RuleMetaViewport,
		severity:       domain.SeverityCritical,
		criterion:      "1.4.4",
		recommendation: "Do not disable zooming; remove user-scalable=no and keep maximum-scale at 2 or more",
		effort:         EffortLow,
		check:          checkMetaViewport,
	},
	{
		id:             RuleFrameTitle,
		severity:       domain.SeveritySerious,
		criterion:      "4.1.2",
		recommendation: "Give every iframe a title describing its content",
		effort:         EffortLow,
		check:          checkFrameTitle,
	},
	{
		id:             RuleLandmarkMain,
		severity:       domain.SeverityModerate,
		criterion:      "1.3.1",
		recommendation: "Wrap the primary content in a main landmark",
		effort:         EffortMedium,
		check:          checkLandmarkMain,
	},
	{
		id:             RuleAutoplayMedia,
		severity:       domain.SeverityMinor,
		criterion:      "1.4.2",
		recommendation: "Do not autoplay media with sound; add muted or provide controls",
		effort:         EffortLow,
		check:          checkAutoplayMedia,
	},
}

func ruleByID(id string) (rule, bool) {
	for _, r := range rules {
		if r.id == id {
			return r, true
		}
	}

	return rule{}, false
}

func at(n *html.Node) domain.Violation {
	return domain.Violation{Element: outerHTML(n)}
}

func checkImageAlt(d *document) []domain.Violation {
	var out []domain.Violation
	for _, n := range d.each(atom.Img, atom.Input) {
		if n.DataAtom == atom.Input && !strings.EqualFold(attrValue(n, "type"), "image") {
			continue
		}
		if _, ok := attr(n, "alt"); !ok {
			out = append(out, at(n))
		}
	}

	return out
}

var unlabeledInputTypes = map[string]bool{ //nolint: gochecknoglobals
	"hidden": true,
	"submit": true,
	"button": true,
	"image":  true,
}

// needsLabel reports whether n is a form control that must be labelled.
func needsLabel(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Select, atom.Textarea:
		return true
	case atom.Input:
		return !unlabeledInputTypes[strings.ToLower(attrValue(n, "type"))]
	default:
		return false
	}
}

func insideLabel(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == atom.Label {
			return true
		}
	}

	return false
}

func labelTargets(d *document) map[string]bool {
	out := make(map[string]bool)
	for _, l := range d.each(atom.Label) {
		if f := attrValue(l, "for"); f != "" {
			out[f] = true
		}
	}

	return out
}

func isLabelled(n *html.Node, targets map[string]bool) bool {
	if id := attrValue(n, "id"); id != "" && targets[id] {
		return true
	}

	return insideLabel(n) ||
		attrValue(n, "aria-label") != "" ||
		attrValue(n, "aria-labelledby") != "" ||
		attrValue(n, "title") != ""
}

func checkFormLabel(d *document) []domain.Violation {
	targets := labelTargets(d)

	var out []domain.Violation
	for _, n := range d.elements {
		if needsLabel(n) && !isLabelled(n, targets) {
			out = append(out, at(n))
		}
	}

	return out
}

func checkColorContrast(d *document) []domain.Violation {
	var out []domain.Violation
	for _, n := range d.elements {
		style, ok := attr(n, "style")
		if !ok {
			continue
		}
		ratio, minimum, ok := inlineContrast(style)
		if !ok || ratio >= minimum {
			continue
		}
		v := at(n)
		v.Recommendation = fmt.Sprintf("Contrast ratio is %.2f:1; ensure text color contrast ratio is at least %s:1",
			ratio, strconv.FormatFloat(minimum, 'f', -1, 64))
		out = append(out, v)
	}

	return out
}

func checkHTMLLang(d *document) []domain.Violation {
	n := d.first(atom.Html)
	if n == nil || attrValue(n, "lang") != "" {
		return nil
	}

	return []domain.Violation{{Element: openTag(n)}}
}

func checkDocumentTitle(d *document) []domain.Violation {
	t := d.first(atom.Title)
	if t != nil && collapse(textContent(t)) != "" {
		return nil
	}
	if t != nil {
		return []domain.Violation{at(t)}
	}

	return []domain.Violation{{Element: "<head>"}}
}

func checkLinkName(d *document) []domain.Violation {
	var out []domain.Violation
	for _, n := range d.each(atom.A) {
		if _, ok := attr(n, "href"); !ok {
			continue
		}
		if accessibleName(n) == "" {
			out = append(out, at(n))
		}
	}

	return out
}

func checkButtonName(d *document) []domain.Violation {
	var out []domain.Violation
	for _, n := range d.each(atom.Button) {
		if accessibleName(n) == "" {
			out = append(out, at(n))
		}
	}

	return out
}

var headingLevels = map[atom.Atom]int{ //nolint: gochecknoglobals
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

func headings(d *document) []*html.Node {
	return d.each(atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6)
}

func checkEmptyHeading(d *document) []domain.Violation {
	var out []domain.Violation
	for _, n := range headings(d) {
		if accessibleName(n) == "" {
			out = append(out, at(n))
		}
	}

	return out
}

func checkHeadingOrder(d *document) []domain.Violation {
	var out []domain.Violation
	prev := 0
	for _, n := range headings(d) {
		level := headingLevels[n.DataAtom]
		if prev > 0 && level > prev+1 {
			v := at(n)
			v.Recommendation = fmt.Sprintf("Heading levels should only increase by one: h%d follows h%d", level, prev)
			out = append(out, v)
		}
		prev = level
	}

	return out
}

func checkDuplicateID(d *document) []domain.Violation {
	seen := make(map[string]int)
	var out []domain.Violation
	for _, n := range d.elements {
		id := attrValue(n, "id")
		if id == "" {
			continue
		}
		seen[id]++
		if seen[id] == 2 {
			v := at(n)
			v.Recommendation = fmt.Sprintf("Make every id attribute value unique: %q is used more than once", id)
			out = append(out, v)
		}
	}

	return out
}

// viewportBlocksZoom reports whether a viewport meta content disables zooming.
func viewportBlocksZoom(content string) bool {
	for part := range strings.SplitSeq(strings.ToLower(content), ",") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		switch k {
		case "user-scalable":
			if v == "no" || v == "0" {
				return true
			}
		case "maximum-scale":
			if f, err := strconv.ParseFloat(v, 64); err == nil && f < 2 {
				return true
			}
		}
	}

	return false
}

func isViewportMeta(n *html.Node) bool {
	return n.DataAtom == atom.Meta && strings.EqualFold(attrValue(n, "name"), "viewport")
}

func checkMetaViewport(d *document) []domain.Violation {
	var out []domain.Violation
	for _, n := range d.each(atom.Meta) {
		if isViewportMeta(n) && viewportBlocksZoom(attrValue(n, "content")) {
			out = append(out, at(n))
		}
	}

	return out
}

func checkFrameTitle(d *document) []domain.Violation {
	var out []domain.Violation
	for _, n := range d.each(atom.Iframe, atom.Frame) {
		if attrValue(n, "title") == "" {
			out = append(out, at(n))
		}
	}

	return out
}

func hasMainLandmark(d *document) bool {
	for _, n := range d.elements {
		if n.DataAtom == atom.Main || strings.EqualFold(attrValue(n, "role"), "main") {
			return true
		}
	}

	return false
}

func checkLandmarkMain(d *document) []domain.Violation {
	if hasMainLandmark(d) {
		return nil
	}

	body := d.first(atom.Body)
	if body == nil {
		return []domain.Violation{{Element: "<body>"}}
	}

	return []domain.Violation{{Element: openTag(body)}}
}

func autoplaysWithSound(n *html.Node) bool {
	_, autoplay := attr(n, "autoplay")
	_, muted := attr(n, "muted")

	return autoplay && !muted
}

func checkAutoplayMedia(d *document) []domain.Violation {
	var out []domain.Violation
	for _, n := range d.each(atom.Video, atom.Audio) {
		if autoplaysWithSound(n) {
			out = append(out, at(n))
		}
	}

	return out
}
