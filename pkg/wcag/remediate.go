package wcag

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wcagrep/pkg/domain"
)

const (
	// MainContentID is the id of the main landmark targeted by the skip link.
	MainContentID = "main-content"
	// StylesheetName is the file the remediated page links to.
	StylesheetName = "styles.css"
	// ReviewAttr marks elements whose automatic fix needs an author's review.
	ReviewAttr = "data-a11y-review"
)

// WCAGImprovement is a success criterion addressed by a remediation.
type WCAGImprovement struct {
	Criterion   string `json:"criterion"`
	Description string `json:"description"`
}

// Remediation is an improved version of an audited page.
type Remediation struct {
	HTML             string            `json:"html"`
	CSS              string            `json:"css"`
	Improvements     []string          `json:"improvements"`
	WCAGImprovements []WCAGImprovement `json:"wcagImprovements"`
}

type remediator struct {
	d   *document
	out *Remediation
	// criteria deduplicates WCAGImprovements.
	criteria map[string]bool
}

func (r *remediator) improved(criterion, description, format string, args ...any) {
	r.out.Improvements = append(r.out.Improvements, fmt.Sprintf(format, args...))
	if !r.criteria[criterion] {
		r.criteria[criterion] = true
		r.out.WCAGImprovements = append(r.out.WCAGImprovements, WCAGImprovement{
			Criterion:   criterion,
			Description: description,
		})
	}
}

// Remediate rewrites src to fix the problems that can be fixed without
// knowing the author's intent, and returns it with an accessible stylesheet.
// violations are the findings of a previous Analyze run; they add notes for
// issues that still need manual work. pageURL is used to derive a title when
// the page has neither a title nor an h1.
func Remediate(src, pageURL string, violations []domain.Violation) (*Remediation, error) {
	d, err := parse(src, pageURL)
	if err != nil {
		return nil, err
	}

	r := &remediator{
		d:        d,
		out:      &Remediation{Improvements: []string{}, WCAGImprovements: []WCAGImprovement{}},
		criteria: make(map[string]bool),
	}

	r.fixLang()
	r.fixTitle()
	r.fixImages()
	r.fixControls()
	r.fixViewport()
	r.fixFrames()
	r.fixAutoplay()
	r.fixContrast()
	r.fixMain()
	r.addSkipLink()
	r.addStylesheet()
	r.noteManual(violations)

	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return nil, fmt.Errorf("could not render html: %w", err)
	}
	r.out.HTML = buf.String()
	r.out.CSS = accessibleCSS

	return r.out, nil
}

func (r *remediator) fixLang() {
	n := r.d.first(atom.Html)
	if n == nil || attrValue(n, "lang") != "" {
		return
	}
	setAttr(n, "lang", "en")
	r.improved("3.1.1", "Language of Page", "Declared the page language (lang=\"en\")")
}

func (r *remediator) fixTitle() {
	t := r.d.first(atom.Title)
	if t != nil && collapse(textContent(t)) != "" {
		return
	}

	title := "Home"
	if h1 := r.d.first(atom.H1); h1 != nil && collapse(textContent(h1)) != "" {
		title = collapse(textContent(h1))
	} else if u, err := url.Parse(r.d.pageURL); err == nil && u.Hostname() != "" {
		title = strings.TrimPrefix(u.Hostname(), "www.")
	}

	if t == nil {
		head := r.d.first(atom.Head)
		if head == nil {
			return
		}
		t = &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		head.AppendChild(t)
	}
	for c := t.FirstChild; c != nil; c = t.FirstChild {
		t.RemoveChild(c)
	}
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	r.improved("2.4.2", "Page Titled", "Added the page title %q", title)
}

func (r *remediator) fixImages() {
	var imgs, inputs int
	for _, n := range r.d.each(atom.Img, atom.Input) {
		if _, ok := attr(n, "alt"); ok {
			continue
		}
		switch n.DataAtom {
		case atom.Img:
			setAttr(n, "alt", "")
			setAttr(n, ReviewAttr, "alt")
			imgs++
		case atom.Input:
			if !strings.EqualFold(attrValue(n, "type"), "image") {
				continue
			}
			alt := attrValue(n, "value")
			if alt == "" {
				alt = "Submit"
			}
			setAttr(n, "alt", alt)
			inputs++
		}
	}
	if imgs > 0 {
		r.improved("1.1.1", "Non-text Content",
			"Marked %d image(s) without alt text as decorative (alt=\"\") for author review", imgs)
	}
	if inputs > 0 {
		r.improved("1.1.1", "Non-text Content", "Added alt text to %d image button(s)", inputs)
	}
}

// humanize turns identifiers like "first_name" into "First name".
func humanize(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ", "[", " ", "]", " ").Replace(s)
	s = collapse(s)
	if s == "" {
		return ""
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func (r *remediator) fixControls() {
	targets := labelTargets(r.d)

	var fixed int
	for _, n := range r.d.elements {
		if !needsLabel(n) || isLabelled(n, targets) {
			continue
		}
		label := attrValue(n, "placeholder")
		if label == "" {
			label = humanize(attrValue(n, "name"))
		}
		if label == "" {
			label = humanize(attrValue(n, "id"))
		}
		if label == "" {
			setAttr(n, ReviewAttr, "label")

			continue
		}
		setAttr(n, "aria-label", label)
		fixed++
	}
	if fixed > 0 {
		r.improved("3.3.2", "Labels or Instructions", "Added accessible names to %d form control(s)", fixed)
	}
}

// relaxViewport drops the zoom restricting directives from a viewport content.
func relaxViewport(content string) string {
	var keep []string
	for part := range strings.SplitSeq(content, ",") {
		k, _, _ := strings.Cut(part, "=")
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "user-scalable", "maximum-scale":
			continue
		}
		if p := strings.TrimSpace(part); p != "" {
			keep = append(keep, p)
		}
	}

	return strings.Join(keep, ", ")
}

func (r *remediator) fixViewport() {
	for _, n := range r.d.each(atom.Meta) {
		content := attrValue(n, "content")
		if !isViewportMeta(n) || !viewportBlocksZoom(content) {
			continue
		}
		setAttr(n, "content", relaxViewport(content))
		r.improved("1.4.4", "Resize Text", "Re-enabled pinch zoom in the viewport meta tag")
	}
}

func (r *remediator) fixFrames() {
	var fixed int
	for _, n := range r.d.each(atom.Iframe, atom.Frame) {
		if attrValue(n, "title") != "" {
			continue
		}
		title := "Embedded content"
		if name := attrValue(n, "name"); name != "" {
			title = humanize(name)
		} else if u, err := url.Parse(attrValue(n, "src")); err == nil && u.Hostname() != "" {
			title = "Embedded content from " + u.Hostname()
		}
		setAttr(n, "title", title)
		fixed++
	}
	if fixed > 0 {
		r.improved("4.1.2", "Name, Role, Value", "Added titles to %d frame(s)", fixed)
	}
}

func (r *remediator) fixAutoplay() {
	var fixed int
	for _, n := range r.d.each(atom.Video, atom.Audio) {
		if autoplaysWithSound(n) {
			setAttr(n, "muted", "")
			fixed++
		}
	}
	if fixed > 0 {
		r.improved("1.4.2", "Audio Control", "Muted %d autoplaying media element(s)", fixed)
	}
}

// fixContrast strips failing inline colors so the stylesheet palette applies.
func (r *remediator) fixContrast() {
	var fixed int
	for _, n := range r.d.elements {
		style, ok := attr(n, "style")
		if !ok {
			continue
		}
		ratio, minimum, ok := inlineContrast(style)
		if !ok || ratio >= minimum {
			continue
		}

		var keep []string
		for decl := range strings.SplitSeq(style, ";") {
			k, _, _ := strings.Cut(decl, ":")
			switch strings.ToLower(strings.TrimSpace(k)) {
			case "color", "background", "background-color":
				continue
			}
			if d := strings.TrimSpace(decl); d != "" {
				keep = append(keep, d)
			}
		}
		if len(keep) == 0 {
			removeAttr(n, "style")
		} else {
			setAttr(n, "style", strings.Join(keep, "; "))
		}
		fixed++
	}
	if fixed > 0 {
		r.improved("1.4.3", "Contrast (Minimum)",
			"Replaced %d low-contrast inline color pair(s) with the high-contrast palette", fixed)
	}
}

func (r *remediator) fixMain() {
	for _, n := range r.d.elements {
		if n.DataAtom == atom.Main || strings.EqualFold(attrValue(n, "role"), "main") {
			if attrValue(n, "id") == "" {
				setAttr(n, "id", MainContentID)
			}

			return
		}
	}

	body := r.d.first(atom.Body)
	if body == nil {
		return
	}
	landmark := &html.Node{
		Type:     html.ElementNode,
		Data:     "main",
		DataAtom: atom.Main,
		Attr:     []html.Attribute{{Key: "id", Val: MainContentID}},
	}
	for c := body.FirstChild; c != nil; c = body.FirstChild {
		body.RemoveChild(c)
		landmark.AppendChild(c)
	}
	body.AppendChild(landmark)
	r.improved("1.3.1", "Info and Relationships", "Wrapped the page content in a main landmark")
}

func (r *remediator) addSkipLink() {
	body := r.d.first(atom.Body)
	if body == nil {
		return
	}

	target := MainContentID
	for _, n := range r.d.elements {
		if n.DataAtom == atom.Main || strings.EqualFold(attrValue(n, "role"), "main") {
			if id := attrValue(n, "id"); id != "" {
				target = id
			}

			break
		}
	}

	link := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "class", Val: "skip-link"},
			{Key: "href", Val: "#" + target},
		},
	}
	link.AppendChild(&html.Node{Type: html.TextNode, Data: "Skip to main content"})
	body.InsertBefore(link, body.FirstChild)
	r.improved("2.4.1", "Bypass Blocks", "Added a skip to main content link")
}

func (r *remediator) addStylesheet() {
	head := r.d.first(atom.Head)
	if head == nil {
		return
	}
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "link",
		DataAtom: atom.Link,
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: StylesheetName},
		},
	})
	r.improved("2.4.7", "Focus Visible", "Linked an accessibility stylesheet with visible focus indicators")
}

// noteManual lists violations that cannot be fixed automatically.
func (r *remediator) noteManual(violations []domain.Violation) {
	manual := map[string]string{
		RuleLinkName:     "Review %d link(s) without an accessible name",
		RuleButtonName:   "Review %d button(s) without an accessible name",
		RuleEmptyHeading: "Review %d empty heading(s)",
		RuleHeadingOrder: "Review %d skipped heading level(s)",
		RuleDuplicateID:  "Rename %d duplicated id(s)",
	}

	counts := make(map[string]int)
	var order []string
	for _, v := range violations {
		if _, ok := manual[v.Type]; !ok {
			continue
		}
		if counts[v.Type] == 0 {
			order = append(order, v.Type)
		}
		counts[v.Type]++
	}
	for _, t := range order {
		r.out.Improvements = append(r.out.Improvements, fmt.Sprintf(manual[t], counts[t]))
	}
}

const accessibleCSS = `/* Accessibility baseline */
:root {
  --text: #1a1a1a;
  --background: #ffffff;
  --link: #0645ad;
  --focus: #ffbf47;
  --muted: #4a4a4a;
}

html {
  font-size: 100%;
  -webkit-text-size-adjust: 100%;
}

body {
  color: var(--text);
  background-color: var(--background);
  font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  line-height: 1.5;
}

a {
  color: var(--link);
  text-decoration: underline;
}

a:focus-visible,
button:focus-visible,
input:focus-visible,
select:focus-visible,
textarea:focus-visible,
[tabindex]:focus-visible {
  outline: 3px solid var(--focus);
  outline-offset: 2px;
}

.skip-link {
  position: absolute;
  left: -9999px;
  top: 0;
  padding: 0.5rem 1rem;
  color: var(--background);
  background: var(--text);
  z-index: 1000;
}

.skip-link:focus {
  left: 0.5rem;
  top: 0.5rem;
}

img {
  max-width: 100%;
  height: auto;
}

[data-a11y-review] {
  outline: 2px dashed #d4351c;
}

@media (prefers-reduced-motion: reduce) {
  *,
  *::before,
  *::after {
    animation-duration: 0.01ms !important;
    transition-duration: 0.01ms !important;
    scroll-behavior: auto !important;
  }
}
`
