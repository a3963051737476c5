// Package wcag audits HTML documents against a subset of the WCAG 2.1 success
// criteria and produces remediated markup and prioritized fix suggestions.
//
// The analyzer works on the static DOM only. It does not compute styles from
// stylesheets, so color contrast is only checked for inline styles.
package wcag

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wcagrep/pkg/domain"
)

// maxElementLen bounds the outer HTML stored with a violation.
const maxElementLen = 250

// Result is the outcome of analyzing one document.
type Result struct {
	Violations      []domain.Violation    `json:"violations"`
	Counts          domain.SeverityCounts `json:"counts"`
	Score           int                   `json:"score"`
	Title           string                `json:"title"`
	ElementsScanned int                   `json:"elementsScanned"`
}

// LegalRisk classifies the result by its critical violations.
func (r *Result) LegalRisk() domain.LegalRisk {
	return r.Counts.LegalRisk()
}

// document is a parsed page with its elements flattened in document order.
type document struct {
	root     *html.Node
	elements []*html.Node
	pageURL  string
}

func parse(src, pageURL string) (*document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("could not parse html: %w", err)
	}

	d := &document{root: root, pageURL: pageURL}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			d.elements = append(d.elements, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return d, nil
}

// each returns the elements matching any of the given atoms.
func (d *document) each(atoms ...atom.Atom) []*html.Node {
	var out []*html.Node
	for _, n := range d.elements {
		for _, a := range atoms {
			if n.DataAtom == a {
				out = append(out, n)

				break
			}
		}
	}

	return out
}

func (d *document) first(a atom.Atom) *html.Node {
	for _, n := range d.elements {
		if n.DataAtom == a {
			return n
		}
	}

	return nil
}

// Analyze parses src and runs every rule against it. pageURL is used for
// context only and may be empty.
func Analyze(src, pageURL string) (*Result, error) {
	d, err := parse(src, pageURL)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Violations:      []domain.Violation{},
		ElementsScanned: len(d.elements),
	}
	if t := d.first(atom.Title); t != nil {
		res.Title = collapse(textContent(t))
	}

	for _, r := range rules {
		for _, v := range r.check(d) {
			v.Type = r.id
			v.Severity = r.severity
			if v.WCAGCriterion == "" {
				v.WCAGCriterion = r.criterion
			}
			if v.Recommendation == "" {
				v.Recommendation = r.recommendation
			}
			res.Violations = append(res.Violations, v)
		}
	}

	res.Counts = domain.CountViolations(res.Violations)
	res.Score = res.Counts.Score()

	return res, nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}

	return "", false
}

// attrValue returns the trimmed value of key, empty when it is missing.
func attrValue(n *html.Node, key string) string {
	v, _ := attr(n, key)

	return strings.TrimSpace(v)
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val

			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace != "" || !strings.EqualFold(a.Key, key) {
			out = append(out, a)
		}
	}
	n.Attr = out
}

// textContent concatenates the text below n, skipping scripts and styles.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return b.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// hasImageAlt reports whether n contains an image with a non-empty alt text.
func hasImageAlt(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Img && attrValue(c, "alt") != "" {
			return true
		}
		if hasImageAlt(c) {
			return true
		}
	}

	return false
}

// accessibleName approximates the accessible name of n from its text,
// ARIA attributes, title and contained images.
func accessibleName(n *html.Node) string {
	if s := collapse(textContent(n)); s != "" {
		return s
	}
	for _, key := range []string{"aria-label", "aria-labelledby", "title"} {
		if s := attrValue(n, key); s != "" {
			return s
		}
	}
	if hasImageAlt(n) {
		return "image"
	}

	return ""
}

// outerHTML renders n truncated to maxElementLen runes.
func outerHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return openTag(n)
	}

	return truncate(buf.String(), maxElementLen)
}

// openTag renders only the start tag of n, for elements that wrap the page.
func openTag(n *html.Node) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	return truncate(b.String(), maxElementLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	r := []rune(s)

	return string(r[:n]) + "…"
}
