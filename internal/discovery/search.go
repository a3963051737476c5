package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wcagrep/pkg/serrors"
)

// maxResultBytes bounds the search result page read per query.
const maxResultBytes = 2 << 20

// Result is a single search hit.
type Result struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Searcher finds websites matching a query.
//
//go:generate mockgen -package mockdiscovery -destination=mock/mockdiscovery.go wcagrep/internal/discovery Searcher
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// HTMLSearcher queries a search engine that serves plain HTML result pages,
// such as the DuckDuckGo HTML endpoint, and scrapes the result links.
type HTMLSearcher struct {
	client    *http.Client
	endpoint  string
	userAgent string
}

var _ Searcher = (*HTMLSearcher)(nil)

func NewHTMLSearcher(client *http.Client, endpoint, userAgent string) *HTMLSearcher {
	return &HTMLSearcher{client: client, endpoint: endpoint, userAgent: userAgent}
}

// Search GETs <endpoint>?q=<query> and returns the result links in page order.
func (s *HTMLSearcher) Search(ctx context.Context, query string) ([]Result, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid search endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create search request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "search did not respond in time")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach search engine")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, serrors.FromStatus(resp.StatusCode, "search engine answered %s", resp.Status)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxResultBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not parse search results")
	}

	return parseResults(doc, u.Hostname()), nil
}

// parseResults extracts result links. Anchors marked as results are preferred;
// pages without them fall back to every external link.
func parseResults(doc *html.Node, searchHost string) []Result {
	var marked, external []Result
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			if target := resultTarget(attr(n, "href")); target != "" && !sameSite(target, searchHost) {
				r := Result{Title: text(n), URL: target}
				if strings.Contains(attr(n, "class"), "result__a") || strings.Contains(attr(n, "class"), "result-link") {
					marked = append(marked, r)
				} else {
					external = append(external, r)
				}
			}

			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(marked) > 0 {
		return marked
	}

	return external
}

// resultTarget resolves a result href to the target website. Redirect links
// carry the target in their uddg parameter.
func resultTarget(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if target := u.Query().Get("uddg"); target != "" {
		if u, err = url.Parse(target); err != nil {
			return ""
		}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}

	return u.String()
}

func sameSite(target, host string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return true
	}
	h := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(strings.ToLower(host), "www.")

	return h == host || strings.HasSuffix(h, "."+host) || strings.HasSuffix(host, "."+h)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}

	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(b.String()), " ")
}
