// Package httpfetch provides a browser.Backend that fetches pages with a plain
// HTTP GET. It does not execute scripts, so it only sees server rendered markup.
package httpfetch

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"wcagrep/pkg/browser"
	"wcagrep/pkg/serrors"
)

const (
	// Name is the backend name reported to the pool.
	Name = "http"

	defaultMaxPageBytes = 5 << 20
)

// Options configures a Fetcher.
type Options struct {
	UserAgent string
	// MaxPageBytes truncates larger bodies. Defaults to 5MiB.
	MaxPageBytes int64
	// Timeout bounds a single fetch on top of the caller's context.
	Timeout time.Duration
}

// Fetcher is safe for concurrent use.
type Fetcher struct {
	httpClient *http.Client
	opts       Options
	now        func() time.Time
}

var _ browser.Backend = (*Fetcher)(nil)

// New constructs a Fetcher that uses the provided http.Client. Redirects are
// followed according to the client's CheckRedirect policy.
func New(httpClient *http.Client, opts Options) *Fetcher {
	if opts.MaxPageBytes <= 0 {
		opts.MaxPageBytes = defaultMaxPageBytes
	}

	return &Fetcher{
		httpClient: httpClient,
		opts:       opts,
		now:        time.Now,
	}
}

func (f *Fetcher) Name() string { return Name }

func (f *Fetcher) Close() error {
	f.httpClient.CloseIdleConnections()

	return nil
}

// Fetch GETs url and returns the HTML body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*browser.Page, error) {
	if f.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not create request")
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")
	if f.opts.UserAgent != "" {
		req.Header.Set("User-Agent", f.opts.UserAgent)
	}

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "page did not respond in time")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach page")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := f.checkStatus(resp); err != nil {
		return nil, err
	}
	if !isHTML(resp.Header.Get("Content-Type")) {
		return nil, serrors.With(serrors.ErrBadRequest,
			"page is not HTML: %s", resp.Header.Get("Content-Type"))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxPageBytes))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "page body did not arrive in time")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read page body")
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	page := &browser.Page{
		RequestedURL: url,
		FinalURL:     finalURL,
		StatusCode:   resp.StatusCode,
		HTML:         string(b),
		LoadTime:     time.Since(start),
	}
	page.Title = Title(page.HTML)

	return page, nil
}

func (f *Fetcher) checkStatus(resp *http.Response) error {
	switch code := resp.StatusCode; {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound || code == http.StatusGone:
		return serrors.With(serrors.ErrBadRequest, "page does not exist: %s", resp.Status)
	case code == http.StatusTooManyRequests:
		resetAt := retryAfter(resp.Header.Get("Retry-After"), f.now())

		return serrors.With(serrors.ErrRateLimited, "page rate limited us until %s", resetAt.UTC().Format(time.RFC3339))
	case code >= 500:
		return serrors.With(serrors.ErrUnavailable, "page answered %s", resp.Status)
	default:
		return serrors.With(serrors.ErrBadRequest, "page answered %s", resp.Status)
	}
}

// retryAfter parses a Retry-After header given either in seconds or as an
// HTTP date. Without a usable value the reset is one minute away.
func retryAfter(v string, now time.Time) time.Time {
	if v == "" {
		return now.Add(time.Minute)
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && secs >= 0 {
		return now.Add(time.Duration(secs) * time.Second)
	}
	if t, err := http.ParseTime(v); err == nil {
		return t
	}

	return now.Add(time.Minute)
}

func isHTML(contentType string) bool {
	if contentType == "" {
		// servers omitting it almost always serve HTML
		return true
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mt == "text/html" || mt == "application/xhtml+xml"
}

// Title returns the text of the first <title> element of src.
func Title(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) != "title" {
				continue
			}
			if z.Next() == html.TextToken {
				return strings.Join(strings.Fields(string(z.Text())), " ")
			}

			return ""
		default:
		}
	}
}
