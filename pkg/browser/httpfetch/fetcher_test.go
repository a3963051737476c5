package httpfetch_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wcagrep/pkg/browser"
	"wcagrep/pkg/browser/httpfetch"
	"wcagrep/pkg/serrors"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestFetcher(fn rtFunc, opts httpfetch.Options) *httpfetch.Fetcher {
	return httpfetch.New(&http.Client{Transport: fn}, opts)
}

func htmlResponse(r *http.Request, status int, body string) *http.Response {
	h := http.Header{}
	h.Set("Content-Type", "text/html; charset=utf-8")

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

func TestFetcher_Fetch_success(t *testing.T) {
	f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "example.com", r.URL.Host)
		require.Equal(t, "wcagrep-test/1.0", r.Header.Get("User-Agent"))

		return htmlResponse(r, http.StatusOK,
			"<html><head><title>\n  Example   Domain </title></head><body></body></html>"), nil
	}, httpfetch.Options{UserAgent: "wcagrep-test/1.0"})

	page, err := f.Fetch(context.Background(), "https://example.com/")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/", page.RequestedURL)
	require.Equal(t, "https://example.com/", page.FinalURL)
	require.Equal(t, http.StatusOK, page.StatusCode)
	require.Equal(t, "Example Domain", page.Title)
	require.Contains(t, page.HTML, "<body>")
	require.Equal(t, "http", f.Name())
}

func TestFetcher_Fetch_truncatesBody(t *testing.T) {
	f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
		return htmlResponse(r, http.StatusOK, strings.Repeat("a", 100)), nil
	}, httpfetch.Options{MaxPageBytes: 10})

	page, err := f.Fetch(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.Len(t, page.HTML, 10)
}

func TestFetcher_Fetch_statusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   serrors.Kind
	}{
		{"not found", http.StatusNotFound, serrors.ErrBadRequest},
		{"gone", http.StatusGone, serrors.ErrBadRequest},
		{"forbidden", http.StatusForbidden, serrors.ErrBadRequest},
		{"rate limited", http.StatusTooManyRequests, serrors.ErrRateLimited},
		{"server error", http.StatusInternalServerError, serrors.ErrUnavailable},
		{"bad gateway", http.StatusBadGateway, serrors.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
				return htmlResponse(r, tt.status, "nope"), nil
			}, httpfetch.Options{})

			_, err := f.Fetch(context.Background(), "https://example.com")
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestFetcher_Fetch_rateLimitedIsNotQuota(t *testing.T) {
	f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
		resp := htmlResponse(r, http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "Sat, 01 Mar 2025 12:02:00 GMT")

		return resp, nil
	}, httpfetch.Options{})

	_, err := f.Fetch(context.Background(), "https://example.com")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Contains(t, serrors.MessageOf(err), "2025-03-01T12:02:00Z")

	// a throttling site is retried like any other failure, only the pool
	// quota snoozes scans
	_, exhausted := browser.QuotaExhausted(err)
	require.False(t, exhausted)
}

func TestFetcher_Fetch_rejectsNonHTML(t *testing.T) {
	f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
		resp := htmlResponse(r, http.StatusOK, "%PDF-1.7")
		resp.Header.Set("Content-Type", "application/pdf")

		return resp, nil
	}, httpfetch.Options{})

	_, err := f.Fetch(context.Background(), "https://example.com/file.pdf")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestFetcher_Fetch_transportErrors(t *testing.T) {
	f := newTestFetcher(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}, httpfetch.Options{})

	_, err := f.Fetch(context.Background(), "https://example.com")
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	f = newTestFetcher(func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()

		return nil, &url.Error{Op: "Get", URL: r.URL.String(), Err: r.Context().Err()}
	}, httpfetch.Options{Timeout: 10 * time.Millisecond})

	_, err = f.Fetch(context.Background(), "https://example.com")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Hello", httpfetch.Title("<html><title>Hello</title></html>"))
	require.Empty(t, httpfetch.Title("<html><title></title></html>"))
	require.Empty(t, httpfetch.Title("<p>no title</p>"))
}
