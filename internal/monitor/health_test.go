package monitor_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wcagrep/internal/monitor"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func statusServer(t *testing.T, calls *int) *http.Client {
	t.Helper()

	return &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		*calls++
		require.Equal(t, http.MethodGet, r.Method)

		switch r.URL.Host {
		case "down.example":
			return nil, errors.New("connection refused")
		case "broken.example":
			return &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader(""))}, nil
		case "missing.example":
			return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader(""))}, nil
		default:
			return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("<html></html>"))}, nil
		}
	})}
}

func TestHealthChecker_Check(t *testing.T) {
	ctx := context.Background()
	var calls int
	h := monitor.NewHealthChecker(statusServer(t, &calls), monitor.HealthOptions{Timeout: time.Second})

	tests := []struct {
		url    string
		status string
		code   int
	}{
		{"https://ok.example", monitor.StatusOK, http.StatusOK},
		{"https://missing.example", monitor.StatusDegraded, http.StatusNotFound},
		{"https://broken.example", monitor.StatusDown, http.StatusBadGateway},
		{"https://down.example", monitor.StatusDown, 0},
	}
	for _, tt := range tests {
		r, err := h.Check(ctx, tt.url)
		require.NoError(t, err)
		require.Equal(t, tt.status, r.Status, tt.url)
		require.Equal(t, tt.code, r.StatusCode, tt.url)
		require.False(t, r.Cached)
	}
	require.Equal(t, 4, calls)

	_, err := h.Check(ctx, "")
	require.Equal(t, "URL is required", serrors.MessageOf(err))
	_, err = h.Check(ctx, "ftp://files.example")
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
}

func TestHealthChecker_Cache(t *testing.T) {
	ctx := context.Background()
	var calls int
	h := monitor.NewHealthChecker(statusServer(t, &calls), monitor.HealthOptions{CacheTTL: time.Minute})
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	h.SetClock(func() time.Time { return now })

	_, err := h.Check(ctx, "https://ok.example")
	require.NoError(t, err)
	r, err := h.Check(ctx, "https://ok.example")
	require.NoError(t, err)
	require.True(t, r.Cached)
	require.Equal(t, 1, calls)
	require.Equal(t, monitor.HealthStats{TotalChecks: 1, CacheHits: 1}, h.Stats())

	now = now.Add(2 * time.Minute)
	r, err = h.Check(ctx, "https://ok.example")
	require.NoError(t, err)
	require.False(t, r.Cached)
	require.Equal(t, 2, calls)

	h.ClearCache()
	require.Equal(t, monitor.HealthStats{}, h.Stats())
}

func TestHealthChecker_Batch(t *testing.T) {
	ctx := context.Background()
	var calls int
	h := monitor.NewHealthChecker(statusServer(t, &calls), monitor.HealthOptions{})

	results, err := h.Batch(ctx, []string{"https://ok.example", "https://down.example", "https://missing.example"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "https://ok.example", results[0].URL)
	require.Equal(t, monitor.StatusDown, results[1].Status)
	require.Equal(t, monitor.StatusDegraded, results[2].Status)

	_, err = h.Batch(ctx, nil)
	require.Equal(t, "URLs array is required", serrors.MessageOf(err))

	_, err = h.Batch(ctx, []string{"https://ok.example", "not a url"})
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
}
