// Package monitor checks the health of prospect websites and tracks the usage
// of the API.
package monitor

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wcagrep/internal/config"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

// Health states of a website.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusDown     = "down"
)

const (
	// slowResponse marks a website as degraded.
	slowResponse = 3 * time.Second
	// maxBatch bounds the URLs of one batch check.
	maxBatch = 100
)

// HealthResult is the outcome of a website check.
type HealthResult struct {
	URL        string `json:"url"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode,omitempty"`
	// ResponseTime is in milliseconds.
	ResponseTime int64     `json:"responseTime"`
	CheckedAt    time.Time `json:"checkedAt"`
	Cached       bool      `json:"cached"`
	Error        string    `json:"error,omitempty"`
}

type HealthStats struct {
	TotalChecks int `json:"totalChecks"`
	CacheHits   int `json:"cacheHits"`
}

type HealthOptions struct {
	Timeout     time.Duration
	CacheTTL    time.Duration
	Concurrency int
}

func NewHealthOptions(cfg *config.Config) HealthOptions {
	return HealthOptions{
		Timeout:     cfg.Monitor.Timeout,
		CacheTTL:    cfg.Monitor.CacheTTL,
		Concurrency: cfg.Monitor.Concurrency,
	}
}

// HealthChecker checks websites with a GET request, since many servers
// answer HEAD requests incorrectly. Results are cached per URL.
type HealthChecker struct {
	client  *http.Client
	options HealthOptions
	now     func() time.Time

	// mu protects the fields below it.
	mu     sync.Mutex
	cache  map[string]HealthResult
	checks int
	hits   int
}

func NewHealthChecker(client *http.Client, options HealthOptions) *HealthChecker {
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}

	return &HealthChecker{
		client:  client,
		options: options,
		now:     time.Now,
		cache:   make(map[string]HealthResult),
	}
}

// Check returns the health of url. Unreachable websites are reported as down,
// not as errors.
func (h *HealthChecker) Check(ctx context.Context, url string) (*HealthResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "URL is required")
	}
	if err := domain.ValidateWebsite(url); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid URL format")
	}

	h.mu.Lock()
	if r, ok := h.cache[url]; ok && h.now().Sub(r.CheckedAt) < h.options.CacheTTL {
		h.hits++
		h.mu.Unlock()
		r.Cached = true

		return &r, nil
	}
	h.checks++
	h.mu.Unlock()

	r := h.check(ctx, url)

	h.mu.Lock()
	h.cache[url] = r
	h.mu.Unlock()

	return &r, nil
}

// Batch checks urls concurrently and returns the results in the same order.
func (h *HealthChecker) Batch(ctx context.Context, urls []string) ([]HealthResult, error) {
	if len(urls) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "URLs array is required")
	}
	if len(urls) > maxBatch {
		return nil, serrors.With(serrors.ErrBadRequest, "At most %d URLs can be checked at once", maxBatch)
	}

	out := make([]HealthResult, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.options.Concurrency)
	for i, u := range urls {
		g.Go(func() error {
			r, err := h.Check(gctx, u)
			if err != nil {
				return err
			}
			out[i] = *r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return out, nil
}

func (h *HealthChecker) Stats() HealthStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return HealthStats{TotalChecks: h.checks, CacheHits: h.hits}
}

// ClearCache drops cached results and resets the counters.
func (h *HealthChecker) ClearCache() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cache = make(map[string]HealthResult)
	h.checks, h.hits = 0, 0
}

func (h *HealthChecker) check(ctx context.Context, url string) HealthResult {
	r := HealthResult{URL: url, CheckedAt: h.now()}

	if h.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.options.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		r.Status, r.Error = StatusDown, err.Error()

		return r
	}
	req.Header.Set("Accept", "text/html,*/*;q=0.5")

	start := time.Now()
	resp, err := h.client.Do(req)
	r.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		r.Status, r.Error = StatusDown, err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			r.Error = "timeout"
		}
		logger.Debug(ctx, "health check failed", zap.String("url", url), zap.Error(err))

		return r
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()

	r.StatusCode = resp.StatusCode
	switch {
	case resp.StatusCode >= 500:
		r.Status = StatusDown
	case resp.StatusCode >= 400 || time.Duration(r.ResponseTime)*time.Millisecond > slowResponse:
		r.Status = StatusDegraded
	default:
		r.Status = StatusOK
	}

	return r
}
