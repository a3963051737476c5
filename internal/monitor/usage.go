package monitor

import (
	"cmp"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"wcagrep/pkg/metrics"
)

// CacheHeader marks responses served from a cache when set to CacheHit.
const (
	CacheHeader = "X-Cache"
	CacheHit    = "HIT"
)

type RouteUsage struct {
	Route         string  `json:"route"`
	Calls         int     `json:"calls"`
	CachedCalls   int     `json:"cachedCalls"`
	AvgDurationMs float64 `json:"avgDurationMs"`
}

// UsageReport summarizes the API calls since the last reset.
type UsageReport struct {
	TotalCalls       int          `json:"totalCalls"`
	CachedCalls      int          `json:"cachedCalls"`
	CachedPercentage float64      `json:"cachedPercentage"`
	AvgDurationMs    float64      `json:"avgDurationMs"`
	ByRoute          []RouteUsage `json:"byRoute"`
}

type QuickStats struct {
	TotalCalls       int     `json:"totalCalls"`
	CachedPercentage float64 `json:"cachedPercentage"`
}

type routeUsage struct {
	calls, cached int
	total         time.Duration
}

// UsageTracker counts API calls per route. It feeds the Prometheus
// collectors as well as an in-memory report that Reset clears.
type UsageTracker struct {
	metrics *metrics.Metrics

	mu     sync.Mutex
	routes map[string]*routeUsage
}

// NewUsageTracker creates a tracker. m may be nil.
func NewUsageTracker(m *metrics.Metrics) *UsageTracker {
	return &UsageTracker{metrics: m, routes: make(map[string]*routeUsage)}
}

// Middleware records every /api call under its chi route pattern. It must be
// mounted on the chi router so the pattern is known once the call returns.
func (t *UsageTracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)

			return
		}

		start := time.Now()
		next.ServeHTTP(w, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = r.Method + " " + p
			}
		}
		t.Track(route, w.Header().Get(CacheHeader) == CacheHit, time.Since(start))
	})
}

func (t *UsageTracker) Track(route string, cached bool, d time.Duration) {
	t.mu.Lock()
	u, ok := t.routes[route]
	if !ok {
		u = &routeUsage{}
		t.routes[route] = u
	}
	u.calls++
	if cached {
		u.cached++
	}
	u.total += d
	t.mu.Unlock()

	if t.metrics != nil {
		t.metrics.APICallsTotal.WithLabelValues(route, strconv.FormatBool(cached)).Inc()
		t.metrics.APICallDuration.WithLabelValues(route).Observe(d.Seconds())
	}
}

// Report lists the routes by number of calls, busiest first.
func (t *UsageTracker) Report() UsageReport {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := UsageReport{ByRoute: make([]RouteUsage, 0, len(t.routes))}
	var total time.Duration
	for route, u := range t.routes {
		r.TotalCalls += u.calls
		r.CachedCalls += u.cached
		total += u.total
		r.ByRoute = append(r.ByRoute, RouteUsage{
			Route:         route,
			Calls:         u.calls,
			CachedCalls:   u.cached,
			AvgDurationMs: avgMs(u.total, u.calls),
		})
	}
	slices.SortFunc(r.ByRoute, func(a, b RouteUsage) int {
		return cmp.Or(cmp.Compare(b.Calls, a.Calls), strings.Compare(a.Route, b.Route))
	})
	r.CachedPercentage = percent(r.CachedCalls, r.TotalCalls)
	r.AvgDurationMs = avgMs(total, r.TotalCalls)

	return r
}

func (t *UsageTracker) QuickStats() QuickStats {
	r := t.Report()

	return QuickStats{TotalCalls: r.TotalCalls, CachedPercentage: r.CachedPercentage}
}

// Reset clears the report. Prometheus counters are left alone.
func (t *UsageTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.routes = make(map[string]*routeUsage)
}

func avgMs(total time.Duration, n int) float64 {
	if n == 0 {
		return 0
	}

	return round1(float64(total.Microseconds()) / 1000 / float64(n))
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return round1(float64(part) * 100 / float64(total))
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
