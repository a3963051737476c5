package v1handler

import (
	"net/http"
	"strings"

	"wcagrep/internal/discovery"
	"wcagrep/internal/monitor"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/wcag"
)

func (h *Handler) DataUsage(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r, h.deps.Usage.Report())
}

type monitorStats struct {
	DataOptimizer  monitor.QuickStats   `json:"dataOptimizer"`
	KeywordScanner discovery.UsageStats `json:"keywordScanner"`
	HealthCheck    monitor.HealthStats  `json:"healthCheck"`
}

func (h *Handler) MonitorStats(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r, monitorStats{
		DataOptimizer:  h.deps.Usage.QuickStats(),
		KeywordScanner: h.deps.Discovery.UsageStats(),
		HealthCheck:    h.deps.Health.Stats(),
	})
}

type healthCheckRequest struct {
	URL string `json:"url"`
}

// HealthCheck checks one website. A cached answer is flagged with X-Cache so
// the usage tracker counts it as cached.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	var req healthCheckRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "URL is required"))

		return
	}

	res, err := h.deps.Health.Check(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if res.Cached {
		w.Header().Set(monitor.CacheHeader, monitor.CacheHit)
	}

	h.ok(w, r, res)
}

type healthBatchRequest struct {
	URLs []string `json:"urls"`
}

type healthBatchResponse struct {
	Checked    int                    `json:"checked"`
	Results    []monitor.HealthResult `json:"results"`
	CacheStats monitor.HealthStats    `json:"cacheStats"`
}

func (h *Handler) HealthBatch(w http.ResponseWriter, r *http.Request) {
	var req healthBatchRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if len(req.URLs) == 0 {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "URLs array is required"))

		return
	}

	results, err := h.deps.Health.Batch(r.Context(), req.URLs)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, healthBatchResponse{
		Checked:    len(results),
		Results:    results,
		CacheStats: h.deps.Health.Stats(),
	})
}

type suggestionsRequest struct {
	// Violations is a pointer to tell a missing array from an empty one.
	Violations *[]domain.Violation `json:"violations"`
}

type suggestionsResponse struct {
	Suggestions wcag.Suggestions `json:"suggestions"`
	Summary     wcag.Summary     `json:"summary"`
}

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if req.Violations == nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "Violations array is required"))

		return
	}

	h.ok(w, r, suggestionsResponse{
		Suggestions: wcag.Suggest(*req.Violations),
		Summary:     wcag.Summarize(*req.Violations),
	})
}

// ResetMonitor clears the usage counters and the search and health caches.
func (h *Handler) ResetMonitor(w http.ResponseWriter, r *http.Request) {
	h.deps.Usage.Reset()
	h.deps.Discovery.ClearCache()
	h.deps.Health.ClearCache()

	h.ok(w, r, messageResponse{Message: "All metrics reset successfully"})
}
