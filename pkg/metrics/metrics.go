// Package metrics defines the Prometheus collectors shared by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "wcagrep"

// Metrics groups the application collectors.
type Metrics struct {
	ScansTotal         *prometheus.CounterVec
	ScanDuration       *prometheus.HistogramVec
	BackendActiveScans *prometheus.GaugeVec
	BackendDailyScans  *prometheus.GaugeVec
	APICallsTotal      *prometheus.CounterVec
	APICallDuration    *prometheus.HistogramVec
	EmailsTotal        *prometheus.CounterVec
	TriggerDeliveries  *prometheus.CounterVec
}

// New creates the collectors and registers them on reg. A nil reg creates
// unregistered collectors, which is convenient in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ScansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Scan attempts by final status.",
		}, []string{"status"}),
		ScanDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Duration of page fetch and analysis per backend.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		}, []string{"backend"}),
		BackendActiveScans: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backend_active_scans",
			Help:      "Pages currently being fetched per backend.",
		}, []string{"backend"}),
		BackendDailyScans: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backend_daily_scans",
			Help:      "Pages fetched per backend in the current UTC day.",
		}, []string{"backend"}),
		APICallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_calls_total",
			Help:      "API calls by route and cache outcome.",
		}, []string{"route", "cached"}),
		APICallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_call_duration_seconds",
			Help:      "API call latency by route.",
			Buckets:   DefaultBuckets,
		}, []string{"route"}),
		EmailsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_total",
			Help:      "Outreach emails by type and outcome.",
		}, []string{"type", "outcome"}),
		TriggerDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trigger_deliveries_total",
			Help:      "Trigger notifications by channel and outcome.",
		}, []string{"type", "outcome"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.ScansTotal,
			m.ScanDuration,
			m.BackendActiveScans,
			m.BackendDailyScans,
			m.APICallsTotal,
			m.APICallDuration,
			m.EmailsTotal,
			m.TriggerDeliveries,
		)
	}

	return m
}
