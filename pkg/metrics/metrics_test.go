package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"wcagrep/pkg/metrics"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ScansTotal.WithLabelValues("completed").Inc()
	m.EmailsTotal.WithLabelValues("cold", "sent").Add(2)

	require.InDelta(t, 1, testutil.ToFloat64(m.ScansTotal.WithLabelValues("completed")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.EmailsTotal.WithLabelValues("cold", "sent")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "wcagrep_scans_total")
	require.Contains(t, names, "wcagrep_emails_total")
}

func TestNew_NilRegistererDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() { metrics.New(nil) })
}
