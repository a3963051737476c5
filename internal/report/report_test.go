package report_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wcagrep/internal/report"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

func violations() []domain.Violation {
	return []domain.Violation{
		{Type: "image-alt", Severity: domain.SeverityCritical, Element: `<img src="hero.png">`, WCAGCriterion: "1.1.1"},
		{Type: "image-alt", Severity: domain.SeverityCritical, Element: `<img src="logo.png">`, WCAGCriterion: "1.1.1"},
		{Type: "html-lang", Severity: domain.SeveritySerious, Element: "<html>", WCAGCriterion: "3.1.1"},
		{Type: "heading-order", Severity: domain.SeverityModerate, Element: "<h4>Prices – €</h4>", WCAGCriterion: "1.3.1"},
	}
}

func TestGenerator_Compact(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	dir := t.TempDir()
	g := report.New(dir)

	job := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: "https://example.com/", Status: domain.ScanJobStatusCompleted}
	for _, full := range []bool{false, true} {
		f, err := g.Compact(context.Background(), report.Input{
			ScanJob:        job,
			Company:        "Café Example",
			Violations:     violations(),
			FullDetails:    full,
			IncludeRoadmap: true,
		})
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, job.ID.String(), report.FileName), f.Path)
		require.Equal(t, "/api/scan/"+job.ID.String()+"/report/pdf", f.URL)
	}

	entries, err := os.ReadDir(filepath.Join(dir, job.ID.String()))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are cleaned up")

	r, err := g.Open(job.ID)
	require.NoError(t, err)
	defer r.Close()

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	require.True(t, len(b) > 1000)
	require.Equal(t, "%PDF-", string(b[:5]))
}

func TestGenerator_CompactWithoutViolations(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	g := report.New(t.TempDir())

	score := 100
	_, err := g.Compact(context.Background(), report.Input{
		ScanJob: domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: "https://example.com/", WCAGScore: &score},
	})
	require.NoError(t, err)
}

func TestGenerator_CompactTimesOut(t *testing.T) {
	g := report.New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Compact(ctx, report.Input{ScanJob: domain.ScanJob{ID: domain.ScanJobID(uuid.New())}})
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestGenerator_OpenMissing(t *testing.T) {
	g := report.New(t.TempDir())

	_, err := g.Open(domain.ScanJobID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "Report not found", serrors.MessageOf(err))
}
