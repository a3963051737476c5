// Package report renders compact PDF audit reports of completed scan jobs.
package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/wcag"
)

const (
	// FileName is the name of the PDF inside the directory of a scan job.
	FileName = "audit-report.pdf"
	// topIssues is the number of suggestions listed in a compact report.
	topIssues = 5
	// maxDetails caps the violations listed when full details are requested.
	maxDetails = 100
)

// Input describes the report of one scan job.
type Input struct {
	ScanJob    domain.ScanJob
	Company    string
	Violations []domain.Violation
	// FullDetails lists every suggestion and the offending elements instead
	// of the top issues only.
	FullDetails bool
	// IncludeRoadmap appends the quick wins and structural fixes.
	IncludeRoadmap bool
}

// File is a generated report.
type File struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Generator writes reports below a directory, one subdirectory per scan job.
type Generator struct {
	dir string
	now func() time.Time
}

func New(dir string) *Generator {
	return &Generator{dir: dir, now: time.Now}
}

// PublicURL is where the API serves the report of a scan job.
func PublicURL(id domain.ScanJobID) string {
	return "/api/scan/" + id.String() + "/report/pdf"
}

// Compact renders the report of in and stores it as
// <dir>/<scanJobID>/audit-report.pdf, replacing a previous one. It fails with
// TIMEOUT when ctx is done before the file is written.
func (g *Generator) Compact(ctx context.Context, in Input) (*File, error) {
	pdf := g.render(in)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("could not render report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, serrors.Wrap(serrors.ErrTimeout, err, "PDF generation timed out")
	}

	dir := filepath.Join(g.dir, in.ScanJob.ID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint: gosec
		return nil, fmt.Errorf("could not create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*")
	if err != nil {
		return nil, fmt.Errorf("could not create report file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := pdf.Output(tmp); err != nil {
		_ = tmp.Close()

		return nil, fmt.Errorf("could not write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("could not write report: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("could not store report: %w", err)
	}

	logger.Info(ctx, "audit report generated", zap.Stringer("scanJobID", in.ScanJob.ID), zap.String("path", path))

	return &File{Path: path, URL: PublicURL(in.ScanJob.ID)}, nil
}

// Open returns the stored report of a scan job. The caller closes it.
func (g *Generator) Open(id domain.ScanJobID) (*os.File, error) {
	f, err := os.Open(filepath.Join(g.dir, id.String(), FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, serrors.With(serrors.ErrNotFound, "Report not found")
	}
	if err != nil {
		return nil, fmt.Errorf("could not open report: %w", err)
	}

	return f, nil
}

type colour struct{ r, g, b int }

var severityColours = map[domain.Severity]colour{ //nolint: gochecknoglobals
	domain.SeverityCritical: {176, 0, 32},
	domain.SeveritySerious:  {191, 87, 0},
	domain.SeverityModerate: {125, 110, 0},
	domain.SeverityMinor:    {60, 90, 140},
}

func (g *Generator) render(in Input) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(g.now())
	pdf.SetTitle("Accessibility Audit Report", true)
	pdf.SetCreator("wcagrep", true)
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(0, 6, fmt.Sprintf("wcagrep accessibility audit - page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	job := in.ScanJob
	counts := domain.CountViolations(in.Violations)
	if len(in.Violations) == 0 {
		counts = job.Counts()
	}
	score := job.Score()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(0, 10, "Accessibility Audit Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(70, 70, 70)
	if in.Company != "" {
		pdf.CellFormat(0, 6, tr("Company: "+in.Company), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr("Website: "+job.URL), "", 1, "L", false, 0, "")
	date := g.now()
	if job.CompletedAt != nil {
		date = *job.CompletedAt
	}
	pdf.CellFormat(0, 6, "Audited: "+date.UTC().Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(scoreColour(score))
	pdf.CellFormat(40, 14, fmt.Sprintf("%d/100", score), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 14, fmt.Sprintf("WCAG score - legal risk: %s", counts.LegalRisk()), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for _, c := range []struct {
		label string
		n     int
	}{
		{"Critical", counts.Critical},
		{"Serious", counts.Serious},
		{"Moderate", counts.Moderate},
		{"Minor", counts.Minor},
	} {
		pdf.CellFormat(43, 9, fmt.Sprintf("%s: %d", c.label, c.n), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(14)

	suggestions := wcag.Suggest(in.Violations)
	issues := suggestions.Prioritized
	heading := "Top issues"
	if in.FullDetails {
		heading = "All issues"
	} else if len(issues) > topIssues {
		issues = issues[:topIssues]
	}

	section(pdf, heading)
	if len(issues) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "No automated accessibility violations were detected.", "", "L", false)
	}
	for i, s := range issues {
		c := severityColours[s.Severity]
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(c.r, c.g, c.b)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s (%s, WCAG %s) - %d occurrence%s",
			i+1, s.Type, s.Severity, s.WCAGCriterion, s.Occurrences, plural(s.Occurrences))), "", "L", false)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(0, 4.5, tr(s.Recommendation), "", "L", false)
		pdf.Ln(1.5)
	}

	if in.FullDetails && len(in.Violations) > 0 {
		section(pdf, "Affected elements")
		pdf.SetFont("Courier", "", 7.5)
		pdf.SetTextColor(50, 50, 50)
		for i, v := range in.Violations {
			if i == maxDetails {
				pdf.SetFont("Helvetica", "I", 8)
				pdf.MultiCell(0, 4, fmt.Sprintf("... and %d more", len(in.Violations)-maxDetails), "", "L", false)

				break
			}
			pdf.MultiCell(0, 3.8, tr(fmt.Sprintf("[%s] %s", v.Type, oneLine(v.Element))), "", "L", false)
		}
	}

	if in.IncludeRoadmap {
		section(pdf, "Remediation roadmap")
		roadmap(pdf, tr, "Quick wins", suggestions.QuickWins)
		roadmap(pdf, tr, "Structural fixes", suggestions.Structural)
	}

	return pdf
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func roadmap(pdf *fpdf.Fpdf, tr func(string) string, title string, items []wcag.Suggestion) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if len(items) == 0 {
		pdf.MultiCell(0, 4.5, "  None.", "", "L", false)
	}
	for _, s := range items {
		pdf.MultiCell(0, 4.5, tr(fmt.Sprintf("  - %s (%s effort, %s impact): %s",
			s.Type, s.Effort, s.Impact, s.Recommendation)), "", "L", false)
	}
	pdf.Ln(2)
}

func scoreColour(score int) (int, int, int) {
	switch {
	case score >= 90:
		return 0, 120, 60
	case score >= 70:
		return 160, 110, 0
	default:
		return 176, 0, 32
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}

	return "s"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
