// Package mockup renders accessible versions of audited pages and serves them
// as previews and downloads.
package mockup

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/llm"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
	"wcagrep/pkg/wcag"
)

const (
	HTMLFile = "index.html"
	CSSFile  = wcag.StylesheetName

	heroTimeout = 20 * time.Second
)

// skeleton stands in for pages whose source was not kept.
const skeleton = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title></title></head>
<body>
<header><h1>%s</h1></header>
<p>Welcome to %s.</p>
</body>
</html>`

// Files locates a stored mockup.
type Files struct {
	HTMLPath   string `json:"htmlPath"`
	CSSPath    string `json:"cssPath"`
	PreviewURL string `json:"previewUrl"`
}

type DownloadURLs struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	Zip  string `json:"zip"`
}

// Result describes a regenerated mockup.
type Result struct {
	ScanJobID        domain.ScanJobID       `json:"scanJobId"`
	Improvements     []string               `json:"improvements"`
	WCAGImprovements []wcag.WCAGImprovement `json:"wcagImprovements"`
	Mockup           Files                  `json:"mockup"`
	DownloadURLs     DownloadURLs           `json:"downloadUrls"`
}

// Generator stores mockups below a directory, one subdirectory per scan job.
type Generator struct {
	storage storage.AllStorage
	llm     llm.Completer
	dir     string
}

// New creates a generator. c may be nil, in which case the hero copy of the
// page is left as is.
func New(st storage.AllStorage, c llm.Completer, dir string) *Generator {
	return &Generator{storage: st, llm: c, dir: dir}
}

// ParseID parses a scan job ID taken from a URL. Only canonical UUIDs are
// accepted since the ID names a directory.
func ParseID(raw string) (domain.ScanJobID, error) {
	id, err := domain.ParseScanJobID(raw)
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid scan ID format")
	}

	return id, nil
}

func PreviewURL(id domain.ScanJobID) string {
	return "/mockups/" + id.String()
}

// Regenerate remediates the page of a completed scan job and stores the result.
func (g *Generator) Regenerate(ctx context.Context, id domain.ScanJobID) (*Result, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("scanJobID", id))

	job, err := g.storage.ScanJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scan job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Scan job not found")
	}
	if job.Status != domain.ScanJobStatusCompleted {
		return nil, serrors.With(serrors.ErrBadRequest, "Scan must be completed before generating mockup")
	}

	violations, err := g.storage.ViolationsByScanJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not list violations: %w", err)
	}

	src := job.OriginalHTML
	if strings.TrimSpace(src) == "" {
		name := job.CompanyName
		if name == "" {
			name = domain.HostOf(job.URL)
		}
		src = fmt.Sprintf(skeleton, html.EscapeString(name), html.EscapeString(name))
	}

	r, err := wcag.Remediate(src, job.URL, violations)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Could not parse the scanned page")
	}
	if intro := g.heroCopy(ctx, job, r.HTML); intro != "" {
		if out, ok := insertHeroCopy(r.HTML, intro); ok {
			r.HTML = out
			r.Improvements = append(r.Improvements, "Rewrote the introduction in plain language")
		}
	}

	dir := filepath.Join(g.dir, id.String())
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint: gosec
		return nil, fmt.Errorf("could not create mockup directory: %w", err)
	}
	if err := writeFile(dir, HTMLFile, r.HTML); err != nil {
		return nil, err
	}
	if err := writeFile(dir, CSSFile, r.CSS); err != nil {
		return nil, err
	}

	logger.Info(ctx, "mockup generated", zap.Int("improvements", len(r.Improvements)))

	base := "/api/scan/" + id.String() + "/mockup/"

	return &Result{
		ScanJobID:        id,
		Improvements:     r.Improvements,
		WCAGImprovements: r.WCAGImprovements,
		Mockup: Files{
			HTMLPath:   filepath.Join(dir, HTMLFile),
			CSSPath:    filepath.Join(dir, CSSFile),
			PreviewURL: PreviewURL(id),
		},
		DownloadURLs: DownloadURLs{
			HTML: base + "html",
			CSS:  base + "css",
			Zip:  base + "download",
		},
	}, nil
}

// HTML returns the stored page of a mockup.
func (g *Generator) HTML(ctx context.Context, id domain.ScanJobID) ([]byte, error) {
	return g.read(ctx, id, HTMLFile)
}

// CSS returns the stored stylesheet of a mockup.
func (g *Generator) CSS(ctx context.Context, id domain.ScanJobID) ([]byte, error) {
	return g.read(ctx, id, CSSFile)
}

// Bundle writes a zip archive with the page and its stylesheet to w.
func (g *Generator) Bundle(ctx context.Context, id domain.ScanJobID, w io.Writer) error {
	page, err := g.HTML(ctx, id)
	if err != nil {
		return err
	}
	css, err := g.read(ctx, id, CSSFile)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, f := range []struct {
		name string
		body []byte
	}{{HTMLFile, page}, {CSSFile, css}} {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: f.name, Method: zip.Deflate, Modified: time.Now()})
		if err != nil {
			return fmt.Errorf("could not add %s to archive: %w", f.name, err)
		}
		if _, err := fw.Write(f.body); err != nil {
			return fmt.Errorf("could not write %s to archive: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish archive: %w", err)
	}

	return nil
}

func (g *Generator) read(ctx context.Context, id domain.ScanJobID, name string) ([]byte, error) {
	job, err := g.storage.ScanJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scan job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Scan job not found")
	}

	b, err := os.ReadFile(filepath.Join(g.dir, id.String(), name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, serrors.With(serrors.ErrNotFound, "Mockup not found")
	}
	if err != nil {
		return nil, fmt.Errorf("could not read mockup: %w", err)
	}

	return b, nil
}

// heroCopy asks the model for a short introduction. Failures are logged and
// yield an empty string.
func (g *Generator) heroCopy(ctx context.Context, job *domain.ScanJob, page string) string {
	if g.llm == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, heroTimeout)
	defer cancel()

	resp, err := g.llm.Complete(ctx, llm.Request{
		System: "You write website copy that is clear, friendly and easy to read. Answer with the paragraph only.",
		Prompt: fmt.Sprintf("Write a two sentence introduction for the home page of %s (%s). "+
			"Use plain language at an eighth grade reading level.\n\nPage title: %s",
			nonEmpty(job.CompanyName, domain.HostOf(job.URL)), job.URL, nonEmpty(job.PageTitle, pageTitle(page))),
		MaxTokens: 200,
	})
	if err != nil {
		logger.Warn(ctx, "could not generate hero copy", zap.Error(err))

		return ""
	}

	return llm.CleanText(resp.Text)
}

// insertHeroCopy places intro after the first heading of the main landmark,
// or at its start when it has none.
func insertHeroCopy(page, intro string) (string, bool) {
	i := strings.Index(page, `id="`+wcag.MainContentID+`"`)
	if i < 0 {
		return page, false
	}
	end := strings.IndexByte(page[i:], '>')
	if end < 0 {
		return page, false
	}
	at := i + end + 1
	if h := strings.Index(page[at:], "</h1>"); h >= 0 {
		at += h + len("</h1>")
	}

	return page[:at] + `<p class="hero-copy">` + html.EscapeString(intro) + `</p>` + page[at:], true
}

func pageTitle(page string) string {
	_, rest, ok := strings.Cut(page, "<title>")
	if !ok {
		return ""
	}
	title, _, _ := strings.Cut(rest, "</title>")

	return html.UnescapeString(strings.TrimSpace(title))
}

func nonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}

	return fallback
}

func writeFile(dir, name, content string) error {
	tmp, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return fmt.Errorf("could not create %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("could not store %s: %w", name, err)
	}

	return nil
}
