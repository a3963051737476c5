package v1handler

import (
	"bytes"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wcagrep/internal/mockup"
	"wcagrep/internal/scanner"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

type quickWinRequest struct {
	URL           string `json:"url"`
	CompanyName   string `json:"companyName"`
	ProspectEmail string `json:"prospectEmail"`
}

// QuickWin queues a scan of an arbitrary page and answers with the pending
// job. Clients poll GET /api/scan/{id} for completion.
func (h *Handler) QuickWin(w http.ResponseWriter, r *http.Request) {
	var req quickWinRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "Website URL is required"))

		return
	}

	job, err := h.deps.Scanner.Enqueue(r.Context(), scanner.ScanRequest{
		URL:           req.URL,
		CompanyName:   req.CompanyName,
		ProspectEmail: req.ProspectEmail,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusAccepted, job)
}

type quickOutreachRequest struct {
	ProspectEmail string `json:"prospectEmail"`
	CompanyName   string `json:"companyName"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) SendQuickOutreach(w http.ResponseWriter, r *http.Request) {
	var req quickOutreachRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if req.ProspectEmail == "" || req.CompanyName == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "Email and company name are required"))

		return
	}

	if err := h.deps.Outreach.SendQuick(r.Context(), req.ProspectEmail, req.CompanyName); err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, messageResponse{Message: "Outreach email sent successfully"})
}

func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	job, err := h.deps.Scanner.ScanJob(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, job)
}

func (h *Handler) ScanResults(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	violations, err := h.deps.Scanner.Results(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, violations)
}

func (h *Handler) ScanReport(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	report, err := h.deps.Scanner.Report(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, report)
}

// ScanReportPDF serves the stored compact report. Range requests are
// supported.
func (h *Handler) ScanReportPDF(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	f, err := h.deps.Reports.Open(id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="audit-report.pdf"`)
	http.ServeContent(w, r, st.Name(), st.ModTime(), f)
}

func (h *Handler) RegenerateMockup(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Mockups.Regenerate(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, res)
}

func (h *Handler) MockupHTML(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	page, err := h.deps.Mockups.HTML(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	attachment(w, "text/html; charset=utf-8", "improved-website.html")
	writeBody(r, w, page)
}

func (h *Handler) MockupCSS(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	css, err := h.deps.Mockups.CSS(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	attachment(w, "text/css; charset=utf-8", "styles.css")
	writeBody(r, w, css)
}

// MockupDownload serves the page and its stylesheet as a zip archive. The
// archive is built in memory so a failure still yields a JSON error.
func (h *Handler) MockupDownload(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	var buf bytes.Buffer
	if err := h.deps.Mockups.Bundle(r.Context(), id, &buf); err != nil {
		writeError(w, r, err)

		return
	}

	attachment(w, "application/zip", "improved-website.zip")
	writeBody(r, w, buf.Bytes())
}

// MockupPreview renders a mockup inline. It is opened in a browser, so
// failures are answered with an HTML body.
func (h *Handler) MockupPreview(w http.ResponseWriter, r *http.Request) {
	id, err := mockup.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeHTMLError(w, r, http.StatusBadRequest, "Invalid scan ID")

		return
	}

	page, err := h.deps.Mockups.HTML(r.Context(), id)
	if err != nil {
		res := newError(r.Context(), err)
		msg := "Error loading mockup"
		if res.StatusCode == http.StatusNotFound {
			msg = res.Response.Error
		}
		writeHTMLError(w, r, res.StatusCode, msg)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	writeBody(r, w, page)
}

// publicBackendStats hides the daily quota of a backend.
type publicBackendStats struct {
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	ActiveScans int    `json:"activeScans"`
	Concurrent  int    `json:"concurrent"`
	Available   bool   `json:"available"`
}

func (h *Handler) BackendStats(w http.ResponseWriter, r *http.Request) {
	stats := h.deps.Backends.Stats()
	res := make([]publicBackendStats, 0, len(stats))
	for _, s := range stats {
		res = append(res, publicBackendStats{
			Name:        s.Name,
			Enabled:     s.Enabled,
			ActiveScans: s.ActiveScans,
			Concurrent:  s.Concurrent,
			Available:   s.Enabled && s.ActiveScans < s.Concurrent,
		})
	}

	h.ok(w, r, res)
}

func writeHTMLError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	writeBody(r, w, []byte("<h1>"+html.EscapeString(msg)+"</h1>"))
}

func writeBody(r *http.Request, w io.Writer, b []byte) {
	if _, err := w.Write(b); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}
