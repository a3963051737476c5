package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wcagrep/internal/agents"
	"wcagrep/internal/api/handler/v1handler"
	mockcrm "wcagrep/internal/crm/mock"
	"wcagrep/internal/discovery"
	"wcagrep/internal/mockup"
	"wcagrep/internal/monitor"
	mockoutreach "wcagrep/internal/outreach/mock"
	"wcagrep/internal/report"
	"wcagrep/internal/scanner"
	mockscanner "wcagrep/internal/scanner/mock"
	"wcagrep/pkg/browser"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/llm"
	"wcagrep/pkg/serrors"
)

type fakeAgents struct {
	run func(ctx context.Context, name agents.Name) (*agents.Result, error)
}

func (f *fakeAgents) Run(ctx context.Context, name agents.Name) (*agents.Result, error) {
	return f.run(ctx, name)
}

func (f *fakeAgents) Status() agents.Status {
	return agents.Status{Monitor: agents.State{Status: agents.StatusRunning}}
}

type fakeDiscovery struct {
	cleared bool
}

func (f *fakeDiscovery) Discover(_ context.Context, req discovery.Request) (*discovery.Response, error) {
	if len(req.Keywords) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Keywords array is required")
	}

	return &discovery.Response{Discovered: 1, Prospects: []domain.Prospect{{Company: "Acme"}}}, nil
}

func (f *fakeDiscovery) UsageStats() discovery.UsageStats {
	return discovery.UsageStats{TotalAPICallsUsed: 2}
}

func (f *fakeDiscovery) ClearCache() { f.cleared = true }

type fakeHealth struct {
	cached  bool
	cleared bool
}

func (f *fakeHealth) Check(_ context.Context, url string) (*monitor.HealthResult, error) {
	return &monitor.HealthResult{URL: url, Status: "healthy", Cached: f.cached}, nil
}

func (f *fakeHealth) Batch(_ context.Context, urls []string) ([]monitor.HealthResult, error) {
	res := make([]monitor.HealthResult, 0, len(urls))
	for _, u := range urls {
		res = append(res, monitor.HealthResult{URL: u, Status: "healthy"})
	}

	return res, nil
}

func (f *fakeHealth) Stats() monitor.HealthStats { return monitor.HealthStats{TotalChecks: 3} }
func (f *fakeHealth) ClearCache()                { f.cleared = true }

type fakeUsage struct {
	reset bool
}

func (f *fakeUsage) Report() monitor.UsageReport     { return monitor.UsageReport{TotalCalls: 7} }
func (f *fakeUsage) QuickStats() monitor.QuickStats { return monitor.QuickStats{TotalCalls: 7} }
func (f *fakeUsage) Reset()                         { f.reset = true }

type fakeMockups struct {
	page []byte
	err  error
}

func (f *fakeMockups) Regenerate(_ context.Context, id domain.ScanJobID) (*mockup.Result, error) {
	return &mockup.Result{ScanJobID: id}, f.err
}

func (f *fakeMockups) HTML(context.Context, domain.ScanJobID) ([]byte, error) { return f.page, f.err }
func (f *fakeMockups) CSS(context.Context, domain.ScanJobID) ([]byte, error)  { return []byte("body{}"), f.err }

func (f *fakeMockups) Bundle(_ context.Context, _ domain.ScanJobID, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, err := w.Write([]byte("PK"))

	return err
}

type fakeReports struct {
	dir string
	in  report.Input
}

func (f *fakeReports) Compact(_ context.Context, in report.Input) (*report.File, error) {
	f.in = in

	return &report.File{Path: filepath.Join(f.dir, "audit-report.pdf"), URL: report.PublicURL(in.ScanJob.ID)}, nil
}

func (f *fakeReports) Open(domain.ScanJobID) (*os.File, error) {
	p := filepath.Join(f.dir, "audit-report.pdf")
	if err := os.WriteFile(p, []byte("%PDF-1.3"), 0o600); err != nil {
		return nil, err
	}

	return os.Open(p)
}

type promptFunc func(ctx context.Context, prompt string) (*llm.Response, error)

func (f promptFunc) Execute(ctx context.Context, prompt string) (*llm.Response, error) { return f(ctx, prompt) }

type backendsFunc func() []browser.BackendStats

func (f backendsFunc) Stats() []browser.BackendStats { return f() }

type fixture struct {
	crm       *mockcrm.MockCRM
	scanner   *mockscanner.MockScanner
	outreach  *mockoutreach.MockOutreach
	agents    *fakeAgents
	discovery *fakeDiscovery
	health    *fakeHealth
	usage     *fakeUsage
	mockups   *fakeMockups
	reports   *fakeReports
	router    chi.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		crm:       mockcrm.NewMockCRM(ctrl),
		scanner:   mockscanner.NewMockScanner(ctrl),
		outreach:  mockoutreach.NewMockOutreach(ctrl),
		agents:    &fakeAgents{run: func(context.Context, agents.Name) (*agents.Result, error) { return &agents.Result{}, nil }},
		discovery: &fakeDiscovery{},
		health:    &fakeHealth{},
		usage:     &fakeUsage{},
		mockups:   &fakeMockups{page: []byte("<html>improved</html>")},
		reports:   &fakeReports{dir: t.TempDir()},
	}

	h := v1handler.New(v1handler.Deps{
		CRM:       f.crm,
		Scanner:   f.scanner,
		Outreach:  f.outreach,
		Agents:    f.agents,
		Discovery: f.discovery,
		Health:    f.health,
		Usage:     f.usage,
		Mockups:   f.mockups,
		Reports:   f.reports,
		Prompts: promptFunc(func(context.Context, string) (*llm.Response, error) {
			return &llm.Response{Text: "Acme should fix its alt texts first."}, nil
		}),
		Backends: backendsFunc(func() []browser.BackendStats {
			return []browser.BackendStats{
				{Name: "local", Enabled: true, ActiveScans: 1, Concurrent: 2, DailyScans: 40, DailyLimit: 100},
				{Name: "remote", Enabled: true, ActiveScans: 3, Concurrent: 3},
			}
		}),
		Environment: "test",
	})
	f.router = chi.NewRouter()
	h.Routes(f.router, nil)

	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, msg, decodeBody[v1handler.ErrorResponse](t, rec).Error)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	f.crm.EXPECT().Health(gomock.Any()).Return(nil)
	rec := f.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[map[string]any](t, rec)
	require.Equal(t, "healthy", res["status"])
	require.Equal(t, "connected", res["database"])
	require.Equal(t, "test", res["environment"])

	f.crm.EXPECT().Health(gomock.Any()).Return(errors.New("connection refused"))
	rec = f.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	res = decodeBody[map[string]any](t, rec)
	require.Equal(t, "degraded", res["status"])
	require.Equal(t, "disconnected", res["database"])
}

func TestProspectRoutes(t *testing.T) {
	f := newFixture(t)
	id := domain.ProspectID(uuid.New())

	requireError(t, f.do(t, http.MethodGet, "/api/prospects/nope", ""), http.StatusBadRequest, "Invalid prospect ID")

	f.crm.EXPECT().Prospect(gomock.Any(), id).Return(nil, serrors.With(serrors.ErrNotFound, "Prospect not found"))
	requireError(t, f.do(t, http.MethodGet, "/api/prospects/"+id.String(), ""), http.StatusNotFound, "Prospect not found")

	requireError(t, f.do(t, http.MethodPost, "/api/prospects", "{"), http.StatusBadRequest, "Invalid prospect data")

	f.crm.EXPECT().CreateProspect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.ProspectInput) (*domain.Prospect, error) {
			require.Equal(t, "Acme", *in.Company)

			return &domain.Prospect{ID: id, Company: *in.Company}, nil
		})
	rec := f.do(t, http.MethodPost, "/api/prospects", `{"company":"Acme","website":"https://acme.test"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, id, decodeBody[domain.Prospect](t, rec).ID)

	f.crm.EXPECT().DeleteProspect(gomock.Any(), id).Return(nil)
	require.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/prospects/"+id.String(), "").Code)
}

func TestQueueForScanning(t *testing.T) {
	f := newFixture(t)

	requireError(t, f.do(t, http.MethodPost, "/api/discovery/queue-for-scanning", `{"prospectIds":[]}`),
		http.StatusBadRequest, "Prospect IDs array is required")

	id := domain.ProspectID(uuid.New())
	f.crm.EXPECT().QueueProspects(gomock.Any(), []domain.ProspectID{id}).
		Return([]domain.Prospect{{ID: id, Status: domain.ProspectStatusQueued}}, nil)
	rec := f.do(t, http.MethodPost, "/api/discovery/queue-for-scanning",
		`{"prospectIds":["`+id.String()+`","not-an-id"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[map[string]any](t, rec)
	require.EqualValues(t, 1, res["queued"])
	require.Equal(t, "1 prospects queued. Planner Agent will pick them up within the next hour.", res["message"])

	f.crm.EXPECT().QueueProspects(gomock.Any(), []domain.ProspectID{id}).Return([]domain.Prospect{{ID: id}}, nil)
	res = decodeBody[map[string]any](t, f.do(t, http.MethodPost, "/api/tasks/queue-prospects",
		`{"prospectIds":["`+id.String()+`"]}`))
	require.Equal(t, "planner-agent-wakes-up", res["nextTask"])
}

func TestQuickWin(t *testing.T) {
	f := newFixture(t)

	requireError(t, f.do(t, http.MethodPost, "/api/scan/quick-win", `{"url":" "}`),
		http.StatusBadRequest, "Website URL is required")

	f.scanner.EXPECT().Enqueue(gomock.Any(), scanner.ScanRequest{
		URL:           "https://acme.test",
		CompanyName:   "Acme",
		ProspectEmail: "ceo@acme.test",
	}).Return(&domain.ScanJob{ID: domain.ScanJobID(uuid.New()), Status: domain.ScanJobStatusPending}, nil)
	rec := f.do(t, http.MethodPost, "/api/scan/quick-win",
		`{"url":"https://acme.test","companyName":"Acme","prospectEmail":"ceo@acme.test"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, domain.ScanJobStatusPending, decodeBody[domain.ScanJob](t, rec).Status)
}

func TestSendQuickOutreach(t *testing.T) {
	f := newFixture(t)

	requireError(t, f.do(t, http.MethodPost, "/api/outreach", `{"prospectEmail":"a@b.test"}`),
		http.StatusBadRequest, "Email and company name are required")

	f.outreach.EXPECT().SendQuick(gomock.Any(), "a@b.test", "Acme").Return(nil)
	rec := f.do(t, http.MethodPost, "/api/outreach", `{"prospectEmail":"a@b.test","companyName":"Acme"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Outreach email sent successfully", decodeBody[map[string]string](t, rec)["message"])
}

func TestScanReportPDF(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/scan/"+uuid.NewString()+"/report/pdf", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestMockupRoutes(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()

	rec := f.do(t, http.MethodGet, "/api/scan/"+id+"/mockup/html", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "improved-website.html")
	require.Equal(t, "<html>improved</html>", rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/scan/"+id+"/mockup/download", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "improved-website.zip")

	requireError(t, f.do(t, http.MethodGet, "/api/scan/not-a-uuid/mockup/css", ""), http.StatusBadRequest, "Invalid scan ID format")

	f.mockups.err = serrors.With(serrors.ErrNotFound, "Mockup not found")
	requireError(t, f.do(t, http.MethodGet, "/api/scan/"+id+"/mockup/download", ""), http.StatusNotFound, "Mockup not found")
}

func TestMockupPreview(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()

	rec := f.do(t, http.MethodGet, "/mockups/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "<html>improved</html>", rec.Body.String())

	rec = f.do(t, http.MethodGet, "/mockups/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "<h1>Invalid scan ID</h1>", rec.Body.String())

	f.mockups.err = serrors.With(serrors.ErrNotFound, "Scan job not found")
	rec = f.do(t, http.MethodGet, "/mockups/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "<h1>Scan job not found</h1>", rec.Body.String())

	f.mockups.err = errors.New("disk on fire")
	rec = f.do(t, http.MethodGet, "/mockups/"+id, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "<h1>Error loading mockup</h1>", rec.Body.String())
}

func TestBackendStats_HidesQuota(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/backends/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "dailyLimit")
	res := decodeBody[[]map[string]any](t, rec)
	require.Len(t, res, 2)
	require.Equal(t, true, res[0]["available"])
	require.Equal(t, false, res[1]["available"])
}

func TestRunAgent(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/agents/planner/run", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Planner agent executed successfully", decodeBody[map[string]any](t, rec)["message"])

	f.agents.run = func(_ context.Context, name agents.Name) (*agents.Result, error) {
		return nil, serrors.With(serrors.ErrConflict, "%s agent is already running", name)
	}
	requireError(t, f.do(t, http.MethodPost, "/api/agents/executor/run", ""), http.StatusConflict,
		"executor agent is already running")

	res := decodeBody[agents.Status](t, f.do(t, http.MethodGet, "/api/agents/status", ""))
	require.Equal(t, agents.StatusRunning, res.Monitor.Status)
}

func TestGenerateOutputsTask(t *testing.T) {
	f := newFixture(t)
	id := domain.ScanJobID(uuid.New())
	path := "/api/tasks/generate-outputs/" + id.String()

	f.scanner.EXPECT().ScanJob(gomock.Any(), id).Return(&domain.ScanJob{ID: id, Status: domain.ScanJobStatusRunning}, nil)
	requireError(t, f.do(t, http.MethodPost, path, ""), http.StatusBadRequest,
		"Scan must be completed before generating outputs")

	violations := []domain.Violation{
		{Type: "image-alt", Severity: domain.SeverityCritical},
		{Type: "html-lang", Severity: domain.SeveritySerious},
		{Type: "document-title", Severity: domain.SeveritySerious},
		{Type: "heading-order", Severity: domain.SeverityModerate},
	}
	f.scanner.EXPECT().ScanJob(gomock.Any(), id).Return(&domain.ScanJob{ID: id, Status: domain.ScanJobStatusCompleted}, nil)
	f.scanner.EXPECT().Results(gomock.Any(), id).Return(violations, nil)
	f.scanner.EXPECT().Report(gomock.Any(), id).Return(&domain.AuditReport{Company: "Acme"}, nil)

	rec := f.do(t, http.MethodPost, path+"?fullDetails=true", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.True(t, f.reports.in.FullDetails)
	require.True(t, f.reports.in.IncludeRoadmap)
	require.Equal(t, "Acme", f.reports.in.Company)
	require.Len(t, f.reports.in.Violations, 4)

	var res struct {
		Outputs struct {
			PDF struct {
				URL     string `json:"url"`
				Compact bool   `json:"compact"`
			} `json:"pdf"`
			Suggestions   []map[string]any `json:"suggestions"`
			DashboardLink string           `json:"dashboardLink"`
		} `json:"outputs"`
		NextTask string `json:"nextTask"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, report.PublicURL(id), res.Outputs.PDF.URL)
	require.True(t, res.Outputs.PDF.Compact)
	require.Len(t, res.Outputs.Suggestions, 3)
	require.Equal(t, "image-alt", res.Outputs.Suggestions[0]["type"])
	require.Equal(t, "/results/"+id.String(), res.Outputs.DashboardLink)
	require.Equal(t, "send-outreach", res.NextTask)
}

func TestScheduleReauditTask(t *testing.T) {
	f := newFixture(t)
	id := domain.ProspectID(uuid.New())
	at := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	f.scanner.EXPECT().ScheduleReaudit(gomock.Any(), id, 7*24*time.Hour).Return(at, nil)
	rec := f.do(t, http.MethodPost, "/api/tasks/schedule-reaudit/"+id.String(), `{"afterDays":7}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[map[string]any](t, rec)
	require.Equal(t, at.Format(time.RFC3339), res["nextAuditDate"])
	require.Equal(t, "await-schedule", res["nextTask"])

	f.scanner.EXPECT().ScheduleReaudit(gomock.Any(), id, time.Duration(0)).Return(at, nil)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/tasks/schedule-reaudit/"+id.String(), "").Code)
}

func TestRecalculateICPTask(t *testing.T) {
	f := newFixture(t)
	id := domain.ProspectID(uuid.New())

	f.crm.EXPECT().RecalculateICP(gomock.Any(), id).Return(&domain.Prospect{ID: id, ICPScore: 72}, nil)
	rec := f.do(t, http.MethodPatch, "/api/tasks/recalculate-icp/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 72, decodeBody[map[string]any](t, rec)["newIcpScore"])
}

func TestMonitorRoutes(t *testing.T) {
	f := newFixture(t)

	requireError(t, f.do(t, http.MethodPost, "/api/monitor/health-check", `{}`), http.StatusBadRequest, "URL is required")

	f.health.cached = true
	rec := f.do(t, http.MethodPost, "/api/monitor/health-check", `{"url":"https://acme.test"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, monitor.CacheHit, rec.Header().Get(monitor.CacheHeader))

	requireError(t, f.do(t, http.MethodPost, "/api/monitor/health-batch", `{"urls":[]}`), http.StatusBadRequest,
		"URLs array is required")
	res := decodeBody[map[string]any](t, f.do(t, http.MethodPost, "/api/monitor/health-batch",
		`{"urls":["https://a.test","https://b.test"]}`))
	require.EqualValues(t, 2, res["checked"])

	requireError(t, f.do(t, http.MethodPost, "/api/monitor/suggestions", `{}`), http.StatusBadRequest,
		"Violations array is required")
	rec = f.do(t, http.MethodPost, "/api/monitor/suggestions", `{"violations":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeBody[map[string]map[string]any](t, f.do(t, http.MethodGet, "/api/monitor/stats", ""))
	require.EqualValues(t, 7, stats["dataOptimizer"]["totalCalls"])
	require.EqualValues(t, 2, stats["keywordScanner"]["totalAPICallsUsed"])
	require.EqualValues(t, 3, stats["healthCheck"]["totalChecks"])

	rec = f.do(t, http.MethodPost, "/api/monitor/reset", "")
	require.Equal(t, "All metrics reset successfully", decodeBody[map[string]string](t, rec)["message"])
	require.True(t, f.usage.reset)
	require.True(t, f.discovery.cleared)
	require.True(t, f.health.cleared)
}

func TestMetaPrompts(t *testing.T) {
	f := newFixture(t)

	requireError(t, f.do(t, http.MethodGet, "/api/meta-prompts/agent-instructions/janitor", ""),
		http.StatusBadRequest, "Unknown agent type: janitor")

	res := decodeBody[map[string]any](t, f.do(t, http.MethodGet, "/api/meta-prompts/agent-instructions/planner", ""))
	require.Equal(t, "planner", res["agentType"])
	require.NotEmpty(t, res["prompt"])
	require.NotContains(t, res, "completion")

	res = decodeBody[map[string]any](t, f.do(t, http.MethodPost, "/api/meta-prompts/outreach",
		`{"company":"Acme","website":"https://acme.test","touchNumber":2,"execute":true}`))
	require.EqualValues(t, 2, res["touchNumber"])
	require.Contains(t, res, "completion")
}

func TestDoNotContact(t *testing.T) {
	f := newFixture(t)

	f.outreach.EXPECT().AddToDoNotContact(gomock.Any(), domain.DoNotContact{Email: "a@b.test", Reason: "asked", Permanent: true}).
		Return(&domain.DoNotContact{}, nil)
	rec := f.do(t, http.MethodPost, "/api/ethical/do-not-contact", `{"email":"a@b.test","reason":"asked"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[map[string]any](t, rec)
	require.Equal(t, true, res["success"])
	require.Equal(t, "Added to Do Not Contact list", res["message"])

	f.outreach.EXPECT().AddToDoNotContact(gomock.Any(), gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrBadRequest, domain.ErrDoNotContactTarget, "%s", domain.ErrDoNotContactTarget.Error()))
	requireError(t, f.do(t, http.MethodPost, "/api/ethical/do-not-contact", `{"reason":"asked"}`),
		http.StatusBadRequest, "Must provide email, domain, or prospectId")
}

func TestUnsubscribe(t *testing.T) {
	f := newFixture(t)
	id := domain.ProspectID(uuid.New())

	f.outreach.EXPECT().ProcessUnsubscribe(gomock.Any(), id, "too many emails").Return(nil)
	rec := f.do(t, http.MethodGet, "/unsubscribe/"+id.String()+"?reason=too+many+emails", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "You've been unsubscribed")

	f.outreach.EXPECT().ProcessUnsubscribe(gomock.Any(), id, "").Return(errors.New("db down"))
	rec = f.do(t, http.MethodGet, "/unsubscribe/"+id.String(), "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Unsubscribe failed. Please contact support.", rec.Body.String())
}

func TestClientsAndAnalytics(t *testing.T) {
	f := newFixture(t)

	f.crm.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
		Return(&domain.Client{ID: domain.ClientID(uuid.New()), Name: "Acme", APIKey: "wk_secret"}, nil)
	rec := f.do(t, http.MethodPost, "/api/clients", `{"name":"Acme","email":"ops@acme.test"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "wk_secret", decodeBody[map[string]any](t, rec)["apiKey"])

	requireError(t, f.do(t, http.MethodGet, "/api/analytics?startDate=yesterday", ""), http.StatusBadRequest,
		"Invalid startDate")

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	f.crm.EXPECT().Analytics(gomock.Any(), start, time.Time{}).Return([]domain.AnalyticsDay{}, nil)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/analytics?startDate=2026-10-01", "").Code)
}

func TestRecordEngagement(t *testing.T) {
	f := newFixture(t)
	id := domain.EmailSendID(uuid.New())

	f.outreach.EXPECT().RecordEngagement(gomock.Any(), id, domain.EngagementReplied).
		Return(&domain.EmailSend{ID: id}, nil)
	rec := f.do(t, http.MethodPost, "/api/email/sends/"+id.String()+"/events", `{"kind":"replied"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	requireError(t, f.do(t, http.MethodPost, "/api/email/sends/"+id.String()+"/events", ""),
		http.StatusBadRequest, "Request body is required")
}
