package v1handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"wcagrep/internal/discovery"
	"wcagrep/internal/report"
	"wcagrep/internal/scanner"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/wcag"
)

// The task routes form an agent callable pipeline. Every response names the
// task that should follow.
const (
	nextQueueProspects    = "queue-prospects"
	nextPlannerWakesUp    = "planner-agent-wakes-up"
	nextMonitorProgress   = "monitor-progress"
	nextSendOutreach      = "send-outreach"
	nextMonitorEngagement = "monitor-engagement"
	nextAwaitSchedule     = "await-schedule"
)

// topSuggestions is the number of suggestions returned with generated outputs.
const topSuggestions = 3

type discoverTaskResponse struct {
	Discovered int                  `json:"discovered"`
	Prospects  []domain.Prospect    `json:"prospects"`
	NextTask   string               `json:"nextTask"`
	DataUsage  discovery.UsageStats `json:"dataUsage"`
}

func (h *Handler) DiscoverProspectsTask(w http.ResponseWriter, r *http.Request) {
	var req discovery.Request
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Discovery.Discover(r.Context(), req)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, discoverTaskResponse{
		Discovered: res.Discovered,
		Prospects:  res.Prospects,
		NextTask:   nextQueueProspects,
		DataUsage:  h.deps.Discovery.UsageStats(),
	})
}

func (h *Handler) QueueProspectsTask(w http.ResponseWriter, r *http.Request) {
	prospects, ok := h.queueProspects(w, r)
	if !ok {
		return
	}

	h.ok(w, r, queueResponse{
		Queued:    len(prospects),
		Prospects: prospects,
		NextTask:  nextPlannerWakesUp,
	})
}

type auditTaskResponse struct {
	ScanJobID domain.ScanJobID     `json:"scanJobId"`
	Status    domain.ScanJobStatus `json:"status"`
	NextTask  string               `json:"nextTask"`
}

func (h *Handler) RunAuditTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "prospectId", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	job, err := h.deps.Scanner.EnqueueProspect(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, auditTaskResponse{ScanJobID: job.ID, Status: job.Status, NextTask: nextMonitorProgress})
}

type quickAuditRequest struct {
	URL         string `json:"url"`
	CompanyName string `json:"companyName"`
}

func (h *Handler) QuickAuditTask(w http.ResponseWriter, r *http.Request) {
	var req quickAuditRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "URL is required"))

		return
	}

	job, err := h.deps.Scanner.Enqueue(r.Context(), scanner.ScanRequest{URL: req.URL, CompanyName: req.CompanyName})
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, auditTaskResponse{ScanJobID: job.ID, Status: job.Status, NextTask: nextMonitorProgress})
}

type pdfOutput struct {
	URL     string `json:"url"`
	Compact bool   `json:"compact"`
}

type outputs struct {
	PDF           pdfOutput         `json:"pdf"`
	Suggestions   []wcag.Suggestion `json:"suggestions"`
	DashboardLink string            `json:"dashboardLink"`
}

type outputsTaskResponse struct {
	ScanJobID domain.ScanJobID `json:"scanJobId"`
	Outputs   outputs          `json:"outputs"`
	NextTask  string           `json:"nextTask"`
}

// GenerateOutputsTask renders the compact report of a completed scan and
// returns its top suggestions. ?fullDetails=true lists every violation.
func (h *Handler) GenerateOutputsTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "scanJobId", domain.ParseScanJobID, "scan job")
	if err != nil {
		writeError(w, r, err)

		return
	}

	job, err := h.deps.Scanner.ScanJob(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if job.Status != domain.ScanJobStatusCompleted {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "Scan must be completed before generating outputs"))

		return
	}

	violations, err := h.deps.Scanner.Results(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	company := job.CompanyName
	if audit, err := h.deps.Scanner.Report(r.Context(), id); err == nil && audit.Company != "" {
		company = audit.Company
	}

	fullDetails, _ := strconv.ParseBool(r.URL.Query().Get("fullDetails"))
	file, err := h.deps.Reports.Compact(r.Context(), report.Input{
		ScanJob:        *job,
		Company:        company,
		Violations:     violations,
		FullDetails:    fullDetails,
		IncludeRoadmap: true,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	suggestions := wcag.Suggest(violations).Prioritized
	if len(suggestions) > topSuggestions {
		suggestions = suggestions[:topSuggestions]
	}

	h.ok(w, r, outputsTaskResponse{
		ScanJobID: id,
		Outputs: outputs{
			PDF:           pdfOutput{URL: file.URL, Compact: true},
			Suggestions:   suggestions,
			DashboardLink: "/results/" + id.String(),
		},
		NextTask: nextSendOutreach,
	})
}

type outreachTaskResponse struct {
	ProspectID domain.ProspectID     `json:"prospectId"`
	Status     domain.ProspectStatus `json:"status"`
	NextTask   string                `json:"nextTask"`
}

func (h *Handler) SendOutreachTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "prospectId", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	p, err := h.deps.Outreach.SendOutreach(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, outreachTaskResponse{ProspectID: id, Status: p.Status, NextTask: nextMonitorEngagement})
}

type reauditRequest struct {
	// AfterDays overrides the configured re-audit interval.
	AfterDays int `json:"afterDays"`
}

type reauditTaskResponse struct {
	ProspectID    domain.ProspectID `json:"prospectId"`
	NextAuditDate time.Time         `json:"nextAuditDate"`
	NextTask      string            `json:"nextTask"`
}

func (h *Handler) ScheduleReauditTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "prospectId", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req reauditRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if req.AfterDays < 0 {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "afterDays must not be negative"))

		return
	}

	at, err := h.deps.Scanner.ScheduleReaudit(r.Context(), id, time.Duration(req.AfterDays)*24*time.Hour)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, reauditTaskResponse{ProspectID: id, NextAuditDate: at, NextTask: nextAwaitSchedule})
}

type icpTaskResponse struct {
	ProspectID  domain.ProspectID `json:"prospectId"`
	NewICPScore int               `json:"newIcpScore"`
	Updated     *domain.Prospect  `json:"updated"`
}

func (h *Handler) RecalculateICPTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "prospectId", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	p, err := h.deps.CRM.RecalculateICP(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, icpTaskResponse{ProspectID: id, NewICPScore: p.ICPScore, Updated: p})
}
