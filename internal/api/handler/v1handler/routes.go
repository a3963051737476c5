package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// EventsPath is the live event websocket. Long lived connections must not be
// cut by the request timeout.
const EventsPath = "/api/events"

// Routes registers every v1 route on r. auth guards the /api routes except
// the health check; the unsubscribe link and the mockup preview are public.
func (h *Handler) Routes(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Get("/unsubscribe/{prospectId}", h.Unsubscribe)
	r.Get("/mockups/{id}", h.MockupPreview)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			r.Use(optional(auth))

			r.Route("/prospects", func(r chi.Router) {
				r.Get("/", h.ListProspects)
				r.Post("/", h.CreateProspect)
				r.Get("/{id}", h.GetProspect)
				r.Patch("/{id}", h.UpdateProspect)
				r.Delete("/{id}", h.DeleteProspect)
				r.Get("/{id}/violations", h.ListViolations)
				r.Get("/{id}/cadences", h.ListCadences)
			})
			r.Post("/violations", h.CreateViolation)

			r.Route("/triggers", func(r chi.Router) {
				r.Get("/", h.ListTriggers)
				r.Post("/", h.CreateTrigger)
				r.Patch("/{id}", h.UpdateTrigger)
				r.Delete("/{id}", h.DeleteTrigger)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.ListClients)
				r.Post("/", h.CreateClient)
				r.Patch("/{id}", h.UpdateClient)
			})

			r.Get("/analytics", h.Analytics)
			r.Get("/dashboard/metrics", h.DashboardMetrics)
			r.Get("/backends/stats", h.BackendStats)

			r.With(optional(h.deps.QuickWinLimit)).Post("/scan/quick-win", h.QuickWin)
			r.Post("/outreach", h.SendQuickOutreach)
			r.Route("/scan/{id}", func(r chi.Router) {
				r.Get("/", h.GetScan)
				r.Get("/results", h.ScanResults)
				r.Get("/report", h.ScanReport)
				r.Get("/report/pdf", h.ScanReportPDF)
				r.Post("/regenerate", h.RegenerateMockup)
				r.Get("/mockup/html", h.MockupHTML)
				r.Get("/mockup/css", h.MockupCSS)
				r.Get("/mockup/download", h.MockupDownload)
			})

			r.Get("/agents/status", h.AgentStatus)
			r.Group(func(r chi.Router) {
				r.Use(optional(h.deps.AgentTriggerLimit))
				r.Post("/agents/planner/run", h.RunPlanner)
				r.Post("/agents/executor/run", h.RunExecutor)
			})

			r.Post("/discovery/keywords", h.DiscoverKeywords)
			r.Post("/discovery/queue-for-scanning", h.QueueForScanning)

			r.Route("/meta-prompts", func(r chi.Router) {
				r.Post("/prospect-analysis", h.ProspectAnalysisPrompt)
				r.Post("/outreach", h.OutreachPrompt)
				r.Post("/violation-analysis", h.ViolationAnalysisPrompt)
				r.Get("/agent-instructions/{agentType}", h.AgentInstructionsPrompt)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/discover-prospects", h.DiscoverProspectsTask)
				r.Post("/queue-prospects", h.QueueProspectsTask)
				r.Post("/run-audit/{prospectId}", h.RunAuditTask)
				r.Post("/quick-audit", h.QuickAuditTask)
				r.Post("/generate-outputs/{scanJobId}", h.GenerateOutputsTask)
				r.Post("/send-outreach/{prospectId}", h.SendOutreachTask)
				r.Post("/schedule-reaudit/{prospectId}", h.ScheduleReauditTask)
				r.Patch("/recalculate-icp/{prospectId}", h.RecalculateICPTask)
			})

			r.Route("/monitor", func(r chi.Router) {
				r.Get("/data-usage", h.DataUsage)
				r.Get("/stats", h.MonitorStats)
				r.Post("/health-check", h.HealthCheck)
				r.Post("/health-batch", h.HealthBatch)
				r.Post("/suggestions", h.Suggestions)
				r.Post("/reset", h.ResetMonitor)
			})

			r.Route("/email", func(r chi.Router) {
				r.Post("/generate-draft/{scanJobId}", h.GenerateDraft)
				r.Post("/with-pdf/{scanJobId}", h.EmailWithPDF)
				r.Get("/template/scan-complete/{scanJobId}", h.ScanCompleteTemplate)
				r.Post("/sends/{id}/events", h.RecordEngagement)
			})

			r.Route("/ethical", func(r chi.Router) {
				r.Get("/metrics", h.EthicalMetrics)
				r.Get("/do-not-contact", h.DoNotContactList)
				r.Post("/do-not-contact", h.AddDoNotContact)
			})

			if h.deps.Events != nil {
				r.Get("/events", h.deps.Events)
			}
		})
	})
}

func optional(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return mw
}
