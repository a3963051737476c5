package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wcagrep/internal/prompts"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/llm"
)

// promptResponse carries a meta-prompt and, when execution was requested,
// the completion of the configured model.
type promptResponse struct {
	Prompt      string        `json:"prompt"`
	TouchNumber *int          `json:"touchNumber,omitempty"`
	AgentType   string        `json:"agentType,omitempty"`
	Completion  *llm.Response `json:"completion,omitempty"`
}

type prospectAnalysisRequest struct {
	prompts.ProspectInput

	Execute bool `json:"execute"`
}

func (h *Handler) ProspectAnalysisPrompt(w http.ResponseWriter, r *http.Request) {
	var req prospectAnalysisRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	prompt, err := prompts.ProspectAnalysis(req.ProspectInput)
	h.writePrompt(w, r, promptResponse{Prompt: prompt}, err, req.Execute)
}

type outreachPromptRequest struct {
	prompts.OutreachInput

	Execute bool `json:"execute"`
}

func (h *Handler) OutreachPrompt(w http.ResponseWriter, r *http.Request) {
	var req outreachPromptRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	prompt, err := prompts.Outreach(req.OutreachInput)
	touch := req.TouchNumber
	h.writePrompt(w, r, promptResponse{Prompt: prompt, TouchNumber: &touch}, err, req.Execute)
}

type violationAnalysisRequest struct {
	Violations []domain.Violation `json:"violations"`
	WCAGScore  int                `json:"wcagScore"`
	Execute    bool               `json:"execute"`
}

func (h *Handler) ViolationAnalysisPrompt(w http.ResponseWriter, r *http.Request) {
	var req violationAnalysisRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	prompt, err := prompts.ViolationAnalysis(req.Violations, req.WCAGScore)
	h.writePrompt(w, r, promptResponse{Prompt: prompt}, err, req.Execute)
}

// AgentInstructionsPrompt takes ?execute=true since it has no body.
func (h *Handler) AgentInstructionsPrompt(w http.ResponseWriter, r *http.Request) {
	agentType := chi.URLParam(r, "agentType")
	execute, _ := strconv.ParseBool(r.URL.Query().Get("execute"))

	prompt, err := prompts.AgentInstructions(agentType)
	h.writePrompt(w, r, promptResponse{Prompt: prompt, AgentType: agentType}, err, execute)
}

func (h *Handler) writePrompt(w http.ResponseWriter, r *http.Request, res promptResponse, err error, execute bool) {
	if err != nil {
		writeError(w, r, err)

		return
	}

	if execute {
		res.Completion, err = h.deps.Prompts.Execute(r.Context(), res.Prompt)
		if err != nil {
			writeError(w, r, err)

			return
		}
	}

	h.ok(w, r, res)
}
