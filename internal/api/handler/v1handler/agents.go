package v1handler

import (
	"net/http"

	"wcagrep/internal/agents"
)

type agentRunResponse struct {
	Message string         `json:"message"`
	Result  *agents.Result `json:"result"`
}

func (h *Handler) AgentStatus(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r, h.deps.Agents.Status())
}

func (h *Handler) RunPlanner(w http.ResponseWriter, r *http.Request) {
	h.runAgent(w, r, agents.Planner, "Planner agent executed successfully")
}

func (h *Handler) RunExecutor(w http.ResponseWriter, r *http.Request) {
	h.runAgent(w, r, agents.Executor, "Executor agent executed successfully")
}

// runAgent runs an agent with the request context. A second trigger while
// the agent runs fails with CONFLICT.
func (h *Handler) runAgent(w http.ResponseWriter, r *http.Request, name agents.Name, msg string) {
	res, err := h.deps.Agents.Run(r.Context(), name)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, agentRunResponse{Message: msg, Result: res})
}
