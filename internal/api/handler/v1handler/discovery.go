package v1handler

import (
	"fmt"
	"net/http"

	"wcagrep/internal/discovery"
	"wcagrep/pkg/domain"
)

func (h *Handler) DiscoverKeywords(w http.ResponseWriter, r *http.Request) {
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

	h.ok(w, r, res)
}

type queueResponse struct {
	Queued    int               `json:"queued"`
	Prospects []domain.Prospect `json:"prospects"`
	Message   string            `json:"message,omitempty"`
	NextTask  string            `json:"nextTask,omitempty"`
}

func (h *Handler) QueueForScanning(w http.ResponseWriter, r *http.Request) {
	prospects, ok := h.queueProspects(w, r)
	if !ok {
		return
	}

	h.ok(w, r, queueResponse{
		Queued:    len(prospects),
		Prospects: prospects,
		Message:   fmt.Sprintf("%d prospects queued. Planner Agent will pick them up within the next hour.", len(prospects)),
	})
}
