package v1handler

import (
	"net/http"

	"wcagrep/internal/outreach"
	"wcagrep/pkg/domain"
)

func (h *Handler) GenerateDraft(w http.ResponseWriter, r *http.Request) {
	id, req, ok := draftRequest(w, r)
	if !ok {
		return
	}

	draft, err := h.deps.Outreach.Draft(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, draft)
}

// EmailWithPDF generates an email with the compact report attached. A bundle
// blocked by the opt-out rules is still a 200 with status blocked-by-ethics.
func (h *Handler) EmailWithPDF(w http.ResponseWriter, r *http.Request) {
	id, req, ok := draftRequest(w, r)
	if !ok {
		return
	}

	bundle, err := h.deps.Outreach.Bundle(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, bundle)
}

func (h *Handler) ScanCompleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "scanJobId", domain.ParseScanJobID, "scan job")
	if err != nil {
		writeError(w, r, err)

		return
	}

	tpl, err := h.deps.Outreach.ScanCompleteTemplate(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, tpl)
}

type engagementRequest struct {
	Kind domain.EngagementKind `json:"kind"`
}

func (h *Handler) RecordEngagement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseEmailSendID, "email send")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req engagementRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	send, err := h.deps.Outreach.RecordEngagement(r.Context(), id, req.Kind)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, send)
}

func draftRequest(w http.ResponseWriter, r *http.Request) (domain.ScanJobID, outreach.DraftRequest, bool) {
	var req outreach.DraftRequest
	id, err := pathID(r, "scanJobId", domain.ParseScanJobID, "scan job")
	if err != nil {
		writeError(w, r, err)

		return id, req, false
	}

	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return id, req, false
	}

	return id, req, true
}
