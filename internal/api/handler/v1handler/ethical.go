package v1handler

import (
	"net/http"

	"go.uber.org/zap"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
)

const unsubscribedPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Unsubscribed Successfully</title>
    <style>
      body { font-family: sans-serif; max-width: 600px; margin: 50px auto; padding: 20px; text-align: center; }
      h1 { color: #10b981; }
      p { color: #6b7280; line-height: 1.6; }
    </style>
  </head>
  <body>
    <h1>&#10003; You've been unsubscribed</h1>
    <p>You won't receive any further emails from us. We respect your decision.</p>
    <p>If this was a mistake, please contact us directly.</p>
  </body>
</html>
`

// Unsubscribe is the link of every outreach email footer. Recipients open it
// in a browser, so it answers with HTML.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "prospectId", domain.ParseProspectID, "prospect")
	if err == nil {
		err = h.deps.Outreach.ProcessUnsubscribe(r.Context(), id, r.URL.Query().Get("reason"))
	}
	if err != nil {
		logger.Error(r.Context(), "unsubscribe failed", zap.Error(err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		writeBody(r, w, []byte("Unsubscribe failed. Please contact support."))

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	writeBody(r, w, []byte(unsubscribedPage))
}

func (h *Handler) EthicalMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.deps.Outreach.Metrics(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, m)
}

func (h *Handler) DoNotContactList(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Outreach.DoNotContactList(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, list)
}

type doNotContactRequest struct {
	Email      string             `json:"email"`
	Domain     string             `json:"domain"`
	ProspectID *domain.ProspectID `json:"prospectId"`
	Reason     string             `json:"reason"`
	// Permanent defaults to true.
	Permanent *bool `json:"permanent"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) AddDoNotContact(w http.ResponseWriter, r *http.Request) {
	var req doNotContactRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	permanent := true
	if req.Permanent != nil {
		permanent = *req.Permanent
	}

	if _, err := h.deps.Outreach.AddToDoNotContact(r.Context(), domain.DoNotContact{
		Email:      req.Email,
		Domain:     req.Domain,
		ProspectID: req.ProspectID,
		Reason:     req.Reason,
		Permanent:  permanent,
	}); err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, successResponse{Success: true, Message: "Added to Do Not Contact list"})
}
