package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/serrors"
)

func (h *Handler) ListTriggers(w http.ResponseWriter, r *http.Request) {
	var active *bool
	if raw := r.URL.Query().Get("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "active must be true or false"))

			return
		}
		active = &v
	}

	triggers, err := h.deps.CRM.Triggers(r.Context(), active)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, triggers)
}

func (h *Handler) CreateTrigger(w http.ResponseWriter, r *http.Request) {
	var in domain.TriggerInput
	if err := decode(w, r, &in); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid trigger data"))

		return
	}

	t, err := h.deps.CRM.CreateTrigger(r.Context(), in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, t)
}

func (h *Handler) UpdateTrigger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseTriggerID, "trigger")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var in domain.TriggerInput
	if err := decode(w, r, &in); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid update data"))

		return
	}

	t, err := h.deps.CRM.UpdateTrigger(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, t)
}

func (h *Handler) DeleteTrigger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseTriggerID, "trigger")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.CRM.DeleteTrigger(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.deps.CRM.Clients(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, clients)
}

// createdClient exposes the API key, which is only ever shown on creation.
type createdClient struct {
	domain.Client

	APIKey string `json:"apiKey"`
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var in domain.ClientInput
	if err := decode(w, r, &in); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid client data"))

		return
	}

	c, err := h.deps.CRM.CreateClient(r.Context(), in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, createdClient{Client: *c, APIKey: c.APIKey})
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseClientID, "client")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var in domain.ClientInput
	if err := decode(w, r, &in); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid update data"))

		return
	}

	c, err := h.deps.CRM.UpdateClient(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, c)
}

// Analytics accepts RFC 3339 timestamps or plain dates for startDate and endDate.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("startDate"), "startDate")
	if err != nil {
		writeError(w, r, err)

		return
	}
	end, err := parseDate(r.URL.Query().Get("endDate"), "endDate")
	if err != nil {
		writeError(w, r, err)

		return
	}

	days, err := h.deps.CRM.Analytics(r.Context(), start, end)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, days)
}

func (h *Handler) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.deps.CRM.DashboardMetrics(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, m)
}

func parseDate(raw, name string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid %s", name)
	}

	return t, nil
}
