package v1handler

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      float64   `json:"uptime"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
}

// Health reports whether the database is reachable. Uptime is in seconds.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	res := healthResponse{
		Status:      "healthy",
		Timestamp:   now.UTC(),
		Uptime:      now.Sub(h.started).Seconds(),
		Environment: h.deps.Environment,
		Database:    "connected",
	}
	status := http.StatusOK
	if err := h.deps.CRM.Health(r.Context()); err != nil {
		logger.Warn(r.Context(), "health check failed", zap.Error(err))
		res.Status = "degraded"
		res.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	writeJSON(r.Context(), w, status, res)
}

func (h *Handler) ListProspects(w http.ResponseWriter, r *http.Request) {
	prospects, err := h.deps.CRM.Prospects(r.Context(), domain.ProspectStatus(r.URL.Query().Get("status")))
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, prospects)
}

func (h *Handler) GetProspect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	p, err := h.deps.CRM.Prospect(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, p)
}

func (h *Handler) CreateProspect(w http.ResponseWriter, r *http.Request) {
	var in domain.ProspectInput
	if err := decode(w, r, &in); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid prospect data"))

		return
	}

	p, err := h.deps.CRM.CreateProspect(r.Context(), in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, p)
}

func (h *Handler) UpdateProspect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var in domain.ProspectInput
	if err := decode(w, r, &in); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid update data"))

		return
	}

	p, err := h.deps.CRM.UpdateProspect(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, p)
}

func (h *Handler) DeleteProspect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.CRM.DeleteProspect(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListViolations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	violations, err := h.deps.CRM.Violations(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, violations)
}

func (h *Handler) CreateViolation(w http.ResponseWriter, r *http.Request) {
	var v domain.Violation
	if err := decode(w, r, &v); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid violation data"))

		return
	}

	created, err := h.deps.CRM.CreateViolation(r.Context(), v)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (h *Handler) ListCadences(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ParseProspectID, "prospect")
	if err != nil {
		writeError(w, r, err)

		return
	}

	sends, err := h.deps.CRM.Cadences(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.ok(w, r, sends)
}

type queueRequest struct {
	ProspectIDs []string `json:"prospectIds"`
}

// ids parses the prospect IDs of a queue request. Malformed IDs are skipped
// like unknown ones.
func (q queueRequest) ids() ([]domain.ProspectID, error) {
	if len(q.ProspectIDs) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Prospect IDs array is required")
	}

	ids := make([]domain.ProspectID, 0, len(q.ProspectIDs))
	for _, raw := range q.ProspectIDs {
		id, err := domain.ParseProspectID(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (h *Handler) queueProspects(w http.ResponseWriter, r *http.Request) ([]domain.Prospect, bool) {
	var req queueRequest
	if err := decodeOptional(w, r, &req); err != nil {
		writeError(w, r, err)

		return nil, false
	}

	ids, err := req.ids()
	if err != nil {
		writeError(w, r, err)

		return nil, false
	}

	prospects := []domain.Prospect{}
	if len(ids) > 0 {
		prospects, err = h.deps.CRM.QueueProspects(r.Context(), ids)
		if err != nil {
			writeError(w, r, err)

			return nil, false
		}
	}

	logger.Info(r.Context(), "prospects queued for scanning", zap.Int("count", len(prospects)))

	return prospects, true
}
