package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wcagrep/internal/agents"
	"wcagrep/internal/crm"
	"wcagrep/internal/discovery"
	"wcagrep/internal/mockup"
	"wcagrep/internal/monitor"
	"wcagrep/internal/outreach"
	"wcagrep/internal/report"
	"wcagrep/internal/scanner"
	"wcagrep/pkg/browser"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/llm"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// AgentRunner runs the background agents on demand.
type AgentRunner interface {
	Run(ctx context.Context, name agents.Name) (*agents.Result, error)
	Status() agents.Status
}

// Discoverer finds and stores new prospects.
type Discoverer interface {
	Discover(ctx context.Context, req discovery.Request) (*discovery.Response, error)
	UsageStats() discovery.UsageStats
	ClearCache()
}

// HealthChecker checks prospect websites.
type HealthChecker interface {
	Check(ctx context.Context, url string) (*monitor.HealthResult, error)
	Batch(ctx context.Context, urls []string) ([]monitor.HealthResult, error)
	Stats() monitor.HealthStats
	ClearCache()
}

// UsageReporter reports API usage.
type UsageReporter interface {
	Report() monitor.UsageReport
	QuickStats() monitor.QuickStats
	Reset()
}

// Mockups generates and serves improved website mockups.
type Mockups interface {
	Regenerate(ctx context.Context, id domain.ScanJobID) (*mockup.Result, error)
	HTML(ctx context.Context, id domain.ScanJobID) ([]byte, error)
	CSS(ctx context.Context, id domain.ScanJobID) ([]byte, error)
	Bundle(ctx context.Context, id domain.ScanJobID, w io.Writer) error
}

// Reports generates and serves compact audit reports.
type Reports interface {
	Compact(ctx context.Context, in report.Input) (*report.File, error)
	Open(id domain.ScanJobID) (*os.File, error)
}

// PromptRunner executes meta-prompts against the language model.
type PromptRunner interface {
	Execute(ctx context.Context, prompt string) (*llm.Response, error)
}

// Backends exposes the browser pool usage.
type Backends interface {
	Stats() []browser.BackendStats
}

// Deps are the services behind the v1 routes.
type Deps struct {
	CRM       crm.CRM
	Scanner   scanner.Scanner
	Outreach  outreach.Outreach
	Agents    AgentRunner
	Discovery Discoverer
	Health    HealthChecker
	Usage     UsageReporter
	Mockups   Mockups
	Reports   Reports
	Prompts   PromptRunner
	Backends  Backends
	// Events serves the live event websocket. The route is not mounted when nil.
	Events http.HandlerFunc

	// QuickWinLimit and AgentTriggerLimit wrap the rate limited routes. Nil
	// disables the limit.
	QuickWinLimit     func(http.Handler) http.Handler
	AgentTriggerLimit func(http.Handler) http.Handler

	Environment string
}

type Handler struct {
	deps    Deps
	now     func() time.Time
	started time.Time
}

func New(deps Deps) *Handler {
	return &Handler{
		deps:    deps,
		now:     time.Now,
		started: time.Now(),
	}
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ErrorStatusCode is an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type kindStatus struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var kindStatuses = map[serrors.Kind]kindStatus{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
}

// NewError maps err to a response. Errors without a semantic kind, and
// INTERNAL ones, are logged and answered with a generic message.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	k := serrors.KindOf(err)
	ks, ok := kindStatuses[k]
	if k == nil || !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Error: "internal error",
				Code:  serrors.ErrInternal.Error(),
			},
		}
	}

	if ks.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = ks.message
	}

	return &ErrorStatusCode{
		StatusCode: ks.status,
		Response: ErrorResponse{
			Error: msg,
			Code:  k.Error(),
		},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func (h *Handler) ok(w http.ResponseWriter, r *http.Request, v any) {
	writeJSON(r.Context(), w, http.StatusOK, v)
}

// decode reads a JSON body into v. An empty body is rejected.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "Request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid JSON body")
	}

	return nil
}

// decodeOptional is decode for routes whose body may be omitted.
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid JSON body")
	}

	return nil
}

// pathID parses the named URL parameter with parse.
func pathID[T any](r *http.Request, name string, parse func(string) (T, error), what string) (T, error) {
	raw := chi.URLParam(r, name)
	id, err := parse(raw)
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid %s ID", what)
	}

	return id, nil
}

func attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
