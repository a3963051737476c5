// Package agents runs the background planner and executor that move
// prospects through the scan funnel, and reports their status.
//
// The planner picks queued prospects and starts a scan for each one. The
// executor follows up on prospects being scanned: a completed scan moves the
// prospect to scanned and produces its compact report, a failed scan puts it
// back in the queue for the next planner run.
package agents

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"wcagrep/internal/config"
	"wcagrep/internal/report"
	"wcagrep/internal/scanner"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
)

// Name identifies an agent.
type Name string

const (
	Planner  Name = "planner"
	Executor Name = "executor"
	Monitor  Name = "monitor"
)

// Agent statuses.
const (
	StatusIdle    = "idle"
	StatusRunning = "running"
	StatusError   = "error"
)

// State is the run history of one agent.
type State struct {
	Status    string     `json:"status"`
	LastRun   *time.Time `json:"lastRun"`
	LastError string     `json:"lastError,omitempty"`
	Runs      int        `json:"runs"`
}

// Status reports every agent.
type Status struct {
	Planner  State `json:"planner"`
	Executor State `json:"executor"`
	Monitor  State `json:"monitor"`
}

// Result summarizes one agent run.
type Result struct {
	Agent Name `json:"agent"`
	// Queued is the number of scans started by the planner.
	Queued int `json:"queued"`
	// Scanned is the number of prospects the executor moved to scanned.
	Scanned int `json:"scanned"`
	// Requeued is the number of prospects the executor put back in the queue.
	Requeued int `json:"requeued"`
	// Pending is the number of prospects whose scan is still running.
	Pending int `json:"pending"`
	// Failed counts prospects that could not be processed; see the logs.
	Failed  int    `json:"failed"`
	Message string `json:"message"`
}

// ReportGenerator renders compact audit reports.
type ReportGenerator interface {
	Compact(ctx context.Context, in report.Input) (*report.File, error)
}

type Options struct {
	// PlannerBatchSize caps the prospects the planner schedules per run.
	PlannerBatchSize int
}

func NewOptions(cfg *config.Config) Options {
	return Options{PlannerBatchSize: cfg.Agents.PlannerBatchSize}
}

// Runner runs agents and tracks their state. Runs of different agents may
// overlap; a second run of the same agent fails with CONFLICT.
type Runner struct {
	storage storage.Storage
	scanner scanner.Scanner
	reports ReportGenerator
	options Options
	now     func() time.Time
	started time.Time

	mu     sync.Mutex
	states map[Name]*State
}

func NewRunner(st storage.Storage, sc scanner.Scanner, reports ReportGenerator, options Options) *Runner {
	if options.PlannerBatchSize < 1 {
		options.PlannerBatchSize = 20
	}

	return &Runner{
		storage: st,
		scanner: sc,
		reports: reports,
		options: options,
		now:     time.Now,
		started: time.Now().UTC(),
		states: map[Name]*State{
			Planner:  {Status: StatusIdle},
			Executor: {Status: StatusIdle},
		},
	}
}

// Run runs the named agent with ctx and records the outcome. A panicking run
// is recorded as an error so the agent can run again.
func (r *Runner) Run(ctx context.Context, name Name) (res *Result, err error) {
	var run func(context.Context) (*Result, error)
	switch name {
	case Planner:
		run = r.plan
	case Executor:
		run = r.execute
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "Unknown agent: %s", name)
	}

	r.mu.Lock()
	state := r.states[name]
	if state.Status == StatusRunning {
		r.mu.Unlock()

		return nil, serrors.With(serrors.ErrConflict, "%s agent is already running", name)
	}
	state.Status = StatusRunning
	r.mu.Unlock()

	ctx = logger.WithFields(ctx, zap.String("agent", string(name)))
	logger.Info(ctx, "agent run started")

	defer func() {
		if rec := recover(); rec != nil {
			res, err = nil, fmt.Errorf("%s agent panicked: %v", name, rec)
		}

		r.mu.Lock()
		defer r.mu.Unlock()

		now := r.now().UTC()
		state.LastRun = &now
		state.Runs++
		if err != nil {
			state.Status = StatusError
			state.LastError = err.Error()
			logger.Error(ctx, "agent run failed", zap.Error(err))

			return
		}
		state.Status = StatusIdle
		state.LastError = ""
		logger.Info(ctx, "agent run finished",
			zap.Int("queued", res.Queued),
			zap.Int("scanned", res.Scanned),
			zap.Int("requeued", res.Requeued),
			zap.Int("failed", res.Failed))
	}()

	res, err = run(ctx)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Status returns a snapshot of every agent. The monitor is this process and
// therefore always running.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()

	return Status{
		Planner:  *r.states[Planner],
		Executor: *r.states[Executor],
		Monitor:  State{Status: StatusRunning, LastRun: &now},
	}
}

// plan starts a scan for the oldest queued prospects.
func (r *Runner) plan(ctx context.Context) (*Result, error) {
	queued, err := r.storage.Prospects(ctx, storage.ProspectFilter{
		Status:      domain.ProspectStatusQueued,
		Limit:       uint(r.options.PlannerBatchSize), //nolint: gosec
		OldestFirst: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not list queued prospects: %w", err)
	}

	res := &Result{Agent: Planner}
	var scanning []domain.ProspectID
	for _, p := range queued {
		job, err := r.scanner.EnqueueProspect(ctx, p.ID)
		if err != nil {
			logger.Warn(ctx, "could not queue prospect scan", zap.Stringer("prospectID", p.ID), zap.Error(err))
			res.Failed++

			continue
		}
		logger.Debug(ctx, "prospect scan queued", zap.Stringer("prospectID", p.ID), zap.Stringer("scanJobID", job.ID))
		scanning = append(scanning, p.ID)
	}

	if _, err := r.storage.UpdateProspectsStatus(ctx, scanning, domain.ProspectStatusScanning); err != nil {
		return nil, fmt.Errorf("could not mark prospects scanning: %w", err)
	}
	res.Queued = len(scanning)
	res.Message = fmt.Sprintf("Planner agent queued %d scans", res.Queued)

	return res, nil
}

// execute settles prospects whose scan finished.
func (r *Runner) execute(ctx context.Context) (*Result, error) {
	list, err := r.storage.Prospects(ctx, storage.ProspectFilter{Status: domain.ProspectStatusScanning})
	if err != nil {
		return nil, fmt.Errorf("could not list scanning prospects: %w", err)
	}

	res := &Result{Agent: Executor}
	var scanned, requeued []domain.ProspectID
	for _, p := range list {
		job, err := r.storage.LatestScanJobByProspect(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("could not get latest scan job: %w", err)
		}

		switch {
		case job == nil || job.Status == domain.ScanJobStatusFailed:
			requeued = append(requeued, p.ID)
		case job.Status == domain.ScanJobStatusCompleted:
			scanned = append(scanned, p.ID)
			if err := r.report(ctx, p, *job); err != nil {
				logger.Warn(ctx, "could not generate report", zap.Stringer("scanJobID", job.ID), zap.Error(err))
				res.Failed++
			}
		default:
			res.Pending++
		}
	}

	if _, err := r.storage.UpdateProspectsStatus(ctx, scanned, domain.ProspectStatusScanned); err != nil {
		return nil, fmt.Errorf("could not mark prospects scanned: %w", err)
	}
	if _, err := r.storage.UpdateProspectsStatus(ctx, requeued, domain.ProspectStatusQueued); err != nil {
		return nil, fmt.Errorf("could not requeue prospects: %w", err)
	}
	res.Scanned = len(scanned)
	res.Requeued = len(requeued)
	res.Message = fmt.Sprintf("Executor agent settled %d prospects, %d still scanning", res.Scanned+res.Requeued, res.Pending)

	return res, nil
}

func (r *Runner) report(ctx context.Context, p domain.Prospect, job domain.ScanJob) error {
	violations, err := r.storage.ViolationsByScanJob(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("could not get violations: %w", err)
	}

	_, err = r.reports.Compact(ctx, report.Input{
		ScanJob:        job,
		Company:        p.Company,
		Violations:     violations,
		IncludeRoadmap: true,
	})

	return err //nolint: wrapcheck
}
