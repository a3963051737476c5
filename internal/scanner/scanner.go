package scanner

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"wcagrep/internal/config"
	"wcagrep/internal/events"
	"wcagrep/internal/triggers"
	"wcagrep/pkg/browser"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/metrics"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
	"wcagrep/pkg/wcag"
)

var tracer = otel.Tracer("wcagrep/internal/scanner") //nolint: gochecknoglobals

// Options configure how scan jobs are enqueued and executed.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a scan job before marking it failed.
	MaxAttempts int
	// ScanTimeout bounds one attempt, fetch and analysis included. Zero means
	// the attempt is bounded by the caller's context only.
	ScanTimeout time.Duration
	// ReauditInterval is the default delay of ScheduleReaudit.
	ReauditInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:     cfg.Scanner.MaxAttempts,
		ScanTimeout:     cfg.Scanner.ScanTimeout,
		ReauditInterval: cfg.Scanner.ReauditInterval,
	}
}

// scanner is the concrete implementation of the Scanner interface.
// It coordinates persistence, job enqueueing and page fetching.
type scanner struct {
	options   Options
	storage   storage.Storage
	pool      *browser.Pool
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Enqueue stores a pending scan job and the river job executing it in one
// transaction, so neither is visible without the other. The pending job is
// returned right away; clients poll ScanJob or follow the event stream.
func (s *scanner) Enqueue(ctx context.Context, req ScanRequest) (*domain.ScanJob, error) {
	normalized, err := validateURL(req.URL)
	if err != nil {
		return nil, err
	}

	var job *domain.ScanJob
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if req.ProspectID != nil {
			prospect, err := tx.ProspectByID(ctx, *req.ProspectID)
			if err != nil {
				return fmt.Errorf("could not get prospect: %w", err)
			}
			if prospect == nil {
				return serrors.With(serrors.ErrNotFound, "Prospect not found")
			}
		}

		job, err = tx.StoreScanJob(ctx, domain.ScanJob{
			URL:           normalized,
			ProspectID:    req.ProspectID,
			Status:        domain.ScanJobStatusPending,
			CompanyName:   req.CompanyName,
			ProspectEmail: req.ProspectEmail,
		})
		if err != nil {
			return fmt.Errorf("could not store scan job: %w", err)
		}

		if _, err := tx.AddJob(ctx, ScanJobArgs{
			ScanJobID:   job.ID,
			maxAttempts: s.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue scan: %w", err)
	}

	logger.Info(ctx, "scan job queued", zap.Stringer("scanJobID", job.ID), zap.String("URL", job.URL))
	s.publisher.Publish(ctx, domain.ScanEvent(domain.EventScanQueued, *job))

	return job, nil
}

// EnqueueProspect queues a scan of a prospect's website, carrying over its
// company and contact email.
func (s *scanner) EnqueueProspect(ctx context.Context, id domain.ProspectID) (*domain.ScanJob, error) {
	prospect, err := s.storage.ProspectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get prospect: %w", err)
	}
	if prospect == nil || prospect.Website == "" {
		return nil, serrors.With(serrors.ErrNotFound, "Prospect or website not found")
	}

	return s.Enqueue(ctx, ScanRequest{
		URL:           prospect.Website,
		ProspectID:    &prospect.ID,
		CompanyName:   prospect.Company,
		ProspectEmail: prospect.Email,
	})
}

// ScanJob returns a scan job or a not found error.
func (s *scanner) ScanJob(ctx context.Context, id domain.ScanJobID) (*domain.ScanJob, error) {
	job, err := s.storage.ScanJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scan job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Scan job not found")
	}

	return job, nil
}

// Results returns the violations found by a scan job, most severe first.
func (s *scanner) Results(ctx context.Context, id domain.ScanJobID) ([]domain.Violation, error) {
	if _, err := s.ScanJob(ctx, id); err != nil {
		return nil, err
	}

	violations, err := s.storage.ViolationsByScanJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scan results: %w", err)
	}

	return violations, nil
}

// Report returns the audit report of a completed scan job.
func (s *scanner) Report(ctx context.Context, id domain.ScanJobID) (*domain.AuditReport, error) {
	report, err := s.storage.AuditReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get audit report: %w", err)
	}
	if report == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Report not found")
	}

	return report, nil
}

// Execute runs one attempt of a scan job.
//
// A backend lease is acquired before the job is marked running, so a job
// waiting for quota stays pending and the attempt is not counted. The
// RATE_LIMITED error of an exhausted pool is returned as is for the worker to
// snooze the job until the quota resets.
//
// A failed attempt puts the job back to pending and returns the error so the
// queue retries it with backoff. The last attempt, or a page that can never be
// audited, marks the job failed instead.
func (s *scanner) Execute(ctx context.Context, id domain.ScanJobID, attempt, maxAttempts int) error {
	ctx, span := tracer.Start(ctx, "scanner.Execute")
	defer span.End()
	span.SetAttributes(attribute.String("scan_job.id", id.String()), attribute.Int("scan_job.attempt", attempt))

	err := s.execute(ctx, id, attempt, maxAttempts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func (s *scanner) execute(ctx context.Context, id domain.ScanJobID, attempt, maxAttempts int) error {
	job, err := s.storage.ScanJobByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get scan job: %w", err)
	}
	if job == nil {
		return serrors.With(serrors.ErrConflict, "scan job %s no longer exists", id)
	}
	if job.Status == domain.ScanJobStatusCompleted || job.Status == domain.ScanJobStatusFailed {
		logger.Info(ctx, "scan job already finished", zap.String("status", string(job.Status)))

		return nil
	}

	if s.options.ScanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.ScanTimeout)
		defer cancel()
	}

	lease, err := s.pool.Acquire(ctx)
	if err != nil {
		err = fmt.Errorf("could not acquire browser backend: %w", err)
		if _, ok := browser.QuotaExhausted(err); ok {
			return err
		}

		return s.fail(ctx, job, attempt, maxAttempts, err)
	}
	defer lease.Release()

	running, err := s.storage.UpdateScanJob(ctx, id, storage.ScanJobUpdates{
		Status:            domain.ScanJobStatusRunning,
		IncrementAttempts: true,
	})
	if err != nil {
		return fmt.Errorf("could not mark scan job running: %w", err)
	}
	if running == nil {
		return serrors.With(serrors.ErrConflict, "scan job %s no longer exists", id)
	}
	s.publisher.Publish(ctx, domain.ScanEvent(domain.EventScanRunning, *running))

	backend := lease.Backend().Name()
	result, page, err := s.audit(ctx, lease, running.URL)
	if err != nil {
		return s.fail(ctx, running, attempt, maxAttempts, err)
	}

	title := page.Title
	if title == "" {
		title = result.Title
	}

	var completed *domain.ScanJob
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		completed, err = s.complete(ctx, tx, running, storage.ScanResult{
			Counts:  result.Counts,
			Score:   result.Score,
			HTML:    page.HTML,
			Title:   title,
			Backend: backend,
		}, result)

		return err
	}); err != nil {
		return s.fail(ctx, running, attempt, maxAttempts, fmt.Errorf("could not store scan results: %w", err))
	}

	if s.metrics != nil {
		s.metrics.ScansTotal.WithLabelValues(string(domain.ScanJobStatusCompleted)).Inc()
	}
	logger.Info(ctx, "scan job completed",
		zap.String("backend", backend),
		zap.Int("score", result.Score),
		zap.Int("violations", len(result.Violations)))
	s.publisher.Publish(ctx, domain.ScanEvent(domain.EventScanCompleted, *completed))

	return nil
}

func (s *scanner) audit(ctx context.Context, lease *browser.Lease, pageURL string) (*wcag.Result, *browser.Page, error) {
	page, err := lease.Fetch(ctx, pageURL)
	if err != nil {
		return nil, nil, err
	}

	base := page.FinalURL
	if base == "" {
		base = pageURL
	}
	result, err := wcag.Analyze(page.HTML, base)
	if err != nil {
		return nil, nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not analyze page")
	}

	return result, page, nil
}

// complete stores the outcome of a successful attempt. It runs inside a
// transaction so a retry after a partial failure starts from a clean state.
func (s *scanner) complete(ctx context.Context,
	tx storage.AllStorage,
	job *domain.ScanJob,
	res storage.ScanResult,
	result *wcag.Result) (*domain.ScanJob, error) {
	if err := tx.DeleteViolationsByScanJob(ctx, job.ID); err != nil {
		return nil, fmt.Errorf("could not clear previous violations: %w", err)
	}

	if len(result.Violations) > 0 {
		violations := make([]domain.Violation, len(result.Violations))
		for i, v := range result.Violations {
			v.ScanJobID = &job.ID
			v.ProspectID = job.ProspectID
			violations[i] = v
		}
		if _, err := tx.StoreViolations(ctx, violations...); err != nil {
			return nil, fmt.Errorf("could not store violations: %w", err)
		}
	}

	cleared := ""
	completed, err := tx.UpdateScanJob(ctx, job.ID, storage.ScanJobUpdates{
		Status:    domain.ScanJobStatusCompleted,
		LastError: &cleared,
		Result:    &res,
	})
	if err != nil {
		return nil, fmt.Errorf("could not mark scan job completed: %w", err)
	}
	if completed == nil {
		return nil, serrors.With(serrors.ErrConflict, "scan job %s no longer exists", job.ID)
	}

	e := domain.ScanEvent(domain.EventScanCompleted, *completed)
	if completed.ProspectID != nil {
		status := domain.ProspectStatusScanned
		risk := result.LegalRisk().RiskLevel()
		prospect, err := tx.UpdateProspect(ctx, *completed.ProspectID, domain.ProspectInput{
			Status:    &status,
			RiskLevel: &risk,
		})
		if err != nil {
			return nil, fmt.Errorf("could not update prospect: %w", err)
		}
		if prospect != nil {
			e.Data["icp_score"] = prospect.ICPScore
		}
	}

	if _, err := triggers.Dispatch(ctx, tx, e); err != nil {
		return nil, fmt.Errorf("could not dispatch triggers: %w", err)
	}

	return completed, nil
}

// fail records a failed attempt and returns cause for the worker. The job goes
// back to pending while it may still be retried and to failed otherwise.
func (s *scanner) fail(ctx context.Context, job *domain.ScanJob, attempt, maxAttempts int, cause error) error {
	msg := cause.Error()
	logger.Warn(ctx, "scan attempt failed",
		zap.Int("attempt", attempt),
		zap.Int("maxAttempts", maxAttempts),
		zap.Error(cause))

	// the context may be the one that expired
	ctx = context.WithoutCancel(ctx)

	retryable := attempt < maxAttempts && !serrors.Permanent(cause)
	if _, ok := browser.QuotaExhausted(cause); ok {
		// snoozed jobs keep their attempt
		retryable = true
	}

	if retryable {
		if _, err := s.storage.UpdateScanJob(ctx, job.ID, storage.ScanJobUpdates{
			Status:    domain.ScanJobStatusPending,
			LastError: &msg,
		}); err != nil {
			return errors.Join(cause, fmt.Errorf("could not mark scan job pending: %w", err))
		}

		return cause
	}

	var failed *domain.ScanJob
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		failed, err = tx.UpdateScanJob(ctx, job.ID, storage.ScanJobUpdates{
			Status:    domain.ScanJobStatusFailed,
			LastError: &msg,
		})
		if err != nil {
			return fmt.Errorf("could not mark scan job failed: %w", err)
		}
		if failed == nil {
			return nil
		}

		if _, err := triggers.Dispatch(ctx, tx, domain.ScanEvent(domain.EventScanFailed, *failed)); err != nil {
			return fmt.Errorf("could not dispatch triggers: %w", err)
		}

		return nil
	}); err != nil {
		return errors.Join(cause, err)
	}

	if s.metrics != nil {
		s.metrics.ScansTotal.WithLabelValues(string(domain.ScanJobStatusFailed)).Inc()
	}
	if failed != nil {
		s.publisher.Publish(ctx, domain.ScanEvent(domain.EventScanFailed, *failed))
	}

	return cause
}

// ScheduleReaudit inserts a re-audit job that runs after the given delay.
func (s *scanner) ScheduleReaudit(ctx context.Context, id domain.ProspectID, after time.Duration) (time.Time, error) {
	prospect, err := s.storage.ProspectByID(ctx, id)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not get prospect: %w", err)
	}
	if prospect == nil {
		return time.Time{}, serrors.With(serrors.ErrNotFound, "Prospect not found")
	}

	if after <= 0 {
		after = s.options.ReauditInterval
	}
	at := s.now().UTC().Add(after)

	if _, err := s.storage.AddJob(ctx, ReauditJobArgs{ProspectID: id}, &river.InsertOpts{ScheduledAt: at}); err != nil {
		return time.Time{}, fmt.Errorf("could not schedule re-audit: %w", err)
	}

	logger.Info(ctx, "re-audit scheduled", zap.Stringer("prospectID", id), zap.Time("at", at))

	return at, nil
}

// validateURL normalizes raw and checks that it is an absolute http(s) URL.
func validateURL(raw string) (string, error) {
	normalized, err := NormalizeURL(raw)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "Invalid URL format")
	}

	u, err := url.Parse(normalized)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return "", serrors.With(serrors.ErrBadRequest, "Invalid URL format")
	}

	return normalized, nil
}

// New creates a new Scanner that fetches pages through pool and publishes
// lifecycle events to publisher. m may be nil.
func New(st storage.Storage,
	pool *browser.Pool,
	publisher events.Publisher,
	m *metrics.Metrics,
	options Options) Scanner {
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &scanner{
		options:   options,
		storage:   st,
		pool:      pool,
		publisher: publisher,
		metrics:   m,
		now:       time.Now,
	}
}
