package worker

import (
	"context"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"wcagrep/internal/scanner"
	"wcagrep/pkg/logger"
)

// timeoutSlack lets the scanner hit its own deadline, and record the failure,
// before River cancels the job context.
const timeoutSlack = 30 * time.Second

// ScanWorker is a River worker that runs scan jobs. Backend concurrency and
// daily quotas are enforced by the browser pool behind the scanner, so any
// number of scan workers can run side by side.
//
// A missing scan job or an unauditable page cancels the job. Exhausted
// backend quotas snooze it until the next UTC midnight. Other errors are
// retried by River until the attempts run out, at which point the scanner
// has already marked the scan job failed.
type ScanWorker struct {
	river.WorkerDefaults[scanner.ScanJobArgs]

	scanner     scanner.Scanner
	scanTimeout time.Duration
}

// NewScanWorker constructs a ScanWorker. scanTimeout is the per attempt
// timeout of the scanner.
func NewScanWorker(sc scanner.Scanner, scanTimeout time.Duration) *ScanWorker {
	return &ScanWorker{
		scanner:     sc,
		scanTimeout: scanTimeout,
	}
}

// Timeout bounds a single attempt.
func (w *ScanWorker) Timeout(*river.Job[scanner.ScanJobArgs]) time.Duration {
	if w.scanTimeout <= 0 {
		return 0
	}

	return w.scanTimeout + timeoutSlack
}

// Work executes one attempt of a scan job.
func (w *ScanWorker) Work(ctx context.Context, job *river.Job[scanner.ScanJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("scanJobID", job.Args.ScanJobID),
		zap.Int("attempt", job.Attempt))

	if err := w.scanner.Execute(ctx, job.Args.ScanJobID, job.Attempt, job.MaxAttempts); err != nil {
		return jobError(ctx, "execute scan job", err)
	}

	logger.Info(ctx, "scan job executed")

	return nil
}

// ReauditWorker starts a fresh scan of a prospect when its re-audit is due.
type ReauditWorker struct {
	river.WorkerDefaults[scanner.ReauditJobArgs]

	scanner scanner.Scanner
}

func NewReauditWorker(sc scanner.Scanner) *ReauditWorker {
	return &ReauditWorker{scanner: sc}
}

func (w *ReauditWorker) Work(ctx context.Context, job *river.Job[scanner.ReauditJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("prospectID", job.Args.ProspectID))

	scanJob, err := w.scanner.EnqueueProspect(ctx, job.Args.ProspectID)
	if err != nil {
		return jobError(ctx, "queue re-audit", err)
	}

	logger.Info(ctx, "re-audit queued", zap.Stringer("scanJobID", scanJob.ID))

	return nil
}
