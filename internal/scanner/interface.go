package scanner

import (
	"context"
	"time"

	"wcagrep/pkg/domain"
)

// ScanRequest describes a page to audit.
type ScanRequest struct {
	URL string
	// ProspectID links the scan to a prospect whose status follows the scan.
	ProspectID    *domain.ProspectID
	CompanyName   string
	ProspectEmail string
}

//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Scanner interface {
	// Enqueue stores a pending scan job and queues it for execution.
	Enqueue(ctx context.Context, req ScanRequest) (*domain.ScanJob, error)
	// EnqueueProspect queues a scan of the website of a stored prospect.
	EnqueueProspect(ctx context.Context, id domain.ProspectID) (*domain.ScanJob, error)
	ScanJob(ctx context.Context, id domain.ScanJobID) (*domain.ScanJob, error)
	Results(ctx context.Context, id domain.ScanJobID) ([]domain.Violation, error)
	Report(ctx context.Context, id domain.ScanJobID) (*domain.AuditReport, error)
	// Execute runs one attempt of a scan job. attempt is one based.
	Execute(ctx context.Context, id domain.ScanJobID, attempt, maxAttempts int) error
	// ScheduleReaudit schedules a new scan of a prospect after the given delay
	// and returns when it will run. A non-positive delay uses the configured
	// re-audit interval.
	ScheduleReaudit(ctx context.Context, id domain.ProspectID, after time.Duration) (time.Time, error)
}
