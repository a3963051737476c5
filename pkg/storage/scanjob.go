package storage

import (
	"context"

	"wcagrep/pkg/domain"
)

// ScanResult is the outcome of a successful scan attempt.
type ScanResult struct {
	Counts  domain.SeverityCounts
	Score   int
	HTML    string
	Title   string
	Backend string
}

// ScanJobUpdates describes a state transition of a scan job. updated_at is
// always refreshed; completed_at is set when Status is completed.
type ScanJobUpdates struct {
	// Status is the new status of the job.
	Status domain.ScanJobStatus
	// IncrementAttempts adds one to the attempt counter.
	IncrementAttempts bool
	// LastError sets the last error text when non-nil. An empty string clears it.
	LastError *string
	// Result stores the audit outcome when non-nil.
	Result *ScanResult
}

// ScanJobStorage defines persistence operations on scan jobs.
type ScanJobStorage interface {
	// StoreScanJob inserts a scan job and returns the stored row.
	StoreScanJob(ctx context.Context, job domain.ScanJob) (*domain.ScanJob, error)
	// ScanJobByID returns a scan job or nil.
	ScanJobByID(ctx context.Context, id domain.ScanJobID) (*domain.ScanJob, error)
	// UpdateScanJob applies updates and returns the updated row, or nil.
	UpdateScanJob(ctx context.Context, id domain.ScanJobID, updates ScanJobUpdates) (*domain.ScanJob, error)
	// LatestScanJobByProspect returns the most recent scan job of a prospect, or nil.
	LatestScanJobByProspect(ctx context.Context, id domain.ProspectID) (*domain.ScanJob, error)
	// AuditReport returns a completed scan job joined with its prospect, or nil
	// when the job does not exist or is not completed.
	AuditReport(ctx context.Context, id domain.ScanJobID) (*domain.AuditReport, error)
}

// ViolationStorage defines persistence operations on violations.
type ViolationStorage interface {
	// StoreViolations inserts violations and returns the stored rows.
	StoreViolations(ctx context.Context, violations ...domain.Violation) ([]domain.Violation, error)
	// ViolationsByProspect lists the violations of a prospect, most severe first.
	ViolationsByProspect(ctx context.Context, id domain.ProspectID) ([]domain.Violation, error)
	// ViolationsByScanJob lists the violations found by a scan job, most severe first.
	ViolationsByScanJob(ctx context.Context, id domain.ScanJobID) ([]domain.Violation, error)
	// DeleteViolationsByScanJob removes the violations found by a scan job.
	DeleteViolationsByScanJob(ctx context.Context, id domain.ScanJobID) error
}
