package storage

import (
	"context"

	"wcagrep/pkg/domain"
)

// ProspectFilter narrows a prospect listing.
type ProspectFilter struct {
	// Status, when set, restricts the listing to prospects in that status.
	Status domain.ProspectStatus
	// Limit caps the number of rows. Zero means no limit.
	Limit uint
	// OldestFirst orders by creation time ascending instead of newest first.
	OldestFirst bool
}

// ProspectStats aggregates the prospect table for the dashboard.
type ProspectStats struct {
	Total       int
	Active      int
	AvgICPScore float64
}

// ProspectStorage defines persistence operations on prospects.
type ProspectStorage interface {
	// StoreProspects inserts prospects and returns the stored rows.
	StoreProspects(ctx context.Context, prospects ...domain.Prospect) ([]domain.Prospect, error)
	// Prospects lists prospects matching filter.
	Prospects(ctx context.Context, filter ProspectFilter) ([]domain.Prospect, error)
	// ProspectByID returns a prospect or nil.
	ProspectByID(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error)
	// LockProspect returns a prospect or nil and holds a row lock on it until
	// the surrounding transaction ends. Outside a transaction it behaves like
	// ProspectByID.
	LockProspect(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error)
	// ProspectsByHosts returns prospects whose website host, ignoring scheme,
	// port and a leading "www.", is one of hosts.
	ProspectsByHosts(ctx context.Context, hosts []string) ([]domain.Prospect, error)
	// UpdateProspect applies the set fields of in and returns the updated row, or nil.
	UpdateProspect(ctx context.Context, id domain.ProspectID, in domain.ProspectInput) (*domain.Prospect, error)
	// UpdateProspectsStatus sets the status of every existing prospect in ids
	// and returns the updated rows.
	UpdateProspectsStatus(ctx context.Context,
		ids []domain.ProspectID,
		status domain.ProspectStatus) ([]domain.Prospect, error)
	// DeleteProspect removes a prospect and reports whether it existed.
	DeleteProspect(ctx context.Context, id domain.ProspectID) (bool, error)
	// ProspectStats aggregates counts and the average ICP score.
	ProspectStats(ctx context.Context) (ProspectStats, error)
}
