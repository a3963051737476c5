package crm

import (
	"context"
	"time"

	"wcagrep/pkg/domain"
)

// DashboardMetrics are the headline numbers of the dashboard. Rates are
// percentages with one decimal over the last seven days.
type DashboardMetrics struct {
	ActiveProspects int     `json:"activeProspects"`
	ReplyRate       float64 `json:"replyRate"`
	OpenRate        float64 `json:"openRate"`
	DemoBookings    int     `json:"demoBookings"`
	AvgICPScore     int     `json:"avgIcpScore"`
}

// CRM manages prospects and everything attached to them that is not part of
// the scan or outreach lifecycles.
//
//go:generate mockgen -package mockcrm -source=interface.go -destination=mock/mockcrm.go *
type CRM interface {
	// Prospects lists prospects, newest first. An empty status lists all of them.
	Prospects(ctx context.Context, status domain.ProspectStatus) ([]domain.Prospect, error)
	Prospect(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error)
	CreateProspect(ctx context.Context, in domain.ProspectInput) (*domain.Prospect, error)
	UpdateProspect(ctx context.Context, id domain.ProspectID, in domain.ProspectInput) (*domain.Prospect, error)
	DeleteProspect(ctx context.Context, id domain.ProspectID) error
	// QueueProspects moves the given prospects to queued and returns them.
	// Unknown IDs are skipped.
	QueueProspects(ctx context.Context, ids []domain.ProspectID) ([]domain.Prospect, error)
	// RecalculateICP nudges the ICP score of a prospect and stores it.
	RecalculateICP(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error)

	Violations(ctx context.Context, prospectID domain.ProspectID) ([]domain.Violation, error)
	CreateViolation(ctx context.Context, v domain.Violation) (*domain.Violation, error)

	Triggers(ctx context.Context, active *bool) ([]domain.Trigger, error)
	CreateTrigger(ctx context.Context, in domain.TriggerInput) (*domain.Trigger, error)
	UpdateTrigger(ctx context.Context, id domain.TriggerID, in domain.TriggerInput) (*domain.Trigger, error)
	DeleteTrigger(ctx context.Context, id domain.TriggerID) error

	Clients(ctx context.Context) ([]domain.Client, error)
	// CreateClient stores a client. A random API key is generated when none
	// is given; the returned client carries it.
	CreateClient(ctx context.Context, in domain.ClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id domain.ClientID, in domain.ClientInput) (*domain.Client, error)
	// AuthenticateClient returns the client owning key or UNAUTHORIZED.
	AuthenticateClient(ctx context.Context, key string) (*domain.Client, error)

	// Cadences lists the outreach emails of a prospect by touch number.
	Cadences(ctx context.Context, prospectID domain.ProspectID) ([]domain.EmailSend, error)
	// Analytics returns per day aggregates. Zero bounds default to the last 30 days.
	Analytics(ctx context.Context, start, end time.Time) ([]domain.AnalyticsDay, error)
	DashboardMetrics(ctx context.Context) (*DashboardMetrics, error)

	// Seed inserts the sample prospects into an empty database and returns
	// how many were inserted.
	Seed(ctx context.Context) (int, error)
	// Health checks that the database is reachable.
	Health(ctx context.Context) error
}
