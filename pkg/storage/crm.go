package storage

import (
	"context"
	"time"

	"wcagrep/pkg/domain"
)

// TriggerStorage defines persistence operations on triggers.
type TriggerStorage interface {
	// Triggers lists triggers, optionally filtered by their active flag.
	Triggers(ctx context.Context, active *bool) ([]domain.Trigger, error)
	// TriggerByID returns a trigger or nil.
	TriggerByID(ctx context.Context, id domain.TriggerID) (*domain.Trigger, error)
	// StoreTrigger inserts a trigger and returns the stored row.
	StoreTrigger(ctx context.Context, trigger domain.Trigger) (*domain.Trigger, error)
	// UpdateTrigger overwrites the mutable fields of trigger and returns the
	// updated row, or nil.
	UpdateTrigger(ctx context.Context, trigger domain.Trigger) (*domain.Trigger, error)
	// DeleteTrigger removes a trigger and reports whether it existed.
	DeleteTrigger(ctx context.Context, id domain.TriggerID) (bool, error)
}

// ClientStorage defines persistence operations on API clients.
type ClientStorage interface {
	// Clients lists every client, newest first.
	Clients(ctx context.Context) ([]domain.Client, error)
	// ClientByID returns a client or nil.
	ClientByID(ctx context.Context, id domain.ClientID) (*domain.Client, error)
	// ClientByAPIKey returns the client owning key, or nil.
	ClientByAPIKey(ctx context.Context, key string) (*domain.Client, error)
	// StoreClient inserts a client and returns the stored row.
	StoreClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	// UpdateClient overwrites the mutable fields of client and returns the
	// updated row, or nil.
	UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error)
}

// DoNotContactQuery describes a recipient checked against the do-not-contact list.
type DoNotContactQuery struct {
	ProspectID *domain.ProspectID
	Email      string
	Domain     string
}

// DoNotContactStorage defines persistence operations on the do-not-contact list.
type DoNotContactStorage interface {
	// StoreDoNotContact inserts an entry and returns the stored row.
	StoreDoNotContact(ctx context.Context, entry domain.DoNotContact) (*domain.DoNotContact, error)
	// DoNotContactList lists every entry, newest first.
	DoNotContactList(ctx context.Context) ([]domain.DoNotContact, error)
	// MatchDoNotContact returns the first entry matching any set field of q,
	// comparing email and domain case-insensitively, or nil.
	MatchDoNotContact(ctx context.Context, q DoNotContactQuery) (*domain.DoNotContact, error)
	// BlockedDomains returns the subset of domains present on the list.
	BlockedDomains(ctx context.Context, domains []string) ([]string, error)
}

// OutreachStorage defines persistence operations on outreach emails and the
// analytics derived from them.
type OutreachStorage interface {
	// StoreEmailSend records an outreach email and returns the stored row.
	StoreEmailSend(ctx context.Context, send domain.EmailSend) (*domain.EmailSend, error)
	// EmailSendsByProspect lists the emails of a prospect by touch number.
	EmailSendsByProspect(ctx context.Context, id domain.ProspectID) ([]domain.EmailSend, error)
	// RecordEngagement stamps the engagement timestamp of a send, keeping the
	// first recorded time, and returns the updated row or nil.
	RecordEngagement(ctx context.Context,
		id domain.EmailSendID,
		kind domain.EngagementKind,
		at time.Time) (*domain.EmailSend, error)
	// OutreachMetrics aggregates sends and do-not-contact entries.
	OutreachMetrics(ctx context.Context) (domain.OutreachMetrics, error)
	// Analytics returns one row per UTC day in [start, end].
	Analytics(ctx context.Context, start, end time.Time) ([]domain.AnalyticsDay, error)
}
