// Package crm implements prospect, violation, trigger and client management
// together with the dashboard analytics.
package crm

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	mrand "math/rand/v2"
	"time"

	"go.uber.org/zap"

	"wcagrep/internal/triggers"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
)

const (
	// defaultAnalyticsWindow is used when no analytics start date is given.
	defaultAnalyticsWindow = 30 * 24 * time.Hour
	// dashboardWindow is the period the dashboard rates are computed over.
	dashboardWindow = 7 * 24 * time.Hour
	// apiKeyBytes is the entropy of generated API keys.
	apiKeyBytes = 32
)

type crm struct {
	storage storage.Storage
	now     func() time.Time
	rand    func() float64
}

func New(st storage.Storage) CRM {
	return &crm{
		storage: st,
		now:     time.Now,
		rand:    mrand.Float64,
	}
}

func (c *crm) Prospects(ctx context.Context, status domain.ProspectStatus) ([]domain.Prospect, error) {
	if status != "" && !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid status: %s", status)
	}

	prospects, err := c.storage.Prospects(ctx, storage.ProspectFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("could not list prospects: %w", err)
	}

	return prospects, nil
}

func (c *crm) Prospect(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error) {
	p, err := c.storage.ProspectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get prospect: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Prospect not found")
	}

	return p, nil
}

func (c *crm) CreateProspect(ctx context.Context, in domain.ProspectInput) (*domain.Prospect, error) {
	p := domain.NewProspect(in)
	if err := p.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid prospect data")
	}

	stored, err := c.storage.StoreProspects(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("could not store prospect: %w", err)
	}

	return &stored[0], nil
}

func (c *crm) UpdateProspect(ctx context.Context,
	id domain.ProspectID,
	in domain.ProspectInput) (*domain.Prospect, error) {
	if in.Empty() {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid update data")
	}

	current, err := c.Prospect(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(current)
	if err := current.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid update data")
	}

	updated, err := c.storage.UpdateProspect(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("could not update prospect: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Prospect not found")
	}

	return updated, nil
}

func (c *crm) DeleteProspect(ctx context.Context, id domain.ProspectID) error {
	deleted, err := c.storage.DeleteProspect(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete prospect: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "Prospect not found")
	}

	return nil
}

func (c *crm) QueueProspects(ctx context.Context, ids []domain.ProspectID) ([]domain.Prospect, error) {
	if len(ids) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Prospect IDs array is required")
	}

	queued, err := c.storage.UpdateProspectsStatus(ctx, ids, domain.ProspectStatusQueued)
	if err != nil {
		return nil, fmt.Errorf("could not queue prospects: %w", err)
	}
	if skipped := len(ids) - len(queued); skipped > 0 {
		logger.Info(ctx, "skipped unknown prospects while queueing", zap.Int("skipped", skipped))
	}

	return queued, nil
}

func (c *crm) RecalculateICP(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error) {
	p, err := c.Prospect(ctx, id)
	if err != nil {
		return nil, err
	}

	score := domain.RecalculateICP(p.ICPScore, c.rand())
	updated, err := c.storage.UpdateProspect(ctx, id, domain.ProspectInput{ICPScore: &score})
	if err != nil {
		return nil, fmt.Errorf("could not update icp score: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Prospect not found")
	}

	return updated, nil
}

func (c *crm) Violations(ctx context.Context, prospectID domain.ProspectID) ([]domain.Violation, error) {
	violations, err := c.storage.ViolationsByProspect(ctx, prospectID)
	if err != nil {
		return nil, fmt.Errorf("could not list violations: %w", err)
	}

	return violations, nil
}

func (c *crm) CreateViolation(ctx context.Context, v domain.Violation) (*domain.Violation, error) {
	if err := v.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid violation data")
	}
	if _, err := c.Prospect(ctx, *v.ProspectID); err != nil {
		return nil, err
	}

	stored, err := c.storage.StoreViolations(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("could not store violation: %w", err)
	}

	return &stored[0], nil
}

func (c *crm) Triggers(ctx context.Context, active *bool) ([]domain.Trigger, error) {
	list, err := c.storage.Triggers(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("could not list triggers: %w", err)
	}

	return list, nil
}

func (c *crm) CreateTrigger(ctx context.Context, in domain.TriggerInput) (*domain.Trigger, error) {
	t := domain.Trigger{IsActive: true, Config: map[string]any{}}
	in.Apply(&t)
	if err := triggers.ValidateTrigger(t); err != nil {
		return nil, err //nolint: wrapcheck
	}

	stored, err := c.storage.StoreTrigger(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("could not store trigger: %w", err)
	}

	return stored, nil
}

func (c *crm) UpdateTrigger(ctx context.Context, id domain.TriggerID, in domain.TriggerInput) (*domain.Trigger, error) {
	current, err := c.storage.TriggerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get trigger: %w", err)
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Trigger not found")
	}

	in.Apply(current)
	if err := triggers.ValidateTrigger(*current); err != nil {
		return nil, err //nolint: wrapcheck
	}

	updated, err := c.storage.UpdateTrigger(ctx, *current)
	if err != nil {
		return nil, fmt.Errorf("could not update trigger: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Trigger not found")
	}

	return updated, nil
}

func (c *crm) DeleteTrigger(ctx context.Context, id domain.TriggerID) error {
	deleted, err := c.storage.DeleteTrigger(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete trigger: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "Trigger not found")
	}

	return nil
}

func (c *crm) Clients(ctx context.Context) ([]domain.Client, error) {
	list, err := c.storage.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list clients: %w", err)
	}

	return list, nil
}

func (c *crm) CreateClient(ctx context.Context, in domain.ClientInput) (*domain.Client, error) {
	var client domain.Client
	in.Apply(&client)
	if err := client.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid client data")
	}
	if client.APIKey == "" {
		key, err := generateAPIKey()
		if err != nil {
			return nil, err
		}
		client.APIKey = key
	}

	stored, err := c.storage.StoreClient(ctx, client)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "API key is already in use")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store client: %w", err)
	}

	return stored, nil
}

func (c *crm) UpdateClient(ctx context.Context, id domain.ClientID, in domain.ClientInput) (*domain.Client, error) {
	current, err := c.storage.ClientByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get client: %w", err)
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Client not found")
	}

	in.Apply(current)
	if err := current.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid client data")
	}
	if current.APIKey == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid client data: apiKey cannot be empty")
	}

	updated, err := c.storage.UpdateClient(ctx, *current)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "API key is already in use")
	}
	if err != nil {
		return nil, fmt.Errorf("could not update client: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Client not found")
	}

	return updated, nil
}

func (c *crm) AuthenticateClient(ctx context.Context, key string) (*domain.Client, error) {
	if key == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "API key is required")
	}

	client, err := c.storage.ClientByAPIKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("could not get client: %w", err)
	}
	if client == nil || subtle.ConstantTimeCompare([]byte(client.APIKey), []byte(key)) != 1 {
		return nil, serrors.With(serrors.ErrUnauthorized, "Invalid API key")
	}

	return client, nil
}

func (c *crm) Cadences(ctx context.Context, prospectID domain.ProspectID) ([]domain.EmailSend, error) {
	sends, err := c.storage.EmailSendsByProspect(ctx, prospectID)
	if err != nil {
		return nil, fmt.Errorf("could not list email sends: %w", err)
	}

	return sends, nil
}

func (c *crm) Analytics(ctx context.Context, start, end time.Time) ([]domain.AnalyticsDay, error) {
	if end.IsZero() {
		end = c.now().UTC()
	}
	if start.IsZero() {
		start = end.Add(-defaultAnalyticsWindow)
	}
	if start.After(end) {
		return nil, serrors.With(serrors.ErrBadRequest, "startDate must be before endDate")
	}

	days, err := c.storage.Analytics(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not compute analytics: %w", err)
	}

	return days, nil
}

func (c *crm) DashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	stats, err := c.storage.ProspectStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not compute prospect stats: %w", err)
	}

	end := c.now().UTC()
	days, err := c.storage.Analytics(ctx, end.Add(-dashboardWindow), end)
	if err != nil {
		return nil, fmt.Errorf("could not compute analytics: %w", err)
	}

	var sent, opened, replied, demos int
	for _, d := range days {
		sent += d.EmailsSent
		opened += d.EmailsOpened
		replied += d.EmailsReplied
		demos += d.DemoBookings
	}

	return &DashboardMetrics{
		ActiveProspects: stats.Active,
		ReplyRate:       percent(replied, sent),
		OpenRate:        percent(opened, sent),
		DemoBookings:    demos,
		AvgICPScore:     int(math.Round(stats.AvgICPScore)),
	}, nil
}

// Seed inserts the sample prospects unless prospects already exist.
func (c *crm) Seed(ctx context.Context) (int, error) {
	existing, err := c.storage.Prospects(ctx, storage.ProspectFilter{Limit: 1})
	if err != nil {
		return 0, fmt.Errorf("could not list prospects: %w", err)
	}
	if len(existing) > 0 {
		logger.Info(ctx, "database already seeded, skipping")

		return 0, nil
	}

	stored, err := c.storage.StoreProspects(ctx, sampleProspects()...)
	if err != nil {
		return 0, fmt.Errorf("could not store sample prospects: %w", err)
	}
	logger.Info(ctx, "database seeded", zap.Int("prospects", len(stored)))

	return len(stored), nil
}

func (c *crm) Health(ctx context.Context) error {
	if err := c.storage.Ping(ctx); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "database is not reachable")
	}

	return nil
}

func sampleProspects() []domain.Prospect {
	return []domain.Prospect{
		{
			Company:   "TechCorp Inc",
			Website:   "https://example.com",
			Industry:  "Technology",
			ICPScore:  75,
			Status:    domain.ProspectStatusDiscovered,
			RiskLevel: domain.RiskLevelMedium,
		},
		{
			Company:   "HealthCare Solutions",
			Website:   "https://healthcare-example.com",
			Industry:  "Healthcare",
			ICPScore:  85,
			Status:    domain.ProspectStatusQueued,
			RiskLevel: domain.RiskLevelHigh,
		},
	}
}

// percent returns part/total as a percentage rounded to one decimal.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(part)/float64(total)*1000) / 10
}

func generateAPIKey() (string, error) {
	b := make([]byte, apiKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not generate api key: %w", err)
	}

	return hex.EncodeToString(b), nil
}
