package outreach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"wcagrep/internal/events"
	"wcagrep/internal/triggers"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
)

const (
	// ReasonAllowed is the verdict reason of an allowed send.
	ReasonAllowed = "Valid"
	// defaultUnsubscribeReason is stored when the recipient gives none.
	defaultUnsubscribeReason = "unsubscribed via link"
)

// SendCheck describes an email about to be sent.
type SendCheck struct {
	ProspectID            *domain.ProspectID
	Email                 string
	Domain                string
	Subject               string
	HasExplicitPermission bool
}

// Check is the outcome of one rule of the guard.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Verdict tells whether a send is allowed. Reason names the first failed
// check.
type Verdict struct {
	Allowed bool    `json:"allowed"`
	Reason  string  `json:"reason"`
	Checks  []Check `json:"checks"`
}

type GuardOptions struct {
	UnsubscribeBaseURL    string
	MaxTouches            int
	MinTimeBetweenTouches time.Duration
}

// Guard enforces the outreach rules: no mail to opted out recipients, a cap
// on touches per prospect and a minimum delay between touches.
type Guard struct {
	storage   storage.Storage
	publisher events.Publisher
	options   GuardOptions
	now       func() time.Time
}

// NewGuard creates a guard. publisher may be nil.
func NewGuard(st storage.Storage, publisher events.Publisher, options GuardOptions) *Guard {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if options.UnsubscribeBaseURL == "" {
		options.UnsubscribeBaseURL = "https://wcagrep.com"
	}

	return &Guard{
		storage:   st,
		publisher: publisher,
		options:   options,
		now:       time.Now,
	}
}

// Validate runs every rule against c.
func (g *Guard) Validate(ctx context.Context, c SendCheck) (*Verdict, error) {
	return g.validate(ctx, g.storage, c)
}

// validate reads through st so a caller holding a transaction sees the sends
// it has not committed yet.
func (g *Guard) validate(ctx context.Context, st storage.AllStorage, c SendCheck) (*Verdict, error) {
	v := &Verdict{Allowed: true, Reason: ReasonAllowed}
	fail := func(name, detail string) {
		v.Checks = append(v.Checks, Check{Name: name, Detail: detail})
		if v.Allowed {
			v.Allowed = false
			v.Reason = detail
		}
	}
	pass := func(name string) {
		v.Checks = append(v.Checks, Check{Name: name, Passed: true})
	}

	entry, err := st.MatchDoNotContact(ctx, storage.DoNotContactQuery{
		ProspectID: c.ProspectID,
		Email:      c.Email,
		Domain:     domain.HostOf(c.Domain),
	})
	if err != nil {
		return nil, fmt.Errorf("could not check do not contact list: %w", err)
	}
	if entry != nil {
		fail("do-not-contact", "on Do Not Contact list")
	} else {
		pass("do-not-contact")
	}

	if c.ProspectID == nil {
		return v, nil
	}

	p, err := st.ProspectByID(ctx, *c.ProspectID)
	if err != nil {
		return nil, fmt.Errorf("could not get prospect: %w", err)
	}
	if p != nil && p.Status == domain.ProspectStatusRejected {
		fail("prospect-status", "prospect has opted out")
	} else {
		pass("prospect-status")
	}

	sends, err := st.EmailSendsByProspect(ctx, *c.ProspectID)
	if err != nil {
		return nil, fmt.Errorf("could not list email sends: %w", err)
	}
	if g.options.MaxTouches > 0 && len(sends) >= g.options.MaxTouches {
		fail("max-touches", fmt.Sprintf("maximum of %d touches reached", g.options.MaxTouches))
	} else {
		pass("max-touches")
	}

	if last := lastSend(sends); last != nil && g.now().Sub(last.CreatedAt) < g.options.MinTimeBetweenTouches {
		next := last.CreatedAt.Add(g.options.MinTimeBetweenTouches).UTC()
		fail("touch-interval", "too soon since the last touch, next allowed at "+next.Format(time.RFC3339))
	} else {
		pass("touch-interval")
	}

	return v, nil
}

// UnsubscribeLink returns the public unsubscribe URL of a prospect.
func (g *Guard) UnsubscribeLink(id domain.ProspectID) string {
	return strings.TrimRight(g.options.UnsubscribeBaseURL, "/") + "/unsubscribe/" + id.String()
}

// RecordSend stores a send. The touch number is derived from the previous
// sends of the prospect.
func (g *Guard) RecordSend(ctx context.Context, send domain.EmailSend) (*domain.EmailSend, error) {
	return recordSend(ctx, g.storage, send)
}

func recordSend(ctx context.Context, st storage.AllStorage, send domain.EmailSend) (*domain.EmailSend, error) {
	send.TouchNumber = 1
	if send.ProspectID != nil {
		sends, err := st.EmailSendsByProspect(ctx, *send.ProspectID)
		if err != nil {
			return nil, fmt.Errorf("could not list email sends: %w", err)
		}
		send.TouchNumber = len(sends) + 1
	}
	if send.EmailType == "" {
		send.EmailType = domain.EmailTypeCold
		if send.TouchNumber > 1 {
			send.EmailType = domain.EmailTypeFollowUp
		}
	}

	stored, err := st.StoreEmailSend(ctx, send)
	if err != nil {
		return nil, fmt.Errorf("could not store email send: %w", err)
	}

	return stored, nil
}

// ProcessUnsubscribe permanently opts a prospect out and rejects it. An
// unknown prospect is logged and otherwise ignored, so the unsubscribe page
// never reveals which IDs exist.
func (g *Guard) ProcessUnsubscribe(ctx context.Context, id domain.ProspectID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		reason = defaultUnsubscribeReason
	}
	ctx = logger.WithFields(ctx, zap.Stringer("prospectID", id))

	var event *domain.Event
	err := g.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		p, err := tx.ProspectByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get prospect: %w", err)
		}
		if p == nil {
			logger.Warn(ctx, "unsubscribe for unknown prospect")

			return nil
		}

		if _, err := tx.StoreDoNotContact(ctx, domain.DoNotContact{
			ProspectID: &id,
			Email:      p.Email,
			Reason:     reason,
			Permanent:  true,
		}); err != nil {
			return fmt.Errorf("could not store do not contact entry: %w", err)
		}

		rejected := domain.ProspectStatusRejected
		if _, err := tx.UpdateProspect(ctx, id, domain.ProspectInput{Status: &rejected}); err != nil {
			return fmt.Errorf("could not reject prospect: %w", err)
		}

		e := domain.NewEvent(domain.EventProspectUnsubscribed, map[string]any{
			"company": p.Company,
			"reason":  reason,
		})
		e.ProspectID = &id
		if _, err := triggers.Dispatch(ctx, tx, e); err != nil {
			return fmt.Errorf("could not dispatch triggers: %w", err)
		}
		event = &e

		return nil
	})
	if err != nil {
		return err //nolint: wrapcheck
	}

	if event != nil {
		logger.Info(ctx, "prospect unsubscribed", zap.String("reason", reason))
		g.publisher.Publish(ctx, *event)
	}

	return nil
}

// AddToDoNotContact stores a manual opt-out.
func (g *Guard) AddToDoNotContact(ctx context.Context, entry domain.DoNotContact) (*domain.DoNotContact, error) {
	entry.Email = strings.TrimSpace(entry.Email)
	entry.Domain = domain.HostOf(entry.Domain)
	if err := entry.Validate(); err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "%s", err.Error())
	}

	stored, err := g.storage.StoreDoNotContact(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("could not store do not contact entry: %w", err)
	}

	return stored, nil
}

func (g *Guard) DoNotContactList(ctx context.Context) ([]domain.DoNotContact, error) {
	list, err := g.storage.DoNotContactList(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list do not contact entries: %w", err)
	}

	return list, nil
}

// Metrics summarizes outreach activity and opt-outs.
func (g *Guard) Metrics(ctx context.Context) (*domain.OutreachMetrics, error) {
	m, err := g.storage.OutreachMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not compute outreach metrics: %w", err)
	}

	return &m, nil
}

func lastSend(sends []domain.EmailSend) *domain.EmailSend {
	var last *domain.EmailSend
	for i := range sends {
		if last == nil || sends[i].CreatedAt.After(last.CreatedAt) {
			last = &sends[i]
		}
	}

	return last
}
