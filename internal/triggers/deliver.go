package triggers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/mailer"
	"wcagrep/pkg/metrics"
	"wcagrep/pkg/notify"
	"wcagrep/pkg/notify/slack"
	"wcagrep/pkg/notify/webhook"
	"wcagrep/pkg/serrors"
)

// Config keys read from a trigger.
const (
	ConfigSlackWebhookURL = "webhookUrl"
	ConfigWebhookURL      = "url"
	ConfigWebhookSecret   = "secret"
	ConfigEmailTo         = "to"
)

// Deliverer sends trigger notifications over the channel of each trigger.
type Deliverer struct {
	slack   *slack.Notifier
	webhook *webhook.Sender
	// mailer may be nil, in which case email triggers fail as UNAVAILABLE.
	mailer  mailer.Sender
	metrics *metrics.Metrics
}

// NewDeliverer creates a Deliverer posting webhooks with client. m may be nil.
func NewDeliverer(client *http.Client, mail mailer.Sender, m *metrics.Metrics) *Deliverer {
	return &Deliverer{
		slack:   slack.New(client),
		webhook: webhook.New(client),
		mailer:  mail,
		metrics: m,
	}
}

// Deliver sends e over t's channel. A trigger missing its channel config
// fails with BAD_REQUEST.
func (d *Deliverer) Deliver(ctx context.Context, t domain.Trigger, e domain.Event) error {
	ctx = logger.WithFields(ctx, zap.Stringer("triggerID", t.ID), zap.String("triggerType", string(t.Type)))

	err := d.deliver(ctx, t, e)
	outcome := "delivered"
	if err != nil {
		outcome = "failed"
	}
	if d.metrics != nil {
		d.metrics.TriggerDeliveries.WithLabelValues(string(t.Type), outcome).Inc()
	}
	if err != nil {
		return err
	}

	logger.Info(ctx, "trigger notification delivered", zap.String("event", string(e.Type)))

	return nil
}

func (d *Deliverer) deliver(ctx context.Context, t domain.Trigger, e domain.Event) error {
	switch t.Type {
	case domain.TriggerTypeSlack:
		return d.slack.Send(ctx, t.ConfigString(ConfigSlackWebhookURL), e) //nolint: wrapcheck
	case domain.TriggerTypeWebhook:
		deliveryID, err := d.webhook.Send(ctx, t.ConfigString(ConfigWebhookURL), t.ConfigString(ConfigWebhookSecret), e)
		if err != nil {
			return err //nolint: wrapcheck
		}
		logger.Debug(ctx, "webhook accepted", zap.String("deliveryID", deliveryID))

		return nil
	case domain.TriggerTypeEmail:
		to := t.ConfigString(ConfigEmailTo)
		if to == "" {
			return serrors.With(serrors.ErrBadRequest, "email: to is not configured")
		}
		if d.mailer == nil {
			return serrors.With(serrors.ErrUnavailable, "email: delivery is not configured")
		}

		return d.mailer.Send(ctx, mailer.Message{ //nolint: wrapcheck
			To:      to,
			Subject: fmt.Sprintf("[wcagrep] %s: %s", notify.Title(string(e.Type)), t.Name),
			Text:    emailBody(t, e),
		})
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown trigger type %q", t.Type)
	}
}

func emailBody(t domain.Trigger, e domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", notify.Title(string(e.Type)))
	fmt.Fprintf(&b, "Trigger: %s (%s)\n", t.Name, t.Condition)
	fmt.Fprintf(&b, "Event: %s at %s\n", e.ID, e.At.Format("2006-01-02 15:04:05 MST"))
	if e.ScanJobID != nil {
		fmt.Fprintf(&b, "Scan job: %s\n", e.ScanJobID)
	}
	if e.ProspectID != nil {
		fmt.Fprintf(&b, "Prospect: %s\n", e.ProspectID)
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		b.WriteString("\n")
	}
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, e.Data[k])
	}

	return b.String()
}
