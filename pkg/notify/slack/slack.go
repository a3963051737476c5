// Package slack sends event notifications to Slack via incoming webhooks.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/notify"
	"wcagrep/pkg/serrors"
)

// Notifier posts events to Slack webhooks. The webhook is chosen per call
// because every trigger carries its own.
type Notifier struct {
	client *http.Client
}

func New(client *http.Client) *Notifier {
	return &Notifier{client: client}
}

// Send posts e to webhookURL.
func (n *Notifier) Send(ctx context.Context, webhookURL string, e domain.Event) error {
	if webhookURL == "" {
		return serrors.With(serrors.ErrBadRequest, "slack: webhookUrl is not configured")
	}

	body, err := json.Marshal(buildMessage(e))
	if err != nil {
		return fmt.Errorf("slack: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "slack: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req) //nolint:gosec // webhook URLs are configured by operators
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "slack: post webhook")
	}
	defer func() { _ = resp.Body.Close() }()

	return notify.CheckResponse("slack", resp)
}

func buildMessage(e domain.Event) map[string]any {
	blocks := []map[string]any{
		headerBlock(e),
	}
	if fields := fieldsBlock(e); fields != nil {
		blocks = append(blocks, map[string]any{"type": "divider"}, fields)
	}
	blocks = append(blocks, map[string]any{"type": "divider"}, contextBlock(e))

	return map[string]any{
		"text":   fallbackText(e),
		"blocks": blocks,
	}
}

func fallbackText(e domain.Event) string {
	if u, ok := e.Data["url"].(string); ok && u != "" {
		return fmt.Sprintf("%s: %s", notify.Title(string(e.Type)), u)
	}

	return notify.Title(string(e.Type))
}

func headerBlock(e domain.Event) map[string]any {
	return map[string]any{
		"type": "header",
		"text": map[string]any{
			"type": "plain_text",
			"text": fmt.Sprintf("%s %s", eventEmoji(e), fallbackText(e)),
		},
	}
}

func fieldsBlock(e domain.Event) map[string]any {
	var fields []map[string]any
	add := func(label, key string) {
		if v, ok := e.Number(key); ok {
			fields = append(fields, map[string]any{
				"type": "mrkdwn",
				"text": fmt.Sprintf("*%s:* %g", label, v),
			})
		}
	}
	add("WCAG score", "wcag_score")
	add("Critical", "critical_count")
	add("Serious", "serious_count")
	add("ICP score", "icp_score")
	if s, ok := e.Data["error"].(string); ok && s != "" {
		fields = append(fields, map[string]any{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Error:* %s", truncate(s, 500)),
		})
	}
	if len(fields) == 0 {
		return nil
	}

	return map[string]any{
		"type":   "section",
		"fields": fields,
	}
}

func contextBlock(e domain.Event) map[string]any {
	parts := []string{"wcagrep", "event " + e.ID}
	if e.ScanJobID != nil {
		parts = append(parts, "scan "+e.ScanJobID.String())
	}
	parts = append(parts, e.At.UTC().Format("2006-01-02 15:04 UTC"))

	return map[string]any{
		"type": "context",
		"elements": []map[string]any{
			{
				"type": "mrkdwn",
				"text": strings.Join(parts, " • "),
			},
		},
	}
}

func eventEmoji(e domain.Event) string {
	switch e.Type {
	case domain.EventScanFailed, domain.EventProspectUnsubscribed:
		return "\U0001f534" // red circle
	case domain.EventScanCompleted:
		if score, ok := e.Number("wcag_score"); ok && score < 50 {
			return "\U0001f7e1" // yellow circle
		}

		return "\U0001f7e2" // green circle
	default:
		return "\U0001f535" // blue circle
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit-3] + "..."
}
