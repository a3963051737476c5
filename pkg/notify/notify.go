// Package notify holds what the outbound notification channels share.
package notify

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"wcagrep/pkg/serrors"
)

// CheckResponse maps a webhook answer to a semantic error carrying the start
// of the response body.
func CheckResponse(channel string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := fmt.Sprintf("%s: webhook returned %d: %s", channel, resp.StatusCode, strings.TrimSpace(string(b)))

	return serrors.FromStatus(resp.StatusCode, "%s", msg)
}

// Title describes an event type in a human friendly way.
func Title(t string) string {
	switch t {
	case "scan.completed":
		return "Scan completed"
	case "scan.failed":
		return "Scan failed"
	case "scan.queued":
		return "Scan queued"
	case "scan.running":
		return "Scan running"
	case "prospect.unsubscribed":
		return "Prospect unsubscribed"
	case "outreach.sent":
		return "Outreach sent"
	default:
		return t
	}
}
