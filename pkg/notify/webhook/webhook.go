// Package webhook delivers events as signed JSON POST requests.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/oklog/ulid/v2"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/notify"
	"wcagrep/pkg/serrors"
)

const (
	SignatureHeader = "X-Wcagrep-Signature"
	EventHeader     = "X-Wcagrep-Event"
	DeliveryHeader  = "X-Wcagrep-Delivery"
)

// Sender posts events to arbitrary endpoints.
type Sender struct {
	client *http.Client
}

func New(client *http.Client) *Sender {
	return &Sender{client: client}
}

// Sign returns the signature header value of body: "sha256=" followed by the
// hex encoded HMAC-SHA256 of body keyed with secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches body.
func Verify(secret string, body []byte, signature string) bool {
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}

// Send posts e to url. The body is signed when secret is not empty. It
// returns the delivery id sent in the DeliveryHeader.
func (s *Sender) Send(ctx context.Context, url, secret string, e domain.Event) (string, error) {
	if url == "" {
		return "", serrors.With(serrors.ErrBadRequest, "webhook: url is not configured")
	}

	body, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("webhook: marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "webhook: create request")
	}

	delivery := ulid.Make().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "wcagrep-webhooks/1.0")
	req.Header.Set(EventHeader, string(e.Type))
	req.Header.Set(DeliveryHeader, delivery)
	if secret != "" {
		req.Header.Set(SignatureHeader, Sign(secret, body))
	}

	resp, err := s.client.Do(req) //nolint:gosec // webhook URLs are configured by operators
	if err != nil {
		return delivery, serrors.Wrap(serrors.ErrUnavailable, err, "webhook: post")
	}
	defer func() { _ = resp.Body.Close() }()

	return delivery, notify.CheckResponse("webhook", resp)
}
