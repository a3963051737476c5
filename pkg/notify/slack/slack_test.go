package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/serrors"
)

func TestSend_PostsToWebhook(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	jobID := domain.ScanJobID(uuid.New())
	e := domain.Event{
		ID:        "01JN123",
		Type:      domain.EventScanCompleted,
		ScanJobID: &jobID,
		Data: map[string]any{
			"url":            "https://example.com",
			"wcag_score":     42,
			"critical_count": 3,
			"serious_count":  1,
		},
		At: time.Date(2026, 2, 26, 14, 23, 0, 0, time.UTC),
	}

	require.NoError(t, New(srv.Client()).Send(context.Background(), srv.URL, e))

	blocks, ok := got["blocks"].([]any)
	require.True(t, ok, "expected blocks array in payload")
	// header, divider, fields, divider, context
	require.Len(t, blocks, 5)

	header := blocks[0].(map[string]any)
	headerText := header["text"].(map[string]any)["text"].(string)
	require.Contains(t, headerText, "Scan completed: https://example.com")
	require.Contains(t, headerText, "\U0001f7e1", "low scores are flagged yellow")

	fields := blocks[2].(map[string]any)["fields"].([]any)
	require.Len(t, fields, 3)
	require.Equal(t, "*WCAG score:* 42", fields[0].(map[string]any)["text"])

	ctxText := blocks[4].(map[string]any)["elements"].([]any)[0].(map[string]any)["text"].(string)
	require.True(t, strings.HasPrefix(ctxText, "wcagrep • event 01JN123 • scan "+jobID.String()))
	require.True(t, strings.HasSuffix(ctxText, "2026-02-26 14:23 UTC"))
}

func TestSend_WithoutFields(t *testing.T) {
	t.Parallel()

	msg := buildMessage(domain.Event{ID: "x", Type: domain.EventProspectUnsubscribed})
	require.Len(t, msg["blocks"], 3)
	require.Equal(t, "Prospect unsubscribed", msg["text"])
}

func TestSend_Errors(t *testing.T) {
	t.Parallel()

	err := New(http.DefaultClient).Send(context.Background(), "", domain.Event{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no_service", http.StatusNotFound)
	}))
	defer srv.Close()

	err = New(srv.Client()).Send(context.Background(), srv.URL, domain.Event{Type: domain.EventScanFailed})
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.True(t, serrors.Permanent(err))
	require.Contains(t, err.Error(), "no_service")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
