package claude

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/require"

	"wcagrep/pkg/llm"
	"wcagrep/pkg/serrors"
)

func TestFromSDKResponse_TextContent(t *testing.T) {
	t.Parallel()

	msg := &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: "first"},
			{Type: "tool_use", ID: "tu-1", Name: "ignored"},
			{Type: "text", Text: "second"},
		},
		StopReason: anthropic.StopReasonEndTurn,
		Usage:      anthropic.Usage{InputTokens: 100, OutputTokens: 50},
	}

	got := fromSDKResponse(msg)
	require.Equal(t, &llm.Response{
		Text:       "first\nsecond",
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: 100, OutputTokens: 50},
	}, got)
}

func newTestServer(t *testing.T, status int, body string, check func(req map[string]any)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/messages", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req map[string]any
		require.NoError(t, json.Unmarshal(b, &req))
		if check != nil {
			check(req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, http.StatusOK, `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "claude-test",
		"content": [{"type": "text", "text": "Polished copy"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 12, "output_tokens": 3}
	}`, func(req map[string]any) {
		require.Equal(t, "claude-test", req["model"])
		require.InDelta(t, 256, req["max_tokens"], 0)
		system, ok := req["system"].([]any)
		require.True(t, ok)
		require.Len(t, system, 1)
	})

	c := New(Options{APIKey: "test-key", Model: "claude-test", BaseURL: srv.URL + "/"})
	res, err := c.Complete(context.Background(), llm.Request{
		System:    "You write accessible copy.",
		Prompt:    "Rewrite this",
		MaxTokens: 256,
	})
	require.NoError(t, err)
	require.Equal(t, "Polished copy", res.Text)
	require.Equal(t, int64(3), res.Usage.OutputTokens)
}

func TestClient_Complete_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		kind   serrors.Kind
	}{
		{"rate limited", http.StatusTooManyRequests, serrors.ErrRateLimited},
		{"bad request", http.StatusBadRequest, serrors.ErrBadRequest},
		{"overloaded", 529, serrors.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, tt.status,
				`{"type":"error","error":{"type":"some_error","message":"nope"}}`, nil)
			c := New(Options{APIKey: "test-key", Model: "claude-test", BaseURL: srv.URL + "/"})

			_, err := c.Complete(context.Background(), llm.Request{Prompt: "hi"})
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Hello", llm.CleanText("  \"Hello\"\n"))
	require.Equal(t, `say "hi"`, llm.CleanText(`say "hi"`))
}
