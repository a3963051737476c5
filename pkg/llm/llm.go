// Package llm defines the language model interface used to polish generated
// copy and to run meta-prompts. A nil Completer means no model is configured,
// and callers fall back to their templates.
package llm

import (
	"context"
	"strings"
)

// Request is a single turn completion request.
type Request struct {
	System string
	Prompt string
	// MaxTokens overrides the client default when positive.
	MaxTokens int64
}

// Usage reports the tokens consumed by a completion.
type Usage struct {
	InputTokens  int64 `json:"inputTokens"`
	OutputTokens int64 `json:"outputTokens"`
}

// Response is the text produced by the model.
type Response struct {
	Text       string `json:"text"`
	StopReason string `json:"stopReason"`
	Usage      Usage  `json:"usage"`
}

// Completer runs single turn completions.
//
//go:generate mockgen -package mockllm -destination=mock/mockllm.go wcagrep/pkg/llm Completer
type Completer interface {
	// Complete returns TIMEOUT, RATE_LIMITED or UNAVAILABLE semantic errors
	// when the model cannot answer.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// CleanText trims whitespace and wrapping quotes models like to add around
// short answers.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"') {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	return s
}
