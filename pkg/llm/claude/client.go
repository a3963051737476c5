// Package claude implements llm.Completer with the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"wcagrep/pkg/llm"
	"wcagrep/pkg/serrors"
)

// Options configures a Client.
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int64
	// HTTPClient defaults to http.DefaultClient. Its timeout bounds a request.
	HTTPClient *http.Client
	// BaseURL overrides the API endpoint, for tests and proxies.
	BaseURL    string
	MaxRetries int
}

// Client implements llm.Completer for Claude models.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

var _ llm.Completer = (*Client)(nil)

// New creates a new Claude API client.
func New(opts Options) *Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(opts.MaxRetries),
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}

	return &Client{
		client:    anthropic.NewClient(reqOpts...),
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
	}
}

// Complete sends req as a single user message.
func (c *Client) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	maxTokens := c.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}

	return fromSDKResponse(msg), nil
}

func fromSDKResponse(msg *anthropic.Message) *llm.Response {
	var texts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			texts = append(texts, block.Text)
		}
	}

	return &llm.Response{
		Text:       strings.Join(texts, "\n"),
		StopReason: string(msg.StopReason),
		Usage: llm.Usage{
			InputTokens:  msg.Usage.InputTokens,
			OutputTokens: msg.Usage.OutputTokens,
		},
	}
}

func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "claude did not answer in time")
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return serrors.Wrap(serrors.ErrRateLimited, err, "claude rate limited")
		case apiErr.StatusCode == http.StatusBadRequest:
			return serrors.Wrap(serrors.ErrBadRequest, err, "claude rejected the request")
		}
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "claude request failed")
}
