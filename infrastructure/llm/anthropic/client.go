// ABOUTME: Anthropic Messages API generator for the editorial assist helpers
// ABOUTME: Wraps the official SDK, which retries 429 and 5xx responses itself

package anthropic

import (
	"context"
	"errors"
	"strings"

	coreerrors "lakeshow-api/core/errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 1024
	maxRetries       = 2
)

// Client generates text with the Anthropic Messages API
type Client struct {
	client    anthropic.Client
	apiKey    string
	model     string
	maxTokens int64
}

// New creates a client. An empty model or non-positive maxTokens use
// defaults. Extra options are passed to the SDK.
func New(apiKey, model string, maxTokens int, opts ...option.RequestOption) *Client {
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(maxRetries),
	}

	return &Client{
		client:    anthropic.NewClient(append(base, opts...)...),
		apiKey:    apiKey,
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

// Name identifies the provider in assist results
func (c *Client) Name() string {
	return "anthropic"
}

// Generate sends one user turn with an optional system prompt and returns
// the concatenated text blocks of the reply
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &coreerrors.ConfigurationError{Feature: "anthropic", Missing: "LLM_API_KEY"}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &coreerrors.ExternalAPIError{StatusCode: apiErr.StatusCode, Message: apiErr.Error(), API: "anthropic"}
		}
		return "", coreerrors.WrapError(err, "anthropic request failed")
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", errors.New("anthropic returned no text content")
	}

	return strings.TrimSpace(text.String()), nil
}
