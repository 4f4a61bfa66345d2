// ABOUTME: Google Gemini generator for the editorial assist helpers
// ABOUTME: Wraps the google.golang.org/genai SDK behind the assist Generator contract

package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	coreerrors "lakeshow-api/core/errors"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Client generates text with the Gemini API
type Client struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// New creates a Gemini client. An empty model uses the default.
func New(ctx context.Context, apiKey, model string, maxTokens int) (*Client, error) {
	return newClient(ctx, apiKey, model, maxTokens, "")
}

func newClient(ctx context.Context, apiKey, model string, maxTokens int, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, &coreerrors.ConfigurationError{Feature: "gemini", Missing: "LLM_API_KEY"}
	}
	if model == "" {
		model = defaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
	}, nil
}

// Name identifies the provider in assist results
func (c *Client) Name() string {
	return "gemini"
}

// Generate sends prompt with an optional system instruction and returns the reply text
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if c.maxTokens > 0 {
		config.MaxOutputTokens = c.maxTokens
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", &coreerrors.ExternalAPIError{StatusCode: 502, Message: err.Error(), API: "gemini"}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini returned no text content")
	}
	return text, nil
}
