// ABOUTME: Assist service builds AI-assisted editorial helpers on top of a text generator
// ABOUTME: Provides article summaries, social captions and Markdown formatting with caching

package assist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lakeshow-api/core/domain"
	coreerrors "lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"
	htmlutil "lakeshow-api/pkg/utils/html"
)

const (
	KindSummary = "summary"
	KindCaption = "caption"
	KindFormat  = "format"

	// maxInputRunes bounds the text sent to the model
	maxInputRunes = 12000
)

// Generator produces text from a system instruction and a user prompt
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)

	// Name identifies the provider, e.g. "anthropic"
	Name() string
}

// SummaryRequest asks for a summary of Text, or of the article at URL when Text is empty
type SummaryRequest struct {
	Text string
	URL  string
}

// CaptionRequest asks for a social caption
type CaptionRequest struct {
	Title    string
	Text     string
	Platform domain.Platform
}

// Service runs assist requests
type Service struct {
	deps      interfaces.Dependencies
	generator Generator
	reader    interfaces.ReaderService
	ttl       time.Duration
}

// NewService creates an assist service. generator may be nil when no
// provider is configured; every request then fails with a configuration error.
func NewService(deps interfaces.Dependencies, generator Generator, reader interfaces.ReaderService, ttl time.Duration) *Service {
	return &Service{
		deps:      deps,
		generator: generator,
		reader:    reader,
		ttl:       ttl,
	}
}

// Summarize condenses an article into a short episode-prep summary
func (s *Service) Summarize(ctx context.Context, req SummaryRequest) (*domain.AssistResult, error) {
	text := strings.TrimSpace(req.Text)
	title := ""

	if text == "" && strings.TrimSpace(req.URL) != "" {
		if s.reader == nil {
			return nil, &coreerrors.ConfigurationError{Feature: "summaries from URL", Missing: "reader service"}
		}
		view, err := s.reader.Extract(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		text = strings.TrimSpace(view.TextContent)
		title = view.Title
	}
	if text == "" {
		return nil, &coreerrors.ValidationError{Field: "text", Message: "text or url is required"}
	}

	prompt := text
	if title != "" {
		prompt = "Title: " + title + "\n\n" + text
	}

	return s.run(ctx, KindSummary, summarySystem, clip(prompt), 0)
}

// Caption writes a social post for the given platform, cut to its character limit
func (s *Service) Caption(ctx context.Context, req CaptionRequest) (*domain.AssistResult, error) {
	if !req.Platform.Valid() {
		return nil, &coreerrors.ValidationError{Field: "platform", Message: fmt.Sprintf("unsupported platform %q", req.Platform)}
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Text) == "" {
		return nil, &coreerrors.ValidationError{Field: "text", Message: "title or text is required"}
	}

	limit := req.Platform.CaptionLimit()
	system := fmt.Sprintf(captionSystem, req.Platform, limit)
	prompt := fmt.Sprintf("Title: %s\n\n%s", strings.TrimSpace(req.Title), strings.TrimSpace(req.Text))

	return s.run(ctx, KindCaption+":"+string(req.Platform), system, clip(prompt), limit)
}

// Format cleans up rough notes into Markdown
func (s *Service) Format(ctx context.Context, text string) (*domain.AssistResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &coreerrors.ValidationError{Field: "text", Message: "text is required"}
	}

	return s.run(ctx, KindFormat, formatSystem, clip(text), 0)
}

func (s *Service) run(ctx context.Context, kind, system, prompt string, limit int) (*domain.AssistResult, error) {
	if s.generator == nil {
		return nil, &coreerrors.ConfigurationError{Feature: "assist", Missing: "LLM_PROVIDER"}
	}

	resultKind, _, _ := strings.Cut(kind, ":")
	key := cacheKey(s.generator.Name(), kind, prompt)
	if cached, ok := s.cached(ctx, key); ok {
		cached.Cached = true
		return cached, nil
	}

	started := time.Now()
	text, err := s.generator.Generate(ctx, system, prompt)
	if err != nil {
		s.deps.Log().Error("Assist generation failed", map[string]interface{}{
			"kind":     kind,
			"provider": s.generator.Name(),
			"error":    err.Error(),
		})
		return nil, err
	}

	if limit > 0 {
		text = htmlutil.Truncate(text, limit)
	}

	result := &domain.AssistResult{
		Kind:     resultKind,
		Text:     text,
		Provider: s.generator.Name(),
	}
	s.store(ctx, key, result)

	s.deps.Log().Info("Assist generated", map[string]interface{}{
		"kind":        kind,
		"provider":    result.Provider,
		"duration_ms": time.Since(started).Milliseconds(),
	})

	return result, nil
}

// clip bounds prompt input to maxInputRunes
func clip(text string) string {
	return htmlutil.Truncate(text, maxInputRunes)
}

func cacheKey(provider, kind, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "assist:" + provider + ":" + kind + ":" + hex.EncodeToString(sum[:])
}

func (s *Service) cached(ctx context.Context, key string) (*domain.AssistResult, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var result domain.AssistResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (s *Service) store(ctx context.Context, key string, result *domain.AssistResult) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, key, data, s.ttl)
}
