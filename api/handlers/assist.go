// ABOUTME: Assist handler exposes the AI-assisted editorial helpers
// ABOUTME: Endpoints are gated by the assist_enabled feature flag

package handlers

import (
	"context"
	"net/http"

	"lakeshow-api/api/dto/requests"
	"lakeshow-api/core/assist"
	"lakeshow-api/core/domain"
	"lakeshow-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// AssistService runs generation requests
type AssistService interface {
	Summarize(ctx context.Context, req assist.SummaryRequest) (*domain.AssistResult, error)
	Caption(ctx context.Context, req assist.CaptionRequest) (*domain.AssistResult, error)
	Format(ctx context.Context, text string) (*domain.AssistResult, error)
}

// AssistHandler handles assist requests
type AssistHandler struct {
	service AssistService
	flags   featureflags.Manager
}

// NewAssistHandler creates an assist handler. A nil flags manager reads FEATURE_* env vars.
func NewAssistHandler(service AssistService, flags featureflags.Manager) *AssistHandler {
	if flags == nil {
		flags = featureflags.NewEnvManager("")
	}
	return &AssistHandler{service: service, flags: flags}
}

// RegisterRoutes registers all assist routes
func (h *AssistHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "assistSummary",
		Method:      http.MethodPost,
		Path:        "/api/assist/summary",
		Summary:     "Summarize text or an article",
		Tags:        []string{"Assist"},
	}, h.Summary)

	huma.Register(api, huma.Operation{
		OperationID: "assistCaption",
		Method:      http.MethodPost,
		Path:        "/api/assist/caption",
		Summary:     "Write a social caption",
		Tags:        []string{"Assist"},
	}, h.Caption)

	huma.Register(api, huma.Operation{
		OperationID: "assistFormat",
		Method:      http.MethodPost,
		Path:        "/api/assist/format",
		Summary:     "Tidy notes into Markdown",
		Tags:        []string{"Assist"},
	}, h.Format)
}

// AssistOutput is the shared output of every assist operation
type AssistOutput struct {
	Body *domain.AssistResult
}

// SummaryInput defines the input for the Summary operation
type SummaryInput struct {
	Body requests.SummaryRequest
}

// CaptionInput defines the input for the Caption operation
type CaptionInput struct {
	Body requests.CaptionRequest
}

// FormatInput defines the input for the Format operation
type FormatInput struct {
	Body requests.FormatRequest
}

// Summary handles POST /api/assist/summary
func (h *AssistHandler) Summary(ctx context.Context, input *SummaryInput) (*AssistOutput, error) {
	if err := h.enabled(ctx); err != nil {
		return nil, err
	}
	return h.respond(h.service.Summarize(ctx, input.Body.ToService()))
}

// Caption handles POST /api/assist/caption
func (h *AssistHandler) Caption(ctx context.Context, input *CaptionInput) (*AssistOutput, error) {
	if err := h.enabled(ctx); err != nil {
		return nil, err
	}
	return h.respond(h.service.Caption(ctx, input.Body.ToService()))
}

// Format handles POST /api/assist/format
func (h *AssistHandler) Format(ctx context.Context, input *FormatInput) (*AssistOutput, error) {
	if err := h.enabled(ctx); err != nil {
		return nil, err
	}
	return h.respond(h.service.Format(ctx, input.Body.Text))
}

func (h *AssistHandler) enabled(ctx context.Context) error {
	if !h.flags.IsEnabled(ctx, featureflags.AssistEnabled) {
		return huma.Error404NotFound("assist endpoints are disabled")
	}
	return nil
}

func (h *AssistHandler) respond(result *domain.AssistResult, err error) (*AssistOutput, error) {
	if err != nil {
		return nil, toHumaError(err)
	}
	return &AssistOutput{Body: result}, nil
}
