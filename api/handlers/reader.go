// ABOUTME: Reader handler for the Huma API
// ABOUTME: Extracts clean article content from aggregated news links

package handlers

import (
	"context"
	"net/http"

	"lakeshow-api/core/domain"
	"lakeshow-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ReaderHandler handles reader view extraction requests
type ReaderHandler struct {
	readerService interfaces.ReaderService
}

// NewReaderHandler creates a new reader handler
func NewReaderHandler(readerService interfaces.ReaderService) *ReaderHandler {
	return &ReaderHandler{
		readerService: readerService,
	}
}

// RegisterRoutes registers all reader-related routes
func (h *ReaderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getReaderView",
		Method:      http.MethodGet,
		Path:        "/api/reader",
		Summary:     "Extract reader view from a URL",
		Description: "Extracts clean article content from a web page as HTML, text and Markdown",
		Tags:        []string{"Reader"},
	}, h.GetReaderView)
}

// GetReaderViewInput defines the input for the GetReaderView operation
type GetReaderViewInput struct {
	URL string `query:"url" required:"true" doc:"Absolute http(s) URL of the article"`
}

// GetReaderViewOutput defines the output for the GetReaderView operation
type GetReaderViewOutput struct {
	Body *domain.ReaderView
}

// GetReaderView handles GET /api/reader
func (h *ReaderHandler) GetReaderView(ctx context.Context, input *GetReaderViewInput) (*GetReaderViewOutput, error) {
	view, err := h.readerService.Extract(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetReaderViewOutput{Body: view}, nil
}
