// ABOUTME: News handler serves aggregated third-party Lakers coverage
// ABOUTME: Items are merged across configured feeds and sorted newest first

package handlers

import (
	"context"
	"net/http"

	"lakeshow-api/api/dto/responses"
	"lakeshow-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// NewsHandler handles news requests
type NewsHandler struct {
	news interfaces.NewsSource
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(news interfaces.NewsSource) *NewsHandler {
	return &NewsHandler{news: news}
}

// RegisterRoutes registers all news routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listNews",
		Method:      http.MethodGet,
		Path:        "/api/news",
		Summary:     "List aggregated news",
		Description: "Merges the configured news feeds, dropping duplicate links",
		Tags:        []string{"News"},
	}, h.ListNews)
}

// ListNewsOutput defines the output for the ListNews operation
type ListNewsOutput struct {
	Body responses.NewsResponse
}

// ListNews handles GET /api/news
func (h *NewsHandler) ListNews(ctx context.Context, input *ListInput) (*ListNewsOutput, error) {
	items, err := h.news.Aggregate(ctx, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListNewsOutput{Body: responses.NewNewsResponse(items)}, nil
}
