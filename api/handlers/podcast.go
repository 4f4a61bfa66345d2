// ABOUTME: Podcast handler exposes the show's episodes from its RSS feed
// ABOUTME: Provides listing and latest-episode endpoints

package handlers

import (
	"context"
	"net/http"

	"lakeshow-api/api/dto/responses"
	"lakeshow-api/core/domain"
	"lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// PodcastHandler handles podcast requests
type PodcastHandler struct {
	podcasts interfaces.PodcastSource
}

// NewPodcastHandler creates a new podcast handler
func NewPodcastHandler(podcasts interfaces.PodcastSource) *PodcastHandler {
	return &PodcastHandler{podcasts: podcasts}
}

// RegisterRoutes registers all podcast routes
func (h *PodcastHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listEpisodes",
		Method:      http.MethodGet,
		Path:        "/api/podcast/episodes",
		Summary:     "List podcast episodes",
		Tags:        []string{"Podcast"},
	}, h.ListEpisodes)

	huma.Register(api, huma.Operation{
		OperationID: "getLatestEpisode",
		Method:      http.MethodGet,
		Path:        "/api/podcast/latest",
		Summary:     "Get the latest podcast episode",
		Tags:        []string{"Podcast"},
	}, h.LatestEpisode)
}

// ListInput is the shared pagination input for listing endpoints
type ListInput struct {
	Limit int `query:"limit" minimum:"1" maximum:"50" default:"10" doc:"Maximum number of items to return"`
}

// ListEpisodesOutput defines the output for the ListEpisodes operation
type ListEpisodesOutput struct {
	Body responses.EpisodesResponse
}

// ListEpisodes handles GET /api/podcast/episodes
func (h *PodcastHandler) ListEpisodes(ctx context.Context, input *ListInput) (*ListEpisodesOutput, error) {
	episodes, err := h.podcasts.Episodes(ctx, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListEpisodesOutput{Body: responses.NewEpisodesResponse(episodes)}, nil
}

// LatestEpisodeOutput defines the output for the LatestEpisode operation
type LatestEpisodeOutput struct {
	Body *domain.Episode
}

// LatestEpisode handles GET /api/podcast/latest
func (h *PodcastHandler) LatestEpisode(ctx context.Context, _ *struct{}) (*LatestEpisodeOutput, error) {
	episode, err := h.podcasts.Latest(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	if episode == nil {
		return nil, toHumaError(&errors.NotFoundError{Resource: "episode", ID: "latest"})
	}
	return &LatestEpisodeOutput{Body: episode}, nil
}
