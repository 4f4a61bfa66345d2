// ABOUTME: Video handler exposes the show's YouTube uploads
// ABOUTME: Provides listing and latest-video endpoints with player URLs

package handlers

import (
	"context"
	"net/http"

	"lakeshow-api/api/dto/responses"
	"lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// VideoHandler handles video requests
type VideoHandler struct {
	videos interfaces.VideoSource
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videos interfaces.VideoSource) *VideoHandler {
	return &VideoHandler{videos: videos}
}

// RegisterRoutes registers all video routes
func (h *VideoHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listVideos",
		Method:      http.MethodGet,
		Path:        "/api/videos",
		Summary:     "List recent videos",
		Tags:        []string{"Videos"},
	}, h.ListVideos)

	huma.Register(api, huma.Operation{
		OperationID: "getLatestVideo",
		Method:      http.MethodGet,
		Path:        "/api/videos/latest",
		Summary:     "Get the latest video",
		Tags:        []string{"Videos"},
	}, h.LatestVideo)
}

// ListVideosOutput defines the output for the ListVideos operation
type ListVideosOutput struct {
	Body responses.VideosResponse
}

// ListVideos handles GET /api/videos
func (h *VideoHandler) ListVideos(ctx context.Context, input *ListInput) (*ListVideosOutput, error) {
	videos, err := h.videos.Recent(ctx, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListVideosOutput{Body: responses.NewVideosResponse(videos)}, nil
}

// LatestVideoOutput defines the output for the LatestVideo operation
type LatestVideoOutput struct {
	Body responses.VideoView
}

// LatestVideo handles GET /api/videos/latest
func (h *VideoHandler) LatestVideo(ctx context.Context, _ *struct{}) (*LatestVideoOutput, error) {
	video, err := h.videos.Latest(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	if video == nil {
		return nil, toHumaError(&errors.NotFoundError{Resource: "video", ID: "latest"})
	}
	return &LatestVideoOutput{Body: responses.NewVideoView(*video)}, nil
}
