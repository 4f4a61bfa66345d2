// ABOUTME: Response DTOs for podcast, video and news listings
// ABOUTME: Adds derived fields such as watch and embed URLs to domain records

package responses

import "lakeshow-api/core/domain"

// EpisodesResponse lists podcast episodes, newest first
type EpisodesResponse struct {
	Episodes []domain.Episode `json:"episodes"`
	Count    int              `json:"count"`
}

// VideoView is a video with its player URLs
type VideoView struct {
	domain.Video
	URL      string `json:"url"`
	EmbedURL string `json:"embed_url"`
}

// VideosResponse lists videos, newest first
type VideosResponse struct {
	Videos []VideoView `json:"videos"`
	Count  int         `json:"count"`
}

// NewsResponse lists aggregated news items, newest first
type NewsResponse struct {
	Items []domain.NewsItem `json:"items"`
	Count int               `json:"count"`
}

// NewVideoView adds player URLs to v
func NewVideoView(v domain.Video) VideoView {
	return VideoView{
		Video:    v,
		URL:      v.URL(),
		EmbedURL: v.EmbedURL(),
	}
}

// NewEpisodesResponse wraps episodes, never returning a null list
func NewEpisodesResponse(episodes []domain.Episode) EpisodesResponse {
	if episodes == nil {
		episodes = []domain.Episode{}
	}
	return EpisodesResponse{Episodes: episodes, Count: len(episodes)}
}

// NewVideosResponse wraps videos, never returning a null list
func NewVideosResponse(videos []domain.Video) VideosResponse {
	views := make([]VideoView, 0, len(videos))
	for _, v := range videos {
		views = append(views, NewVideoView(v))
	}
	return VideosResponse{Videos: views, Count: len(views)}
}

// NewNewsResponse wraps news items, never returning a null list
func NewNewsResponse(items []domain.NewsItem) NewsResponse {
	if items == nil {
		items = []domain.NewsItem{}
	}
	return NewsResponse{Items: items, Count: len(items)}
}
