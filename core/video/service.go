// ABOUTME: Video service lists the show's YouTube uploads, newest first
// ABOUTME: Uses the YouTube Data API when keyed, else the channel's public Atom feed

package video

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"lakeshow-api/core/domain"
	coreerrors "lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"
	timeutil "lakeshow-api/pkg/utils/time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

const (
	cacheKey = "video:recent"

	// maxResults is the largest page the search endpoint serves
	maxResults = 50

	defaultAPIBase  = "https://www.googleapis.com/youtube/v3"
	defaultFeedBase = "https://www.youtube.com/feeds/videos.xml"
)

// Service provides the show's videos
type Service struct {
	deps      interfaces.Dependencies
	channelID string
	apiKey    string
	ttl       time.Duration

	apiBase  string
	feedBase string
}

// NewService creates a video service for channelID. With an empty apiKey the
// channel feed is used, which carries the 15 most recent uploads.
func NewService(deps interfaces.Dependencies, channelID, apiKey string, ttl time.Duration) *Service {
	return &Service{
		deps:      deps,
		channelID: channelID,
		apiKey:    apiKey,
		ttl:       ttl,
		apiBase:   defaultAPIBase,
		feedBase:  defaultFeedBase,
	}
}

// Latest returns the newest video, or nil when the channel has none
func (s *Service) Latest(ctx context.Context) (*domain.Video, error) {
	videos, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}

	latest := videos[0]
	return &latest, nil
}

// Recent returns up to limit videos, newest first
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Video, error) {
	videos, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(videos) > limit {
		videos = videos[:limit]
	}
	return videos, nil
}

// Refresh refetches the upload list and replaces the cached copy
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.fetch(ctx)
	return err
}

func (s *Service) load(ctx context.Context) ([]domain.Video, error) {
	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}
	return s.fetch(ctx)
}

func (s *Service) fetch(ctx context.Context) ([]domain.Video, error) {
	if s.channelID == "" {
		return nil, &coreerrors.ConfigurationError{Feature: "video source", Missing: "YOUTUBE_CHANNEL_ID"}
	}
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	var (
		videos []domain.Video
		err    error
	)
	if s.apiKey != "" {
		videos, err = s.fetchFromAPI(ctx)
	} else {
		videos, err = s.fetchFromFeed(ctx)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt.After(videos[j].PublishedAt)
	})

	s.store(ctx, videos)

	s.deps.Log().Debug("Fetched channel videos", map[string]interface{}{
		"channel_id": s.channelID,
		"videos":     len(videos),
		"via_api":    s.apiKey != "",
	})

	return videos, nil
}

// searchResponse is the subset of the Data API search response we read
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			PublishedAt  string `json:"publishedAt"`
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
			Title        string `json:"title"`
			Description  string `json:"description"`
			Thumbnails   map[string]struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Service) fetchFromAPI(ctx context.Context) ([]domain.Video, error) {
	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("channelId", s.channelID)
	query.Set("order", "date")
	query.Set("type", "video")
	query.Set("maxResults", fmt.Sprint(maxResults))
	query.Set("key", s.apiKey)

	body, err := s.get(ctx, s.apiBase+"/search?"+query.Encode(), "YouTube Data API")
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, coreerrors.WrapError(err, "failed to decode YouTube search response")
	}

	videos := make([]domain.Video, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		v := domain.Video{
			ID:           item.ID.VideoID,
			Title:        html.UnescapeString(item.Snippet.Title),
			Description:  html.UnescapeString(item.Snippet.Description),
			ChannelID:    item.Snippet.ChannelID,
			ChannelTitle: item.Snippet.ChannelTitle,
		}
		if t, err := timeutil.ParseISO(item.Snippet.PublishedAt); err == nil {
			v.PublishedAt = t.UTC()
		}
		for _, size := range []string{"maxres", "high", "medium", "default"} {
			if thumb, ok := item.Snippet.Thumbnails[size]; ok && thumb.URL != "" {
				v.Thumbnail = thumb.URL
				break
			}
		}
		videos = append(videos, v)
	}

	return videos, nil
}

func (s *Service) fetchFromFeed(ctx context.Context) ([]domain.Video, error) {
	body, err := s.get(ctx, s.feedBase+"?channel_id="+url.QueryEscape(s.channelID), "YouTube channel feed")
	if err != nil {
		return nil, err
	}

	return ParseChannelFeed(body)
}

// ParseChannelFeed converts a YouTube channel Atom feed into videos
func ParseChannelFeed(content []byte) ([]domain.Video, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse channel feed")
	}

	videos := make([]domain.Video, 0, len(feed.Items))
	for _, item := range feed.Items {
		id := extensionValue(item.Extensions, "yt", "videoId")
		if id == "" {
			id = strings.TrimPrefix(item.GUID, "yt:video:")
		}
		if id == "" {
			continue
		}

		v := domain.Video{
			ID:        id,
			Title:     item.Title,
			ChannelID: extensionValue(item.Extensions, "yt", "channelId"),
		}
		if item.Author != nil {
			v.ChannelTitle = item.Author.Name
		}
		if item.PublishedParsed != nil {
			v.PublishedAt = item.PublishedParsed.UTC()
		}

		if group := mediaGroup(item.Extensions); group != nil {
			if d := group.Children["description"]; len(d) > 0 {
				v.Description = d[0].Value
			}
			if th := group.Children["thumbnail"]; len(th) > 0 {
				v.Thumbnail = th[0].Attrs["url"]
			}
		}
		if v.Description == "" {
			v.Description = item.Description
		}

		videos = append(videos, v)
	}

	return videos, nil
}

func extensionValue(exts ext.Extensions, namespace, name string) string {
	if values := exts[namespace][name]; len(values) > 0 {
		return strings.TrimSpace(values[0].Value)
	}
	return ""
}

func mediaGroup(exts ext.Extensions) *ext.Extension {
	if groups := exts["media"]["group"]; len(groups) > 0 {
		return &groups[0]
	}
	return nil
}

// get fetches rawURL and returns the body of a 200 response
func (s *Service) get(ctx context.Context, rawURL, api string) ([]byte, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, rawURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to reach "+api)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		message := "unexpected status"
		var apiErr apiErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		return nil, &coreerrors.ExternalAPIError{StatusCode: resp.StatusCode(), Message: message, API: api}
	}

	return body, nil
}

func (s *Service) cached(ctx context.Context) ([]domain.Video, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var videos []domain.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, false
	}
	return videos, true
}

func (s *Service) store(ctx context.Context, videos []domain.Video) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(videos)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, cacheKey, data, s.ttl); err != nil {
		s.deps.Log().Warn("Failed to cache videos", map[string]interface{}{"error": err.Error()})
	}
}
