// ABOUTME: Podcast service fetches the show's RSS feed and normalizes episodes
// ABOUTME: Parses iTunes extensions with gofeed and caches the episode list

package podcast

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"lakeshow-api/core/domain"
	coreerrors "lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"
	"lakeshow-api/pkg/utils/duration"
	htmlutil "lakeshow-api/pkg/utils/html"
	"lakeshow-api/pkg/utils/parse"
	timeutil "lakeshow-api/pkg/utils/time"

	"github.com/mmcdole/gofeed"
)

const cacheKey = "podcast:episodes"

// Service provides the show's podcast episodes
type Service struct {
	deps    interfaces.Dependencies
	feedURL string
	ttl     time.Duration
}

// NewService creates a podcast service reading feedURL. Parsed episodes are
// cached for ttl.
func NewService(deps interfaces.Dependencies, feedURL string, ttl time.Duration) *Service {
	return &Service{
		deps:    deps,
		feedURL: feedURL,
		ttl:     ttl,
	}
}

// Latest returns the newest episode, or nil when the feed has none
func (s *Service) Latest(ctx context.Context) (*domain.Episode, error) {
	episodes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return nil, nil
	}

	latest := episodes[0]
	return &latest, nil
}

// Episodes returns up to limit episodes, newest first. A limit of zero or
// less returns every episode.
func (s *Service) Episodes(ctx context.Context, limit int) ([]domain.Episode, error) {
	episodes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(episodes) > limit {
		episodes = episodes[:limit]
	}
	return episodes, nil
}

// Refresh refetches the feed and replaces the cached episode list
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.fetch(ctx)
	return err
}

func (s *Service) load(ctx context.Context) ([]domain.Episode, error) {
	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}
	return s.fetch(ctx)
}

func (s *Service) fetch(ctx context.Context) ([]domain.Episode, error) {
	if s.feedURL == "" {
		return nil, &coreerrors.ConfigurationError{Feature: "podcast feed", Missing: "PODCAST_FEED_URL"}
	}
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.feedURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to fetch podcast feed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        "podcast feed",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	episodes, err := ParseEpisodes(body)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse podcast feed")
	}

	s.store(ctx, episodes)

	s.deps.Log().Debug("Fetched podcast feed", map[string]interface{}{
		"url":      s.feedURL,
		"episodes": len(episodes),
	})

	return episodes, nil
}

// ParseEpisodes converts RSS bytes into playable episodes sorted newest first.
// Items without an audio enclosure are skipped.
func ParseEpisodes(content []byte) ([]domain.Episode, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, errors.New("empty feed content")
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	episodes := make([]domain.Episode, 0, len(feed.Items))
	for _, item := range feed.Items {
		episode := convertItem(item, feed)
		if !episode.IsPlayable() {
			continue
		}
		episodes = append(episodes, episode)
	}

	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].PublishedAt.After(episodes[j].PublishedAt)
	})

	return episodes, nil
}

func convertItem(item *gofeed.Item, feed *gofeed.Feed) domain.Episode {
	episode := domain.Episode{
		ID:    item.GUID,
		Title: strings.TrimSpace(item.Title),
		Link:  item.Link,
	}

	if enc := audioEnclosure(item); enc != nil {
		episode.AudioURL = enc.URL
		episode.AudioType = enc.Type
	}

	if episode.ID == "" {
		episode.ID = item.Link
	}
	if episode.ID == "" {
		episode.ID = episode.AudioURL
	}

	if item.PublishedParsed != nil {
		episode.PublishedAt = item.PublishedParsed.UTC()
	} else if item.Published != "" {
		episode.PublishedAt = timeutil.ParseFlexibleTime(item.Published).UTC()
	}

	description := item.Description
	if item.ITunesExt != nil {
		ext := item.ITunesExt
		if ext.Summary != "" && description == "" {
			description = ext.Summary
		}
		episode.DurationSeconds = duration.Seconds(ext.Duration)
		episode.Season = parse.IntOrZero(ext.Season)
		episode.Number = parse.IntOrZero(ext.Episode)
		episode.EpisodeType = ext.EpisodeType
		episode.Explicit = isExplicit(ext.Explicit)
	}
	if description == "" {
		description = item.Content
	}
	episode.Description = htmlutil.StripHTML(description)
	episode.Image = findImage(item, feed)

	return episode
}

// audioEnclosure picks the first audio enclosure, or an untyped one
func audioEnclosure(item *gofeed.Item) *gofeed.Enclosure {
	var untyped *gofeed.Enclosure
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if strings.HasPrefix(enc.Type, "audio/") {
			return enc
		}
		if enc.Type == "" && untyped == nil {
			untyped = enc
		}
	}
	return untyped
}

// findImage prefers episode artwork and falls back to show artwork
func findImage(item *gofeed.Item, feed *gofeed.Feed) string {
	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return item.ITunesExt.Image
	}
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	if feed.ITunesExt != nil && feed.ITunesExt.Image != "" {
		return feed.ITunesExt.Image
	}
	if feed.Image != nil {
		return feed.Image.URL
	}
	return ""
}

func isExplicit(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "explicit":
		return true
	}
	return false
}

func (s *Service) cached(ctx context.Context) ([]domain.Episode, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var episodes []domain.Episode
	if err := json.Unmarshal(data, &episodes); err != nil {
		s.deps.Log().Warn("Discarding unreadable cached episodes", map[string]interface{}{"error": err.Error()})
		return nil, false
	}
	return episodes, true
}

// store caches the episode list, ignoring cache errors
func (s *Service) store(ctx context.Context, episodes []domain.Episode) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(episodes)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, cacheKey, data, s.ttl); err != nil {
		s.deps.Log().Warn("Failed to cache episodes", map[string]interface{}{"error": err.Error()})
	}
}
