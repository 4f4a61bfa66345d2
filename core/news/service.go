// ABOUTME: News service aggregates third-party Lakers coverage from RSS/Atom feeds
// ABOUTME: Fetches feeds concurrently, normalizes items, dedupes by link and sorts newest first

package news

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"lakeshow-api/core/domain"
	coreerrors "lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"
	htmlutil "lakeshow-api/pkg/utils/html"
	timeutil "lakeshow-api/pkg/utils/time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"
)

const (
	cacheKey = "news:aggregate"

	// maxConcurrentFeeds bounds the number of feeds fetched at once
	maxConcurrentFeeds = 10

	summaryLength = 280
)

// Service aggregates news from the configured sources
type Service struct {
	deps    interfaces.Dependencies
	sources []domain.NewsSource
	ttl     time.Duration
}

// NewService creates a news service over sources
func NewService(deps interfaces.Dependencies, sources []domain.NewsSource, ttl time.Duration) *Service {
	return &Service{
		deps:    deps,
		sources: sources,
		ttl:     ttl,
	}
}

// Aggregate returns up to limit items across all sources, newest first.
// Feeds that fail are logged and skipped; an error is returned only when
// every feed fails.
func (s *Service) Aggregate(ctx context.Context, limit int) ([]domain.NewsItem, error) {
	items, ok := s.cached(ctx)
	if !ok {
		var err error
		items, err = s.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// Refresh refetches every source and replaces the cached aggregate
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.fetchAll(ctx)
	return err
}

func (s *Service) fetchAll(ctx context.Context) ([]domain.NewsItem, error) {
	if len(s.sources) == 0 {
		return nil, &coreerrors.ConfigurationError{Feature: "news aggregation", Missing: "NEWS_FEEDS"}
	}
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	var (
		mu       sync.Mutex
		all      []domain.NewsItem
		failures int
		lastErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFeeds)

	for _, source := range s.sources {
		g.Go(func() error {
			items, err := s.fetchSource(gctx, source)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				lastErr = err
				s.deps.Log().Warn("Skipping news feed", map[string]interface{}{
					"source": source.Name,
					"url":    source.URL,
					"error":  err.Error(),
				})
				return nil
			}
			all = append(all, items...)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if failures == len(s.sources) {
		return nil, coreerrors.WrapError(lastErr, "all news feeds failed")
	}

	items := Merge(all)
	s.store(ctx, items)

	s.deps.Log().Debug("Aggregated news", map[string]interface{}{
		"sources":  len(s.sources),
		"failures": failures,
		"items":    len(items),
	})

	return items, nil
}

func (s *Service) fetchSource(ctx context.Context, source domain.NewsSource) ([]domain.NewsItem, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, source.URL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        source.Name,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	return ParseItems(body, source)
}

// ParseItems converts a feed into news items attributed to source.
// Items without a title or link are dropped.
func ParseItems(content []byte, source domain.NewsSource) ([]domain.NewsItem, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	name := source.Name
	if name == "" {
		name = feed.Title
	}

	items := make([]domain.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		item := domain.NewsItem{
			ID:         it.GUID,
			Title:      htmlutil.StripHTML(it.Title),
			Link:       strings.TrimSpace(it.Link),
			Categories: it.Categories,
			Source:     name,
		}
		if item.ID == "" {
			item.ID = item.Link
		}

		if it.PublishedParsed != nil {
			item.PublishedAt = it.PublishedParsed.UTC()
		} else if it.UpdatedParsed != nil {
			item.PublishedAt = it.UpdatedParsed.UTC()
		} else if it.Published != "" {
			item.PublishedAt = timeutil.ParseFlexibleTime(it.Published).UTC()
		}

		if it.Author != nil {
			item.Author = it.Author.Name
		}

		markup := it.Description
		if markup == "" {
			markup = it.Content
		}
		item.Summary = htmlutil.Truncate(htmlutil.StripHTML(markup), summaryLength)
		item.Image = itemImage(it)

		if !item.IsValid() {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func itemImage(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	if thumbs := it.Extensions["media"]["thumbnail"]; len(thumbs) > 0 {
		return thumbs[0].Attrs["url"]
	}
	if contents := it.Extensions["media"]["content"]; len(contents) > 0 {
		if u := contents[0].Attrs["url"]; u != "" {
			return u
		}
	}
	if img := htmlutil.FirstImage(it.Content); img != "" {
		return img
	}
	return htmlutil.FirstImage(it.Description)
}

// Merge dedupes items by normalized link, keeping the first occurrence,
// and sorts the result newest first
func Merge(items []domain.NewsItem) []domain.NewsItem {
	seen := make(map[string]struct{}, len(items))
	merged := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		key := normalizeLink(item.Link)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, item)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})
	return merged
}

// normalizeLink drops scheme, fragment, tracking parameters and trailing slashes
func normalizeLink(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return strings.ToLower(strings.TrimRight(link, "/"))
	}

	q := u.Query()
	for key := range q {
		if strings.HasPrefix(key, "utm_") {
			q.Del(key)
		}
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	normalized := host + strings.TrimRight(u.Path, "/")
	if encoded := q.Encode(); encoded != "" {
		normalized += "?" + encoded
	}
	return normalized
}

func (s *Service) cached(ctx context.Context) ([]domain.NewsItem, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var items []domain.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (s *Service) store(ctx context.Context, items []domain.NewsItem) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, cacheKey, data, s.ttl); err != nil {
		s.deps.Log().Warn("Failed to cache news", map[string]interface{}{"error": err.Error()})
	}
}
