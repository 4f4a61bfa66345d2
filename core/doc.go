// Package core contains the business logic for the Late Night Lake Show API.
// It is framework-agnostic; every external dependency is injected through
// the contracts in core/interfaces.
//
// Sub-packages:
//
// - hero: pure selection of the landing page's two hero slots, plus the
//   service that fetches candidates and logs each decision
// - player: the audio playback coordinator and its episode queue
// - podcast, video, news: upstream content sources with caching
// - reader: readable article extraction for aggregated news links
// - assist: AI-assisted summaries, captions and formatting
// - workers: background refresh of the source caches
// - domain: plain data models
// - errors: typed errors mapped to HTTP statuses by the API layer
// - interfaces: contracts for cache, HTTP and logging
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,
//	    HTTPClient: myHTTPClient,
//	    Logger:     myLogger,
//	}
//
//	podcasts := podcast.NewService(deps, feedURL, 15*time.Minute)
//	videos := video.NewService(deps, channelID, apiKey, 15*time.Minute)
//	result, err := hero.NewService(podcasts, videos, deps.Logger).Select(ctx)
package core
