// ABOUTME: Main entry point for the Late Night Lake Show API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lakeshow-api/api"
	"lakeshow-api/core/assist"
	"lakeshow-api/core/domain"
	"lakeshow-api/core/hero"
	"lakeshow-api/core/interfaces"
	"lakeshow-api/core/news"
	"lakeshow-api/core/podcast"
	"lakeshow-api/core/reader"
	"lakeshow-api/core/video"
	"lakeshow-api/core/workers"
	"lakeshow-api/infrastructure/cache/memory"
	"lakeshow-api/infrastructure/cache/redis"
	"lakeshow-api/infrastructure/cache/sqlite"
	stdhttp "lakeshow-api/infrastructure/http/standard"
	"lakeshow-api/infrastructure/llm/anthropic"
	"lakeshow-api/infrastructure/llm/gemini"
	"lakeshow-api/infrastructure/logger/structured"
	"lakeshow-api/pkg/config"
	"lakeshow-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(structured.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	flags := featureflags.NewEnvManager("")
	logger.Info("Starting Late Night Lake Show API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"refresh_timer": cfg.Server.RefreshTimer,
		"llm_provider":  cfg.LLM.Provider,
	})

	cache, cacheCloser := newCache(cfg.Cache, logger)
	defer cacheCloser.Close()

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ttl := time.Duration(cfg.Cache.TTL) * time.Second
	podcasts := podcast.NewService(deps, cfg.Sources.PodcastFeedURL, ttl)
	videos := video.NewService(deps, cfg.Sources.YouTubeChannelID, cfg.Sources.YouTubeAPIKey, ttl)
	newsService := news.NewService(deps, newsSources(cfg.Sources.NewsFeeds), ttl)
	readerService := reader.NewService(deps, 24*time.Hour)
	heroService := hero.NewService(podcasts, videos, logger)

	generator, err := newGenerator(ctx, cfg.LLM)
	if err != nil {
		logger.Error("Failed to create LLM generator, assist disabled", map[string]interface{}{
			"provider": cfg.LLM.Provider,
			"error":    err.Error(),
		})
	}
	assistService := assist.NewService(deps, generator, readerService, 7*24*time.Hour)

	// Background refresh keeps the hero fetches on warm caches
	refresher := workers.NewRefreshWorker(logger, workers.DefaultWorkerConfig())
	if flags.IsEnabled(ctx, featureflags.BackgroundRefresh) {
		if err := refresher.Start(); err != nil {
			log.Fatalf("Failed to start refresh worker: %v", err)
		}
		refresher.Schedule(ctx, time.Duration(cfg.Server.RefreshTimer)*time.Second, configuredSources(cfg, podcasts, videos, newsService))
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         logger,
		Flags:          flags,
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     time.Duration(cfg.Server.RateWindow) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})
	api.RegisterRoutes(humaAPI, router, api.Services{
		Hero:     heroService,
		Podcasts: podcasts,
		Videos:   videos,
		News:     newsService,
		Reader:   readerService,
		Assist:   assistService,
	}, flags)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}
	_ = refresher.Stop()

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory when
// Redis or SQLite cannot be opened
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, io.Closer) {
	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{"address": cfg.Redis.Address})
			return redisCache, redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.SQLite.Path)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{"path": cfg.SQLite.Path})
			return sqliteCache, sqliteCache
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.Memory), nopCloser{}
}

// newGenerator returns the configured LLM provider, or nil when none is set
func newGenerator(ctx context.Context, cfg config.LLMConfig) (assist.Generator, error) {
	switch cfg.Provider {
	case "anthropic":
		return anthropic.New(cfg.APIKey, cfg.Model, cfg.MaxTokens), nil
	case "gemini":
		client, err := gemini.New(ctx, cfg.APIKey, cfg.Model, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return nil, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newsSources(feeds []config.NewsFeed) []domain.NewsSource {
	sources := make([]domain.NewsSource, 0, len(feeds))
	for _, f := range feeds {
		sources = append(sources, domain.NewsSource{Name: f.Name, URL: f.URL})
	}
	return sources
}

// configuredSources lists the refreshers whose upstreams are configured
func configuredSources(cfg *config.Config, podcasts, videos, newsService workers.Refresher) map[string]workers.Refresher {
	sources := make(map[string]workers.Refresher)
	if cfg.Sources.PodcastFeedURL != "" {
		sources["podcast"] = podcasts
	}
	if cfg.Sources.YouTubeChannelID != "" {
		sources["video"] = videos
	}
	if len(cfg.Sources.NewsFeeds) > 0 {
		sources["news"] = newsService
	}
	return sources
}

func init() {
	fmt.Println(`
    __          __        _____ __
   / /   ____ _/ /_____  / ___// /_  ____ _      __
  / /   / __ '/ //_/ _ \ \__ \/ __ \/ __ \ | /| / /
 / /___/ /_/ / ,< /  __/___/ / / / / /_/ / |/ |/ /
/_____/\__,_/_/|_|\___//____/_/ /_/\____/|__/|__/
	`)
}
