// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, content sources, LLM and logging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Sources contains upstream content configuration
	Sources SourcesConfig

	// LLM contains the AI assist provider configuration
	LLM LLMConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RefreshTimer is the interval in seconds for background cache refresh
	RefreshTimer int

	// RateLimit is the number of requests allowed per client per RateWindow
	RateLimit int

	// RateWindow is the rate limit window in seconds
	RateWindow int

	// AllowedOrigins lists CORS origins; "*" allows all
	AllowedOrigins []string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite cache configuration
	SQLite SQLiteConfig

	// TTL is the default lifetime in seconds of cached upstream data
	TTL int
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int

	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// SourcesConfig holds upstream content configuration
type SourcesConfig struct {
	// PodcastFeedURL is the show's podcast RSS feed
	PodcastFeedURL string

	// YouTubeChannelID is the show's channel
	YouTubeChannelID string

	// YouTubeAPIKey enables the Data API; without it the channel feed is used
	YouTubeAPIKey string

	// NewsFeeds are the aggregated third-party feeds
	NewsFeeds []NewsFeed
}

// NewsFeed is one configured news feed
type NewsFeed struct {
	Name string
	URL  string
}

// LLMConfig holds AI assist provider configuration
type LLMConfig struct {
	// Provider is "anthropic", "gemini" or empty to disable assist
	Provider string

	APIKey    string
	Model     string
	MaxTokens int
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is "json" or "text"
	Format string
}

// LoadFromEnv loads configuration from environment variables. Values from a
// .env file (or the file named by ENV_FILE) fill in anything not already set.
func LoadFromEnv() (*Config, error) {
	envFile := getEnvOrDefault("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	news, err := parseNewsFeeds(os.Getenv("NEWS_FEEDS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			RefreshTimer:   getEnvAsIntOrDefault("REFRESH_TIMER", 60),
			RateLimit:      getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow:     getEnvAsIntOrDefault("RATE_WINDOW", 60),
			AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
				CleanupInterval:   getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
			TTL: getEnvAsIntOrDefault("CACHE_TTL", 900),
		},
		Sources: SourcesConfig{
			PodcastFeedURL:   os.Getenv("PODCAST_FEED_URL"),
			YouTubeChannelID: os.Getenv("YOUTUBE_CHANNEL_ID"),
			YouTubeAPIKey:    os.Getenv("YOUTUBE_API_KEY"),
			NewsFeeds:        news,
		},
		LLM: LLMConfig{
			Provider:  strings.ToLower(os.Getenv("LLM_PROVIDER")),
			APIKey:    os.Getenv("LLM_API_KEY"),
			Model:     os.Getenv("LLM_MODEL"),
			MaxTokens: getEnvAsIntOrDefault("LLM_MAX_TOKENS", 1024),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// parseNewsFeeds reads "Name|https://url,Name|https://url". A bare URL uses
// its host as the name.
func parseNewsFeeds(raw string) ([]NewsFeed, error) {
	var feeds []NewsFeed
	for _, entry := range splitList(raw) {
		name, link, found := strings.Cut(entry, "|")
		if !found {
			link = name
			name = ""
		}
		name, link = strings.TrimSpace(name), strings.TrimSpace(link)

		u, err := url.Parse(link)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid news feed URL %q", link)
		}
		if name == "" {
			name = u.Host
		}
		feeds = append(feeds, NewsFeed{Name: name, URL: link})
	}
	return feeds, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RefreshTimer < 1 {
		return errors.New("refresh timer must be at least 1 second")
	}

	if c.Server.RateLimit < 0 || c.Server.RateWindow < 0 {
		return errors.New("rate limit settings cannot be negative")
	}

	switch c.Cache.Type {
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	case "memory":
	default:
		return errors.New("cache type must be 'redis', 'sqlite' or 'memory'")
	}

	if c.Sources.PodcastFeedURL != "" {
		if u, err := url.Parse(c.Sources.PodcastFeedURL); err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("podcast feed URL is not a valid URL")
		}
	}

	switch c.LLM.Provider {
	case "":
	case "anthropic", "gemini":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required for provider %q", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("unknown LLM provider %q", c.LLM.Provider)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
