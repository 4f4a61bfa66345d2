// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - cache/redis: Redis cache on go-redis
// - cache/sqlite: file-backed cache on go-sqlite3
// - http/standard: net/http client with retries for transient failures
// - llm/anthropic, llm/gemini: text generators for the assist service
// - logger/structured: logrus-backed structured logger
//
// # Cache Example
//
//	cache := memory.NewMemoryCache(config.MemoryConfig{DefaultExpiration: 900})
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # Logger Example
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Hero selected", map[string]interface{}{"reason": reason})
package infrastructure
