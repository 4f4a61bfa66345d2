// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, rate limiting and route registration

package api

import (
	"context"
	"time"

	"lakeshow-api/api/handlers"
	"lakeshow-api/api/middleware"
	"lakeshow-api/core/interfaces"
	"lakeshow-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	Flags          featureflags.Manager
	RateLimit      int           // requests per window
	RateWindow     time.Duration // rate limit window
	AllowedOrigins []string
}

// Services are the handlers' collaborators. Nil services leave their routes unregistered.
type Services struct {
	Hero     handlers.HeroSelector
	Podcasts interfaces.PodcastSource
	Videos   interfaces.VideoSource
	News     interfaces.NewsSource
	Reader   interfaces.ReaderService
	Assist   handlers.AssistService
}

// NewAPI creates and configures a new Huma API instance with no middleware
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS goes first so preflight requests skip everything else
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	rateLimited := cfg.Flags == nil || cfg.Flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled)
	if rateLimited && cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig("Late Night Lake Show API", "1.0.0")
	config.Info.Description = "Content API for the Late Night Lake Show: hero selection, podcast, videos, news and editorial assist"

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

// RegisterRoutes wires every handler whose service is present
func RegisterRoutes(api huma.API, router chi.Router, services Services, flags featureflags.Manager) {
	handlers.NewHealthHandler(flags).RegisterRoutes(api)

	if services.Hero != nil {
		hero := handlers.NewHeroHandler(services.Hero, flags)
		hero.RegisterRoutes(api)
		hero.RegisterDebugRoutes(router)
	}
	if services.Podcasts != nil {
		handlers.NewPodcastHandler(services.Podcasts).RegisterRoutes(api)
	}
	if services.Videos != nil {
		handlers.NewVideoHandler(services.Videos).RegisterRoutes(api)
	}
	if services.News != nil {
		handlers.NewNewsHandler(services.News).RegisterRoutes(api)
	}
	if services.Reader != nil {
		handlers.NewReaderHandler(services.Reader).RegisterRoutes(api)
	}
	if services.Assist != nil {
		handlers.NewAssistHandler(services.Assist, flags).RegisterRoutes(api)
	}
}
