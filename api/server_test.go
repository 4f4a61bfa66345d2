package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lakeshow-api/core/domain"
	"lakeshow-api/pkg/featureflags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSelector struct{}

func (stubSelector) Select(ctx context.Context) (domain.SelectionResult, error) {
	return domain.SelectionResult{
		Box1:   &domain.Candidate{Type: domain.CandidateTypePodcast, Title: "Ep 1", PublishedAt: "2026-01-01T00:00:00Z"},
		Reason: "only podcast available",
		Candidates: []domain.CandidateTrace{
			{Type: domain.CandidateTypePodcast, Title: "Ep 1", Selected: true},
		},
	}, nil
}

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	require.NotNil(t, api)
	require.NotNil(t, router)
	assert.Equal(t, "Late Night Lake Show API", api.OpenAPI().Info.Title)
	assert.Equal(t, "1.0.0", api.OpenAPI().Info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", rec.Header().Get("Content-Type"))
}

func TestRegisterRoutes_MountsHeroEndpoints(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.HeroDebug: true})
	api, router := NewAPIWithMiddleware(APIConfig{Flags: flags})
	RegisterRoutes(api, router, Services{Hero: stubSelector{}}, flags)

	for _, path := range []string{"/api/hero", "/api/debug/hero", "/healthz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	assert.NotNil(t, api.OpenAPI().Paths["/api/hero"])
	assert.Nil(t, api.OpenAPI().Paths["/api/podcast/latest"], "podcast routes need a podcast source")
}

func TestNewAPIWithMiddleware_RateLimits(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{RateLimit: 1, RateWindow: time.Minute})
	RegisterRoutes(api, router, Services{}, nil)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestNewAPIWithMiddleware_RateLimitFlagOff(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.RateLimitEnabled: false})
	api, router := NewAPIWithMiddleware(APIConfig{Flags: flags, RateLimit: 1, RateWindow: time.Minute})
	RegisterRoutes(api, router, Services{}, flags)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestNewAPIWithMiddleware_CORS(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{AllowedOrigins: []string{"https://latenightlakeshow.com"}})
	RegisterRoutes(api, router, Services{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://latenightlakeshow.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://latenightlakeshow.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
