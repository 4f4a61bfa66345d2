// ABOUTME: Hero handlers serve the landing page's two-slot selection
// ABOUTME: Includes the raw diagnostic endpoint that explains each decision

package handlers

import (
	"context"
	"net/http"
	"time"

	"lakeshow-api/api/dto/responses"
	"lakeshow-api/api/middleware"
	"lakeshow-api/core/domain"
	"lakeshow-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// HeroDebugPath is where the diagnostic endpoint is mounted
const HeroDebugPath = "/api/debug/hero"

// HeroSelector picks content for the two hero slots
type HeroSelector interface {
	Select(ctx context.Context) (domain.SelectionResult, error)
}

// HeroHandler handles hero selection requests
type HeroHandler struct {
	selector HeroSelector
	flags    featureflags.Manager
	now      func() time.Time
}

// NewHeroHandler creates a hero handler. A nil flags manager reads FEATURE_* env vars.
func NewHeroHandler(selector HeroSelector, flags featureflags.Manager) *HeroHandler {
	if flags == nil {
		flags = featureflags.NewEnvManager("")
	}
	return &HeroHandler{
		selector: selector,
		flags:    flags,
		now:      time.Now,
	}
}

// RegisterRoutes registers the landing page hero operation
func (h *HeroHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHero",
		Method:      http.MethodGet,
		Path:        "/api/hero",
		Summary:     "Select hero content",
		Description: "Returns the newest of the latest podcast episode and latest video in box1 and the other in box2",
		Tags:        []string{"Hero"},
	}, h.GetHero)
}

// RegisterDebugRoutes mounts the diagnostic endpoint. Only GET is routed so
// other methods get 405 from the router.
func (h *HeroHandler) RegisterDebugRoutes(router chi.Router) {
	router.Get(HeroDebugPath, h.DebugHero)
}

// GetHeroOutput defines the output for the GetHero operation
type GetHeroOutput struct {
	Body domain.SelectionResult
}

// GetHero handles GET /api/hero
func (h *HeroHandler) GetHero(ctx context.Context, _ *struct{}) (*GetHeroOutput, error) {
	result, err := h.selector.Select(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	if result.Candidates == nil {
		result.Candidates = []domain.CandidateTrace{}
	}
	return &GetHeroOutput{Body: result}, nil
}

// DebugHero handles GET /api/debug/hero
func (h *HeroHandler) DebugHero(w http.ResponseWriter, r *http.Request) {
	if !h.flags.IsEnabled(r.Context(), featureflags.HeroDebug) {
		middleware.WriteError(w, http.StatusNotFound, "Not found", "hero debug endpoint is disabled")
		return
	}

	result, err := h.selector.Select(r.Context())
	if err != nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Hero selection failed", err.Error())
		return
	}

	middleware.WriteJSON(w, http.StatusOK, responses.NewHeroDebugResponse(result, h.now()))
}
