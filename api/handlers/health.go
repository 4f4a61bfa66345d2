// ABOUTME: Health handler reports liveness for load balancers
// ABOUTME: Includes the feature flag states the process is running with

package handlers

import (
	"context"
	"net/http"

	"lakeshow-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health checks
type HealthHandler struct {
	flags featureflags.Manager
}

// NewHealthHandler creates a health handler
func NewHealthHandler(flags featureflags.Manager) *HealthHandler {
	if flags == nil {
		flags = featureflags.NewEnvManager("")
	}
	return &HealthHandler{flags: flags}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body struct {
		Status string                            `json:"status"`
		Flags  map[featureflags.FeatureFlag]bool `json:"flags"`
	}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	out.Body.Flags = h.flags.GetAllFlags()
	return out, nil
}
