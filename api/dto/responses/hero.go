// ABOUTME: Response DTOs for hero selection endpoints
// ABOUTME: Reduces selected candidates to their display summary for diagnostics

package responses

import (
	"time"

	"lakeshow-api/core/domain"
)

// HeroBox is a candidate reduced to the fields that decided its slot
type HeroBox struct {
	Type        domain.CandidateType `json:"type"`
	Title       string               `json:"title"`
	PublishedAt string               `json:"published_at,omitempty"`
}

// HeroDebugResponse is the body served by the hero diagnostic endpoint
type HeroDebugResponse struct {
	Box1       *HeroBox                `json:"box1"`
	Box2       *HeroBox                `json:"box2"`
	Reason     string                  `json:"reason"`
	Candidates []domain.CandidateTrace `json:"candidates"`
	Timestamp  string                  `json:"timestamp"`
}

// NewHeroDebugResponse builds the diagnostic body for a selection made at now
func NewHeroDebugResponse(result domain.SelectionResult, now time.Time) HeroDebugResponse {
	candidates := result.Candidates
	if candidates == nil {
		candidates = []domain.CandidateTrace{}
	}

	return HeroDebugResponse{
		Box1:       newHeroBox(result.Box1),
		Box2:       newHeroBox(result.Box2),
		Reason:     result.Reason,
		Candidates: candidates,
		Timestamp:  now.UTC().Format(time.RFC3339),
	}
}

func newHeroBox(c *domain.Candidate) *HeroBox {
	if c == nil {
		return nil
	}
	return &HeroBox{
		Type:        c.Type,
		Title:       c.Title,
		PublishedAt: c.PublishedAt,
	}
}
