package responses

import (
	"encoding/json"
	"testing"
	"time"

	"lakeshow-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeroDebugResponse_ReducesPayloads(t *testing.T) {
	result := domain.SelectionResult{
		Box1: &domain.Candidate{
			Type:        domain.CandidateTypeVideo,
			Title:       "Film Room",
			PublishedAt: "2026-03-02T00:00:00Z",
			Payload:     &domain.Video{ID: "abc"},
		},
		Box2: &domain.Candidate{
			Type:        domain.CandidateTypePodcast,
			Title:       "Ep 200",
			PublishedAt: "2026-03-01T00:00:00Z",
			Payload:     &domain.Episode{ID: "ep200"},
		},
		Reason: "video is newer",
		Candidates: []domain.CandidateTrace{
			{Type: domain.CandidateTypePodcast, Title: "Ep 200", Selected: false},
			{Type: domain.CandidateTypeVideo, Title: "Film Room", Selected: true},
		},
	}
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.FixedZone("PST", -8*3600))

	resp := NewHeroDebugResponse(result, now)

	require.NotNil(t, resp.Box1)
	assert.Equal(t, HeroBox{Type: domain.CandidateTypeVideo, Title: "Film Room", PublishedAt: "2026-03-02T00:00:00Z"}, *resp.Box1)
	assert.Equal(t, "Ep 200", resp.Box2.Title)
	assert.Equal(t, "2026-03-03T20:00:00Z", resp.Timestamp)
	assert.Len(t, resp.Candidates, 2)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "payload")
}

func TestNewHeroDebugResponse_Empty(t *testing.T) {
	resp := NewHeroDebugResponse(domain.SelectionResult{Reason: "no content"}, time.Now())

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["box1"])
	assert.Nil(t, decoded["box2"])
	assert.Equal(t, []any{}, decoded["candidates"])
}

func TestNewVideosResponse_AddsPlayerURLs(t *testing.T) {
	resp := NewVideosResponse([]domain.Video{{ID: "xyz", Title: "Pregame"}})

	require.Len(t, resp.Videos, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=xyz", resp.Videos[0].URL)
	assert.Equal(t, "https://www.youtube.com/embed/xyz", resp.Videos[0].EmbedURL)
	assert.Equal(t, 1, resp.Count)
}

func TestNewEpisodesResponse_NeverNull(t *testing.T) {
	raw, err := json.Marshal(NewEpisodesResponse(nil))

	require.NoError(t, err)
	assert.JSONEq(t, `{"episodes":[],"count":0}`, string(raw))
}
