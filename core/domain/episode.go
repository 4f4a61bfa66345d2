// ABOUTME: Podcast episode domain model parsed from the show's RSS feed
// ABOUTME: Also used as the unit of playback by the audio coordinator

package domain

import "time"

// Episode represents a single podcast episode
type Episode struct {
	// ID is the feed GUID, falling back to the episode link
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`

	// AudioURL is the URL of the audio enclosure
	AudioURL  string `json:"audio_url"`
	AudioType string `json:"audio_type,omitempty"`

	// PublishedAt is zero when the feed gave no usable date
	PublishedAt time.Time `json:"published_at"`

	// DurationSeconds is the iTunes duration normalized to seconds
	DurationSeconds int `json:"duration_seconds,omitempty"`

	Image       string `json:"image,omitempty"`
	Season      int    `json:"season,omitempty"`
	Number      int    `json:"episode,omitempty"`
	EpisodeType string `json:"episode_type,omitempty"`
	Explicit    bool   `json:"explicit,omitempty"`
}

// IsPlayable reports whether the episode has audio to play
func (e *Episode) IsPlayable() bool {
	return e != nil && e.AudioURL != ""
}

// formatTimestamp renders a time as RFC 3339 in UTC, or "" for the zero time
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
