// ABOUTME: Video domain model for the show's YouTube uploads
// ABOUTME: Populated from the YouTube Data API or the channel's Atom feed

package domain

import (
	"fmt"
	"time"
)

// Video represents a published video
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelID    string    `json:"channel_id,omitempty"`
	ChannelTitle string    `json:"channel_title,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
}

// URL returns the watch page URL
func (v *Video) URL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.ID)
}

// EmbedURL returns the iframe embed URL
func (v *Video) EmbedURL() string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", v.ID)
}
