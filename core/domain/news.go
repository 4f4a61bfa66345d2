// ABOUTME: News item domain model for aggregated third-party coverage
// ABOUTME: Provides validation so malformed feed entries are dropped early

package domain

import "time"

// NewsSource describes a configured third-party feed
type NewsSource struct {
	// Name is shown next to each item, e.g. "Silver Screen and Roll"
	Name string `json:"name"`

	// URL is the RSS/Atom feed URL
	URL string `json:"url"`
}

// NewsItem is a single aggregated article
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Link        string    `json:"link"`
	Author      string    `json:"author,omitempty"`
	Image       string    `json:"image,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// IsValid checks if the item has the fields needed to render a link card
func (n *NewsItem) IsValid() bool {
	if n.Title == "" {
		return false
	}

	if n.Link == "" {
		return false
	}

	return true
}
