// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for content sources used throughout the application

package interfaces

import (
	"context"

	"lakeshow-api/core/domain"
)

// PodcastSource provides the show's podcast episodes
type PodcastSource interface {
	// Latest returns the most recent episode, or nil if the feed has none
	Latest(ctx context.Context) (*domain.Episode, error)

	// Episodes returns up to limit episodes, newest first
	Episodes(ctx context.Context, limit int) ([]domain.Episode, error)
}

// VideoSource provides the show's published videos
type VideoSource interface {
	// Latest returns the most recent video, or nil if the channel has none
	Latest(ctx context.Context) (*domain.Video, error)

	// Recent returns up to limit videos, newest first
	Recent(ctx context.Context, limit int) ([]domain.Video, error)
}

// NewsSource aggregates third-party coverage
type NewsSource interface {
	Aggregate(ctx context.Context, limit int) ([]domain.NewsItem, error)
}

// ReaderService extracts a readable article from a page
type ReaderService interface {
	Extract(ctx context.Context, url string) (*domain.ReaderView, error)
}
