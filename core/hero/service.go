// ABOUTME: Hero service gathers the latest podcast and video and runs hero selection
// ABOUTME: Fetches both sources in parallel and logs the decision

package hero

import (
	"context"

	"lakeshow-api/core/domain"
	coreerrors "lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"

	"golang.org/x/sync/errgroup"
)

// Service selects hero content from live sources
type Service struct {
	podcasts interfaces.PodcastSource
	videos   interfaces.VideoSource
	logger   interfaces.Logger
}

// NewService creates a hero service. A nil logger discards output.
func NewService(podcasts interfaces.PodcastSource, videos interfaces.VideoSource, logger interfaces.Logger) *Service {
	return &Service{
		podcasts: podcasts,
		videos:   videos,
		logger:   interfaces.Dependencies{Logger: logger}.Log(),
	}
}

// Select fetches the latest episode and video and assigns the hero slots.
// A source that is not configured counts as having no content; any other
// fetch failure is returned.
func (s *Service) Select(ctx context.Context) (domain.SelectionResult, error) {
	var (
		episode *domain.Episode
		video   *domain.Video
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.podcasts == nil {
			return nil
		}
		e, err := s.podcasts.Latest(gctx)
		if err != nil {
			return s.absentIfUnconfigured("podcast", err)
		}
		episode = e
		return nil
	})
	g.Go(func() error {
		if s.videos == nil {
			return nil
		}
		v, err := s.videos.Latest(gctx)
		if err != nil {
			return s.absentIfUnconfigured("video", err)
		}
		video = v
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Hero selection failed", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.SelectionResult{}, err
	}

	result := SelectHero(Input{
		Podcast: domain.NewPodcastCandidate(episode),
		Video:   domain.NewVideoCandidate(video),
	})

	s.logger.Info("Hero selected", map[string]interface{}{
		"box1":   describe(result.Box1),
		"box2":   describe(result.Box2),
		"reason": result.Reason,
	})

	return result, nil
}

func (s *Service) absentIfUnconfigured(source string, err error) error {
	if coreerrors.IsConfiguration(err) {
		s.logger.Warn("Hero source not configured", map[string]interface{}{
			"source": source,
			"error":  err.Error(),
		})
		return nil
	}
	return coreerrors.WrapError(err, "failed to fetch latest "+source)
}

func describe(c *domain.Candidate) string {
	if c == nil {
		return "none"
	}
	return string(c.Type) + ": " + c.Title
}
