// ABOUTME: Hero selection decides which of the latest podcast and video leads the landing page
// ABOUTME: Pure function: no I/O, no logging, deterministic for a given input

package hero

import (
	"fmt"
	"math"

	"lakeshow-api/core/domain"
	timeutil "lakeshow-api/pkg/utils/time"
)

const (
	reasonNoContent = "No podcast or video available"
	reasonOnly      = "Only candidate available"
	reasonBox1      = "Box 1: Newest content"
	reasonBox2      = "Box 2: Second newest"
)

// Input holds the already-reduced latest podcast episode and latest video.
// Either may be nil.
type Input struct {
	Podcast *domain.Candidate
	Video   *domain.Candidate
}

// SelectHero assigns the candidates to the two hero slots by recency.
//
// When both are present the podcast takes box1 only if its timestamp is
// strictly greater than the video's; ties and unparseable timestamps go to
// the video. A video without a timestamp counts as the Unix epoch.
func SelectHero(in Input) domain.SelectionResult {
	present := make([]*domain.Candidate, 0, 2)
	if in.Podcast != nil {
		present = append(present, in.Podcast)
	}
	if in.Video != nil {
		present = append(present, in.Video)
	}

	switch len(present) {
	case 0:
		return domain.SelectionResult{
			Reason:     reasonNoContent,
			Candidates: []domain.CandidateTrace{},
		}
	case 1:
		only := present[0]
		return domain.SelectionResult{
			Box1:       only,
			Reason:     fmt.Sprintf("Only %s available", only.Type),
			Candidates: []domain.CandidateTrace{trace(only, true, reasonOnly)},
		}
	}

	podcastTime := epochMillis(in.Podcast.PublishedAt, math.NaN())
	videoTime := epochMillis(in.Video.PublishedAt, 0)

	if podcastTime > videoTime {
		return domain.SelectionResult{
			Box1: in.Podcast,
			Box2: in.Video,
			Reason: fmt.Sprintf("Podcast (%s) is newer than video (%s)",
				displayTimestamp(in.Podcast.PublishedAt), displayTimestamp(in.Video.PublishedAt)),
			Candidates: []domain.CandidateTrace{
				trace(in.Podcast, true, reasonBox1),
				trace(in.Video, false, reasonBox2),
			},
		}
	}

	return domain.SelectionResult{
		Box1: in.Video,
		Box2: in.Podcast,
		Reason: fmt.Sprintf("Video (%s) is newer than or equal to podcast (%s)",
			displayTimestamp(in.Video.PublishedAt), displayTimestamp(in.Podcast.PublishedAt)),
		Candidates: []domain.CandidateTrace{
			trace(in.Podcast, false, reasonBox2),
			trace(in.Video, true, reasonBox1),
		},
	}
}

// epochMillis converts an ISO-8601 timestamp to Unix milliseconds.
// An empty string yields missing; anything unparseable yields NaN, which
// makes every comparison false.
func epochMillis(ts string, missing float64) float64 {
	if ts == "" {
		return missing
	}
	t, err := timeutil.ParseISO(ts)
	if err != nil {
		return math.NaN()
	}
	return float64(t.UnixMilli())
}

func displayTimestamp(ts string) string {
	if ts == "" {
		return "no date"
	}
	return ts
}

func trace(c *domain.Candidate, selected bool, reason string) domain.CandidateTrace {
	return domain.CandidateTrace{
		Type:        c.Type,
		Title:       c.Title,
		PublishedAt: c.PublishedAt,
		Selected:    selected,
		Reason:      reason,
	}
}
