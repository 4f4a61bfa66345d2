// ABOUTME: Domain types for AI-assisted editorial helpers
// ABOUTME: Covers summaries, social captions and formatting results

package domain

// Platform is a social network a caption is written for
type Platform string

const (
	PlatformX         Platform = "x"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformThreads   Platform = "threads"
)

// CaptionLimit returns the platform's character budget for a caption
func (p Platform) CaptionLimit() int {
	switch p {
	case PlatformX:
		return 280
	case PlatformThreads:
		return 500
	case PlatformInstagram:
		return 2200
	default:
		return 1000
	}
}

// Valid reports whether p is a supported platform
func (p Platform) Valid() bool {
	switch p {
	case PlatformX, PlatformInstagram, PlatformFacebook, PlatformThreads:
		return true
	}
	return false
}

// AssistResult is the output of one generation request
type AssistResult struct {
	Kind     string `json:"kind"`
	Text     string `json:"text"`
	Provider string `json:"provider"`
	Cached   bool   `json:"cached"`
}
