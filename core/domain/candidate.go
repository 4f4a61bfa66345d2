// ABOUTME: Hero candidate domain model for the landing page's two display slots
// ABOUTME: Defines the candidate union, the selection result and its audit trail

package domain

// CandidateType identifies which kind of content a hero candidate carries
type CandidateType string

const (
	// CandidateTypePodcast marks a podcast episode candidate
	CandidateTypePodcast CandidateType = "podcast"

	// CandidateTypeVideo marks a video candidate
	CandidateTypeVideo CandidateType = "video"
)

// Candidate is one piece of content eligible for a hero slot.
//
// Only Title and PublishedAt take part in selection. Payload carries the
// display record (an *Episode or a *Video) and is passed through untouched.
type Candidate struct {
	Type CandidateType `json:"type"`

	Title string `json:"title"`

	// PublishedAt is an ISO-8601 timestamp. Podcasts always carry one;
	// videos may leave it empty.
	PublishedAt string `json:"published_at,omitempty"`

	Payload any `json:"payload,omitempty"`
}

// NewPodcastCandidate wraps an episode as a hero candidate
func NewPodcastCandidate(e *Episode) *Candidate {
	if e == nil {
		return nil
	}
	return &Candidate{
		Type:        CandidateTypePodcast,
		Title:       e.Title,
		PublishedAt: formatTimestamp(e.PublishedAt),
		Payload:     e,
	}
}

// NewVideoCandidate wraps a video as a hero candidate
func NewVideoCandidate(v *Video) *Candidate {
	if v == nil {
		return nil
	}
	return &Candidate{
		Type:        CandidateTypeVideo,
		Title:       v.Title,
		PublishedAt: formatTimestamp(v.PublishedAt),
		Payload:     v,
	}
}

// CandidateTrace is the audit entry recorded for every input candidate
type CandidateTrace struct {
	Type        CandidateType `json:"type"`
	Title       string        `json:"title"`
	PublishedAt string        `json:"published_at,omitempty"`
	Selected    bool          `json:"selected"`
	Reason      string        `json:"reason"`
}

// SelectionResult is the outcome of hero selection.
// Box1 is the primary slot, Box2 the secondary one.
type SelectionResult struct {
	Box1       *Candidate       `json:"box1"`
	Box2       *Candidate       `json:"box2"`
	Reason     string           `json:"reason"`
	Candidates []CandidateTrace `json:"candidates"`
}
