// ABOUTME: Audio playback coordinator tracking the loaded episode, queue, position and volume
// ABOUTME: An owned state object with explicit New/Dispose lifecycle; invalid transitions are no-ops

package player

import (
	"math"
	"sync"
	"time"

	"lakeshow-api/core/domain"
)

// DefaultAutoAdvanceDelay is how long the coordinator waits after an episode
// ends before loading the next one in the queue
const DefaultAutoAdvanceDelay = time.Second

// State is the playback state
type State int

const (
	// Idle means no episode is loaded
	Idle State = iota
	// Playing means an episode is loaded and playing
	Playing
	// Paused means an episode is loaded and paused
	Paused
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Snapshot is a copy of the coordinator state at one point in time
type Snapshot struct {
	State    State
	Current  *domain.Episode
	Queue    []domain.Episode
	Index    int
	Position time.Duration
	Duration time.Duration
	Volume   float64
	HasNext  bool
	HasPrev  bool
}

// Loaded reports whether an episode is loaded
func (s Snapshot) Loaded() bool {
	return s.State != Idle
}

// timer is the part of *time.Timer the coordinator needs
type timer interface {
	Stop() bool
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithAutoAdvanceDelay overrides the delay before auto-advancing
func WithAutoAdvanceDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		if d >= 0 {
			c.autoAdvanceDelay = d
		}
	}
}

// WithVolume sets the initial volume
func WithVolume(v float64) Option {
	return func(c *Coordinator) {
		c.volume = clampVolume(v)
	}
}

// withAfterFunc swaps the timer source, used by tests
func withAfterFunc(f func(time.Duration, func()) timer) Option {
	return func(c *Coordinator) {
		c.afterFunc = f
	}
}

// Coordinator owns the playback state for one listener.
// All methods are safe for concurrent use.
type Coordinator struct {
	mu sync.Mutex

	state    State
	current  *domain.Episode
	queue    []domain.Episode
	index    int
	position time.Duration
	duration time.Duration
	volume   float64

	autoAdvanceDelay time.Duration
	afterFunc        func(time.Duration, func()) timer
	pending          timer
	// generation changes on every load or close so a stale auto-advance
	// timer can tell it no longer applies
	generation uint64

	subscribers map[int]func(Snapshot)
	nextSubID   int
	disposed    bool
}

// New creates an idle coordinator
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		volume:           1,
		autoAdvanceDelay: DefaultAutoAdvanceDelay,
		afterFunc: func(d time.Duration, f func()) timer {
			return time.AfterFunc(d, f)
		},
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispose stops any pending auto-advance and drops subscribers.
// The coordinator ignores every call afterwards.
func (c *Coordinator) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPendingLocked()
	c.resetLocked()
	c.subscribers = make(map[int]func(Snapshot))
	c.disposed = true
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned function removes the subscription.
func (c *Coordinator) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || fn == nil {
		return func() {}
	}

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

// Snapshot returns the current state
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// PlayEpisode loads e and starts playback. If e is already loaded it toggles
// play/pause instead. A non-empty queue replaces the current one.
func (c *Coordinator) PlayEpisode(e domain.Episode, queue ...domain.Episode) {
	c.mutate(func() bool {
		if c.current != nil && sameEpisode(*c.current, e) {
			return c.toggleLocked()
		}

		if len(queue) > 0 {
			c.queue = append([]domain.Episode(nil), queue...)
		}

		idx := indexOf(c.queue, e)
		if idx < 0 {
			c.queue = []domain.Episode{e}
			idx = 0
		}

		c.loadLocked(idx)
		return true
	})
}

// TogglePlay switches between playing and paused
func (c *Coordinator) TogglePlay() {
	c.mutate(c.toggleLocked)
}

// Seek moves the playback position, clamped to the episode bounds
func (c *Coordinator) Seek(t time.Duration) {
	c.mutate(func() bool {
		if c.state == Idle {
			return false
		}
		c.position = c.clampPositionLocked(t)
		return true
	})
}

// SetVolume sets the volume, clamped to [0, 1]. Unlike the other transitions
// it applies while Idle, so the level persists into the next loaded episode.
func (c *Coordinator) SetVolume(v float64) {
	c.mutate(func() bool {
		c.volume = clampVolume(v)
		return true
	})
}

// SetDuration records the loaded episode's length once the media reports it
func (c *Coordinator) SetDuration(d time.Duration) {
	c.mutate(func() bool {
		if c.state == Idle || d < 0 {
			return false
		}
		c.duration = d
		c.position = c.clampPositionLocked(c.position)
		return true
	})
}

// Tick records a playback position reported by the media element
func (c *Coordinator) Tick(pos time.Duration) {
	c.mutate(func() bool {
		if c.state != Playing {
			return false
		}
		c.position = c.clampPositionLocked(pos)
		return true
	})
}

// NextEpisode loads and plays the next queue entry, if there is one
func (c *Coordinator) NextEpisode() {
	c.mutate(func() bool {
		if c.state == Idle || c.index+1 >= len(c.queue) {
			return false
		}
		c.loadLocked(c.index + 1)
		return true
	})
}

// PrevEpisode loads and plays the previous queue entry, if there is one
func (c *Coordinator) PrevEpisode() {
	c.mutate(func() bool {
		if c.state == Idle || c.index <= 0 {
			return false
		}
		c.loadLocked(c.index - 1)
		return true
	})
}

// Ended handles natural completion of the loaded episode. Playback pauses at
// the end; if the queue has a next entry it is loaded after the
// auto-advance delay.
func (c *Coordinator) Ended() {
	c.mutate(func() bool {
		if c.state == Idle {
			return false
		}
		c.state = Paused
		if c.duration > 0 {
			c.position = c.duration
		}

		if c.index+1 < len(c.queue) {
			c.cancelPendingLocked()
			gen := c.generation
			c.pending = c.afterFunc(c.autoAdvanceDelay, func() {
				c.autoAdvance(gen)
			})
		}
		return true
	})
}

// Close stops playback and returns to idle
func (c *Coordinator) Close() {
	c.mutate(func() bool {
		if c.state == Idle {
			return false
		}
		c.cancelPendingLocked()
		c.resetLocked()
		return true
	})
}

func (c *Coordinator) autoAdvance(gen uint64) {
	c.mutate(func() bool {
		c.pending = nil
		if c.generation != gen || c.state == Idle || c.index+1 >= len(c.queue) {
			return false
		}
		c.loadLocked(c.index + 1)
		return true
	})
}

// mutate runs f under the lock and notifies subscribers when f reports a change
func (c *Coordinator) mutate(f func() bool) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	changed := f()
	if !changed || len(c.subscribers) == 0 {
		c.mu.Unlock()
		return
	}
	snap := c.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (c *Coordinator) toggleLocked() bool {
	switch c.state {
	case Playing:
		c.state = Paused
	case Paused:
		c.state = Playing
	default:
		return false
	}
	return true
}

func (c *Coordinator) loadLocked(idx int) {
	c.cancelPendingLocked()
	ep := c.queue[idx]
	c.current = &ep
	c.index = idx
	c.position = 0
	c.duration = time.Duration(ep.DurationSeconds) * time.Second
	c.state = Playing
	c.generation++
}

func (c *Coordinator) resetLocked() {
	c.state = Idle
	c.current = nil
	c.position = 0
	c.duration = 0
	c.generation++
}

func (c *Coordinator) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Coordinator) clampPositionLocked(t time.Duration) time.Duration {
	if t < 0 {
		return 0
	}
	if c.duration > 0 && t > c.duration {
		return c.duration
	}
	return t
}

func (c *Coordinator) snapshotLocked() Snapshot {
	s := Snapshot{
		State:    c.state,
		Queue:    append([]domain.Episode(nil), c.queue...),
		Index:    c.index,
		Position: c.position,
		Duration: c.duration,
		Volume:   c.volume,
	}
	if c.current != nil {
		ep := *c.current
		s.Current = &ep
		s.HasNext = c.index+1 < len(c.queue)
		s.HasPrev = c.index > 0
	}
	return s
}

func clampVolume(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func sameEpisode(a, b domain.Episode) bool {
	if a.ID != "" || b.ID != "" {
		return a.ID == b.ID
	}
	return a.AudioURL == b.AudioURL
}

func indexOf(queue []domain.Episode, e domain.Episode) int {
	for i := range queue {
		if sameEpisode(queue[i], e) {
			return i
		}
	}
	return -1
}
