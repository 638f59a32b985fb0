// Package scrobble follows Kodi playback and reports finished or
// substantially watched items to the Bingebase webhook.
package scrobble

import (
	"math"
	"sync"
	"time"
)

// Event is the kind of scrobble sent.
type Event string

const (
	EventStop Event = "stop"
	EventEnd  Event = "end"
)

// MediaInfo describes the item being played.
type MediaInfo struct {
	MediaType   string            `json:"mediaType"`
	Title       string            `json:"title"`
	Year        int               `json:"year"`
	UniqueIDs   map[string]string `json:"uniqueIds"`
	TVShowTitle string            `json:"tvShowTitle,omitempty"`
	Season      *int              `json:"season,omitempty"`
	Episode     *int              `json:"episode,omitempty"`
}

// Progress is the playback position at the time of the event.
type Progress struct {
	Time    int     `json:"time"`
	Percent float64 `json:"percent"`
}

// Payload is the body posted to the webhook.
type Payload struct {
	MediaInfo
	Event    Event    `json:"event"`
	Duration int      `json:"duration"`
	Progress Progress `json:"progress"`
}

// Tracker holds the state of one playback session.
type Tracker struct {
	mu        sync.Mutex
	info      *MediaInfo
	total     time.Duration
	current   time.Duration
	threshold float64
}

// NewTracker returns a Tracker that drops stops before threshold percent.
func NewTracker(threshold int) *Tracker {
	return &Tracker{threshold: float64(threshold)}
}

// SetThreshold changes the stop threshold, in percent, for later stops.
func (t *Tracker) SetThreshold(threshold int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.threshold = float64(threshold)
}

// Start begins tracking info, replacing any session in progress.
func (t *Tracker) Start(info MediaInfo, total time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.info = &info
	t.total = total
	t.current = 0
}

// Update records the current playback position. A total learnt late
// (streams report it after start) is kept too.
func (t *Tracker) Update(current, total time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.info == nil {
		return
	}
	t.current = current
	if total > 0 {
		t.total = total
	}
}

// Reset drops the current session without producing a payload.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.info, t.total, t.current = nil, 0, 0
}

// Stop ends the session. An ended playback always scrobbles at full length;
// a stop scrobbles only once the threshold is reached.
func (t *Tracker) Stop(ended bool) (*Payload, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	info, total, current := t.info, t.total, t.current
	t.info, t.total, t.current = nil, 0, 0

	if info == nil || total <= 0 {
		return nil, false
	}

	event := EventStop
	if ended {
		event = EventEnd
		current = total
	}

	percent := float64(current) / float64(total) * 100
	if event == EventStop && percent < t.threshold {
		return nil, false
	}

	return &Payload{
		MediaInfo: *info,
		Event:     event,
		Duration:  int(total.Seconds()),
		Progress: Progress{
			Time:    int(current.Seconds()),
			Percent: math.Round(percent*10) / 10,
		},
	}, true
}
