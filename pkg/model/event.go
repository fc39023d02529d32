package model

import "time"

// Event is a race day entry at a track. TrackID may be empty when the
// referenced track was deleted or never set; such events are orphaned.
type Event struct {
	ID      string    `json:"id"`
	TrackID string    `json:"trackId,omitempty"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
}
