package model

import "time"

// RunLog is a single logged run (lap) within an event.
// EventID and CarID are foreign keys by convention only; the referenced
// records may no longer exist. LapTime is in seconds; values that are not
// finite or not strictly positive are treated as invalid by the analytics.
type RunLog struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId,omitempty"`
	CarID     string    `json:"carId,omitempty"`
	LapTime   float64   `json:"lapTime"`
	Timestamp time.Time `json:"ts"`
}
