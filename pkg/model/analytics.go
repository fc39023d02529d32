package model

import "time"

// TrendPoint is one lap observation on the per-track trend chart.
type TrendPoint struct {
	Timestamp time.Time `json:"ts"`
	LapTime   float64   `json:"lapTime"`
}

// TrackAnalytics holds the computed dashboard values for one track.
// It is derived data, built fresh per query and never persisted.
// BestLap and AvgLap are nil when the track has no valid runs; a zero
// value would be indistinguishable from a real lap time.
type TrackAnalytics struct {
	TrackID     string         `json:"trackId"`
	BestLap     *float64       `json:"bestLap,omitempty"`
	AvgLap      *float64       `json:"avgLap,omitempty"`
	RunCount    int            `json:"runCount"`
	EventCount  int            `json:"eventCount"`
	TrendSeries []TrendPoint   `json:"trendSeries"`
	CarUsage    map[string]int `json:"carUsage"`
}
