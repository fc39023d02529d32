package processing

import "github.com/rcgarage/rcprogram-manager-go/pkg/model"

// Collections is the full input set for one analytics query. The caller
// gathers all collections from the store first (see store.FetchCollections)
// and only then runs the synchronous aggregation; the core never sees
// partial results.
type Collections struct {
	Tracks  []model.Track
	Events  []model.Event
	RunLogs []model.RunLog
	Cars    []model.Car
}

// TrackAnalytics computes the dashboard values for one track from flat
// record collections. It is a pure function: no I/O, no shared state,
// identical inputs yield identical outputs regardless of input ordering.
//
// KPIs and trend series are computed from the identical matched run log
// set; filtering once keeps both figures mutually consistent.
// An unknown track id yields a result with zero counts and absent
// best/avg, not an error.
func TrackAnalytics(trackID string, cols Collections) (*model.TrackAnalytics, error) {
	if err := validateCollections(cols); err != nil {
		return nil, err
	}
	resolver := NewJoinResolver(cols.Events, cols.RunLogs)
	matched := resolver.MatchedRunLogs(trackID)

	kpis := aggregateKPI(matched, resolver.EventCount(trackID))
	trends := buildTrend(matched)

	return &model.TrackAnalytics{
		TrackID:     trackID,
		BestLap:     kpis.bestLap,
		AvgLap:      kpis.avgLap,
		RunCount:    kpis.runCount,
		EventCount:  kpis.eventCount,
		TrendSeries: trends.series,
		CarUsage:    trends.carUsage,
	}, nil
}
