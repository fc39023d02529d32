package service

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/processing"
	"github.com/rcgarage/rcprogram-manager-go/pkg/store"
)

var tracer = otel.Tracer("analytics-service")

// AnalyticsService answers dashboard queries. It gathers the collections
// from the store first and only then runs the synchronous aggregation,
// keeping all I/O and timing concerns out of the computation.
type AnalyticsService struct {
	store store.Store
}

type AnalyticsServiceOption func(s *AnalyticsService)

func WithStore(st store.Store) AnalyticsServiceOption {
	return func(s *AnalyticsService) {
		s.store = st
	}
}

func NewAnalyticsService(opts ...AnalyticsServiceOption) *AnalyticsService {
	ret := &AnalyticsService{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// TrackAnalytics computes the KPI and trend values for one track.
func (s *AnalyticsService) TrackAnalytics(ctx context.Context, trackID string) (
	*model.TrackAnalytics, error,
) {
	ctx, span := tracer.Start(ctx, "TrackAnalytics",
		trace.WithAttributes(attribute.String("track.id", trackID)))
	defer span.End()
	cols, err := store.FetchCollections(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return processing.TrackAnalytics(trackID, cols)
}

// LabeledTrackAnalytics augments the raw analytics with a car usage
// breakdown keyed by display name for the usage chart.
type LabeledTrackAnalytics struct {
	*model.TrackAnalytics
	CarUsageLabels map[string]int `json:"carUsageLabels"`
}

// TrackAnalyticsLabeled resolves the car usage breakdown against the
// garage so the chart can show car names instead of ids.
func (s *AnalyticsService) TrackAnalyticsLabeled(ctx context.Context, trackID string) (
	*LabeledTrackAnalytics, error,
) {
	ctx, span := tracer.Start(ctx, "TrackAnalyticsLabeled",
		trace.WithAttributes(attribute.String("track.id", trackID)))
	defer span.End()
	cols, err := store.FetchCollections(ctx, s.store)
	if err != nil {
		return nil, err
	}
	stats, err := processing.TrackAnalytics(trackID, cols)
	if err != nil {
		return nil, err
	}
	return &LabeledTrackAnalytics{
		TrackAnalytics: stats,
		CarUsageLabels: CarUsageLabels(stats.CarUsage, cols.Cars),
	}, nil
}

// AllTrackAnalytics computes the analytics for every known track, for the
// dashboard overview page. The collections are fetched once and reused.
func (s *AnalyticsService) AllTrackAnalytics(ctx context.Context) (
	[]*model.TrackAnalytics, error,
) {
	ctx, span := tracer.Start(ctx, "AllTrackAnalytics")
	defer span.End()
	cols, err := store.FetchCollections(ctx, s.store)
	if err != nil {
		return nil, err
	}
	ret := make([]*model.TrackAnalytics, 0, len(cols.Tracks))
	for i := range cols.Tracks {
		stats, err := processing.TrackAnalytics(cols.Tracks[i].ID, cols)
		if err != nil {
			return nil, err
		}
		ret = append(ret, stats)
	}
	return ret, nil
}

// CarUsageLabels rewrites the car usage keys from car ids to display
// names. Ids without a garage entry and the unknown bucket keep their key.
func CarUsageLabels(usage map[string]int, cars []model.Car) map[string]int {
	nameByID := lo.SliceToMap(cars, func(c model.Car) (string, string) {
		return c.ID, c.Name
	})
	ret := make(map[string]int, len(usage))
	for id, count := range usage {
		label := id
		if name, ok := nameByID[id]; ok && name != "" {
			label = name
		}
		// two cars may share a name; buckets merge in that case
		ret[label] += count
	}
	return ret
}
