package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/processing"
	"github.com/rcgarage/rcprogram-manager-go/pkg/store"
)

func sampleStore() *store.MemStore {
	return &store.MemStore{
		TrackData: []model.Track{
			{ID: "t1", Name: "Indoor carpet"},
			{ID: "t2", Name: "Outdoor clay"},
		},
		EventData: []model.Event{
			{ID: "e1", TrackID: "t1", Title: "Round 1"},
			{ID: "e2", TrackID: "t2", Title: "Round 2"},
		},
		RunLogData: []model.RunLog{
			{ID: "r1", EventID: "e1", CarID: "c1", LapTime: 30.1},
			{ID: "r2", EventID: "e1", CarID: "c1", LapTime: 29.8},
			{ID: "r3", EventID: "e2", LapTime: 41.5},
		},
		CarData: []model.Car{
			{ID: "c1", Name: "Buggy MK1", Class: "Stock"},
		},
	}
}

func TestAnalyticsService_TrackAnalytics(t *testing.T) {
	svc := NewAnalyticsService(WithStore(sampleStore()))
	got, err := svc.TrackAnalytics(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Equal(t, 2, got.RunCount)
	assert.Equal(t, 1, got.EventCount)
	assert.InDelta(t, 29.8, *got.BestLap, 1e-9)
}

func TestAnalyticsService_AllTrackAnalytics(t *testing.T) {
	svc := NewAnalyticsService(WithStore(sampleStore()))
	got, err := svc.AllTrackAnalytics(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].TrackID)
	assert.Equal(t, "t2", got[1].TrackID)
	assert.Equal(t, 1, got[1].RunCount)
}

func TestCarUsageLabels(t *testing.T) {
	usage := map[string]int{
		"c1":                  2,
		"c9":                  1, // no garage entry
		processing.UnknownCar: 3,
	}
	cars := []model.Car{{ID: "c1", Name: "Buggy MK1"}}
	got := CarUsageLabels(usage, cars)
	assert.Equal(t, map[string]int{
		"Buggy MK1":           2,
		"c9":                  1,
		processing.UnknownCar: 3,
	}, got)
}
