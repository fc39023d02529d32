package processing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
)

func TestAggregateKPI(t *testing.T) {
	tests := []struct {
		name       string
		matched    []model.RunLog
		eventCount int
		wantRuns   int
		wantBest   *float64
		wantAvg    *float64
	}{
		{
			name: "regular laps",
			matched: []model.RunLog{
				{ID: "r1", LapTime: 45.2},
				{ID: "r2", LapTime: 44.8},
				{ID: "r3", LapTime: 45.0},
			},
			eventCount: 2,
			wantRuns:   3,
			wantBest:   ptr(44.8),
			wantAvg:    ptr(45.0),
		},
		{
			name: "invalid laps are dropped",
			matched: []model.RunLog{
				{ID: "r1", LapTime: 45.2},
				{ID: "r2", LapTime: -5},
				{ID: "r3", LapTime: 0},
				{ID: "r4", LapTime: math.NaN()},
			},
			eventCount: 1,
			wantRuns:   1,
			wantBest:   ptr(45.2),
			wantAvg:    ptr(45.2),
		},
		{
			name:       "no matched runs keeps best and avg absent",
			matched:    []model.RunLog{},
			eventCount: 3,
			wantRuns:   0,
		},
		{
			name: "only invalid laps keeps best and avg absent",
			matched: []model.RunLog{
				{ID: "r1", LapTime: -1},
			},
			eventCount: 1,
			wantRuns:   0,
		},
		{
			name: "ties on best lap",
			matched: []model.RunLog{
				{ID: "r1", LapTime: 44.8},
				{ID: "r2", LapTime: 44.8},
			},
			eventCount: 1,
			wantRuns:   2,
			wantBest:   ptr(44.8),
			wantAvg:    ptr(44.8),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregateKPI(tt.matched, tt.eventCount)
			assert.Equal(t, tt.wantRuns, got.runCount)
			assert.Equal(t, tt.eventCount, got.eventCount)
			if tt.wantBest == nil {
				assert.Nil(t, got.bestLap)
			} else {
				assert.NotNil(t, got.bestLap)
				assert.InDelta(t, *tt.wantBest, *got.bestLap, 1e-9)
			}
			if tt.wantAvg == nil {
				assert.Nil(t, got.avgLap)
			} else {
				assert.NotNil(t, got.avgLap)
				assert.InDelta(t, *tt.wantAvg, *got.avgLap, 1e-9)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
