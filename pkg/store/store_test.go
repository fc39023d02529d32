package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/processing"
)

func TestFetchCollections(t *testing.T) {
	s := &MemStore{
		TrackData:  []model.Track{{ID: "t1", Name: "Local track"}},
		EventData:  []model.Event{{ID: "e1", TrackID: "t1"}},
		RunLogData: []model.RunLog{{ID: "r1", EventID: "e1", LapTime: 30}},
		CarData:    []model.Car{{ID: "c1", Name: "Buggy"}},
	}
	got, err := FetchCollections(context.Background(), s)
	assert.NoError(t, err)
	assert.Len(t, got.Tracks, 1)
	assert.Len(t, got.Events, 1)
	assert.Len(t, got.RunLogs, 1)
	assert.Len(t, got.Cars, 1)
}

type failingStore struct {
	MemStore
	err error
}

func (s *failingStore) RunLogs(ctx context.Context) ([]model.RunLog, error) {
	return nil, s.err
}

func TestFetchCollections_FailureDiscardsBatch(t *testing.T) {
	s := &failingStore{
		MemStore: MemStore{
			EventData: []model.Event{{ID: "e1", TrackID: "t1"}},
		},
		err: errors.New("boom"),
	}
	got, err := FetchCollections(context.Background(), s)
	assert.Error(t, err)
	// no partial results leak out
	assert.Equal(t, processing.Collections{}, got)
}
