package store

import (
	"context"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
)

// MemStore serves fixed collections from memory. Used in tests and
// anywhere a database is not wanted.
type MemStore struct {
	TrackData  []model.Track
	EventData  []model.Event
	RunLogData []model.RunLog
	CarData    []model.Car
}

var _ Store = (*MemStore)(nil)

func (s *MemStore) Tracks(ctx context.Context) ([]model.Track, error) {
	return s.TrackData, nil
}

func (s *MemStore) Events(ctx context.Context) ([]model.Event, error) {
	return s.EventData, nil
}

func (s *MemStore) RunLogs(ctx context.Context) ([]model.RunLog, error) {
	return s.RunLogData, nil
}

func (s *MemStore) Cars(ctx context.Context) ([]model.Car, error) {
	return s.CarData, nil
}
