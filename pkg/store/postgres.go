package store

import (
	"context"

	"github.com/samber/lo"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository"
	carrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/car"
	eventrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/event"
	runlogrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/runlog"
	trackrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/track"
)

// DBStore reads the collections from postgres via the repositories.
type DBStore struct {
	conn repository.Querier
}

func NewDBStore(conn repository.Querier) *DBStore {
	return &DBStore{conn: conn}
}

func (s *DBStore) Tracks(ctx context.Context) ([]model.Track, error) {
	items, err := trackrepos.LoadAll(ctx, s.conn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, deref[model.Track]), nil
}

func (s *DBStore) Events(ctx context.Context) ([]model.Event, error) {
	items, err := eventrepos.LoadAll(ctx, s.conn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, deref[model.Event]), nil
}

func (s *DBStore) RunLogs(ctx context.Context) ([]model.RunLog, error) {
	items, err := runlogrepos.LoadAll(ctx, s.conn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, deref[model.RunLog]), nil
}

func (s *DBStore) Cars(ctx context.Context) ([]model.Car, error) {
	items, err := carrepos.LoadAll(ctx, s.conn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, deref[model.Car]), nil
}

func deref[E any](item *E, _ int) E { return *item }
