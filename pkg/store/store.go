// Package store provides read access to the record collections backing
// the tracker. Implementations may suspend on I/O; the analytics core
// itself never performs any.
package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/processing"
)

// Store is a read-only view on the record collections. No ordering
// guarantees; the analytics does not depend on any.
type Store interface {
	Tracks(ctx context.Context) ([]model.Track, error)
	Events(ctx context.Context) ([]model.Event, error)
	RunLogs(ctx context.Context) ([]model.RunLog, error)
	Cars(ctx context.Context) ([]model.Car, error)
}

// FetchCollections gathers all collections concurrently. The fetches are
// independent; any failure (or cancellation) discards the whole batch so
// the aggregation never runs on partial input.
func FetchCollections(ctx context.Context, s Store) (processing.Collections, error) {
	var cols processing.Collections
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		cols.Tracks, err = s.Tracks(gctx)
		return err
	})
	grp.Go(func() error {
		var err error
		cols.Events, err = s.Events(gctx)
		return err
	})
	grp.Go(func() error {
		var err error
		cols.RunLogs, err = s.RunLogs(gctx)
		return err
	})
	grp.Go(func() error {
		var err error
		cols.Cars, err = s.Cars(gctx)
		return err
	})
	if err := grp.Wait(); err != nil {
		return processing.Collections{}, err
	}
	return cols, nil
}
