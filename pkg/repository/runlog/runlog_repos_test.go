//nolint:dupl,funlen,errcheck // ok for this test code
package runlog

import (
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gotest.tools/v3/assert"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository/car"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository/event"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository/track"
	"github.com/rcgarage/rcprogram-manager-go/testsupport/basedata"
	"github.com/rcgarage/rcprogram-manager-go/testsupport/testdb"
)

func createSampleEntry(db *pgxpool.Pool) *model.RunLog {
	ctx := context.Background()
	sample := basedata.SampleRunLog()
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if err := track.Create(ctx, tx, basedata.SampleTrack()); err != nil {
			return err
		}
		if err := event.Create(ctx, tx, basedata.SampleEvent()); err != nil {
			return err
		}
		if err := car.Create(ctx, tx, basedata.SampleCar()); err != nil {
			return err
		}
		return Create(ctx, tx, sample)
	})
	if err != nil {
		log.Fatalf("createSampleEntry: %v\n", err)
	}
	return sample
}

func TestCreate(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)
	type args struct {
		runLog *model.RunLog
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "new entry",
			args: args{runLog: &model.RunLog{
				ID:      "run_x2",
				EventID: sample.EventID,
				LapTime: 44.8,
				// no car: usage lands in the unknown bucket later on
				Timestamp: basedata.TestTime().Add(time.Minute),
			}},
		},
		{
			name:    "duplicate",
			args:    args{runLog: sample},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Create(context.Background(), pool, tt.args.runLog)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadByID(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)

	got, err := LoadByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.Equal(t, sample.ID, got.ID)
	assert.Equal(t, sample.EventID, got.EventID)
	assert.Equal(t, sample.CarID, got.CarID)
	assert.Equal(t, sample.LapTime, got.LapTime)
	assert.Assert(t, sample.Timestamp.Equal(got.Timestamp))

	_, err = LoadByID(context.Background(), pool, "run_unknown")
	assert.Assert(t, errors.Is(err, pgx.ErrNoRows))
}

func TestLoadByEventID(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)
	// chronological order, so the later run comes second
	Create(context.Background(), pool, &model.RunLog{
		ID: "run_late", EventID: sample.EventID, LapTime: 46.0,
		Timestamp: sample.Timestamp.Add(time.Hour),
	})

	got, err := LoadByEventID(context.Background(), pool, sample.EventID)
	assert.NilError(t, err)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, sample.ID, got[0].ID)
	assert.Equal(t, "run_late", got[1].ID)
}

func TestLoadAll(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)
	// run logs may reference missing events, LoadAll returns them as well
	Create(context.Background(), pool, &model.RunLog{
		ID: "run_orphan", EventID: "event_gone", LapTime: 50.0,
		Timestamp: sample.Timestamp.Add(time.Minute),
	})

	got, err := LoadAll(context.Background(), pool)
	assert.NilError(t, err)
	assert.Equal(t, 2, len(got))
}

func TestUpdate(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)
	sample.LapTime = 43.9

	num, err := Update(context.Background(), pool, sample)
	assert.NilError(t, err)
	assert.Equal(t, 1, num)

	got, err := LoadByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.Equal(t, 43.9, got.LapTime)
}

func TestDeleteByID(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)

	num, err := DeleteByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.Equal(t, 1, num)
}
