//nolint:dupl,funlen,errcheck // ok for this test code
package track_test

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gotest.tools/v3/assert"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository/track"
	"github.com/rcgarage/rcprogram-manager-go/testsupport/basedata"
	"github.com/rcgarage/rcprogram-manager-go/testsupport/testdb"
)

func createSampleEntry(db *pgxpool.Pool) *model.Track {
	ctx := context.Background()
	sample := basedata.SampleTrack()
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		return track.Create(ctx, tx, sample)
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
		track *model.Track
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "new entry",
			args: args{track: &model.Track{
				ID: "track_x2", Name: "Second track", Address: "2 Pit Lane",
			}},
		},
		{
			name:    "duplicate",
			args:    args{track: sample},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := track.Create(context.Background(), pool, tt.args.track)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadByID(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)

	got, err := track.LoadByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.DeepEqual(t, sample, got)

	_, err = track.LoadByID(context.Background(), pool, "track_unknown")
	assert.Assert(t, errors.Is(err, pgx.ErrNoRows))
}

func TestLoadAll(t *testing.T) {
	pool := testdb.InitTestDb()
	createSampleEntry(pool)
	track.Create(context.Background(), pool, &model.Track{
		ID: "track_a", Name: "Alpha Ring",
	})

	got, err := track.LoadAll(context.Background(), pool)
	assert.NilError(t, err)
	assert.Equal(t, 2, len(got))
	// ordered by name
	assert.Equal(t, "Alpha Ring", got[0].Name)
}

func TestUpdate(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)
	sample.Address = "changed"

	num, err := track.Update(context.Background(), pool, sample)
	assert.NilError(t, err)
	assert.Equal(t, 1, num)

	got, err := track.LoadByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.Equal(t, "changed", got.Address)
}

func TestDeleteByID(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)

	num, err := track.DeleteByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.Equal(t, 1, num)

	num, err = track.DeleteByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.Equal(t, 0, num)
}
