package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rcgarage/rcprogram-manager-go/log"
	"github.com/rcgarage/rcprogram-manager-go/pkg/config"
	"github.com/rcgarage/rcprogram-manager-go/pkg/db/postgres"
	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	carRepo "github.com/rcgarage/rcprogram-manager-go/pkg/repository/car"
	eventRepo "github.com/rcgarage/rcprogram-manager-go/pkg/repository/event"
	runlogRepo "github.com/rcgarage/rcprogram-manager-go/pkg/repository/runlog"
	trackRepo "github.com/rcgarage/rcprogram-manager-go/pkg/repository/track"
)

var (
	numEventsPerTrack int
	numRunsPerEvent   int
)

func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "loads a set of sample data into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedDatabase()
		},
	}
	cmd.Flags().IntVar(&numEventsPerTrack,
		"events-per-track",
		3,
		"number of sample events created per track")
	cmd.Flags().IntVar(&numRunsPerEvent,
		"runs-per-event",
		8,
		"number of sample runs created per event")
	return cmd
}

func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.Must(uuid.NewV4()).String())
}

func sampleTracks() []*model.Track {
	return []*model.Track{
		{ID: newID("track"), Name: "Indoor Carpet Arena", Address: "Hall 3, Fairground"},
		{ID: newID("track"), Name: "Clay Oval", Address: "Old Brickyard Rd"},
		{ID: newID("track"), Name: "Backyard Circuit", Address: ""},
	}
}

func sampleCars() []*model.Car {
	return []*model.Car{
		{ID: newID("car"), Name: "TT-02 Club Racer", Class: "touring"},
		{ID: newID("car"), Name: "B6.4D", Class: "buggy"},
		{ID: newID("car"), Name: "MTC2R", Class: "touring"},
	}
}

//nolint:funlen // by design
func seedDatabase() error {
	pool, err := postgres.InitWithURL(config.DB)
	if err != nil {
		log.Error("could not connect to database", log.ErrorField(err))
		return err
	}
	defer pool.Close()

	ctx := context.Background()
	tracks := sampleTracks()
	cars := sampleCars()
	//nolint:gosec // sample data, no crypto needs
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, t := range tracks {
			if err := trackRepo.Create(ctx, tx, t); err != nil {
				return err
			}
		}
		for _, c := range cars {
			if err := carRepo.Create(ctx, tx, c); err != nil {
				return err
			}
		}
		for _, t := range tracks {
			if err := seedTrackEvents(ctx, tx, rnd, t, cars); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("seeding failed, nothing was written", log.ErrorField(err))
		return err
	}
	log.Info("sample data created",
		log.Int("tracks", len(tracks)),
		log.Int("cars", len(cars)),
		log.Int("events", len(tracks)*numEventsPerTrack),
	)
	return nil
}

func seedTrackEvents(
	ctx context.Context,
	tx pgx.Tx,
	rnd *rand.Rand,
	track *model.Track,
	cars []*model.Car,
) error {
	for i := range numEventsPerTrack {
		event := &model.Event{
			ID:      newID("event"),
			TrackID: track.ID,
			Title:   fmt.Sprintf("%s practice #%d", track.Name, i+1),
			Date:    time.Now().UTC().AddDate(0, 0, -7*(numEventsPerTrack-i)).Truncate(24 * time.Hour),
		}
		if err := eventRepo.Create(ctx, tx, event); err != nil {
			return err
		}
		runs := lo.Times(numRunsPerEvent, func(j int) *model.RunLog {
			return &model.RunLog{
				ID:        newID("run"),
				EventID:   event.ID,
				CarID:     cars[rnd.Intn(len(cars))].ID,
				LapTime:   38.0 + rnd.Float64()*12.0,
				Timestamp: event.Date.Add(time.Duration(10+j*15) * time.Minute),
			}
		})
		for _, r := range runs {
			if err := runlogRepo.Create(ctx, tx, r); err != nil {
				return err
			}
		}
	}
	return nil
}
