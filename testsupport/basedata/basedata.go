package basedata

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	eventrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/event"
	trackrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/track"
)

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-04-28T11:10:12Z")
	return t
}

// TestDate is TestTime truncated to the day, matching the date column
// resolution of the event table.
func TestDate() time.Time {
	t, _ := time.Parse(time.DateOnly, "2024-04-28")
	return t
}

func SampleTrack() *model.Track {
	return &model.Track{
		ID:      "track_00000000-0000-0000-0000-000000000001",
		Name:    "Testtrack Raceway",
		Address: "1 Paddock Lane",
	}
}

func SampleEvent() *model.Event {
	return &model.Event{
		ID:      "event_00000000-0000-0000-0000-000000000001",
		TrackID: SampleTrack().ID,
		Title:   "Test club race",
		Date:    TestDate(),
	}
}

func SampleCar() *model.Car {
	return &model.Car{
		ID:    "car_00000000-0000-0000-0000-000000000001",
		Name:  "Testcar MK1",
		Class: "Stock",
	}
}

func SampleRunLog() *model.RunLog {
	return &model.RunLog{
		ID:        "run_00000000-0000-0000-0000-000000000001",
		EventID:   SampleEvent().ID,
		CarID:     SampleCar().ID,
		LapTime:   45.2,
		Timestamp: TestTime(),
	}
}

// CreateSampleEvent persists the sample track with one event on it.
func CreateSampleEvent(db *pgxpool.Pool) *model.Event {
	ctx := context.Background()
	sampleTrack := SampleTrack()
	sampleEvent := SampleEvent()
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if err := trackrepos.Create(ctx, tx, sampleTrack); err != nil {
			return err
		}
		return eventrepos.Create(ctx, tx, sampleEvent)
	})
	if err != nil {
		log.Fatalf("createSampleEntry: %v\n", err)
	}

	return sampleEvent
}
