//nolint:whitespace // can't make both editor and linter happy
package event

import (
	"context"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, event *model.Event) error {
	_, err := conn.Exec(ctx, `
	insert into event (id, track_id, title, event_date) values ($1,$2,$3,$4)
	`,
		event.ID, event.TrackID, event.Title, event.Date)
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (
	*model.Event, error,
) {
	row := conn.QueryRow(ctx, `
	select id, track_id, title, event_date from event where id=$1
	`, id)
	var item model.Event
	if err := row.Scan(&item.ID, &item.TrackID, &item.Title, &item.Date); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.Event, error,
) {
	return loadMany(ctx, conn, `
	select id, track_id, title, event_date from event order by event_date desc
	`)
}

// LoadByTrackID returns the events held at the given track, newest first.
func LoadByTrackID(ctx context.Context, conn repository.Querier, trackID string) (
	[]*model.Event, error,
) {
	return loadMany(ctx, conn, `
	select id, track_id, title, event_date from event
	where track_id=$1 order by event_date desc
	`, trackID)
}

func Update(ctx context.Context, conn repository.Querier, event *model.Event) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, `
	update event set track_id=$1, title=$2, event_date=$3 where id=$4
	`,
		event.TrackID, event.Title, event.Date, event.ID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// deletes an entry from the database, returns number of rows deleted.
// Run logs referencing the event are kept; they become orphaned and no
// longer contribute to any track's analytics.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from event where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func loadMany(
	ctx context.Context, conn repository.Querier, sql string, args ...interface{},
) ([]*model.Event, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Event, 0)
	for rows.Next() {
		var item model.Event
		if err := rows.Scan(
			&item.ID, &item.TrackID, &item.Title, &item.Date,
		); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}
