//nolint:whitespace // can't make both editor and linter happy
package runlog

import (
	"context"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, runLog *model.RunLog) error {
	_, err := conn.Exec(ctx, `
	insert into run_log (id, event_id, car_id, lap_time, ts)
	values ($1,$2,$3,$4,$5)
	`,
		runLog.ID, runLog.EventID, runLog.CarID, runLog.LapTime, runLog.Timestamp)
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (
	*model.RunLog, error,
) {
	row := conn.QueryRow(ctx, `
	select id, event_id, car_id, lap_time, ts from run_log where id=$1
	`, id)
	var item model.RunLog
	if err := row.Scan(
		&item.ID, &item.EventID, &item.CarID, &item.LapTime, &item.Timestamp,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.RunLog, error,
) {
	return loadMany(ctx, conn, `
	select id, event_id, car_id, lap_time, ts from run_log order by ts
	`)
}

// LoadByEventID returns the run logs of one event in chronological order.
func LoadByEventID(ctx context.Context, conn repository.Querier, eventID string) (
	[]*model.RunLog, error,
) {
	return loadMany(ctx, conn, `
	select id, event_id, car_id, lap_time, ts from run_log
	where event_id=$1 order by ts
	`, eventID)
}

func Update(ctx context.Context, conn repository.Querier, runLog *model.RunLog) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, `
	update run_log set event_id=$1, car_id=$2, lap_time=$3, ts=$4 where id=$5
	`,
		runLog.EventID, runLog.CarID, runLog.LapTime, runLog.Timestamp, runLog.ID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from run_log where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func loadMany(
	ctx context.Context, conn repository.Querier, sql string, args ...interface{},
) ([]*model.RunLog, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.RunLog, 0)
	for rows.Next() {
		var item model.RunLog
		if err := rows.Scan(
			&item.ID, &item.EventID, &item.CarID, &item.LapTime, &item.Timestamp,
		); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}
