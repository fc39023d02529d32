//nolint:whitespace // can't make both editor and linter happy
package track

import (
	"context"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, track *model.Track) error {
	_, err := conn.Exec(ctx, `
	insert into track (id, name, address) values ($1,$2,$3)
	`,
		track.ID, track.Name, track.Address)
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (
	*model.Track, error,
) {
	row := conn.QueryRow(ctx, `
	select id, name, address from track where id=$1
	`, id)
	var item model.Track
	if err := row.Scan(&item.ID, &item.Name, &item.Address); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.Track, error,
) {
	rows, err := conn.Query(ctx, `
	select id, name, address from track order by name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Track, 0)
	for rows.Next() {
		var item model.Track
		if err := rows.Scan(&item.ID, &item.Name, &item.Address); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// Update replaces the stored attributes, returns number of rows affected.
func Update(ctx context.Context, conn repository.Querier, track *model.Track) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, `
	update track set name=$1, address=$2 where id=$3
	`,
		track.Name, track.Address, track.ID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from track where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
