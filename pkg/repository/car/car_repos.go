//nolint:whitespace,dupl // same shape as the other repositories
package car

import (
	"context"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, car *model.Car) error {
	_, err := conn.Exec(ctx, `
	insert into car (id, name, class) values ($1,$2,$3)
	`,
		car.ID, car.Name, car.Class)
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (
	*model.Car, error,
) {
	row := conn.QueryRow(ctx, `
	select id, name, class from car where id=$1
	`, id)
	var item model.Car
	if err := row.Scan(&item.ID, &item.Name, &item.Class); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.Car, error,
) {
	rows, err := conn.Query(ctx, `
	select id, name, class from car order by name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Car, 0)
	for rows.Next() {
		var item model.Car
		if err := rows.Scan(&item.ID, &item.Name, &item.Class); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

func Update(ctx context.Context, conn repository.Querier, car *model.Car) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, `
	update car set name=$1, class=$2 where id=$3
	`,
		car.Name, car.Class, car.ID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from car where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
