package converter

import "github.com/jackc/pgx/v5/pgtype"

// ProductModel представляет запись таблицы products в PostgreSQL.
// Все колонки, включая элементы массивов, читаются как nullable: NULL не ломает сканирование,
// проверка делается в конвертере.
type ProductModel struct {
	ID          pgtype.Text   `db:"id"`
	Name        pgtype.Text   `db:"name"`
	Price       pgtype.Float8 `db:"price"`
	Gender      pgtype.Text   `db:"gender"`
	Category    pgtype.Text   `db:"category"`
	Sizes       []pgtype.Text `db:"sizes"`
	Images      []pgtype.Text `db:"images"`
	Description pgtype.Text   `db:"description"`
	Tags        []pgtype.Text `db:"tags"`
	Featured    pgtype.Bool   `db:"featured"`
	NewArrival  pgtype.Bool   `db:"new_arrival"`
}
