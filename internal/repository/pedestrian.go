package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/goroadstat/internal/domain/model"
)

// PedestrianRepository — репозиторий записей наблюдений пешеходов
// и велосипедистов: родительские записи дней и значения счётчиков.
type PedestrianRepository struct {
	db DBTX
}

// NewPedestrianRepository создаёт PedestrianRepository.
func NewPedestrianRepository(db DBTX) *PedestrianRepository {
	return &PedestrianRepository{db: db}
}

// SaveAll сохраняет родительские записи одним батчем и проставляет
// присвоенные идентификаторы.
func (r *PedestrianRepository) SaveAll(ctx context.Context, parents []model.PedestrianBicyclist) error {
	if len(parents) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO pedestrian_bicyclist (year, month, day, week_day, document_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	for _, p := range parents {
		batch.Queue(query, p.Year, p.Month, p.Day, string(p.WeekDay), p.DocumentID)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := range parents {
		if err := results.QueryRow().Scan(&parents[i].ID); err != nil {
			return fmt.Errorf("сохранение родительских записей: %w", err)
		}
	}
	return nil
}

// SaveAllValues сохраняет значения счётчиков одним батчем.
func (r *PedestrianRepository) SaveAllValues(ctx context.Context, values []model.PedestrianBicyclistValues) error {
	if len(values) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO pedestrian_bicyclist_values (
			column_name, column_name_hash, column_value, column_value_hash,
			pedestrian_bicyclist_id
		) VALUES ($1, $2, $3, $4, $5)`

	for _, v := range values {
		batch.Queue(query, v.ColumnName, v.ColumnNameHash, v.ColumnValue, v.ColumnValueHash, v.PedestrianBicyclistID)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range values {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("сохранение значений счётчиков: %w", err)
		}
	}
	return nil
}

// FindLatestByDate возвращает последнюю созданную родительскую запись
// с совпадающим кортежем даты.
func (r *PedestrianRepository) FindLatestByDate(ctx context.Context, year, month, day int, weekDay model.WeekDay) (*model.PedestrianBicyclist, error) {
	query := `
		SELECT id, year, month, day, week_day, document_id
		FROM pedestrian_bicyclist
		WHERE year = $1 AND month = $2 AND day = $3 AND week_day = $4
		ORDER BY id DESC
		LIMIT 1`

	var p model.PedestrianBicyclist
	err := r.db.QueryRow(ctx, query, year, month, day, string(weekDay)).Scan(
		&p.ID, &p.Year, &p.Month, &p.Day, &p.WeekDay, &p.DocumentID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("поиск записи по дате %d-%d-%d: %w", year, month, day, err)
	}
	return &p, nil
}

// List возвращает родительские записи по фильтру вместе со значениями.
func (r *PedestrianRepository) List(ctx context.Context, filter model.PedestrianBicyclistFilter) ([]model.PedestrianBicyclist, error) {
	var conds []string
	var args []any

	if filter.Year != nil {
		conds, args = cond(conds, args, "year = $%d", *filter.Year)
	}
	if filter.Month != nil {
		conds, args = cond(conds, args, "month = $%d", *filter.Month)
	}
	if filter.DocumentID != nil {
		conds, args = cond(conds, args, "document_id = $%d", *filter.DocumentID)
	}

	args = append(args, normalizeLimit(filter.Limit), filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, year, month, day, week_day, document_id
		FROM pedestrian_bicyclist%s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		buildWhere(conds), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("список родительских записей: %w", err)
	}
	defer rows.Close()

	var parents []model.PedestrianBicyclist
	for rows.Next() {
		var p model.PedestrianBicyclist
		if err := rows.Scan(&p.ID, &p.Year, &p.Month, &p.Day, &p.WeekDay, &p.DocumentID); err != nil {
			return nil, fmt.Errorf("чтение родительской записи: %w", err)
		}
		parents = append(parents, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range parents {
		values, err := r.findValues(ctx, parents[i].ID)
		if err != nil {
			return nil, err
		}
		parents[i].Values = values
	}
	return parents, nil
}

// findValues возвращает значения счётчиков родительской записи.
func (r *PedestrianRepository) findValues(ctx context.Context, parentID int64) ([]model.PedestrianBicyclistValues, error) {
	query := `
		SELECT id, column_name, column_name_hash, column_value, column_value_hash,
			pedestrian_bicyclist_id
		FROM pedestrian_bicyclist_values
		WHERE pedestrian_bicyclist_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("значения записи %d: %w", parentID, err)
	}
	defer rows.Close()

	var values []model.PedestrianBicyclistValues
	for rows.Next() {
		var v model.PedestrianBicyclistValues
		err := rows.Scan(&v.ID, &v.ColumnName, &v.ColumnNameHash, &v.ColumnValue, &v.ColumnValueHash, &v.PedestrianBicyclistID)
		if err != nil {
			return nil, fmt.Errorf("чтение значения счётчика: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Delete удаляет родительскую запись; значения удаляются каскадно.
func (r *PedestrianRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pedestrian_bicyclist WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("удаление родительской записи %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByDocumentID удаляет все записи документа.
func (r *PedestrianRepository) DeleteByDocumentID(ctx context.Context, documentID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM pedestrian_bicyclist WHERE document_id = $1`, documentID)
	if err != nil {
		return 0, fmt.Errorf("удаление записей документа %d: %w", documentID, err)
	}
	return tag.RowsAffected(), nil
}
