package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/goroadstat/internal/domain/model"
)

// TrafficRepository — репозиторий записей наблюдений движения.
type TrafficRepository struct {
	db DBTX
}

// NewTrafficRepository создаёт TrafficRepository.
func NewTrafficRepository(db DBTX) *TrafficRepository {
	return &TrafficRepository{db: db}
}

// SaveAll сохраняет записи одним батчем.
func (r *TrafficRepository) SaveAll(ctx context.Context, records []model.Traffic) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO traffic (
			county, county_hash, community, community_hash,
			on_road, on_road_hash, from_road, from_road_hash,
			to_road, to_road_hash, approach, approach_hash,
			at_location, at_location_hash, direction,
			directions, directions_hash, latitude, longitude, document_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	for _, rec := range records {
		batch.Queue(query,
			rec.County, rec.CountyHash, rec.Community, rec.CommunityHash,
			rec.OnRoad, rec.OnRoadHash, rec.FromRoad, rec.FromRoadHash,
			rec.ToRoad, rec.ToRoadHash, rec.Approach, rec.ApproachHash,
			rec.At, rec.AtHash, string(rec.Direction),
			rec.Directions, rec.DirectionsHash, rec.Latitude, rec.Longitude, rec.DocumentID,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("сохранение записей о движении: %w", err)
		}
	}
	return nil
}

// List возвращает записи по фильтру.
func (r *TrafficRepository) List(ctx context.Context, filter model.TrafficFilter) ([]model.Traffic, error) {
	var conds []string
	var args []any

	if filter.County != "" {
		conds, args = cond(conds, args, "county = $%d", filter.County)
	}
	if filter.Direction != "" {
		conds, args = cond(conds, args, "direction = $%d", filter.Direction)
	}
	if filter.DocumentID != nil {
		conds, args = cond(conds, args, "document_id = $%d", *filter.DocumentID)
	}

	args = append(args, normalizeLimit(filter.Limit), filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, county, county_hash, community, community_hash,
			on_road, on_road_hash, from_road, from_road_hash,
			to_road, to_road_hash, approach, approach_hash,
			at_location, at_location_hash, direction,
			directions, directions_hash, latitude, longitude, document_id
		FROM traffic%s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		buildWhere(conds), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("список записей о движении: %w", err)
	}
	defer rows.Close()

	var records []model.Traffic
	for rows.Next() {
		var rec model.Traffic
		err := rows.Scan(
			&rec.ID, &rec.County, &rec.CountyHash, &rec.Community, &rec.CommunityHash,
			&rec.OnRoad, &rec.OnRoadHash, &rec.FromRoad, &rec.FromRoadHash,
			&rec.ToRoad, &rec.ToRoadHash, &rec.Approach, &rec.ApproachHash,
			&rec.At, &rec.AtHash, &rec.Direction,
			&rec.Directions, &rec.DirectionsHash, &rec.Latitude, &rec.Longitude, &rec.DocumentID,
		)
		if err != nil {
			return nil, fmt.Errorf("чтение записи о движении: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete удаляет запись по идентификатору.
func (r *TrafficRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM traffic WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("удаление записи о движении %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByDocumentID удаляет все записи документа.
func (r *TrafficRepository) DeleteByDocumentID(ctx context.Context, documentID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM traffic WHERE document_id = $1`, documentID)
	if err != nil {
		return 0, fmt.Errorf("удаление записей документа %d: %w", documentID, err)
	}
	return tag.RowsAffected(), nil
}
