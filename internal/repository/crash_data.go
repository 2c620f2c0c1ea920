package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/goroadstat/internal/domain/model"
)

// CrashDataRepository — репозиторий записей отчётов о ДТП.
type CrashDataRepository struct {
	db DBTX
}

// NewCrashDataRepository создаёт CrashDataRepository.
func NewCrashDataRepository(db DBTX) *CrashDataRepository {
	return &CrashDataRepository{db: db}
}

// SaveAll сохраняет записи одним батчем.
func (r *CrashDataRepository) SaveAll(ctx context.Context, records []model.CrashData) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO crash_data (
			year, month, day, hour, weekend,
			collision_type, collision_type_hash, injury_type,
			primary_factor, primary_factor_hash,
			reported_location, reported_location_hash,
			latitude, longitude, document_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	for _, rec := range records {
		batch.Queue(query,
			rec.Year, rec.Month, rec.Day, rec.Hour, nullableEnum(string(rec.Weekend)),
			rec.CollisionType, rec.CollisionTypeHash, string(rec.InjuryType),
			rec.PrimaryFactor, rec.PrimaryFactorHash,
			rec.ReportedLocation, rec.ReportedLocationHash,
			rec.Latitude, rec.Longitude, rec.DocumentID,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("сохранение записей о ДТП: %w", err)
		}
	}
	return nil
}

// List возвращает записи по фильтру.
func (r *CrashDataRepository) List(ctx context.Context, filter model.CrashDataFilter) ([]model.CrashData, error) {
	var conds []string
	var args []any

	if filter.Year != nil {
		conds, args = cond(conds, args, "year = $%d", *filter.Year)
	}
	if filter.InjuryType != "" {
		conds, args = cond(conds, args, "injury_type = $%d", filter.InjuryType)
	}
	if filter.DocumentID != nil {
		conds, args = cond(conds, args, "document_id = $%d", *filter.DocumentID)
	}

	args = append(args, normalizeLimit(filter.Limit), filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, year, month, day, hour, weekend,
			collision_type, collision_type_hash, injury_type,
			primary_factor, primary_factor_hash,
			reported_location, reported_location_hash,
			latitude, longitude, document_id
		FROM crash_data%s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		buildWhere(conds), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("список записей о ДТП: %w", err)
	}
	defer rows.Close()

	var records []model.CrashData
	for rows.Next() {
		var rec model.CrashData
		var weekend *string
		err := rows.Scan(
			&rec.ID, &rec.Year, &rec.Month, &rec.Day, &rec.Hour, &weekend,
			&rec.CollisionType, &rec.CollisionTypeHash, &rec.InjuryType,
			&rec.PrimaryFactor, &rec.PrimaryFactorHash,
			&rec.ReportedLocation, &rec.ReportedLocationHash,
			&rec.Latitude, &rec.Longitude, &rec.DocumentID,
		)
		if err != nil {
			return nil, fmt.Errorf("чтение записи о ДТП: %w", err)
		}
		if weekend != nil {
			rec.Weekend = model.Weekend(*weekend)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete удаляет запись по идентификатору.
func (r *CrashDataRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM crash_data WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("удаление записи о ДТП %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByDocumentID удаляет все записи документа.
func (r *CrashDataRepository) DeleteByDocumentID(ctx context.Context, documentID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM crash_data WHERE document_id = $1`, documentID)
	if err != nil {
		return 0, fmt.Errorf("удаление записей документа %d: %w", documentID, err)
	}
	return tag.RowsAffected(), nil
}

// nullableEnum превращает пустую строку в NULL.
func nullableEnum(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
