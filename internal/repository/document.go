package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/goroadstat/internal/domain/model"
)

// DocumentRepository — репозиторий метаданных загрузок.
type DocumentRepository struct {
	db DBTX
}

// NewDocumentRepository создаёт DocumentRepository.
func NewDocumentRepository(db DBTX) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Save сохраняет документ и возвращает его с присвоенным идентификатором.
func (r *DocumentRepository) Save(ctx context.Context, doc *model.Document) (*model.Document, error) {
	query := `
		INSERT INTO documents (uid, uploaded_by, uploaded_at, processed_rows)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		doc.UID, doc.UploadedBy, doc.UploadedAt, doc.ProcessedRows,
	).Scan(&doc.ID)
	if err != nil {
		return nil, fmt.Errorf("сохранение документа: %w", err)
	}
	return doc, nil
}

// FindByID возвращает документ по идентификатору.
func (r *DocumentRepository) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	query := `
		SELECT id, uid, uploaded_by, uploaded_at, processed_rows
		FROM documents
		WHERE id = $1`

	var doc model.Document
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.UID, &doc.UploadedBy, &doc.UploadedAt, &doc.ProcessedRows,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("поиск документа %d: %w", id, err)
	}
	return &doc, nil
}

// List возвращает документы по фильтру, новые первыми.
func (r *DocumentRepository) List(ctx context.Context, filter model.DocumentFilter) ([]model.Document, error) {
	var conds []string
	var args []any

	if filter.UploadedBy != "" {
		conds, args = cond(conds, args, "uploaded_by = $%d", filter.UploadedBy)
	}

	args = append(args, normalizeLimit(filter.Limit), filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, uid, uploaded_by, uploaded_at, processed_rows
		FROM documents%s
		ORDER BY uploaded_at DESC
		LIMIT $%d OFFSET $%d`,
		buildWhere(conds), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("список документов: %w", err)
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var doc model.Document
		if err := rows.Scan(&doc.ID, &doc.UID, &doc.UploadedBy, &doc.UploadedAt, &doc.ProcessedRows); err != nil {
			return nil, fmt.Errorf("чтение документа: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Delete удаляет документ; связанные записи удаляются каскадно.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("удаление документа %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
