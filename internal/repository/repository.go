// Пакет repository — доступ к PostgreSQL через pgx.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound — запрошенная запись не найдена.
var ErrNotFound = errors.New("запись не найдена")

// DBTX — минимальный интерфейс исполнителя запросов.
// Ему удовлетворяют и *pgxpool.Pool, и pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// normalizeLimit приводит limit к допустимому диапазону.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// buildWhere собирает выражение WHERE из списка условий.
// Пустой список даёт пустую строку.
func buildWhere(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// cond добавляет условие с позиционным аргументом.
func cond(conds []string, args []any, expr string, val any) ([]string, []any) {
	args = append(args, val)
	conds = append(conds, fmt.Sprintf(expr, len(args)))
	return conds, args
}
