package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// foreignKeyViolation - SQLSTATE нарушения внешнего ключа
const foreignKeyViolation = "23503"

// isForeignKeyViolation проверяет Postgres foreign key violation (23503) для pgconn и lib/pq драйверов
func isForeignKeyViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
		return true
	}
	return false
}
