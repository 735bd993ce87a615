package postgres

import (
	"strings"

	"valunds/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	code, _ := pgErrorCode(err)

	return code == pgUniqueViolation
}

// violatedConstraint returns the constraint named by the driver error, lowercased.
func violatedConstraint(err error) string {
	_, name := pgErrorCode(err)

	return strings.ToLower(name)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	code, _ := pgErrorCode(err)

	return code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if code, _ := pgErrorCode(err); code == pgNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	code, _ := pgErrorCode(err)

	return code == pgCheckViolation
}
