package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Common errors for catalog repository operations.
var (
	ErrDuplicateName = errors.New("name already exists")
	ErrInvalidID     = errors.New("malformed identifier")
)

// PostgreSQL SQLSTATE codes the repository translates.
const (
	pgUniqueViolation           = "23505"
	pgInvalidTextRepresentation = "22P02"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

// isInvalidText checks if PostgreSQL refused to parse a parameter, e.g. a malformed UUID.
func isInvalidText(err error) bool {
	return pgErrorCode(err) == pgInvalidTextRepresentation
}
