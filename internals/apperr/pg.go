package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes mapped to client errors.
const (
	PgErrForeignKeyViolation = "23503"
	PgErrUniqueViolation     = "23505"
)

// FromDB classifies a write error: unique violations become Conflict,
// foreign key violations NotFound, anything else Internal.
func FromDB(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrUniqueViolation:
			return Wrap(KindConflict, err, "%s: duplicate value", msg)
		case PgErrForeignKeyViolation:
			return Wrap(KindNotFound, err, "%s: referenced row missing", msg)
		}
	}
	return Internal(err, "%s", msg)
}
