package apperr

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFromDB(t *testing.T) {
	dup := &pgconn.PgError{Code: PgErrUniqueViolation}
	err := FromDB(dup, "insert template")
	assert.True(t, IsKind(err, KindConflict))
	assert.ErrorIs(t, err, dup)

	fk := &pgconn.PgError{Code: PgErrForeignKeyViolation}
	assert.True(t, IsKind(FromDB(fk, "insert step"), KindNotFound))

	assert.True(t, IsKind(FromDB(errors.New("boom"), "insert"), KindInternal))
}
