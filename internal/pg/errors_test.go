package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintErrors(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
	fk := fmt.Errorf("insert payment: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	plain := errors.New("connection refused")

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(plain))
	assert.Equal(t, "users_email_key", ConstraintName(unique))
	assert.Empty(t, ConstraintName(plain))
}
