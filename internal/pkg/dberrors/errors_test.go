package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "usuarios_dni_key"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("error creating user: %w", dup)), "wrapped errors unwrap")

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}), "fk violation is not a duplicate")
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "usuarios_dni_key"}

	assert.True(t, IsDuplicateConstraintError(dup, "usuarios_dni_key"))
	assert.False(t, IsDuplicateConstraintError(dup, "usuarios_email_key"), "constraint name must match")
	assert.False(t, IsDuplicateConstraintError(errors.New("plain error"), "usuarios_dni_key"))
}
