package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolationFromPgError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_favorites_user_product"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "uq_favorites_user_product"))
	assert.False(t, IsUniqueViolation(err, "uq_other"))
}

func TestIsUniqueViolationFallbackMessages(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "uq_x"`), ""))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: favorites.user_id, favorites.product_id"), ""))
	assert.False(t, IsUniqueViolation(errors.New("connection refused"), ""))
	assert.False(t, IsUniqueViolation(nil, ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := fmt.Errorf("delete: %w", &pgconn.PgError{Code: "23503"})
	assert.True(t, IsForeignKeyViolation(pgErr))
	assert.True(t, IsForeignKeyViolation(errors.New(`update or delete on table "products" violates foreign key constraint "fk_order_items_product"`)))
	assert.False(t, IsForeignKeyViolation(errors.New("timeout")))
	assert.False(t, IsForeignKeyViolation(nil))
}
