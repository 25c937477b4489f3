package persist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema/field"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := persist.NewSchemaError("users", "no persistent columns")
		assert.Equal(t, "persist: schema error on users: no persistent columns", err.Error())
	})

	t.Run("ErrorWithCause", func(t *testing.T) {
		err := &persist.SchemaError{Entity: "users", Message: "field id", Cause: errors.New("bad")}
		assert.Equal(t, "persist: schema error on users: field id: bad", err.Error())
		assert.EqualError(t, errors.Unwrap(err), "bad")
	})

	t.Run("IsSchemaError", func(t *testing.T) {
		err := persist.NewSchemaError("users", "expected one primary key, got %d", 2)
		assert.True(t, errors.Is(err, persist.ErrSchema))
		assert.True(t, persist.IsSchemaError(err))
		assert.True(t, persist.IsSchemaError(fmt.Errorf("wrapper: %w", err)))
		assert.True(t, persist.IsSchemaError(persist.ErrSchema))
		assert.False(t, persist.IsSchemaError(errors.New("other error")))
		assert.False(t, persist.IsSchemaError(nil))
	})
}

func TestUnsupportedTypeError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := persist.NewUnsupportedTypeError(field.TypeUUID, "h2")
		assert.Equal(t, "persist: unsupported type uuid.UUID for dialect h2", err.Error())
	})

	t.Run("IsUnsupportedType", func(t *testing.T) {
		err := persist.NewUnsupportedTypeError(field.TypeBool, "custom")
		assert.True(t, errors.Is(err, persist.ErrUnsupportedType))
		assert.True(t, persist.IsUnsupportedType(fmt.Errorf("wrapper: %w", err)))
		assert.False(t, persist.IsUnsupportedType(persist.ErrColumnNotFound))
		assert.False(t, persist.IsUnsupportedType(nil))
	})
}

func TestColumnNotFoundError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := persist.NewColumnNotFoundError("users", "hobby")
		assert.Equal(t, `persist: column "hobby" not found in table "users"`, err.Error())
		assert.Equal(t, "hobby", err.Column)
	})

	t.Run("IsColumnNotFound", func(t *testing.T) {
		err := persist.NewColumnNotFoundError("users", "hobby")
		assert.True(t, errors.Is(err, persist.ErrColumnNotFound))
		assert.True(t, persist.IsColumnNotFound(fmt.Errorf("wrapper: %w", err)))
		assert.False(t, persist.IsColumnNotFound(persist.NewSchemaError("users", "x")))
		assert.False(t, persist.IsColumnNotFound(nil))
	})
}

func TestColumnInvalidError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := persist.NewColumnInvalidError("users", "id", "primary key value is missing", nil)
		assert.Equal(t, `persist: invalid column "id" in table "users": primary key value is missing`, err.Error())
	})

	t.Run("ErrorWithCause", func(t *testing.T) {
		cause := errors.New("not assignable")
		err := persist.NewColumnInvalidError("users", "old", "invalid value", cause)
		assert.Equal(t, `persist: invalid column "old" in table "users": invalid value: not assignable`, err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("IsColumnInvalid", func(t *testing.T) {
		err := persist.NewColumnInvalidError("users", "id", "primary key value is missing", nil)
		assert.True(t, errors.Is(err, persist.ErrColumnInvalid))
		assert.True(t, persist.IsColumnInvalid(fmt.Errorf("wrapper: %w", err)))
		assert.False(t, persist.IsColumnInvalid(errors.New("other error")))
		assert.False(t, persist.IsColumnInvalid(nil))
	})
}
