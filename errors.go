package persist

import (
	"errors"
	"fmt"
)

// Standard sentinel errors of statement building.
var (
	// ErrSchema is returned when a table descriptor cannot be derived from
	// an entity, or an operation needs a shape the entity does not have.
	ErrSchema = errors.New("persist: schema derivation failed")

	// ErrUnsupportedType is returned when a value kind has no data type
	// registered in the active dialect.
	ErrUnsupportedType = errors.New("persist: unsupported type")

	// ErrColumnNotFound is returned when a referenced column does not exist.
	ErrColumnNotFound = errors.New("persist: column not found")

	// ErrColumnInvalid is returned when a column holds a value that the
	// operation cannot use, like a missing primary key.
	ErrColumnInvalid = errors.New("persist: invalid column")
)

// SchemaError represents a failure to derive a table descriptor from an
// entity, or an entity shape unusable by an operation.
type SchemaError struct {
	Entity  string // Entity or table name
	Message string
	Cause   error
}

// Error returns the error string.
func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("persist: schema error on %s: %s", e.Entity, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches SchemaError.
// This allows errors.Is(schemaErr, ErrSchema) to return true.
func (e *SchemaError) Is(err error) bool {
	return err == ErrSchema
}

// NewSchemaError returns a new SchemaError.
func NewSchemaError(entity, format string, args ...any) *SchemaError {
	return &SchemaError{Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// IsSchemaError returns true if the error is a SchemaError.
func IsSchemaError(err error) bool {
	if err == nil {
		return false
	}
	var e *SchemaError
	return errors.As(err, &e) || errors.Is(err, ErrSchema)
}

// UnsupportedTypeError represents a value kind without a data type entry
// in a dialect.
type UnsupportedTypeError struct {
	Type    string // Field type name
	Dialect string // Dialect name
}

// Error returns the error string.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("persist: unsupported type %s for dialect %s", e.Type, e.Dialect)
}

// Is reports whether the target error matches UnsupportedTypeError.
func (e *UnsupportedTypeError) Is(err error) bool {
	return err == ErrUnsupportedType
}

// NewUnsupportedTypeError returns a new UnsupportedTypeError.
func NewUnsupportedTypeError(typ fmt.Stringer, dialect string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Type: typ.String(), Dialect: dialect}
}

// IsUnsupportedType returns true if the error is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedType)
}

// ColumnNotFoundError represents a reference to a column that does not
// exist on a table.
type ColumnNotFoundError struct {
	Table  string
	Column string
}

// Error returns the error string.
func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("persist: column %q not found in table %q", e.Column, e.Table)
}

// Is reports whether the target error matches ColumnNotFoundError.
func (e *ColumnNotFoundError) Is(err error) bool {
	return err == ErrColumnNotFound
}

// NewColumnNotFoundError returns a new ColumnNotFoundError.
func NewColumnNotFoundError(table, column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Table: table, Column: column}
}

// IsColumnNotFound returns true if the error is a ColumnNotFoundError.
func IsColumnNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *ColumnNotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrColumnNotFound)
}

// ColumnInvalidError represents a column whose value cannot be used by an
// operation.
type ColumnInvalidError struct {
	Table   string
	Column  string
	Message string
	Cause   error
}

// Error returns the error string.
func (e *ColumnInvalidError) Error() string {
	msg := fmt.Sprintf("persist: invalid column %q in table %q: %s", e.Column, e.Table, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ColumnInvalidError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches ColumnInvalidError.
func (e *ColumnInvalidError) Is(err error) bool {
	return err == ErrColumnInvalid
}

// NewColumnInvalidError returns a new ColumnInvalidError.
func NewColumnInvalidError(table, column, msg string, cause error) *ColumnInvalidError {
	return &ColumnInvalidError{Table: table, Column: column, Message: msg, Cause: cause}
}

// IsColumnInvalid returns true if the error is a ColumnInvalidError.
func IsColumnInvalid(err error) bool {
	if err == nil {
		return false
	}
	var e *ColumnInvalidError
	return errors.As(err, &e) || errors.Is(err, ErrColumnInvalid)
}
