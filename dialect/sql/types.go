package sql

import (
	"fmt"
	"strings"

	"github.com/syssam/persist/schema/field"
)

// DefaultSize is the length used for parametric types when a column does
// not declare one.
const DefaultSize = 255

// DataType is the rendering rule of one field type in a dialect.
type DataType struct {
	Type field.Type
	// Pattern is the SQL type name. A pattern holding a %d verb takes
	// the column length, like varchar(%d).
	Pattern string
	// QuoteRequired reports if literal values are wrapped in the value quote.
	QuoteRequired bool
}

// Parametric reports if the type name takes a length.
func (d DataType) Parametric() bool {
	return strings.Contains(d.Pattern, "%d")
}

// FullName returns the SQL type name for a column of the given length.
func (d DataType) FullName(length int) string {
	if !d.Parametric() {
		return d.Pattern
	}
	if length <= 0 {
		length = DefaultSize
	}
	return fmt.Sprintf(d.Pattern, length)
}

// Registry maps field types to dialect data types. It is immutable once
// created and safe for concurrent use.
type Registry struct {
	types map[field.Type]DataType
}

// NewRegistry returns a registry holding the given data types. Later
// entries override earlier ones of the same field type.
func NewRegistry(types ...DataType) *Registry {
	r := &Registry{types: make(map[field.Type]DataType, len(types))}
	for _, t := range types {
		r.types[t.Type] = t
	}
	return r
}

// Lookup returns the data type registered for t.
func (r *Registry) Lookup(t field.Type) (DataType, bool) {
	dt, ok := r.types[t]
	return dt, ok
}

// With returns a copy of the registry extended with the given data types.
func (r *Registry) With(types ...DataType) *Registry {
	all := make([]DataType, 0, len(r.types)+len(types))
	for _, t := range r.types {
		all = append(all, t)
	}
	return NewRegistry(append(all, types...)...)
}

// Len returns the number of registered data types.
func (r *Registry) Len() int {
	return len(r.types)
}
