package field

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// A Descriptor for field configuration.
type Descriptor struct {
	Name          string // field name.
	StorageKey    string // column name, if it differs from the field name.
	Type          Type   // value kind.
	Size          int    // max length, for parametric types like varchar(N).
	PrimaryKey    bool   // part of the primary key.
	AutoIncrement bool   // value generated by the database.
	Nillable      bool   // nullable column.
	Transient     bool   // not persisted.
	Comment       string // field comment.
	Value         any    // bound value, nil if absent.
	Err           error
}

// Column returns the column name of the field.
func (d *Descriptor) Column() string {
	if d.StorageKey != "" {
		return d.StorageKey
	}
	return d.Name
}

// Builder is the builder for fields holding Go values of type T.
type Builder[T any] struct {
	desc *Descriptor
}

func newBuilder[T any](name string, t Type) *Builder[T] {
	return &Builder[T]{desc: &Descriptor{Name: name, Type: t}}
}

// Int returns a new Field with type int.
func Int(name string) *Builder[int] { return newBuilder[int](name, TypeInt) }

// Int64 returns a new Field with type int64.
func Int64(name string) *Builder[int64] { return newBuilder[int64](name, TypeInt64) }

// Float returns a new Field with type float64.
func Float(name string) *Builder[float64] { return newBuilder[float64](name, TypeFloat64) }

// String returns a new Field with type string.
func String(name string) *Builder[string] { return newBuilder[string](name, TypeString) }

// Bool returns a new Field with type bool.
func Bool(name string) *Builder[bool] { return newBuilder[bool](name, TypeBool) }

// Time returns a new Field with type time.Time.
func Time(name string) *Builder[time.Time] { return newBuilder[time.Time](name, TypeTime) }

// UUID returns a new Field with type uuid.UUID.
func UUID(name string) *Builder[uuid.UUID] { return newBuilder[uuid.UUID](name, TypeUUID) }

// Value binds the current value of the field.
func (b *Builder[T]) Value(v T) *Builder[T] {
	b.desc.Value = v
	return b
}

// Ptr binds the current value of the field. A nil pointer is an absent
// value and renders as NULL.
func (b *Builder[T]) Ptr(v *T) *Builder[T] {
	if v == nil {
		b.desc.Value = nil
		return b
	}
	b.desc.Value = *v
	return b
}

// StorageKey sets the column name of the field.
func (b *Builder[T]) StorageKey(key string) *Builder[T] {
	b.desc.StorageKey = key
	return b
}

// PrimaryKey marks the field as the primary key.
func (b *Builder[T]) PrimaryKey() *Builder[T] {
	b.desc.PrimaryKey = true
	return b
}

// AutoIncrement delegates value generation of the field to the database.
// It is valid on integer fields only.
//
//	field.Int64("id").PrimaryKey().AutoIncrement()
func (b *Builder[T]) AutoIncrement() *Builder[T] {
	if !b.desc.Type.Integer() {
		b.desc.Err = errors.Join(b.desc.Err, errors.New("AutoIncrement is only supported on integer fields"))
	}
	b.desc.AutoIncrement = true
	return b
}

// Nillable indicates that the column accepts NULL values.
func (b *Builder[T]) Nillable() *Builder[T] {
	b.desc.Nillable = true
	return b
}

// Transient excludes the field from the table. Its value is never persisted.
func (b *Builder[T]) Transient() *Builder[T] {
	b.desc.Transient = true
	return b
}

// MaxLen sets the length of parametric column types, like varchar(N).
func (b *Builder[T]) MaxLen(n int) *Builder[T] {
	if n <= 0 {
		b.desc.Err = errors.Join(b.desc.Err, errors.New("MaxLen must be positive"))
	}
	b.desc.Size = n
	return b
}

// Comment sets the comment of the field.
func (b *Builder[T]) Comment(c string) *Builder[T] {
	b.desc.Comment = c
	return b
}

// Descriptor implements the persist.Field interface by returning its descriptor.
func (b *Builder[T]) Descriptor() *Descriptor {
	return b.desc
}
